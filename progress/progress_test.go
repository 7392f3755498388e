package progress

import "testing"

func TestFuncReporterInvokesUnderlyingFunc(t *testing.T) {
	var got TaskProgress
	r := Func(func(p TaskProgress) { got = p })
	r.Report(TaskProgress{Text: "meshing", Percent: 42})
	if got.Text != "meshing" || got.Percent != 42 {
		t.Fatalf("unexpected captured progress: %+v", got)
	}
}

func TestDiscardDoesNotPanic(t *testing.T) {
	Discard.Report(TaskProgress{Text: "x", Percent: 1})
}
