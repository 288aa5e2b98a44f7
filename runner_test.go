package main

import (
	"math"
	"testing"
)

func TestRunnerRoundTrip(t *testing.T) {
	r := CreateRunner()
	r.Execute("x=5")
	if got := r.Get("x", 0); got != 5 {
		t.Errorf("x = %v, want 5", got)
	}
}

func TestRunnerStatementOrdering(t *testing.T) {
	r := CreateRunner()
	r.Execute("a=1; b=a+1; c=b+1")
	if got := r.Get("c", 0); got != 3 {
		t.Errorf("c = %v, want 3", got)
	}
}

func TestRunnerContextPersistence(t *testing.T) {
	r := CreateRunner()
	r.Set("t", 2.0)
	r.Execute("t=t-0.05")
	if got := r.Get("t", 0); got != 1.95 {
		t.Errorf("t = %v, want 1.95", got)
	}
}

func TestRunnerSharedAcrossScripts(t *testing.T) {
	// later scripts see variables set by earlier ones this frame
	r := CreateRunner()
	r.Execute("n=800")
	r.Execute("half=n/2")
	if got := r.Get("half", 0); got != 400 {
		t.Errorf("half = %v, want 400", got)
	}
}

func TestRunnerSurvivesMalformedScript(t *testing.T) {
	r := CreateRunner()
	r.Execute("x=(1+") // must not panic or poison the runner
	if r.ErrorCount() != 1 {
		t.Errorf("ErrorCount = %d, want 1", r.ErrorCount())
	}
	if r.LastError() == nil {
		t.Error("LastError is nil after failed Execute")
	}
	r.Execute("y=2")
	if got := r.Get("y", 0); got != 2 {
		t.Errorf("y = %v, want 2 after earlier failure", got)
	}
}

func TestRunnerPartialExecutionKeepsEarlierAssignments(t *testing.T) {
	r := CreateRunner()
	r.Execute("a=1; b=nosuchfunc(2); c=3")
	if got := r.Get("a", 0); got != 1 {
		t.Errorf("a = %v, want 1 (assigned before the failure)", got)
	}
	if r.Get("c", -1) != -1 {
		t.Error("c was assigned although execution should stop at the failing statement")
	}
	if r.ErrorCount() != 1 {
		t.Errorf("ErrorCount = %d, want 1", r.ErrorCount())
	}
}

func TestRunnerEmptyScript(t *testing.T) {
	r := CreateRunner()
	r.Execute("")
	if r.ErrorCount() != 0 {
		t.Errorf("empty script counted as error: %d", r.ErrorCount())
	}
}

func TestRunnerCacheInvalidation(t *testing.T) {
	r := CreateRunner()
	r.Execute("x=1")
	r.InvalidateCache("x=1")
	r.Execute("x=1")
	if got := r.Get("x", 0); got != 1 {
		t.Errorf("x = %v, want 1 after cache invalidation", got)
	}
}

func TestRunnerResetErrors(t *testing.T) {
	r := CreateRunner()
	r.Execute("x=(")
	r.ResetErrors()
	if r.ErrorCount() != 0 || r.LastError() != nil {
		t.Error("ResetErrors did not clear error state")
	}
}

func TestRunnerDeterminism(t *testing.T) {
	script := "r=t+i*$PI*4; x=cos(r)*0.5; y=sin(r)*0.5"
	run := func() (float64, float64) {
		r := CreateRunner()
		r.Set("t", 1.25)
		r.Set("i", 0.375)
		r.Execute(script)
		return r.Get("x", 0), r.Get("y", 0)
	}
	x1, y1 := run()
	x2, y2 := run()
	if x1 != x2 || y1 != y2 {
		t.Errorf("runs differ: (%v,%v) vs (%v,%v)", x1, y1, x2, y2)
	}
	if math.IsNaN(x1) || math.IsNaN(y1) {
		t.Error("unexpected NaN result")
	}
}
