package main

import (
	"math"
	"testing"
)

func evalOne(t *testing.T, src string, env Env) float64 {
	t.Helper()
	stmts, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	var result float64
	for _, stmt := range stmts {
		result, err = evalExpr(stmt, env)
		if err != nil {
			t.Fatalf("eval(%q): %v", src, err)
		}
	}
	return result
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"3-2-1", 0}, // left-associative, not naive operand splitting
		{"12/4/3", 1},
		{"10%3", 1},
		{"2^10", 1024},
		{"2^3^2", 512}, // right-associative power
		{"-2^2", -4},   // unary binds looser than power
		{"-3+5", 2},
		{"+4", 4},
		{"--4", 4},
		{"1<2", 1},
		{"2<=2", 1},
		{"3>4", 0},
		{"1==1", 1},
		{"1!=1", 0},
		{"1&&0", 0},
		{"1||0", 1},
		{"2>1 && 3>2", 1},
		{"$PI>3 && $PI<3.2", 1},
		{"$E", math.E},
	}
	for _, tt := range tests {
		got := evalOne(t, tt.src, CreateEnv())
		if got != tt.want {
			t.Errorf("%q = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestEvalIEEEDivision(t *testing.T) {
	env := CreateEnv()
	if got := evalOne(t, "1/0", env); !math.IsInf(got, 1) {
		t.Errorf("1/0 = %v, want +Inf", got)
	}
	if got := evalOne(t, "-1/0", env); !math.IsInf(got, -1) {
		t.Errorf("-1/0 = %v, want -Inf", got)
	}
	if got := evalOne(t, "0/0", env); !math.IsNaN(got) {
		t.Errorf("0/0 = %v, want NaN", got)
	}
}

func TestEvalVariables(t *testing.T) {
	env := CreateEnv()
	env.Set("a", 3)
	if got := evalOne(t, "a*a", env); got != 9 {
		t.Errorf("a*a = %v, want 9", got)
	}
	// unknown variables read as zero
	if got := evalOne(t, "zzz+1", env); got != 1 {
		t.Errorf("zzz+1 = %v, want 1", got)
	}
}

func TestEvalAssignmentWritesAndReturns(t *testing.T) {
	env := CreateEnv()
	if got := evalOne(t, "x=5", env); got != 5 {
		t.Errorf("x=5 returned %v, want 5", got)
	}
	if got := env.Get("x", 0); got != 5 {
		t.Errorf("env x = %v, want 5", got)
	}
}

func TestEvalFunctionErrors(t *testing.T) {
	tests := []string{
		"nosuchfunc(1)",
		"sin(1,2)",
		"atan2(1)",
		"$NOPE",
	}
	for _, src := range tests {
		stmts, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		if _, err := evalExpr(stmts[0], CreateEnv()); err == nil {
			t.Errorf("eval(%q): expected error", src)
		}
	}
}

func TestEvalDeterminism(t *testing.T) {
	src := "x=sin(t)*cos(t)+t^2; y=x/3"
	run := func() (float64, float64) {
		env := CreateEnv()
		env.Set("t", 0.7371)
		evalOne(t, src, env)
		return env.Get("x", 0), env.Get("y", 0)
	}
	x1, y1 := run()
	x2, y2 := run()
	if x1 != x2 || y1 != y2 {
		t.Errorf("evaluation not deterministic: (%v,%v) vs (%v,%v)", x1, y1, x2, y2)
	}
}
