package main

import (
	"math"
	"testing"
)

func TestBuiltinFunctions(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"cos(0)", 1},
		{"sin(0)", 0},
		{"tan(0)", 0},
		{"sqrt(9)", 3},
		{"abs(-2.5)", 2.5},
		{"pow(2,8)", 256},
		{"min(3,-1)", -1},
		{"max(3,-1)", 3},
		{"floor(1.7)", 1},
		{"ceil(1.2)", 2},
		{"round(1.5)", 2},
		{"sign(-7)", -1},
		{"sign(7)", 1},
		{"sign(0)", 0},
		{"sqr(5)", 25},
		{"invsqrt(4)", 0.5},
		{"exp(0)", 1},
		{"log(1)", 0},
		{"log10(1000)", 3},
		{"atan2(0,1)", 0},
	}
	for _, tt := range tests {
		got := evalOne(t, tt.src, CreateEnv())
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%q = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestBuiltinConstants(t *testing.T) {
	env := CreateEnv()
	if got := evalOne(t, "$PI", env); got != math.Pi {
		t.Errorf("$PI = %v, want %v", got, math.Pi)
	}
	if got := evalOne(t, "r=$PI*2", env); math.Abs(got-2*math.Pi) > 1e-12 {
		t.Errorf("$PI*2 = %v, want %v", got, 2*math.Pi)
	}
}

func TestBuiltinArityTable(t *testing.T) {
	for name, fn := range builtinFuncs {
		if fn.NArgs < 1 || fn.NArgs > 2 {
			t.Errorf("%s has arity %d, want 1 or 2", name, fn.NArgs)
		}
		if fn.Fn == nil {
			t.Errorf("%s has nil implementation", name)
		}
	}
}
