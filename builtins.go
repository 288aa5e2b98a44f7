package main

import "math"

// ScriptFunc is a native function callable from scripts. Arity is fixed at
// registration and checked by the evaluator before the call.
type ScriptFunc struct {
	NArgs int
	Fn    func(args []float64) float64
}

var builtinFuncs = make(map[string]ScriptFunc)

// builtinConsts holds the '$'-prefixed read-only identifiers.
var builtinConsts = map[string]float64{
	"$PI":  math.Pi,
	"$E":   math.E,
	"$PHI": math.Phi,
}

func RegisterFunc(name string, nargs int, fn func(args []float64) float64) {
	builtinFuncs[name] = ScriptFunc{NArgs: nargs, Fn: fn}
}

func unary(name string, fn func(float64) float64) (string, int, func([]float64) float64) {
	return name, 1, func(args []float64) float64 { return fn(args[0]) }
}

func binary(name string, fn func(float64, float64) float64) (string, int, func([]float64) float64) {
	return name, 2, func(args []float64) float64 { return fn(args[0], args[1]) }
}

func init() {
	RegisterFunc(unary("sin", math.Sin))
	RegisterFunc(unary("cos", math.Cos))
	RegisterFunc(unary("tan", math.Tan))
	RegisterFunc(unary("asin", math.Asin))
	RegisterFunc(unary("acos", math.Acos))
	RegisterFunc(unary("atan", math.Atan))
	RegisterFunc(binary("atan2", math.Atan2))
	RegisterFunc(unary("sqrt", math.Sqrt))
	RegisterFunc(unary("abs", math.Abs))
	RegisterFunc(binary("pow", math.Pow))
	RegisterFunc(unary("exp", math.Exp))
	RegisterFunc(unary("log", math.Log))
	RegisterFunc(unary("log10", math.Log10))
	RegisterFunc(binary("min", math.Min))
	RegisterFunc(binary("max", math.Max))
	RegisterFunc(unary("floor", math.Floor))
	RegisterFunc(unary("ceil", math.Ceil))
	RegisterFunc(unary("round", math.Round))
	RegisterFunc(unary("sign", func(x float64) float64 {
		if x > 0 {
			return 1
		}
		if x < 0 {
			return -1
		}
		return 0
	}))
	RegisterFunc(unary("sqr", func(x float64) float64 { return x * x }))
	RegisterFunc(unary("invsqrt", func(x float64) float64 { return 1 / math.Sqrt(x) }))
	RegisterFunc(binary("sigmoid", func(x, k float64) float64 {
		return 1 / (1 + math.Exp(-k*x))
	}))
}
