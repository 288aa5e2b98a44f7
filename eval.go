package main

import (
	"fmt"
	"math"
)

type EvalError struct {
	Reason string
}

func (e EvalError) Error() string {
	return "eval error: " + e.Reason
}

// evalExpr walks one parsed statement against the environment. Arithmetic
// follows IEEE 754: division by zero yields Inf/NaN rather than an error,
// since coordinate math downstream clamps those anyway. The only mutation
// is the target write of a top-level (or nested) Assignment.
func evalExpr(node Expr, env Env) (float64, error) {
	switch n := node.(type) {
	case *Literal:
		return n.Value, nil
	case *VariableRef:
		if n.Name[0] == '$' {
			if v, ok := builtinConsts[n.Name]; ok {
				return v, nil
			}
			return 0, EvalError{Reason: fmt.Sprintf("unknown constant %s", n.Name)}
		}
		return env.Get(n.Name, 0), nil
	case *UnaryOp:
		v, err := evalExpr(n.Operand, env)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case *BinaryOp:
		left, err := evalExpr(n.Left, env)
		if err != nil {
			return 0, err
		}
		right, err := evalExpr(n.Right, env)
		if err != nil {
			return 0, err
		}
		return evalBinary(n.Op, left, right)
	case *FunctionCall:
		fn, ok := builtinFuncs[n.Name]
		if !ok {
			return 0, EvalError{Reason: fmt.Sprintf("unknown function %s", n.Name)}
		}
		if len(n.Args) != fn.NArgs {
			return 0, EvalError{Reason: fmt.Sprintf("%s expects %d arguments, got %d", n.Name, fn.NArgs, len(n.Args))}
		}
		args := make([]float64, len(n.Args))
		for i, argExpr := range n.Args {
			v, err := evalExpr(argExpr, env)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		return fn.Fn(args), nil
	case *Assignment:
		v, err := evalExpr(n.Value, env)
		if err != nil {
			return 0, err
		}
		env.Set(n.Target, v)
		return v, nil
	default:
		return 0, EvalError{Reason: fmt.Sprintf("unknown node type %T", node)}
	}
}

func evalBinary(op string, left, right float64) (float64, error) {
	switch op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		return left / right, nil
	case "%":
		return math.Mod(left, right), nil
	case "^":
		return math.Pow(left, right), nil
	case "==":
		return boolNum(left == right), nil
	case "!=":
		return boolNum(left != right), nil
	case "<":
		return boolNum(left < right), nil
	case ">":
		return boolNum(left > right), nil
	case "<=":
		return boolNum(left <= right), nil
	case ">=":
		return boolNum(left >= right), nil
	case "&&":
		return boolNum(left != 0 && right != 0), nil
	case "||":
		return boolNum(left != 0 || right != 0), nil
	default:
		return 0, EvalError{Reason: fmt.Sprintf("unknown operator %q", op)}
	}
}

func boolNum(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
