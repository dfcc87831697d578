package sjs

import (
	"fmt"
	"io"
	"strings"
)

type globalDef struct {
	name string
	fn   Invoker
}

// defaultGlobals returns the builtins installed into every global
// environment: print and the binary operators.  Operators are ordinary
// callable objects bound under their symbol, which is why infix syntax can
// lower to plain function calls.
func defaultGlobals(out io.Writer) []*globalDef {
	return []*globalDef{
		{"print", builtinPrint(out)},
		{"+", arithOp("+", func(a, b int) (Value, error) { return a + b, nil })},
		{"-", arithOp("-", func(a, b int) (Value, error) { return a - b, nil })},
		{"*", arithOp("*", func(a, b int) (Value, error) { return a * b, nil })},
		{"/", arithOp("/", func(a, b int) (Value, error) {
			if b == 0 {
				return nil, failf(FailError, 0, "division by zero")
			}
			return a / b, nil
		})},
		{"%", arithOp("%", func(a, b int) (Value, error) {
			if b == 0 {
				return nil, failf(FailError, 0, "division by zero")
			}
			return a % b, nil
		})},
		{"==", equalOp(true)},
		{"!=", equalOp(false)},
		{"<", compareOp("<", func(c int) bool { return c < 0 })},
		{"<=", compareOp("<=", func(c int) bool { return c <= 0 })},
		{">", compareOp(">", func(c int) bool { return c > 0 })},
		{">=", compareOp(">=", func(c int) bool { return c >= 0 })},
	}
}

// builtinPrint writes its arguments, space separated, as one line.
func builtinPrint(out io.Writer) Invoker {
	return func(self *JSObject, receiver Value, args []Value) (Value, error) {
		parts := make([]string, len(args))
		for i := range args {
			parts[i] = Display(args[i])
		}
		if _, err := fmt.Fprintln(out, strings.Join(parts, " ")); err != nil {
			return nil, err
		}
		return Undefined, nil
	}
}

func arithOp(name string, fn func(a, b int) (Value, error)) Invoker {
	return func(self *JSObject, receiver Value, args []Value) (Value, error) {
		if len(args) != 2 {
			return nil, failf(FailArity, 0, "%s takes 2 arguments (got %d)", name, len(args))
		}
		a, aok := args[0].(int)
		b, bok := args[1].(int)
		if !aok || !bok {
			return nil, failf(FailType, 0, "%s expects integer operands (got %s and %s)",
				name, TypeName(args[0]), TypeName(args[1]))
		}
		return fn(a, b)
	}
}

// equalOp compares values of any type.  Objects compare by identity.  The
// result is the integer 1 or 0.
func equalOp(want bool) Invoker {
	name := "=="
	if !want {
		name = "!="
	}
	return func(self *JSObject, receiver Value, args []Value) (Value, error) {
		if len(args) != 2 {
			return nil, failf(FailArity, 0, "%s takes 2 arguments (got %d)", name, len(args))
		}
		return boolInt((args[0] == args[1]) == want), nil
	}
}

// compareOp orders two ints or two strings; any other operand pair is a type
// error.
func compareOp(name string, keep func(c int) bool) Invoker {
	return func(self *JSObject, receiver Value, args []Value) (Value, error) {
		if len(args) != 2 {
			return nil, failf(FailArity, 0, "%s takes 2 arguments (got %d)", name, len(args))
		}
		switch a := args[0].(type) {
		case int:
			if b, ok := args[1].(int); ok {
				return boolInt(keep(cmpInt(a, b))), nil
			}
		case string:
			if b, ok := args[1].(string); ok {
				return boolInt(keep(strings.Compare(a, b))), nil
			}
		}
		return nil, failf(FailType, 0, "%s expects two comparable operands (got %s and %s)",
			name, TypeName(args[0]), TypeName(args[1]))
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func boolInt(b bool) Value {
	if b {
		return 1
	}
	return 0
}
