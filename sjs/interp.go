package sjs

import (
	"errors"
	"io"
)

// returnSignal unwinds a return statement to the nearest enclosing function
// invocation.  It travels through the ordinary error path and is intercepted
// only at the invocation boundary in visit's Fun case.
type returnSignal struct {
	value Value
	line  int
}

func (s *returnSignal) Error() string {
	return failf(FailError, s.line, "return outside function").Error()
}

// funName is the display name of anonymous function literals.
const funName = "lambda"

func asObject(v Value, line int) (*JSObject, error) {
	obj, ok := v.(*JSObject)
	if !ok {
		return nil, failf(FailType, line, "%s is not an object", Display(v))
	}
	return obj, nil
}

// visit evaluates one expression in env and returns its value.  Evaluation
// is strictly depth first; the only non sequential control transfer is the
// return signal.
func visit(expr Expr, env *JSObject) (Value, error) {
	switch expr := expr.(type) {
	case Block:
		for _, instr := range expr.Instrs {
			if _, err := visit(instr, env); err != nil {
				return nil, err
			}
		}
		return Undefined, nil
	case Literal:
		return expr.Value, nil
	case FunCall:
		qualifier, err := visit(expr.Qualifier, env)
		if err != nil {
			return nil, err
		}
		fun, ok := qualifier.(*JSObject)
		if !ok || !fun.Callable() {
			return nil, failf(FailType, expr.Line, "%s is not a function", Display(qualifier))
		}
		args, err := visitAll(expr.Args, env)
		if err != nil {
			return nil, err
		}
		return fun.Invoke(Undefined, args)
	case LocalVarAccess:
		return env.Lookup(expr.Name), nil
	case LocalVarAssignment:
		if expr.Declaration && env.Lookup(expr.Name) != Undefined {
			return nil, failf(FailRedeclare, expr.Line, "%s is already declared", expr.Name)
		}
		v, err := visit(expr.Expr, env)
		if err != nil {
			return nil, err
		}
		env.Register(expr.Name, v)
		return v, nil
	case Fun:
		return visitFun(expr, env), nil
	case Return:
		v, err := visit(expr.Expr, env)
		if err != nil {
			return nil, err
		}
		return nil, &returnSignal{value: v, line: expr.Line}
	case If:
		cond, err := visit(expr.Condition, env)
		if err != nil {
			return nil, err
		}
		// Only the integer 0 is false.
		if n, ok := cond.(int); ok && n == 0 {
			return visit(expr.FalseBlock, env)
		}
		return visit(expr.TrueBlock, env)
	case New:
		obj := NewObject()
		for _, init := range expr.Inits {
			v, err := visit(init.Expr, env)
			if err != nil {
				return nil, err
			}
			obj.Register(init.Name, v)
		}
		return obj, nil
	case FieldAccess:
		receiver, err := visit(expr.Receiver, env)
		if err != nil {
			return nil, err
		}
		obj, err := asObject(receiver, expr.Line)
		if err != nil {
			return nil, err
		}
		return obj.Lookup(expr.Name), nil
	case FieldAssignment:
		receiver, err := visit(expr.Receiver, env)
		if err != nil {
			return nil, err
		}
		obj, err := asObject(receiver, expr.Line)
		if err != nil {
			return nil, err
		}
		if obj.Lookup(expr.Name) == Undefined {
			return nil, failf(FailField, expr.Line, "undeclared field %s", expr.Name)
		}
		v, err := visit(expr.Expr, env)
		if err != nil {
			return nil, err
		}
		obj.Register(expr.Name, v)
		return v, nil
	case MethodCall:
		receiver, err := visit(expr.Receiver, env)
		if err != nil {
			return nil, err
		}
		obj, err := asObject(receiver, expr.Line)
		if err != nil {
			return nil, err
		}
		method, ok := obj.Lookup(expr.Name).(*JSObject)
		if !ok || !method.Callable() {
			return nil, failf(FailType, expr.Line, "%s is not a method of %s", expr.Name, Display(receiver))
		}
		args, err := visitAll(expr.Args, env)
		if err != nil {
			return nil, err
		}
		return method.Invoke(obj, args)
	}
	// The Expr implementations in this package are the complete set.
	panic(failf(FailError, expr.SourceLine(), "unhandled expression type %T", expr))
}

// visitFun produces a closure over the defining environment and registers it
// there under its name, so a named function literal can call itself.
func visitFun(expr Fun, env *JSObject) *JSObject {
	name := expr.Name
	if name == "" {
		name = funName
	}
	fun := NewFunction(name, func(self *JSObject, receiver Value, args []Value) (Value, error) {
		if len(args) != len(expr.Params) {
			return nil, failf(FailArity, expr.Line, "%s takes %d arguments (got %d)",
				name, len(expr.Params), len(args))
		}
		// The frame chains to the environment captured when the literal was
		// evaluated, not to the caller's environment.
		frame := NewEnv(env)
		frame.Register("this", receiver)
		for i, param := range expr.Params {
			frame.Register(param, args[i])
		}
		v, err := visit(expr.Body, frame)
		var ret *returnSignal
		if errors.As(err, &ret) {
			return ret.value, nil
		}
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	env.Register(name, fun)
	return fun
}

func visitAll(exprs []Expr, env *JSObject) ([]Value, error) {
	args := make([]Value, len(exprs))
	for i, e := range exprs {
		v, err := visit(e, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// Eval evaluates one expression in env.  A return statement escaping to this
// level is reported as a failure.
func Eval(expr Expr, env *JSObject) (Value, error) {
	v, err := visit(expr, env)
	var ret *returnSignal
	if errors.As(err, &ret) {
		return nil, failf(FailError, ret.line, "return outside function")
	}
	return v, err
}

// NewGlobalEnv returns a fresh global environment with the default builtins
// installed.  print writes to out.
func NewGlobalEnv(out io.Writer) *JSObject {
	global := NewEnv(nil)
	global.Register("global", global)
	for _, def := range defaultGlobals(out) {
		global.Register(def.name, NewFunction(def.name, def.fn))
	}
	return global
}

// Interpret runs script against a fresh global environment, writing print
// output to out.  The first failure aborts the run and is returned; output
// written before the failure remains written.
func Interpret(script Script, out io.Writer) error {
	_, err := Eval(script.Body, NewGlobalEnv(out))
	return err
}
