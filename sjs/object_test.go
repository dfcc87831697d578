package sjs_test

import (
	"testing"

	"github.com/Neixam/smalljs/sjs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupChain(t *testing.T) {
	parent := sjs.NewEnv(nil)
	child := sjs.NewEnv(parent)

	parent.Register("x", 1)
	assert.Equal(t, 1, child.Lookup("x"))
	assert.Equal(t, sjs.Undefined, child.Lookup("y"))

	child.Register("x", 2)
	assert.Equal(t, 2, child.Lookup("x"))
	assert.Equal(t, 1, parent.Lookup("x"), "child bindings shadow, not mutate")
}

func TestRegisterOwnFrameOnly(t *testing.T) {
	parent := sjs.NewEnv(nil)
	child := sjs.NewEnv(parent)
	parent.Register("x", 1)
	child.Register("x", 2)
	grandchild := sjs.NewEnv(child)
	assert.Equal(t, 2, grandchild.Lookup("x"))
	assert.Equal(t, 1, parent.Lookup("x"))
}

func TestInvoke(t *testing.T) {
	var gotReceiver sjs.Value
	var gotArgs []sjs.Value
	fn := sjs.NewFunction("f", func(self *sjs.JSObject, receiver sjs.Value, args []sjs.Value) (sjs.Value, error) {
		gotReceiver = receiver
		gotArgs = args
		return 7, nil
	})
	require.True(t, fn.Callable())

	obj := sjs.NewObject()
	v, err := fn.Invoke(obj, []sjs.Value{1, "a"})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, sjs.Value(obj), gotReceiver)
	assert.Equal(t, []sjs.Value{1, "a"}, gotArgs)
}

func TestInvokeNonCallable(t *testing.T) {
	obj := sjs.NewObject()
	require.False(t, obj.Callable())
	_, err := obj.Invoke(sjs.Undefined, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a function")
}

func TestFieldsOrder(t *testing.T) {
	obj := sjs.NewObject()
	obj.Register("b", 1)
	obj.Register("a", 2)
	obj.Register("b", 3) // overwrite keeps position
	assert.Equal(t, []string{"b", "a"}, obj.Fields())
	assert.Equal(t, 3, obj.Lookup("b"))
}

func TestObjectString(t *testing.T) {
	fn := sjs.NewFunction("f", func(self *sjs.JSObject, receiver sjs.Value, args []sjs.Value) (sjs.Value, error) {
		return sjs.Undefined, nil
	})
	assert.Equal(t, "<function f>", fn.String())

	obj := sjs.NewObject()
	assert.Equal(t, "{}", obj.String())
	obj.Register("a", 1)
	obj.Register("s", "hi")
	obj.Register("f", fn)
	assert.Equal(t, "{ a: 1, s: hi, f: <function f> }", obj.String())
}

func TestObjectStringSelfReference(t *testing.T) {
	obj := sjs.NewObject()
	obj.Register("self", obj)
	s := obj.String()
	assert.Contains(t, s, "{ ... }")
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "1", sjs.Display(1))
	assert.Equal(t, "-3", sjs.Display(-3))
	assert.Equal(t, "hi", sjs.Display("hi"))
	assert.Equal(t, "undefined", sjs.Display(sjs.Undefined))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "int", sjs.TypeName(1))
	assert.Equal(t, "string", sjs.TypeName("a"))
	assert.Equal(t, "undefined", sjs.TypeName(sjs.Undefined))
	assert.Equal(t, "object", sjs.TypeName(sjs.NewObject()))
	fn := sjs.NewFunction("f", func(self *sjs.JSObject, receiver sjs.Value, args []sjs.Value) (sjs.Value, error) {
		return sjs.Undefined, nil
	})
	assert.Equal(t, "function", sjs.TypeName(fn))
}
