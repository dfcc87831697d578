package sjs

import (
	"bytes"
)

// Invoker is the native behavior attached to a callable JSObject.  self is
// the callable itself, receiver the value bound to "this" for the call.
type Invoker func(self *JSObject, receiver Value, args []Value) (Value, error)

// JSObject is the single runtime object type of smalljs.  It serves three
// roles: a lexical environment frame, a language level object, and a
// callable function value.  All three are a mutable keyed store with an
// optional parent used as a fallback during lookup; callables additionally
// carry an Invoker.
//
// Environments form a tree -- a frame has at most one parent and the global
// frame has none.  A callable's parent is fixed at creation time, which is
// what makes scoping lexical rather than dynamic.
type JSObject struct {
	name    string
	parent  *JSObject
	fields  map[string]Value
	keys    []string
	invoker Invoker
}

// NewEnv returns a new environment frame with the given parent.  The global
// environment is created with a nil parent.
func NewEnv(parent *JSObject) *JSObject {
	return &JSObject{
		parent: parent,
		fields: make(map[string]Value),
	}
}

// NewObject returns a new plain object with no parent.
func NewObject() *JSObject {
	return &JSObject{
		name:   "object",
		fields: make(map[string]Value),
	}
}

// NewFunction returns a new callable object wrapping fn under the given
// display name.
func NewFunction(name string, fn Invoker) *JSObject {
	return &JSObject{
		name:    name,
		fields:  make(map[string]Value),
		invoker: fn,
	}
}

// Name returns the display name of a callable.
func (o *JSObject) Name() string { return o.name }

// Callable reports whether o carries a native behavior.
func (o *JSObject) Callable() bool { return o.invoker != nil }

// Lookup resolves name against o and then its parent chain.  It returns
// Undefined when the name is bound nowhere in the chain.
func (o *JSObject) Lookup(name string) Value {
	for ; o != nil; o = o.parent {
		if v, ok := o.fields[name]; ok {
			return v
		}
	}
	return Undefined
}

// Register binds name to v in o's own frame, shadowing rather than mutating
// any binding of the same name in the parent chain.
func (o *JSObject) Register(name string, v Value) {
	if _, ok := o.fields[name]; !ok {
		o.keys = append(o.keys, name)
	}
	o.fields[name] = v
}

// Invoke executes o's native behavior with the given receiver and arguments.
func (o *JSObject) Invoke(receiver Value, args []Value) (Value, error) {
	if o.invoker == nil {
		return nil, failf(FailType, 0, "%s is not a function", Display(o))
	}
	return o.invoker(o, receiver, args)
}

// Fields returns the object's own field names in insertion order.
func (o *JSObject) Fields() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

func (o *JSObject) String() string {
	return o.str(0)
}

// str renders at most three levels of nesting so that self referential
// objects terminate.
func (o *JSObject) str(depth int) string {
	if o.invoker != nil {
		return "<function " + o.name + ">"
	}
	if depth >= 3 {
		return "{ ... }"
	}
	if len(o.keys) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	buf.WriteString("{ ")
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(k)
		buf.WriteString(": ")
		if obj, ok := o.fields[k].(*JSObject); ok {
			buf.WriteString(obj.str(depth + 1))
		} else {
			buf.WriteString(Display(o.fields[k]))
		}
	}
	buf.WriteString(" }")
	return buf.String()
}
