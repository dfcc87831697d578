package sjs

import (
	"fmt"
	"strconv"
)

// Value is a smalljs runtime value: an int, a string, a *JSObject or
// Undefined.  No other kinds exist at this layer -- there is no separate
// boolean type, comparisons evaluate to the integers 1 and 0.
type Value interface{}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the singleton value of unbound variables, absent fields and
// expressions that produce no result.
var Undefined Value = undefined{}

// Display returns the text print writes for v.  Strings display raw, without
// quotes.
func Display(v Value) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// TypeName returns the name of v's runtime type, for diagnostics.
func TypeName(v Value) string {
	switch v := v.(type) {
	case int:
		return "int"
	case string:
		return "string"
	case undefined:
		return "undefined"
	case *JSObject:
		if v.Callable() {
			return "function"
		}
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
