package sjstest

import "testing"

func TestScope(t *testing.T) {
	tests := TestSuite{
		{
			Name: "rebinding without declaration",
			Source: `let x = 1;
x = 2;
print(x);`,
			Output: "2\n",
		},
		{
			Name: "assignment in a call frame shadows",
			// A non-declaration assignment registers in the current frame
			// only, so the global binding is untouched after the call.
			Source: `let x = 1;
let f = fun() { x = 2; return x; };
print(f(), x);`,
			Output: "2 1\n",
		},
		{
			Name: "sibling frames do not conflict",
			Source: `let f = fun(n) { let y = n; return y; };
print(f(1), f(2));`,
			Output: "1 2\n",
		},
		{
			Name: "parameters shadow outer bindings",
			Source: `let x = 1;
let f = fun(x) { return x; };
print(f(9), x);`,
			Output: "9 1\n",
		},
		{
			Name: "redeclaration in the same frame",
			Source: `let x = 1;
let x = 2;`,
			Err: "at line 2, redeclaration error: x is already declared",
		},
		{
			Name: "declaration of a visible binding",
			// The declaration check walks the whole chain, so a nested let
			// of a name bound in an enclosing scope is rejected.
			Source: `let x = 1;
let f = fun() { let x = 2; return x; };
f();`,
			Err: "redeclaration error: x is already declared",
		},
		{
			Name: "closures resolve against the defining scope",
			Source: `let mk = fun() { let n = 10; return fun() { return n; }; };
let f = mk();
let n = 99;
print(f());`,
			Err:    "",
			Output: "10\n",
		},
	}
	RunTestSuite(t, tests)
}
