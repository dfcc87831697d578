package sjstest

import "testing"

func TestErrors(t *testing.T) {
	tests := TestSuite{
		{
			Name: "assignment to an existing field",
			Source: `let o = new { a: 10 };
o.a = 20;
print(o.a);`,
			Output: "20\n",
		},
		{
			Name: "assignment to an undeclared field",
			Source: `let o = new { a: 10 };
o.b = 5;
print(o.a);`,
			Err: "at line 2, field error: undeclared field b",
		},
		{
			Name: "arity mismatch",
			Source: `let f = fun(a, b) { return a; };
print(f(1));`,
			Err: "arity error: lambda takes 2 arguments (got 1)",
		},
		{
			Name: "named function arity mismatch",
			Source: `let f = fun add(a, b) { return a + b; };
print(f(1, 2, 3));`,
			Err: "arity error: add takes 2 arguments (got 3)",
		},
		{
			Name: "zero arity",
			Source: `let f = fun() { return 9; };
print(f());`,
			Output: "9\n",
		},
		{
			Name: "calling a non-function",
			Source: `let x = 3;
x(1);`,
			Err: "at line 2, type error: 3 is not a function",
		},
		{
			Name: "field access on a non-object",
			Source: `let x = 1;
print(x.a);`,
			Err: "at line 2, type error: 1 is not an object",
		},
		{
			Name: "method call on a non-callable field",
			Source: `let o = new { a: 1 };
o.a(1);`,
			Err: "at line 2, type error: a is not a method of { a: 1 }",
		},
		{
			Name:   "return outside a function",
			Source: `return 1;`,
			Err:    "at line 1, error: return outside function",
		},
		{
			Name: "output before a failure remains",
			Source: `print(1);
let o = new { };
o.a = 1;`,
			Output: "1\n",
			Err:    "undeclared field a",
		},
		{
			Name: "failure stops evaluation",
			Source: `let f = fun(a, b) { return a; };
f(1);
print("unreachable");`,
			Err: "arity error",
		},
	}
	RunTestSuite(t, tests)
}
