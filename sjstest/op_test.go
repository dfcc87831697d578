package sjstest

import "testing"

func TestOperators(t *testing.T) {
	tests := TestSuite{
		{
			Name:   "arithmetic",
			Source: `print(1 + 2, 6 - 1, 2 * 3, 7 / 2, 7 % 2);`,
			Output: "3 5 6 3 1\n",
		},
		{
			Name:   "precedence",
			Source: `print(1 + 2 * 3, (1 + 2) * 3);`,
			Output: "7 9\n",
		},
		{
			Name:   "ordering",
			Source: `print(1 < 2, 2 < 1);`,
			Output: "1 0\n",
		},
		{
			Name:   "ordering is left associative",
			Source: `print(1 < 2 == 1);`,
			Output: "1\n",
		},
		{
			Name:   "string ordering",
			Source: `print("a" < "b", "b" <= "a");`,
			Output: "1 0\n",
		},
		{
			Name:   "equality over mixed types",
			Source: `print(1 == "1", 1 != "1", "a" == "a");`,
			Output: "0 1 1\n",
		},
		{
			Name:   "equality of objects is identity",
			Source: `let a = new { x: 1 };
let b = new { x: 1 };
print(a == a, a == b);`,
			Output: "1 0\n",
		},
		{
			Name:   "division by zero",
			Source: `print(1 / 0);`,
			Err:    "division by zero",
		},
		{
			Name:   "modulo by zero",
			Source: `print(1 % 0);`,
			Err:    "division by zero",
		},
		{
			Name:   "arithmetic requires integers",
			Source: `print(1 + "a");`,
			Err:    "+ expects integer operands (got int and string)",
		},
		{
			Name:   "ordering requires comparable operands",
			Source: `print(1 < "a");`,
			Err:    "< expects two comparable operands (got int and string)",
		},
	}
	RunTestSuite(t, tests)
}

func TestTruthiness(t *testing.T) {
	tests := TestSuite{
		{
			Name:   "zero is false",
			Source: `if (0) { print("t"); } else { print("f"); }`,
			Output: "f\n",
		},
		{
			Name:   "nonzero is true",
			Source: `if (1) { print("t"); } else { print("f"); }`,
			Output: "t\n",
		},
		{
			Name:   "negative is true",
			Source: `if (-5) { print("t"); } else { print("f"); }`,
			Output: "t\n",
		},
		{
			Name:   "string zero is true",
			Source: `if ("0") { print("t"); } else { print("f"); }`,
			Output: "t\n",
		},
		{
			Name:   "undefined is true",
			Source: `if (nosuchvariable) { print("t"); } else { print("f"); }`,
			Output: "t\n",
		},
		{
			Name:   "missing else does nothing",
			Source: `if (0) { print("t"); }
print("after");`,
			Output: "after\n",
		},
	}
	RunTestSuite(t, tests)
}
