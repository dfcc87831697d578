package sjs

import "fmt"

// FailureKind classifies fatal runtime failures.
type FailureKind uint

// Possible FailureKind values
const (
	FailError FailureKind = iota
	FailType
	FailRedeclare
	FailArity
	FailField
)

var failureKindStrings = []string{
	FailError:     "error",
	FailType:      "type error",
	FailRedeclare: "redeclaration error",
	FailArity:     "arity error",
	FailField:     "field error",
}

func (k FailureKind) String() string {
	if int(k) >= len(failureKindStrings) {
		return failureKindStrings[FailError]
	}
	return failureKindStrings[k]
}

// Failure is a fatal interpreter error.  Evaluation stops at the first
// Failure; there is no recovery.  Line is the source line of the offending
// construct, or 0 when the failure arose inside a builtin with no source
// position of its own.
type Failure struct {
	Kind FailureKind
	Line int
	Msg  string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Line > 0 {
		return fmt.Sprintf("at line %d, %s: %s", f.Line, f.Kind, f.Msg)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Msg)
}

func failf(kind FailureKind, line int, format string, v ...interface{}) *Failure {
	return &Failure{
		Kind: kind,
		Line: line,
		Msg:  fmt.Sprintf(format, v...),
	}
}
