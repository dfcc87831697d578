// Package sjstest provides a test runner for smalljs programs.
package sjstest

import (
	"bytes"
	"testing"

	"github.com/Neixam/smalljs/parser"
	"github.com/Neixam/smalljs/sjs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProgram is a complete smalljs program together with the output it is
// expected to print.  When Err is non-empty the program must fail with an
// error containing Err; Output then holds whatever was printed before the
// failure.
type TestProgram struct {
	Name   string
	Source string
	Output string
	Err    string
}

// TestSuite is a set of programs, each run against a fresh global
// environment.
type TestSuite []TestProgram

// RunTestSuite executes each program in the suite as a subtest.
func RunTestSuite(t *testing.T, s TestSuite) {
	for _, tp := range s {
		tp := tp
		t.Run(tp.Name, func(t *testing.T) {
			script, err := parser.Parse([]byte(tp.Source))
			require.NoError(t, err, "parse error")

			var buf bytes.Buffer
			err = sjs.Interpret(script, &buf)
			if tp.Err == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tp.Err)
			}
			assert.Equal(t, tp.Output, buf.String())
		})
	}
}
