package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Neixam/smalljs/parser"
	"github.com/Neixam/smalljs/sjs"
	"github.com/chzyer/readline"
)

// Run runs a simple repl against a single global environment.  Statements
// spanning multiple lines are buffered until their blocks close.
func Run(prompt string) {
	env := sjs.NewGlobalEnv(os.Stdout)

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			line = nil
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		if parser.Incomplete(line) {
			buf = line
			rl.SetPrompt(contPrompt)
			continue
		}
		script, err := parser.Parse(line)
		if err != nil {
			errln(err)
			continue
		}
		evalStmts(env, script)
	}
	if err != io.EOF {
		errln(err)
		return
	}
	errln("done")
}

// evalStmts evaluates the script's statements one at a time so that results
// preceding a failure are still printed.
func evalStmts(env *sjs.JSObject, script sjs.Script) {
	for _, stmt := range script.Body.Instrs {
		v, err := sjs.Eval(stmt, env)
		if err != nil {
			errln(err)
			return
		}
		if v != sjs.Undefined {
			fmt.Println(sjs.Display(v))
		}
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
