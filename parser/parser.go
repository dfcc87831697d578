/*
Package parser parses smalljs source text.

	script  := stmt*
	stmt    := 'let' ident '=' expr ';'
	         | 'return' expr ';'
	         | 'if' '(' expr ')' block ('else' block)?
	         | expr ';'
	block   := '{' stmt* '}'
	expr    := target '=' expr | cmp
	cmp     := add (('=='|'!='|'<='|'>='|'<'|'>') add)*
	add     := mul (('+'|'-') mul)*
	mul     := postfix (('*'|'/'|'%') postfix)*
	postfix := primary ('.' ident '(' args ')' | '.' ident | '(' args ')')*
	primary := int | string | 'fun' ident? '(' params ')' block
	         | 'new' '{' (ident ':' expr),* '}' | '(' expr ')' | ident

Infix operators lower to plain calls of the global operator bindings, so
"a + b" parses to the same tree as a call of the global "+" would.
*/
package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Neixam/smalljs/sjs"
	parsec "github.com/prataprc/goparsec"
)

// Parse parses a complete smalljs script.
func Parse(text []byte) (sjs.Script, error) {
	p := &program{text: text}
	p.indexLines()
	stmt := p.parser()

	s := parsec.NewScanner(text)
	var instrs []sjs.Expr
	var node parsec.ParsecNode
	node, s = stmt(s)
	for node != nil {
		if p.err != nil {
			return sjs.Script{}, p.err
		}
		instrs = append(instrs, node.(sjs.Expr))
		node, s = stmt(s)
	}
	if p.err != nil {
		return sjs.Script{}, p.err
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		return sjs.Script{}, fmt.Errorf("syntax error at line %d", p.lineAt(s.GetCursor()))
	}
	return sjs.Script{Body: sjs.Block{Instrs: instrs, Line: 1}}, nil
}

// Incomplete reports whether text ends inside an unclosed block, argument
// list or string literal.  The repl uses it to keep buffering input instead
// of reporting a syntax error.
func Incomplete(text []byte) bool {
	depth := 0
	instr := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if instr {
			switch c {
			case '\\':
				i++
			case '"':
				instr = false
			}
			continue
		}
		switch c {
		case '"':
			instr = true
		case '(', '{':
			depth++
		case ')', '}':
			depth--
		}
	}
	return depth > 0 || instr
}

// program carries per-parse state: the source text for line resolution and
// the first error reported by a combinator callback.
type program struct {
	text  []byte
	lines []int
	err   error
}

func (p *program) indexLines() {
	p.lines = append(p.lines, 0)
	for i, c := range p.text {
		if c == '\n' {
			p.lines = append(p.lines, i+1)
		}
	}
}

func (p *program) lineAt(pos int) int {
	return sort.Search(len(p.lines), func(i int) bool { return p.lines[i] > pos })
}

func (p *program) setErr(err error) {
	if p.err == nil {
		p.err = err
	}
}

// parser builds the statement parser.  Combinators close over p so that
// callbacks can resolve token positions to line numbers.
func (p *program) parser() parsec.Parser {
	var expr, stmt, block parsec.Parser

	intLit := parsec.Token(`-?[0-9]+`, "INT")
	strLit := parsec.Token(`"(?:[^"\\]|\\.)*"`, "STRING")
	ident := parsec.Token(`[A-Za-z_][A-Za-z0-9_]*`, "IDENT")

	kwLet := parsec.Token(`let\b`, "LET")
	kwFun := parsec.Token(`fun\b`, "FUN")
	kwReturn := parsec.Token(`return\b`, "RETURN")
	kwIf := parsec.Token(`if\b`, "IF")
	kwElse := parsec.Token(`else\b`, "ELSE")
	kwNew := parsec.Token(`new\b`, "NEW")

	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	openB := parsec.Atom("{", "OPENB")
	closeB := parsec.Atom("}", "CLOSEB")
	semi := parsec.Atom(";", "SEMI")
	comma := parsec.Atom(",", "COMMA")
	colon := parsec.Atom(":", "COLON")
	dot := parsec.Atom(".", "DOT")
	assign := parsec.Atom("=", "ASSIGN")

	cmpOp := parsec.Token(`(?:==|!=|<=|>=|<|>)`, "CMPOP")
	addOp := parsec.Token(`[+-]`, "ADDOP")
	mulOp := parsec.Token(`[*/%]`, "MULOP")

	args := parsec.Kleene(nil, &expr, comma)
	params := parsec.Kleene(nil, ident, comma)

	// Method suffix must be tried before field suffix so that "o.m(x)"
	// binds the receiver instead of calling a detached field value.
	methodSuf := parsec.And(p.cbMethodSuffix, dot, ident, openP, args, closeP)
	fieldSuf := parsec.And(p.cbFieldSuffix, dot, ident)
	callSuf := parsec.And(p.cbCallSuffix, openP, args, closeP)
	suffix := parsec.OrdChoice(cbFirst, methodSuf, fieldSuf, callSuf)

	funLit := parsec.And(p.cbFun, kwFun, parsec.Maybe(nil, ident), openP, params, closeP, &block)
	initPair := parsec.And(nil, ident, colon, &expr)
	newLit := parsec.And(p.cbNew, kwNew, openB, parsec.Kleene(nil, initPair, comma), closeB)
	parenExpr := parsec.And(cbSecond, openP, &expr, closeP)
	term := parsec.OrdChoice(p.cbTerm, intLit, strLit, ident)

	primary := parsec.OrdChoice(cbFirst, funLit, newLit, parenExpr, term)
	postfix := parsec.And(p.cbPostfix, primary, parsec.Kleene(nil, suffix))
	mul := parsec.And(p.cbBinChain, postfix, parsec.Kleene(nil, parsec.And(nil, mulOp, postfix)))
	add := parsec.And(p.cbBinChain, mul, parsec.Kleene(nil, parsec.And(nil, addOp, mul)))
	cmp := parsec.And(p.cbBinChain, add, parsec.Kleene(nil, parsec.And(nil, cmpOp, add)))
	assignExpr := parsec.And(p.cbAssign, postfix, assign, &expr)
	expr = parsec.OrdChoice(cbFirst, assignExpr, cmp)

	block = parsec.And(p.cbBlock, openB, parsec.Kleene(nil, &stmt), closeB)

	letStmt := parsec.And(p.cbLet, kwLet, ident, assign, &expr, semi)
	returnStmt := parsec.And(p.cbReturn, kwReturn, &expr, semi)
	elseClause := parsec.And(nil, kwElse, &block)
	ifStmt := parsec.And(p.cbIf, kwIf, openP, &expr, closeP, &block, parsec.Maybe(nil, elseClause))
	exprStmt := parsec.And(cbFirst, &expr, semi)
	stmt = parsec.OrdChoice(cbFirst, letStmt, returnStmt, ifStmt, exprStmt)

	return stmt
}

// Suffix nodes produced while parsing a postfix chain.
type callSuffix struct {
	args []sjs.Expr
	line int
}

type fieldSuffix struct {
	name string
	line int
}

type methodSuffix struct {
	name string
	args []sjs.Expr
	line int
}

func (p *program) cbTerm(nodes []parsec.ParsecNode) parsec.ParsecNode {
	t := nodes[0].(*parsec.Terminal)
	line := p.lineAt(t.Position)
	switch t.Name {
	case "INT":
		n, err := strconv.Atoi(t.Value)
		if err != nil {
			p.setErr(fmt.Errorf("bad number at line %d: %v", line, err))
		}
		return sjs.Literal{Value: n, Line: line}
	case "STRING":
		return sjs.Literal{Value: unquoteString(t.Value), Line: line}
	}
	return sjs.LocalVarAccess{Name: t.Value, Line: line}
}

func (p *program) cbFun(nodes []parsec.ParsecNode) parsec.ParsecNode {
	t := nodes[0].(*parsec.Terminal)
	name := ""
	if list, ok := nodes[1].([]parsec.ParsecNode); ok && len(list) == 1 {
		if nt, ok := list[0].(*parsec.Terminal); ok {
			name = nt.Value
		}
	}
	return sjs.Fun{
		Name:   name,
		Params: identNames(nodes[3]),
		Body:   nodes[5].(sjs.Block),
		Line:   p.lineAt(t.Position),
	}
}

func (p *program) cbNew(nodes []parsec.ParsecNode) parsec.ParsecNode {
	t := nodes[0].(*parsec.Terminal)
	var inits []sjs.FieldInit
	if list, ok := nodes[2].([]parsec.ParsecNode); ok {
		for _, n := range list {
			pair := n.([]parsec.ParsecNode)
			inits = append(inits, sjs.FieldInit{
				Name: pair[0].(*parsec.Terminal).Value,
				Expr: pair[2].(sjs.Expr),
			})
		}
	}
	return sjs.New{Inits: inits, Line: p.lineAt(t.Position)}
}

func (p *program) cbBlock(nodes []parsec.ParsecNode) parsec.ParsecNode {
	t := nodes[0].(*parsec.Terminal)
	return sjs.Block{Instrs: exprList(nodes[1]), Line: p.lineAt(t.Position)}
}

func (p *program) cbPostfix(nodes []parsec.ParsecNode) parsec.ParsecNode {
	e := nodes[0].(sjs.Expr)
	sufs, _ := nodes[1].([]parsec.ParsecNode)
	for _, n := range sufs {
		switch suf := n.(type) {
		case *methodSuffix:
			e = sjs.MethodCall{Receiver: e, Name: suf.name, Args: suf.args, Line: suf.line}
		case *fieldSuffix:
			e = sjs.FieldAccess{Receiver: e, Name: suf.name, Line: suf.line}
		case *callSuffix:
			e = sjs.FunCall{Qualifier: e, Args: suf.args, Line: suf.line}
		}
	}
	return e
}

func (p *program) cbMethodSuffix(nodes []parsec.ParsecNode) parsec.ParsecNode {
	t := nodes[1].(*parsec.Terminal)
	return &methodSuffix{name: t.Value, args: exprList(nodes[3]), line: p.lineAt(t.Position)}
}

func (p *program) cbFieldSuffix(nodes []parsec.ParsecNode) parsec.ParsecNode {
	t := nodes[1].(*parsec.Terminal)
	return &fieldSuffix{name: t.Value, line: p.lineAt(t.Position)}
}

func (p *program) cbCallSuffix(nodes []parsec.ParsecNode) parsec.ParsecNode {
	t := nodes[0].(*parsec.Terminal)
	return &callSuffix{args: exprList(nodes[1]), line: p.lineAt(t.Position)}
}

// cbBinChain folds "operand (op operand)*" into left associative calls of
// the operator's global binding.
func (p *program) cbBinChain(nodes []parsec.ParsecNode) parsec.ParsecNode {
	lhs := nodes[0].(sjs.Expr)
	rest, _ := nodes[1].([]parsec.ParsecNode)
	for _, n := range rest {
		pair := n.([]parsec.ParsecNode)
		t := pair[0].(*parsec.Terminal)
		line := p.lineAt(t.Position)
		lhs = sjs.FunCall{
			Qualifier: sjs.LocalVarAccess{Name: t.Value, Line: line},
			Args:      []sjs.Expr{lhs, pair[1].(sjs.Expr)},
			Line:      line,
		}
	}
	return lhs
}

func (p *program) cbAssign(nodes []parsec.ParsecNode) parsec.ParsecNode {
	rhs := nodes[2].(sjs.Expr)
	switch target := nodes[0].(sjs.Expr).(type) {
	case sjs.LocalVarAccess:
		return sjs.LocalVarAssignment{Name: target.Name, Expr: rhs, Line: target.Line}
	case sjs.FieldAccess:
		return sjs.FieldAssignment{Receiver: target.Receiver, Name: target.Name, Expr: rhs, Line: target.Line}
	default:
		p.setErr(fmt.Errorf("invalid assignment target at line %d", target.SourceLine()))
		return rhs
	}
}

func (p *program) cbLet(nodes []parsec.ParsecNode) parsec.ParsecNode {
	t := nodes[0].(*parsec.Terminal)
	return sjs.LocalVarAssignment{
		Name:        nodes[1].(*parsec.Terminal).Value,
		Expr:        nodes[3].(sjs.Expr),
		Declaration: true,
		Line:        p.lineAt(t.Position),
	}
}

func (p *program) cbReturn(nodes []parsec.ParsecNode) parsec.ParsecNode {
	t := nodes[0].(*parsec.Terminal)
	return sjs.Return{Expr: nodes[1].(sjs.Expr), Line: p.lineAt(t.Position)}
}

func (p *program) cbIf(nodes []parsec.ParsecNode) parsec.ParsecNode {
	t := nodes[0].(*parsec.Terminal)
	line := p.lineAt(t.Position)
	trueBlock := nodes[4].(sjs.Block)
	falseBlock := sjs.Block{Line: line}
	if list, ok := nodes[5].([]parsec.ParsecNode); ok && len(list) == 1 {
		if pair, ok := list[0].([]parsec.ParsecNode); ok {
			falseBlock = pair[1].(sjs.Block)
		}
	}
	return sjs.If{
		Condition:  nodes[2].(sjs.Expr),
		TrueBlock:  trueBlock,
		FalseBlock: falseBlock,
		Line:       line,
	}
}

func cbFirst(nodes []parsec.ParsecNode) parsec.ParsecNode { return nodes[0] }

func cbSecond(nodes []parsec.ParsecNode) parsec.ParsecNode { return nodes[1] }

func exprList(node parsec.ParsecNode) []sjs.Expr {
	list, _ := node.([]parsec.ParsecNode)
	var exprs []sjs.Expr
	for _, n := range list {
		exprs = append(exprs, n.(sjs.Expr))
	}
	return exprs
}

func identNames(node parsec.ParsecNode) []string {
	list, _ := node.([]parsec.ParsecNode)
	var names []string
	for _, n := range list {
		names = append(names, n.(*parsec.Terminal).Value)
	}
	return names
}

func unquoteString(s string) string {
	s = s[1 : len(s)-1]
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				buf.WriteByte('\n')
			case 't':
				buf.WriteByte('\t')
			default:
				buf.WriteByte(s[i])
			}
			continue
		}
		buf.WriteByte(c)
	}
	return buf.String()
}
