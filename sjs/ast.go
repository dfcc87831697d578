package sjs

// Expr is a node of a parsed smalljs program.  The set of implementations in
// this package is closed; the evaluator dispatches exhaustively over it.
// Every node records the source line of the construct it was parsed from,
// which is used for diagnostics only.
type Expr interface {
	// SourceLine returns the line number the node was parsed from.
	SourceLine() int

	expr()
}

// Script is a complete program, a sequence of top level statements.
type Script struct {
	Body Block
}

// NewScript returns a Script executing instrs in order.
func NewScript(instrs ...Expr) Script {
	return Script{Body: Block{Instrs: instrs, Line: 1}}
}

// Block is an ordered sequence of expressions evaluated for their side
// effects.  A block's own value is always Undefined.
type Block struct {
	Instrs []Expr
	Line   int
}

// Literal is a constant value appearing in the source.
type Literal struct {
	Value Value
	Line  int
}

// FunCall calls the value of Qualifier as a plain function, with no receiver.
type FunCall struct {
	Qualifier Expr
	Args      []Expr
	Line      int
}

// LocalVarAccess reads a binding visible from the current environment chain.
type LocalVarAccess struct {
	Name string
	Line int
}

// LocalVarAssignment binds Name in the current frame.  When Declaration is
// set the name must not already resolve anywhere in the chain.
type LocalVarAssignment struct {
	Name        string
	Expr        Expr
	Declaration bool
	Line        int
}

// Fun is a function literal.  Name may be empty for an anonymous function.
type Fun struct {
	Name   string
	Params []string
	Body   Block
	Line   int
}

// Return exits the nearest enclosing function call with the value of Expr.
type Return struct {
	Expr Expr
	Line int
}

// If evaluates exactly one of its two blocks.  The condition is false only
// when it is the integer 0.
type If struct {
	Condition  Expr
	TrueBlock  Block
	FalseBlock Block
	Line       int
}

// FieldInit is one field initializer of an object literal.
type FieldInit struct {
	Name string
	Expr Expr
}

// New constructs a fresh object.  Initializers run in declaration order in
// the environment enclosing the literal, not in the new object.
type New struct {
	Inits []FieldInit
	Line  int
}

// FieldAccess reads a property of an object.
type FieldAccess struct {
	Receiver Expr
	Name     string
	Line     int
}

// FieldAssignment mutates an existing property of an object.  Assigning a
// field that was never declared is an error.
type FieldAssignment struct {
	Receiver Expr
	Name     string
	Expr     Expr
	Line     int
}

// MethodCall calls a property of an object as a function with the object
// bound as the receiver.
type MethodCall struct {
	Receiver Expr
	Name     string
	Args     []Expr
	Line     int
}

func (e Block) SourceLine() int              { return e.Line }
func (e Literal) SourceLine() int            { return e.Line }
func (e FunCall) SourceLine() int            { return e.Line }
func (e LocalVarAccess) SourceLine() int     { return e.Line }
func (e LocalVarAssignment) SourceLine() int { return e.Line }
func (e Fun) SourceLine() int                { return e.Line }
func (e Return) SourceLine() int             { return e.Line }
func (e If) SourceLine() int                 { return e.Line }
func (e New) SourceLine() int                { return e.Line }
func (e FieldAccess) SourceLine() int        { return e.Line }
func (e FieldAssignment) SourceLine() int    { return e.Line }
func (e MethodCall) SourceLine() int         { return e.Line }

func (Block) expr()              {}
func (Literal) expr()            {}
func (FunCall) expr()            {}
func (LocalVarAccess) expr()     {}
func (LocalVarAssignment) expr() {}
func (Fun) expr()                {}
func (Return) expr()             {}
func (If) expr()                 {}
func (New) expr()                {}
func (FieldAccess) expr()        {}
func (FieldAssignment) expr()    {}
func (MethodCall) expr()         {}
