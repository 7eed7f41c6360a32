package mython

// parser is a recursive-descent parser driven off a TokenCursor. Syntax
// errors are raised by panicking with a *LanguageError and recovered once,
// at the Parse entry point, rather than threaded as a return value through
// every one of the descent methods.
type parser struct {
	c       *TokenCursor
	classes map[string]*ClassDef
}

// Parse lexes and parses src into the top-level Compound statement that
// Script.Run executes.
func Parse(src []byte) (prog *Compound, err error) {
	cursor, lexErr := NewTokenCursor(src)
	if lexErr != nil {
		if le, ok := lexErr.(*LexError); ok {
			return nil, NewLexicalError(Position{Line: le.Line}, "%s", le.Msg)
		}
		return nil, lexErr
	}

	p := &parser{c: cursor, classes: make(map[string]*ClassDef)}
	defer func() {
		if r := recover(); r != nil {
			if le, ok := r.(*LanguageError); ok {
				err = le
				return
			}
			panic(r)
		}
	}()
	prog = p.parseProgram()
	return prog, nil
}

func (p *parser) cur() Token     { return p.c.Current() }
func (p *parser) advance() Token { return p.c.Advance() }

func (p *parser) atChar(ch byte) bool {
	tok := p.cur()
	return tok.Type == TokChar && tok.Char == ch
}

func (p *parser) expectChar(ch byte) {
	if !p.atChar(ch) {
		p.fail(p.cur().Pos, "expected '%c', got %s", ch, p.cur())
	}
	p.advance()
}

func (p *parser) expect(tt TokenType) {
	if p.cur().Type != tt {
		p.fail(p.cur().Pos, "expected %s, got %s", tt, p.cur())
	}
	p.advance()
}

func (p *parser) expectIdentifier() string {
	tok := p.cur()
	if tok.Type != TokIdentifier {
		p.fail(tok.Pos, "expected identifier, got %s", tok)
	}
	p.advance()
	return tok.Text
}

func (p *parser) fail(pos Position, format string, args ...any) {
	panic(NewSyntaxError(pos, format, args...))
}

func (p *parser) parseProgram() *Compound {
	pos := p.cur().Pos
	for p.cur().Type == TokNewline {
		p.advance()
	}
	var stmts []Statement
	for p.cur().Type != TokEof {
		stmts = append(stmts, p.parseStatement())
		for p.cur().Type == TokNewline {
			p.advance()
		}
	}
	return &Compound{Stmts: stmts, Pos: pos}
}

// parseBlock consumes the Newline/Indent that follow a ':' header, the
// nested statement list, and the closing Dedent.
func (p *parser) parseBlock() *Compound {
	pos := p.cur().Pos
	p.expect(TokNewline)
	p.expect(TokIndent)
	var stmts []Statement
	for p.cur().Type != TokDedent && p.cur().Type != TokEof {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(TokDedent)
	return &Compound{Stmts: stmts, Pos: pos}
}

func (p *parser) parseStatement() Statement {
	switch p.cur().Type {
	case TokClass:
		return p.parseClassDef()
	case TokIf:
		return p.parseIfElse()
	case TokReturn:
		return p.parseReturn()
	case TokPrint:
		return p.parsePrint()
	default:
		return p.parseSimpleStatement()
	}
}

// parseClassDef builds the class's flattened method table immediately, so
// that later NewInstanceNode evaluations never redo the parent-method
// overlay work. A base class named in parentheses must already have been
// defined earlier in the source.
func (p *parser) parseClassDef() Statement {
	pos := p.cur().Pos
	p.advance() // 'class'
	name := p.expectIdentifier()

	var parent *ClassDef
	if p.atChar('(') {
		p.advance()
		parentName := p.expectIdentifier()
		var ok bool
		parent, ok = p.classes[parentName]
		if !ok {
			p.fail(pos, "unknown base class '%s'", parentName)
		}
		p.expectChar(')')
	}
	p.expectChar(':')
	p.expect(TokNewline)
	p.expect(TokIndent)

	var methods []*Method
	for p.cur().Type != TokDedent && p.cur().Type != TokEof {
		methods = append(methods, p.parseMethodDef())
	}
	p.expect(TokDedent)

	cd := NewClassDef(name, parent, methods)
	p.classes[name] = cd
	return &ClassDefinition{Class: cd, Pos: pos}
}

func (p *parser) parseMethodDef() *Method {
	pos := p.cur().Pos
	p.expect(TokDef)
	name := p.expectIdentifier()
	p.expectChar('(')
	var params []string
	if !p.atChar(')') {
		params = append(params, p.expectIdentifier())
		for p.atChar(',') {
			p.advance()
			params = append(params, p.expectIdentifier())
		}
	}
	p.expectChar(')')
	p.expectChar(':')
	body := p.parseBlock()
	return &Method{Name: name, Params: params, Body: &MethodBody{Body: body, Pos: pos}}
}

func (p *parser) parseIfElse() Statement {
	pos := p.cur().Pos
	p.advance() // 'if'
	cond := p.parseExpression()
	p.expectChar(':')
	then := p.parseBlock()
	var elseStmt Statement
	if p.cur().Type == TokElse {
		p.advance()
		p.expectChar(':')
		elseStmt = p.parseBlock()
	}
	return &IfElse{Cond: cond, Then: then, Else: elseStmt, Pos: pos}
}

func (p *parser) parseReturn() Statement {
	pos := p.cur().Pos
	p.advance() // 'return'
	var expr Statement
	if p.cur().Type != TokNewline {
		expr = p.parseExpression()
	}
	p.expect(TokNewline)
	return &ReturnNode{Expr: expr, Pos: pos}
}

func (p *parser) parsePrint() Statement {
	pos := p.cur().Pos
	p.advance() // 'print'
	var args []Statement
	if p.cur().Type != TokNewline {
		args = append(args, p.parseExpression())
		for p.atChar(',') {
			p.advance()
			args = append(args, p.parseExpression())
		}
	}
	p.expect(TokNewline)
	return &Print{Args: args, Pos: pos}
}

// parseSimpleStatement covers both a bare expression statement (typically a
// method call kept for its side effect) and an assignment, distinguishing
// the two only after the left-hand side has already been parsed.
func (p *parser) parseSimpleStatement() Statement {
	pos := p.cur().Pos
	expr := p.parseExpression()
	if p.atChar('=') {
		p.advance()
		rhs := p.parseExpression()
		p.expect(TokNewline)
		target, ok := expr.(*VariableValue)
		if !ok {
			p.fail(pos, "invalid assignment target")
		}
		if len(target.Names) == 1 {
			return &Assignment{Name: target.Names[0], RHS: rhs, Pos: pos}
		}
		object := &VariableValue{Names: target.Names[:len(target.Names)-1], Pos: pos}
		field := target.Names[len(target.Names)-1]
		return &FieldAssignment{Object: object, Field: field, RHS: rhs, Pos: pos}
	}
	p.expect(TokNewline)
	return expr
}

func (p *parser) parseExpression() Statement { return p.parseOr() }

func (p *parser) parseOr() Statement {
	left := p.parseAnd()
	for p.cur().Type == TokOr {
		pos := p.cur().Pos
		p.advance()
		right := p.parseAnd()
		left = &OrNode{Left: left, Right: right, Pos: pos}
	}
	return left
}

func (p *parser) parseAnd() Statement {
	left := p.parseNot()
	for p.cur().Type == TokAnd {
		pos := p.cur().Pos
		p.advance()
		right := p.parseNot()
		left = &AndNode{Left: left, Right: right, Pos: pos}
	}
	return left
}

func (p *parser) parseNot() Statement {
	if p.cur().Type == TokNot {
		pos := p.cur().Pos
		p.advance()
		return &NotNode{Operand: p.parseNot(), Pos: pos}
	}
	return p.parseComparison()
}

func (p *parser) comparisonOp() (string, bool) {
	tok := p.cur()
	switch tok.Type {
	case TokEq:
		return "==", true
	case TokNotEq:
		return "!=", true
	case TokLessOrEq:
		return "<=", true
	case TokGreaterOrEq:
		return ">=", true
	case TokChar:
		if tok.Char == '<' {
			return "<", true
		}
		if tok.Char == '>' {
			return ">", true
		}
	}
	return "", false
}

func (p *parser) parseComparison() Statement {
	left := p.parseAddSub()
	if cmp, ok := p.comparisonOp(); ok {
		pos := p.cur().Pos
		p.advance()
		right := p.parseAddSub()
		return &ComparisonNode{Cmp: cmp, Left: left, Right: right, Pos: pos}
	}
	return left
}

func (p *parser) parseAddSub() Statement {
	left := p.parseMulDiv()
	for p.atChar('+') || p.atChar('-') {
		op := p.cur().Char
		pos := p.cur().Pos
		p.advance()
		right := p.parseMulDiv()
		if op == '+' {
			left = &AddNode{Left: left, Right: right, Pos: pos}
		} else {
			left = &SubNode{Left: left, Right: right, Pos: pos}
		}
	}
	return left
}

func (p *parser) parseMulDiv() Statement {
	left := p.parseUnary()
	for p.atChar('*') || p.atChar('/') {
		op := p.cur().Char
		pos := p.cur().Pos
		p.advance()
		right := p.parseUnary()
		if op == '*' {
			left = &MultNode{Left: left, Right: right, Pos: pos}
		} else {
			left = &DivNode{Left: left, Right: right, Pos: pos}
		}
	}
	return left
}

func (p *parser) parseUnary() Statement {
	if p.atChar('-') {
		pos := p.cur().Pos
		p.advance()
		operand := p.parseUnary()
		return &SubNode{Left: &Constant{Val: NewNumber(0), Pos: pos}, Right: operand, Pos: pos}
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() Statement {
	tok := p.cur()
	pos := tok.Pos
	switch tok.Type {
	case TokNumber:
		p.advance()
		return &Constant{Val: NewNumber(tok.Number), Pos: pos}
	case TokString:
		p.advance()
		return &Constant{Val: NewString(tok.Text), Pos: pos}
	case TokTrue:
		p.advance()
		return &Constant{Val: NewBool(true), Pos: pos}
	case TokFalse:
		p.advance()
		return &Constant{Val: NewBool(false), Pos: pos}
	case TokNone:
		p.advance()
		return &NoneNode{Pos: pos}
	case TokIdentifier:
		return p.parseIdentifierChain()
	case TokChar:
		if tok.Char == '(' {
			p.advance()
			expr := p.parseExpression()
			p.expectChar(')')
			return expr
		}
	}
	p.fail(pos, "unexpected token %s", tok)
	return nil
}

// parseIdentifierChain resolves the three shapes an identifier can start:
// a bare or dotted variable reference, a class instantiation (or the str()
// builtin as a special one-argument case), and a single-level method call
// terminating a dotted chain.
func (p *parser) parseIdentifierChain() Statement {
	pos := p.cur().Pos
	first := p.expectIdentifier()

	if p.atChar('(') {
		args := p.parseArgs()
		if first == "str" && len(args) == 1 {
			return &StringifyNode{Operand: args[0], Pos: pos}
		}
		classRef := &VariableValue{Names: []string{first}, Pos: pos}
		return &NewInstanceNode{ClassExpr: classRef, Args: args, Pos: pos}
	}

	names := []string{first}
	for p.atChar('.') {
		p.advance()
		name := p.expectIdentifier()
		if p.atChar('(') {
			args := p.parseArgs()
			object := &VariableValue{Names: append([]string{}, names...), Pos: pos}
			return &MethodCall{Object: object, Method: name, Args: args, Pos: pos}
		}
		names = append(names, name)
	}
	return &VariableValue{Names: names, Pos: pos}
}

func (p *parser) parseArgs() []Statement {
	p.expectChar('(')
	var args []Statement
	if !p.atChar(')') {
		args = append(args, p.parseExpression())
		for p.atChar(',') {
			p.advance()
			args = append(args, p.parseExpression())
		}
	}
	p.expectChar(')')
	return args
}
