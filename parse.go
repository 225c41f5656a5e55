package crabculator

// parser is a recursive-descent parser over a fixed token slice for a
// single source line. Unlike the teacher's generic, user-extensible
// operator-precedence parser (which dispatches through a table of
// Func-provided arities), crabculator's grammar is closed and small enough
// that a direct recursive descent mirroring spec's BNF is simpler and
// keeps every precedence level's behavior readable in one place.
//
// expr      := add
// add       := mul   (('+'|'-') mul)*
// mul       := unary (('*'|'/'|'%') unary)*       -- implicit * injected here
// unary     := ('+'|'-') unary | pow
// pow       := postfix ('^' unary)?                -- right-assoc
// postfix   := primary ('!')*
// primary   := NUMBER | IDENT | IDENT '(' args? ')' | '(' expr ')'
// args      := expr (',' expr)*
type parser struct {
	toks    []Token
	pos     int
	lineLen int
}

// ParseLine tokenizes and parses a single source line, returning its
// classification per spec.md §4.2.
func ParseLine(src string) (Line, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return Line{}, err
	}
	if len(toks) == 0 {
		return Line{Kind: LineEmpty}, nil
	}
	if toks[0].Kind == TokenIdentifier && len(toks) >= 2 && toks[1].Kind == TokenEquals {
		p := &parser{toks: toks[2:], lineLen: len(src)}
		if len(p.toks) == 0 {
			return Line{}, &MissingOperandError{Pos: toks[1].Span}
		}
		expr, err := p.parseExpr()
		if err != nil {
			return Line{}, err
		}
		if !p.atEnd() {
			return Line{}, unexpectedAt(p.cur())
		}
		return Line{Kind: LineAssignment, Name: toks[0].Ident, NameSpan: toks[0].Span, Expr: expr}, nil
	}
	p := &parser{toks: toks, lineLen: len(src)}
	expr, err := p.parseExpr()
	if err != nil {
		return Line{}, err
	}
	if !p.atEnd() {
		return Line{}, unexpectedAt(p.cur())
	}
	return Line{Kind: LineExpression, Expr: expr}, nil
}

func unexpectedAt(tok Token, ok bool) error {
	if !ok {
		return &UnexpectedTokenError{Text: "", Pos: Span{}}
	}
	return &UnexpectedTokenError{Text: tok.String(), Pos: tok.Span}
}

func (p *parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *parser) cur() (Token, bool) {
	if p.atEnd() {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) advance() Token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

// eofSpan is the span used when a diagnostic has no specific token to blame
// and the line has simply run out of input: zero-width just past the last
// consumed token, or the whole line when no token has been consumed.
func (p *parser) eofSpan() Span {
	if p.pos > 0 {
		end := p.toks[p.pos-1].Span.End
		return Span{Start: end, End: end}
	}
	return Span{Start: 0, End: p.lineLen}
}

func (p *parser) parseExpr() (Expr, error) {
	return p.parseAdd()
}

func (p *parser) parseAdd() (Expr, error) {
	left, err := p.parseMul(true)
	if err != nil {
		return nil, err
	}
addLoop:
	for {
		tok, ok := p.cur()
		if !ok {
			break addLoop
		}
		var op BinaryOp
		switch tok.Kind {
		case TokenPlus:
			op = BinaryAdd
		case TokenMinus:
			op = BinarySub
		default:
			break addLoop
		}
		opTok := p.advance()
		right, err := p.parseMul(false)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Op: op, Left: left, Right: right, OpSpan: opTok.Span,
			Sp: left.Span().Union(right.Span()),
		}
	}
	return left, nil
}

// parseMul parses a mul-level chain. signedFirst controls whether the
// chain's first term may begin with a unary +/-: it is false exactly when
// this mul is the right-hand operand of a binary + or - just consumed by
// parseAdd, so that e.g. "5 + + 3" reports a missing operand at the second
// '+' instead of silently reinterpreting it as a redundant unary sign.
// Every subsequent term in the chain (after an explicit */÷/% or an
// implicit multiplication) may begin with a sign, matching ordinary
// calculator expectations like "2 * -3".
func (p *parser) parseMul(signedFirst bool) (Expr, error) {
	left, err := p.parseUnary(signedFirst)
	if err != nil {
		return nil, err
	}
mulLoop:
	for {
		tok, ok := p.cur()
		if !ok {
			break mulLoop
		}
		var op BinaryOp
		switch tok.Kind {
		case TokenStar:
			op = BinaryMul
		case TokenSlash:
			op = BinaryDiv
		case TokenPercent:
			op = BinaryMod
		default:
			if !p.implicitMulHere() {
				break mulLoop
			}
			right, err := p.parseUnary(true)
			if err != nil {
				return nil, err
			}
			left = &BinaryExpr{
				Op: BinaryMul, Left: left, Right: right,
				OpSpan: Span{Start: left.Span().End, End: left.Span().End},
				Sp:     left.Span().Union(right.Span()),
			}
			continue mulLoop
		}
		opTok := p.advance()
		right, err := p.parseUnary(true)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Op: op, Left: left, Right: right, OpSpan: opTok.Span,
			Sp: left.Span().Union(right.Span()),
		}
	}
	return left, nil
}

// implicitMulHere reports whether the boundary between the token just
// consumed (p.toks[p.pos-1]) and the upcoming token (p.toks[p.pos]) is one
// of the four adjacent-token pairs spec.md §4.2 injects a virtual `*`
// between. Function calls (Identifier immediately followed by LParen) are
// never reached here: parsePrimary always consumes that pair itself.
func (p *parser) implicitMulHere() bool {
	if p.pos == 0 || p.atEnd() {
		return false
	}
	prev := p.toks[p.pos-1].Kind
	next := p.toks[p.pos].Kind
	switch {
	case prev == TokenNumber && next == TokenIdentifier:
		return true
	case prev == TokenNumber && next == TokenLParen:
		return true
	case prev == TokenRParen && next == TokenLParen:
		return true
	case prev == TokenRParen && next == TokenIdentifier:
		return true
	default:
		return false
	}
}

func (p *parser) parseUnary(signed bool) (Expr, error) {
	tok, ok := p.cur()
	if !ok {
		return nil, &MissingOperandError{Pos: p.eofSpan()}
	}
	if tok.Kind == TokenPlus || tok.Kind == TokenMinus {
		if !signed {
			return nil, &MissingOperandError{Pos: tok.Span}
		}
		opTok := p.advance()
		child, err := p.parseUnary(true)
		if err != nil {
			return nil, err
		}
		op := UnaryPlus
		if opTok.Kind == TokenMinus {
			op = UnaryNeg
		}
		return &UnaryExpr{Op: op, Child: child, Sp: opTok.Span.Union(child.Span())}, nil
	}
	return p.parsePow()
}

func (p *parser) parsePow() (Expr, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	tok, ok := p.cur()
	if !ok || tok.Kind != TokenCaret {
		return base, nil
	}
	opTok := p.advance()
	exponent, err := p.parseUnary(true)
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{
		Op: BinaryPow, Left: base, Right: exponent, OpSpan: opTok.Span,
		Sp: base.Span().Union(exponent.Span()),
	}, nil
}

func (p *parser) parsePostfix() (Expr, error) {
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.cur()
		if !ok || tok.Kind != TokenBang {
			return n, nil
		}
		bang := p.advance()
		n = &FactorialExpr{Child: n, Sp: n.Span().Union(bang.Span)}
	}
}

func (p *parser) parsePrimary() (Expr, error) {
	tok, ok := p.cur()
	if !ok {
		return nil, &MissingOperandError{Pos: p.eofSpan()}
	}
	switch tok.Kind {
	case TokenNumber:
		p.advance()
		return &NumberExpr{Value: tok.Num, Sp: tok.Span}, nil
	case TokenIdentifier:
		p.advance()
		if nt, ok := p.cur(); ok && nt.Kind == TokenLParen {
			return p.parseCall(tok)
		}
		return &VariableExpr{Name: tok.Ident, Sp: tok.Span}, nil
	case TokenLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closeTok, ok := p.cur(); !ok || closeTok.Kind != TokenRParen {
			return nil, &UnmatchedParenError{Pos: tok.Span}
		}
		p.advance()
		return inner, nil
	default:
		return nil, &UnexpectedTokenError{Text: tok.String(), Pos: tok.Span}
	}
}

func (p *parser) parseCall(name Token) (Expr, error) {
	open := p.advance() // consume '('
	var args []Expr
	if nt, ok := p.cur(); !ok || nt.Kind != TokenRParen {
		var err error
		args, err = p.parseArgs()
		if err != nil {
			return nil, err
		}
	}
	closeTok, ok := p.cur()
	if !ok || closeTok.Kind != TokenRParen {
		return nil, &UnmatchedParenError{Pos: open.Span}
	}
	p.advance()
	return &CallExpr{
		Name: name.Ident, NameSpan: name.Span, Args: args,
		Sp: Span{Start: name.Span.Start, End: closeTok.Span.End},
	}, nil
}

func (p *parser) parseArgs() ([]Expr, error) {
	var args []Expr
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		tok, ok := p.cur()
		if !ok || tok.Kind != TokenComma {
			return args, nil
		}
		p.advance()
	}
}
