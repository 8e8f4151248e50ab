package ast

// Parse compiles a pattern string into an AST, or returns a *ParseError
// citing the scalar offset and kind of the first problem found (§4.1).
//
// Grammar, highest to lowest precedence (§6):
//
//	regex   := alt
//	alt     := concat ('|' concat)*        -- empty concat permitted
//	concat  := postfix*
//	postfix := atom ('*' | '+' | '?')?
//	atom    := '(' alt ')' | '\' ANY | CHAR
func Parse(pattern string) (*Node, error) {
	p := &parser{lex: newLexer(pattern)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	node, err := p.parseAlt()
	if err != nil {
		return nil, err
	}

	switch p.tok.Kind {
	case TokEOF:
		return node, nil
	case TokRParen:
		return nil, &ParseError{Offset: p.tok.Offset, Kind: UnbalancedParen}
	default:
		return nil, &ParseError{Offset: p.tok.Offset, Kind: UnexpectedCharacter}
	}
}

// parser is a recursive-descent parser over the token stream produced by
// lexer. It holds exactly one token of lookahead.
type parser struct {
	lex *lexer
	tok Token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func isQuantifierTok(k TokenKind) bool {
	return k == TokStar || k == TokPlus || k == TokQuestion
}

// parseAlt parses alt := concat ('|' concat)*.
func (p *parser) parseAlt() (*Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}

	for p.tok.Kind == TokAlt {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = NewAlt(left, right)
	}
	return left, nil
}

// parseConcat parses concat := postfix*. A concat with zero postfixes
// (at '|', ')' or EOF) is the empty concatenation, represented as Empty.
func (p *parser) parseConcat() (*Node, error) {
	var nodes []*Node

	for p.tok.Kind != TokEOF && p.tok.Kind != TokAlt && p.tok.Kind != TokRParen {
		if isQuantifierTok(p.tok.Kind) {
			return nil, &ParseError{Offset: p.tok.Offset, Kind: UnexpectedQuantifier}
		}

		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		atom, err = p.parsePostfix(atom)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, atom)
	}

	if len(nodes) == 0 {
		return NewEmpty(), nil
	}

	result := nodes[0]
	for _, n := range nodes[1:] {
		result = NewConcat(result, n)
	}
	return result, nil
}

// parsePostfix parses postfix := atom ('*' | '+' | '?')?. At most one
// quantifier applies per atom; a quantifier token immediately following
// another is an error ("a**"), per §9's resolution of that ambiguity.
func (p *parser) parsePostfix(atom *Node) (*Node, error) {
	kind := p.tok.Kind
	if !isQuantifierTok(kind) {
		return atom, nil
	}

	if err := p.advance(); err != nil {
		return nil, err
	}

	switch kind {
	case TokStar:
		atom = NewStar(atom)
	case TokPlus:
		atom = NewPlus(atom)
	case TokQuestion:
		atom = NewQuestion(atom)
	}

	if isQuantifierTok(p.tok.Kind) {
		return nil, &ParseError{Offset: p.tok.Offset, Kind: UnexpectedQuantifier}
	}
	return atom, nil
}

// parseAtom parses atom := '(' alt ')' | '\' ANY | CHAR. The '\' case is
// already resolved by the lexer into a plain TokChar.
func (p *parser) parseAtom() (*Node, error) {
	switch p.tok.Kind {
	case TokLParen:
		openOffset := p.tok.Offset
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		if p.tok.Kind != TokRParen {
			return nil, &ParseError{Offset: openOffset, Kind: UnbalancedParen}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil

	case TokChar:
		c := p.tok.Char
		if err := p.advance(); err != nil {
			return nil, err
		}
		return NewChar(c), nil

	default:
		return nil, &ParseError{Offset: p.tok.Offset, Kind: UnexpectedCharacter}
	}
}
