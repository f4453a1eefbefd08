// Package parse turns the textual connective syntax used at the
// translation boundary into logic.Formula values. The grammar covers
// exactly the connectives the translation contract permits:
//
//	iff     := implies ( ("↔" | "<->") iff )?
//	implies := or ( ("→" | "->") implies )?
//	or      := and ( ("∨" | "|") or )?
//	and     := unary ( ("∧" | "&") and )?
//	unary   := ("¬" | "~") unary | atom | "(" iff ")"
//
// Implication and biconditional associate to the right. Atoms are
// case-sensitive identifiers (letters, digits after the first rune,
// underscores). Failures are reported as logic.TranslationError.
package parse

import (
	"fmt"
	"unicode"

	"github.com/proof-framework/entail/pkg/logic"
)

type tokenKind int

const (
	tokAtom tokenKind = iota
	tokNot
	tokAnd
	tokOr
	tokImplies
	tokIff
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type parser struct {
	input  string
	tokens []token
	cur    int
}

// Formula parses a single formula from input.
func Formula(input string) (logic.Formula, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{input: input, tokens: tokens}
	f, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorf(tok.pos, "unexpected %q after formula", tok.text)
	}
	return f, nil
}

// Argument parses each premise and the conclusion, failing on the first
// input that does not translate.
func Argument(premises []string, conclusion string) (logic.Argument, error) {
	parsed := make([]logic.Formula, len(premises))
	for i, text := range premises {
		f, err := Formula(text)
		if err != nil {
			return logic.Argument{}, err
		}
		parsed[i] = f
	}
	c, err := Formula(conclusion)
	if err != nil {
		return logic.Argument{}, err
	}
	return logic.NewArgument(parsed, c), nil
}

func lex(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '¬' || r == '~' || r == '!':
			tokens = append(tokens, token{tokNot, string(r), i})
			i++
		case r == '∧' || r == '&':
			tokens = append(tokens, token{tokAnd, string(r), i})
			i++
			if r == '&' && i < len(runes) && runes[i] == '&' {
				i++
			}
		case r == '∨' || r == '|':
			tokens = append(tokens, token{tokOr, string(r), i})
			i++
			if r == '|' && i < len(runes) && runes[i] == '|' {
				i++
			}
		case r == '→':
			tokens = append(tokens, token{tokImplies, string(r), i})
			i++
		case r == '↔':
			tokens = append(tokens, token{tokIff, string(r), i})
			i++
		case r == '-':
			if i+1 < len(runes) && runes[i+1] == '>' {
				tokens = append(tokens, token{tokImplies, "->", i})
				i += 2
			} else {
				return nil, lexError(input, i, "-")
			}
		case r == '<':
			if i+2 < len(runes) && runes[i+1] == '-' && runes[i+2] == '>' {
				tokens = append(tokens, token{tokIff, "<->", i})
				i += 3
			} else {
				return nil, lexError(input, i, "<")
			}
		case r == '(':
			tokens = append(tokens, token{tokLParen, "(", i})
			i++
		case r == ')':
			tokens = append(tokens, token{tokRParen, ")", i})
			i++
		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, token{tokAtom, string(runes[start:i]), start})
		default:
			return nil, lexError(input, i, string(r))
		}
	}
	tokens = append(tokens, token{tokEOF, "", len(runes)})
	return tokens, nil
}

func lexError(input string, pos int, text string) error {
	return logic.TranslationError{
		Input:  input,
		Reason: fmt.Sprintf("unexpected character %q at position %d", text, pos),
	}
}

func (p *parser) peek() token {
	return p.tokens[p.cur]
}

func (p *parser) next() token {
	tok := p.tokens[p.cur]
	if tok.kind != tokEOF {
		p.cur++
	}
	return tok
}

func (p *parser) errorf(pos int, format string, args ...interface{}) error {
	return logic.TranslationError{
		Input:  p.input,
		Reason: fmt.Sprintf(format+fmt.Sprintf(" (position %d)", pos), args...),
	}
}

func (p *parser) parseIff() (logic.Formula, error) {
	f, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokIff {
		p.next()
		rest, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		return logic.Iff{L: f, R: rest}, nil
	}
	return f, nil
}

func (p *parser) parseImplies() (logic.Formula, error) {
	f, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokImplies {
		p.next()
		rest, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return logic.Implies{L: f, R: rest}, nil
	}
	return f, nil
}

func (p *parser) parseOr() (logic.Formula, error) {
	f, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		r, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		f = logic.Or{L: f, R: r}
	}
	return f, nil
}

func (p *parser) parseAnd() (logic.Formula, error) {
	f, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		r, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		f = logic.And{L: f, R: r}
	}
	return f, nil
}

func (p *parser) parseUnary() (logic.Formula, error) {
	tok := p.next()
	switch tok.kind {
	case tokNot:
		sub, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return logic.Not{F: sub}, nil
	case tokAtom:
		return logic.Atom(tok.text), nil
	case tokLParen:
		f, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.errorf(closing.pos, "expected closing parenthesis, found %q", closing.text)
		}
		return f, nil
	case tokEOF:
		return nil, p.errorf(tok.pos, "expected formula, found end of input")
	default:
		return nil, p.errorf(tok.pos, "expected formula, found %q", tok.text)
	}
}
