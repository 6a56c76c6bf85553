package parse

import (
	"strconv"
	"strings"

	"github.com/jonwraymond/lcdebug/value"
)

// Line parses every top-level value on the line.
// An empty or whitespace-only line yields an empty slice.
func Line(text string) ([]value.Value, error) {
	p := newParser(text)
	var out []value.Value
	for {
		p.skipSpace()
		if p.eof() {
			return out, nil
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
		}
	}
}

// Value parses exactly one literal. Trailing non-space input is an error.
func Value(text string) (value.Value, error) {
	p := newParser(text)
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("trailing input after value")
	}
	return v, nil
}

type parser struct {
	src []rune
	pos int
}

func newParser(text string) *parser {
	return &parser{src: []rune(text)}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorf(msg string) *ParseError {
	e := &ParseError{Message: msg, Column: p.pos + 1}
	if !p.eof() {
		e.Found = string(p.src[p.pos])
	}
	return e
}

func (p *parser) hasPrefix(word string) bool {
	end := p.pos + len(word)
	return end <= len(p.src) && string(p.src[p.pos:end]) == word
}

func (p *parser) parseValue() (value.Value, error) {
	switch c := p.peek(); {
	case p.eof():
		return nil, p.errorf("expected value")
	case c == '[':
		return p.parseList()
	case c == '"':
		return p.parseString()
	case c == '-' || c == '+' || isDigit(c):
		return p.parseNumber()
	case p.hasPrefix("true"):
		p.pos += len("true")
		return value.Bool(true), nil
	case p.hasPrefix("false"):
		p.pos += len("false")
		return value.Bool(false), nil
	case p.hasPrefix("null"):
		p.pos += len("null")
		return value.Null{}, nil
	default:
		return nil, p.errorf("unexpected character")
	}
}

func (p *parser) parseList() (value.Value, error) {
	p.pos++ // '['
	list := value.List{}
	for {
		p.skipSpace()
		switch {
		case p.eof():
			return nil, p.errorf("unterminated array")
		case p.peek() == ']':
			p.pos++
			return list, nil
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		list = append(list, v)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
		default:
			if p.eof() {
				return nil, p.errorf("unterminated array")
			}
			// Whitespace-separated elements are tolerated; anything else
			// must start a value.
			if p.pos > 0 && !isSpace(p.src[p.pos-1]) {
				return nil, p.errorf("expected ',' or ']'")
			}
		}
	}
}

func (p *parser) parseString() (value.Value, error) {
	p.pos++ // opening quote
	start := p.pos
	for !p.eof() && p.src[p.pos] != '"' {
		p.pos++
	}
	if p.eof() {
		return nil, p.errorf("unterminated string")
	}
	s := string(p.src[start:p.pos])
	p.pos++ // closing quote
	return value.String(s), nil
}

func (p *parser) parseNumber() (value.Value, error) {
	start := p.pos
	if c := p.peek(); c == '-' || c == '+' {
		p.pos++
	}
	if !isDigit(p.peek()) {
		return nil, p.errorf("expected digit")
	}
	for isDigit(p.peek()) {
		p.pos++
	}
	isFloat := false
	if p.peek() == '.' {
		isFloat = true
		p.pos++
		if !isDigit(p.peek()) {
			return nil, p.errorf("expected digit after '.'")
		}
		for isDigit(p.peek()) {
			p.pos++
		}
	}
	lit := strings.TrimPrefix(string(p.src[start:p.pos]), "+")

	if isFloat {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, &ParseError{Message: "invalid float literal", Column: start + 1, Found: lit, Err: err}
		}
		return value.Float(f), nil
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, &ParseError{Message: "integer literal out of range", Column: start + 1, Found: lit, Err: err}
	}
	return value.Int(n), nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}
