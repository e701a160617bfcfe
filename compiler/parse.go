package compiler

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Saber-Kurama/learn-pont/ponterrors"
)

// Compile strips keyword from ref when present and parses the remainder.
func Compile(ref, keyword string) (*AST, error) {
	src := ref
	if keyword != "" {
		src = strings.TrimPrefix(ref, keyword)
	}
	p := &refParser{ref: ref, src: src, base: len(ref) - len(src)}
	if strings.TrimSpace(src) == "" {
		return nil, p.errorf("empty type reference")
	}

	ast, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q after type expression", p.peek())
	}
	return ast, nil
}

type refParser struct {
	ref  string
	src  string
	pos  int
	base int
}

func (p *refParser) errorf(msg string, args ...any) error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &ponterrors.ReferenceSyntaxError{
		Ref:     p.ref,
		Offset:  p.base + p.pos,
		Message: msg,
	}
}

func (p *refParser) peek() rune {
	if p.pos >= len(p.src) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return r
}

func (p *refParser) next() rune {
	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += size
	return r
}

func (p *refParser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(p.peek()) {
		p.next()
	}
}

func isDelimiter(r rune) bool {
	switch r {
	case '<', '>', '«', '»', ',':
		return true
	}
	return false
}

func closerFor(open rune) rune {
	if open == '«' {
		return '»'
	}
	return '>'
}

func (p *refParser) ident() string {
	start := p.pos
	for p.pos < len(p.src) && !isDelimiter(p.peek()) {
		p.next()
	}
	return strings.TrimSpace(p.src[start:p.pos])
}

func (p *refParser) parseExpr() (*AST, error) {
	p.skipSpace()
	name := p.ident()
	if name == "" {
		if p.pos >= len(p.src) {
			return nil, p.errorf("expected type name, got end of input")
		}
		return nil, p.errorf("expected type name, got %q", p.peek())
	}
	node := &AST{Name: name}

	if p.pos >= len(p.src) {
		return node, nil
	}
	open := p.peek()
	if open != '<' && open != '«' {
		return node, nil
	}
	p.next()
	closer := closerFor(open)
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.TypeArgs = append(node.TypeArgs, arg)

		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errorf("expected %q, got end of input", closer)
		}
		switch r := p.next(); r {
		case ',':
			continue
		case closer:
			return node, nil
		default:
			p.pos -= utf8.RuneLen(r)
			return nil, p.errorf("expected ',' or %q, got %q", closer, r)
		}
	}
}
