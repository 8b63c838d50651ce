// Copyright 2018-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	errExprSyntax   = errors.New("expression syntax error")
	errDivideByZero = errors.New("division by zero")
	errExprOperands = errors.New("expression is missing an operand")
	errExprParens   = errors.New("expression has unbalanced parentheses")
)

type tokenType byte

const (
	tokenNumber tokenType = iota
	tokenIdentifier
	tokenOp
	tokenLParen
	tokenRParen
)

type token struct {
	Type  tokenType
	Num   int64  // tokenNumber
	Ident string // tokenIdentifier
	Op    *op    // tokenOp
}

type associativity byte

const (
	left associativity = iota
	right
)

// An op is a unary or binary operator. Binary operators that may also
// appear in prefix position name their unary form.
type op struct {
	Symbol     string
	Precedence byte
	Assoc      associativity
	Unary      bool
	Prefix     *op
	Eval       func(a, b int64) (int64, error)
}

var (
	opNegate = &op{"-", 7, right, true, nil, func(a, _ int64) (int64, error) { return -a, nil }}
	opPlus   = &op{"+", 7, right, true, nil, func(a, _ int64) (int64, error) { return a, nil }}
	opNot    = &op{"~", 7, right, true, nil, func(a, _ int64) (int64, error) { return ^a, nil }}
	opLow    = &op{"<", 7, right, true, nil, func(a, _ int64) (int64, error) { return a & 0xff, nil }}
	opHigh   = &op{">", 7, right, true, nil, func(a, _ int64) (int64, error) { return (a >> 8) & 0xff, nil }}

	binaryOps = map[string]*op{
		"*":  {"*", 6, left, false, nil, func(a, b int64) (int64, error) { return a * b, nil }},
		"/":  {"/", 6, left, false, nil, divide},
		"%":  {"%", 6, left, false, nil, modulo},
		"+":  {"+", 5, left, false, opPlus, func(a, b int64) (int64, error) { return a + b, nil }},
		"-":  {"-", 5, left, false, opNegate, func(a, b int64) (int64, error) { return a - b, nil }},
		"<<": {"<<", 4, left, false, nil, func(a, b int64) (int64, error) { return a << uint(b&63), nil }},
		">>": {">>", 4, left, false, nil, func(a, b int64) (int64, error) { return a >> uint(b&63), nil }},
		"&":  {"&", 3, left, false, nil, func(a, b int64) (int64, error) { return a & b, nil }},
		"^":  {"^", 2, left, false, nil, func(a, b int64) (int64, error) { return a ^ b, nil }},
		"|":  {"|", 1, left, false, nil, func(a, b int64) (int64, error) { return a | b, nil }},
		"~":  {"~", 7, right, false, opNot, nil},
		"<":  {"<", 7, right, false, opLow, nil},
		">":  {">", 7, right, false, opHigh, nil},
	}
)

func divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, errDivideByZero
	}
	return a / b, nil
}

func modulo(a, b int64) (int64, error) {
	if b == 0 {
		return 0, errDivideByZero
	}
	return a % b, nil
}

// An exprParser evaluates integer expressions such as "$1000+x*2" or
// "<(pc+3)". Numbers are decimal ('$' or '0x' selects hexadecimal, '%'
// or '0b' binary, '0d' decimal) unless hexMode is set, in which case
// unprefixed numbers and identifiers made only of hex digits are read
// as hexadecimal. Other identifiers are looked up through a callback.
type exprParser struct {
	hexMode bool
	tokens  []token
	ops     []token
	rpn     []token
	values  []int64
}

func newExprParser() *exprParser {
	return &exprParser{}
}

// Parse evaluates expr, resolving identifiers with lookup.
func (p *exprParser) Parse(expr string, lookup func(name string) (int64, error)) (int64, error) {
	if err := p.tokenize(tstring(expr)); err != nil {
		return 0, err
	}
	if len(p.tokens) == 0 {
		return 0, errExprSyntax
	}
	if err := p.toRPN(); err != nil {
		return 0, err
	}
	return p.evaluate(lookup)
}

// Split the expression into tokens, converting operators in prefix
// position to their unary forms.
func (p *exprParser) tokenize(t tstring) error {
	p.tokens = p.tokens[:0]
	for {
		t = t.consumeWhitespace()
		if len(t) == 0 {
			return nil
		}

		prefix := len(p.tokens) == 0
		if !prefix {
			switch prev := p.tokens[len(p.tokens)-1]; prev.Type {
			case tokenOp, tokenLParen:
				prefix = true
			}
		}

		var tok token
		var err error
		c := t[0]
		switch {
		case c == '(':
			tok, t = token{Type: tokenLParen}, t.consume(1)
		case c == ')':
			tok, t = token{Type: tokenRParen}, t.consume(1)
		case c == '\'':
			tok, t, err = p.parseChar(t)
		case c == '$' || decimal(c):
			tok, t, err = p.parseNumber(t)
		case c == '%' && prefix:
			tok, t, err = p.parseNumber(t)
		case identifierStart(c):
			tok, t, err = p.parseIdentifier(t)
		default:
			tok, t, err = p.parseOp(t, prefix)
		}
		if err != nil {
			return err
		}
		p.tokens = append(p.tokens, tok)
	}
}

func (p *exprParser) parseNumber(t tstring) (tok token, remain tstring, err error) {
	base, fn, num := 10, decimal, t
	if p.hexMode {
		base, fn = 16, hexadecimal
	}

	switch {
	case num[0] == '$':
		base, fn, num = 16, hexadecimal, num.consume(1)
	case num[0] == '%':
		base, fn, num = 2, binary, num.consume(1)
	case len(num) > 2 && num[0] == '0':
		switch num[1] {
		case 'x', 'X':
			base, fn, num = 16, hexadecimal, num.consume(2)
		case 'b', 'B':
			if !p.hexMode {
				base, fn, num = 2, binary, num.consume(2)
			}
		case 'd', 'D':
			if !p.hexMode {
				base, fn, num = 10, decimal, num.consume(2)
			}
		}
	}

	digits, remain := num.consumeWhile(fn)
	if digits == "" || (len(remain) > 0 && identifier(remain[0])) {
		return token{}, t, fmt.Errorf("invalid number '%s'", t.consumeToken())
	}

	v, err := strconv.ParseInt(string(digits), base, 64)
	if err != nil {
		return token{}, t, fmt.Errorf("invalid number '%s'", digits)
	}
	return token{Type: tokenNumber, Num: v}, remain, nil
}

func (p *exprParser) parseChar(t tstring) (tok token, remain tstring, err error) {
	if len(t) < 3 || t[2] != '\'' {
		return token{}, t, errExprSyntax
	}
	return token{Type: tokenNumber, Num: int64(t[1])}, t.consume(3), nil
}

func (p *exprParser) parseIdentifier(t tstring) (tok token, remain tstring, err error) {
	id, remain := t.consumeWhile(identifier)
	if p.hexMode && id.all(hexadecimal) {
		return p.parseNumber(t)
	}
	return token{Type: tokenIdentifier, Ident: string(id)}, remain, nil
}

func (p *exprParser) parseOp(t tstring, prefix bool) (tok token, remain tstring, err error) {
	sym := string(t[:1])
	if len(t) > 1 && (t[:2] == "<<" || t[:2] == ">>") {
		sym = string(t[:2])
	}

	o, ok := binaryOps[sym]
	if !ok {
		return token{}, t, errExprSyntax
	}
	switch {
	case prefix && o.Prefix != nil:
		o = o.Prefix
	case prefix || o.Eval == nil:
		return token{}, t, errExprOperands
	}
	return token{Type: tokenOp, Op: o}, t.consume(len(sym)), nil
}

// Reorder the tokens into reverse Polish notation with the shunting-yard
// algorithm.
func (p *exprParser) toRPN() error {
	p.ops, p.rpn = p.ops[:0], p.rpn[:0]

	for _, tok := range p.tokens {
		switch tok.Type {
		case tokenNumber, tokenIdentifier:
			p.rpn = append(p.rpn, tok)

		case tokenLParen:
			p.ops = append(p.ops, tok)

		case tokenRParen:
			for {
				if len(p.ops) == 0 {
					return errExprParens
				}
				top := p.ops[len(p.ops)-1]
				p.ops = p.ops[:len(p.ops)-1]
				if top.Type == tokenLParen {
					break
				}
				p.rpn = append(p.rpn, top)
			}

		case tokenOp:
			for len(p.ops) > 0 {
				top := p.ops[len(p.ops)-1]
				if top.Type != tokenOp || !collapses(top.Op, tok.Op) {
					break
				}
				p.rpn = append(p.rpn, top)
				p.ops = p.ops[:len(p.ops)-1]
			}
			p.ops = append(p.ops, tok)
		}
	}

	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		p.ops = p.ops[:len(p.ops)-1]
		if top.Type == tokenLParen {
			return errExprParens
		}
		p.rpn = append(p.rpn, top)
	}
	return nil
}

// Report whether the operator on top of the stack must be applied before
// the incoming one is pushed.
func collapses(top, incoming *op) bool {
	if incoming.Unary {
		return false
	}
	return top.Precedence > incoming.Precedence ||
		(top.Precedence == incoming.Precedence && incoming.Assoc == left)
}

func (p *exprParser) evaluate(lookup func(name string) (int64, error)) (int64, error) {
	p.values = p.values[:0]

	for _, tok := range p.rpn {
		switch tok.Type {
		case tokenNumber:
			p.values = append(p.values, tok.Num)

		case tokenIdentifier:
			if lookup == nil {
				return 0, fmt.Errorf("identifier '%s' not found", tok.Ident)
			}
			v, err := lookup(tok.Ident)
			if err != nil {
				return 0, err
			}
			p.values = append(p.values, v)

		case tokenOp:
			n := 2
			if tok.Op.Unary {
				n = 1
			}
			if len(p.values) < n {
				return 0, errExprOperands
			}
			args := p.values[len(p.values)-n:]
			var a, b int64
			if n == 1 {
				a = args[0]
			} else {
				a, b = args[0], args[1]
			}
			v, err := tok.Op.Eval(a, b)
			if err != nil {
				return 0, err
			}
			p.values = append(p.values[:len(p.values)-n], v)
		}
	}

	if len(p.values) != 1 {
		return 0, errExprSyntax
	}
	return p.values[0], nil
}

//
// tstring
//

type tstring string

func (t tstring) consume(n int) tstring {
	return t[n:]
}

func (t tstring) consumeWhitespace() tstring {
	return t.consume(t.scanWhile(whitespace))
}

func (t tstring) scanWhile(fn func(c byte) bool) int {
	i := 0
	for ; i < len(t) && fn(t[i]); i++ {
	}
	return i
}

func (t tstring) consumeWhile(fn func(c byte) bool) (consumed, remain tstring) {
	i := t.scanWhile(fn)
	return t[:i], t[i:]
}

// Return the leading run of non-whitespace characters, for error messages.
func (t tstring) consumeToken() tstring {
	tok, _ := t.consumeWhile(func(c byte) bool { return !whitespace(c) })
	return tok
}

func (t tstring) all(fn func(c byte) bool) bool {
	return t.scanWhile(fn) == len(t)
}

func whitespace(c byte) bool {
	return c == ' ' || c == '\t'
}

func decimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexadecimal(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

func binary(c byte) bool {
	return c == '0' || c == '1'
}

func identifierStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '.'
}

func identifier(c byte) bool {
	return identifierStart(c) || decimal(c)
}
