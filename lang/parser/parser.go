// Package parser implements the recursive-descent parser that turns a token
// stream into an AST.
package parser

import (
	"errors"

	"github.com/ferronlang/lox/lang/ast"
	"github.com/ferronlang/lox/lang/scanner"
	"github.com/ferronlang/lox/lang/token"
)

// ParseSource parses a complete source file (or REPL line) into a sequence
// of top-level declarations. The returned error, if non-nil, is a
// scanner.ErrorList aggregating every lexical and syntax error found; the
// parser synchronizes at statement boundaries so multiple errors can be
// reported from a single run.
func ParseSource(src []byte) ([]ast.Stmt, error) {
	var p parser
	p.scanner.Init(src, p.errors.Add)
	p.advance()
	stmts := p.program()
	p.errors.Sort()
	return stmts, p.errors.Err()
}

// ParseExpression parses src as a single expression followed by end of
// input, with no trailing semicolon required. It exists for the REPL,
// which echoes the value of a bare expression; ordinary programs always go
// through ParseSource.
func ParseExpression(src []byte) (ast.Expr, error) {
	var p parser
	p.scanner.Init(src, p.errors.Add)
	p.advance()
	expr := func() (e ast.Expr) {
		defer func() {
			if r := recover(); r != nil {
				if r != errPanicMode {
					panic(r)
				}
				e = nil
			}
		}()
		return p.expression()
	}()
	if expr == nil || len(p.errors) > 0 {
		return nil, errNotExpression
	}
	if p.tok != token.EOF {
		return nil, errNotExpression
	}
	return expr, nil
}

var errNotExpression = errors.New("not a single expression")

// errPanicMode is thrown to unwind out of a malformed declaration or
// statement so the caller can resynchronize at the next safe boundary.
var errPanicMode = errors.New("parse error")

type parser struct {
	scanner scanner.Scanner
	errors  scanner.ErrorList

	tok  token.Token
	val  token.Value
	prev token.Value
	// prevTok is the token kind consumed by the most recent advance(); it is
	// what matchTok leaves behind for callers that need to know which of
	// several alternatives was matched (e.g. which comparison operator).
	prevTok token.Token

	nextSite int
}

func (p *parser) site() ast.SiteID {
	p.nextSite++
	return ast.SiteID(p.nextSite)
}

func (p *parser) advance() {
	p.prev = p.val
	p.prevTok = p.tok
	p.tok, p.val = p.scanner.Scan()
}

func (p *parser) check(tok token.Token) bool { return p.tok == tok }

func (p *parser) matchTok(toks ...token.Token) bool {
	for _, t := range toks {
		if p.tok == t {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it matches tok, recording and
// unwinding with a parse error otherwise.
func (p *parser) expect(tok token.Token, what string) token.Value {
	if p.tok != tok {
		p.errorAtCurrent("expected " + what)
		panic(errPanicMode)
	}
	v := p.val
	p.advance()
	return v
}

func (p *parser) expectIdent(what string) string {
	if p.tok != token.IDENT {
		p.errorAtCurrent("expected " + what)
		panic(errPanicMode)
	}
	lit := p.val.Lexeme
	p.advance()
	return lit
}

func (p *parser) error(line int, msg string)  { p.errors.Add(line, msg) }
func (p *parser) errorAtCurrent(msg string)   { p.error(p.val.Line, msg) }

// synchronize discards tokens until it reaches a likely statement boundary,
// so parsing can continue and surface further errors.
func (p *parser) synchronize() {
	for p.tok != token.EOF {
		if p.tok == token.SEMICOLON {
			p.advance()
			return
		}
		switch p.tok {
		case token.CLASS, token.DEF, token.VAR, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN, token.BREAK, token.CONTINUE:
			return
		}
		p.advance()
	}
}

func (p *parser) program() []ast.Stmt {
	var stmts []ast.Stmt
	for p.tok != token.EOF {
		if d := p.declaration(); d != nil {
			stmts = append(stmts, d)
		}
	}
	return stmts
}
