package parser

import (
	"github.com/ferronlang/lox/lang/ast"
	"github.com/ferronlang/lox/lang/token"
)

func (p *parser) statement() ast.Stmt {
	line := p.val.Line
	switch {
	case p.matchTok(token.FOR):
		return p.forStmt(line)
	case p.matchTok(token.IF):
		return p.ifStmt(line)
	case p.matchTok(token.WHILE):
		return p.whileStmt(line)
	case p.matchTok(token.PRINT):
		return p.printStmt(line)
	case p.matchTok(token.RETURN):
		return p.returnStmt(line)
	case p.matchTok(token.BREAK):
		p.expect(token.SEMICOLON, "';' after 'break'")
		return &ast.BreakStmt{LineNo: line}
	case p.matchTok(token.CONTINUE):
		p.expect(token.SEMICOLON, "';' after 'continue'")
		return &ast.ContinueStmt{LineNo: line}
	case p.matchTok(token.LBRACE):
		return &ast.BlockStmt{LineNo: line, Stmts: p.block()}
	default:
		return p.exprStmt()
	}
}

func (p *parser) ifStmt(line int) ast.Stmt {
	p.expect(token.LPAREN, "'(' after 'if'")
	cond := p.expression()
	p.expect(token.RPAREN, "')' after if condition")
	then := p.statement()
	var els ast.Stmt
	if p.matchTok(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{LineNo: line, Cond: cond, Then: then, Else: els}
}

func (p *parser) whileStmt(line int) ast.Stmt {
	p.expect(token.LPAREN, "'(' after 'while'")
	cond := p.expression()
	p.expect(token.RPAREN, "')' after while condition")
	body := p.statement()
	return &ast.WhileStmt{LineNo: line, Cond: cond, Body: body}
}

func (p *parser) forStmt(line int) ast.Stmt {
	p.expect(token.LPAREN, "'(' after 'for'")

	var init ast.Stmt
	switch {
	case p.matchTok(token.SEMICOLON):
		// no initializer
	case p.matchTok(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.expect(token.SEMICOLON, "';' after loop condition")

	var post ast.Stmt
	if !p.check(token.RPAREN) {
		e := p.expression()
		post = &ast.ExprStmt{LineNo: e.Line(), Expr: e}
	}
	p.expect(token.RPAREN, "')' after for clauses")

	body := p.statement()
	return &ast.ForStmt{LineNo: line, Init: init, Cond: cond, Post: post, Body: body}
}

func (p *parser) printStmt(line int) ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMICOLON, "';' after value")
	return &ast.PrintStmt{LineNo: line, Expr: expr}
}

func (p *parser) returnStmt(line int) ast.Stmt {
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.expect(token.SEMICOLON, "';' after return value")
	return &ast.ReturnStmt{LineNo: line, Value: value}
}

func (p *parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMICOLON, "';' after expression")
	return &ast.ExprStmt{LineNo: expr.Line(), Expr: expr}
}
