package parser

import (
	"github.com/ferronlang/lox/lang/ast"
	"github.com/ferronlang/lox/lang/token"
)

func (p *parser) expression() ast.Expr {
	return p.assignment()
}

func (p *parser) assignment() ast.Expr {
	expr := p.orExpr()

	if p.matchTok(token.EQ) {
		eqLine := p.prev.Line
		value := p.assignment() // right-associative

		switch e := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{LineNo: e.LineNo, Name: e.Name, Value: value, Site: p.site()}
		case *ast.GetExpr:
			return &ast.SetExpr{LineNo: e.LineNo, Object: e.Object, Name: e.Name, Value: value}
		default:
			p.error(eqLine, "invalid assignment target")
			return expr
		}
	}
	return expr
}

func (p *parser) orExpr() ast.Expr {
	expr := p.andExpr()
	for p.matchTok(token.OR) {
		op := p.prev.Line
		right := p.andExpr()
		expr = &ast.LogicalExpr{LineNo: op, Left: expr, Operator: token.OR, Right: right}
	}
	return expr
}

func (p *parser) andExpr() ast.Expr {
	expr := p.equality()
	for p.matchTok(token.AND) {
		op := p.prev.Line
		right := p.equality()
		expr = &ast.LogicalExpr{LineNo: op, Left: expr, Operator: token.AND, Right: right}
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.matchTok(token.BANG_EQ, token.EQ_EQ) {
		opLine, opTok := p.prev.Line, p.prevTok
		right := p.comparison()
		expr = &ast.BinaryExpr{LineNo: opLine, Left: expr, Operator: opTok, Right: right}
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.matchTok(token.GT, token.GT_EQ, token.LT, token.LT_EQ) {
		opLine, opTok := p.prev.Line, p.prevTok
		right := p.term()
		expr = &ast.BinaryExpr{LineNo: opLine, Left: expr, Operator: opTok, Right: right}
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.matchTok(token.MINUS, token.PLUS) {
		opLine, opTok := p.prev.Line, p.prevTok
		right := p.factor()
		expr = &ast.BinaryExpr{LineNo: opLine, Left: expr, Operator: opTok, Right: right}
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.matchTok(token.SLASH, token.STAR) {
		opLine, opTok := p.prev.Line, p.prevTok
		right := p.unary()
		expr = &ast.BinaryExpr{LineNo: opLine, Left: expr, Operator: opTok, Right: right}
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.matchTok(token.BANG, token.MINUS) {
		opLine, opTok := p.prev.Line, p.prevTok
		operand := p.unary()
		return &ast.UnaryExpr{LineNo: opLine, Operator: opTok, Operand: operand}
	}
	return p.call()
}

func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.matchTok(token.LPAREN):
			expr = p.finishCall(expr)
		case p.matchTok(token.DOT):
			name := p.expectIdent("property name after '.'")
			expr = &ast.GetExpr{LineNo: expr.Line(), Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAtCurrent("can't have more than 255 arguments")
			}
			args = append(args, p.expression())
			if !p.matchTok(token.COMMA) {
				break
			}
		}
	}
	paren := p.expect(token.RPAREN, "')' after arguments")
	return &ast.CallExpr{LineNo: callee.Line(), Callee: callee, Args: args, ParenLine: paren.Line}
}

func (p *parser) primary() ast.Expr {
	line := p.val.Line

	switch {
	case p.matchTok(token.FALSE):
		return &ast.LiteralExpr{LineNo: line, Value: false}
	case p.matchTok(token.TRUE):
		return &ast.LiteralExpr{LineNo: line, Value: true}
	case p.matchTok(token.NIL):
		return &ast.LiteralExpr{LineNo: line, Value: nil}
	case p.check(token.NUMBER):
		v := p.val.Number
		p.advance()
		return &ast.LiteralExpr{LineNo: line, Value: v}
	case p.check(token.STRING):
		v := p.val.Str
		p.advance()
		return &ast.LiteralExpr{LineNo: line, Value: v}
	case p.matchTok(token.SELF):
		return &ast.SelfExpr{LineNo: line, Site: p.site()}
	case p.matchTok(token.SUPER):
		p.expect(token.DOT, "'.' after 'super'")
		method := p.expectIdent("superclass method name")
		return &ast.SuperExpr{LineNo: line, Method: method, Site: p.site()}
	case p.check(token.IDENT):
		name := p.val.Lexeme
		p.advance()
		return &ast.VariableExpr{LineNo: line, Name: name, Site: p.site()}
	case p.matchTok(token.LPAREN):
		inner := p.expression()
		p.expect(token.RPAREN, "')' after expression")
		return &ast.GroupingExpr{LineNo: line, Inner: inner}
	}

	p.errorAtCurrent("expected expression")
	panic(errPanicMode)
}
