package parser

import (
	"github.com/ferronlang/lox/lang/ast"
	"github.com/ferronlang/lox/lang/token"
)

const maxArgs = 255

func (p *parser) declaration() (decl ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.synchronize()
			decl = nil
		}
	}()

	switch {
	case p.matchTok(token.CLASS):
		return p.classDecl()
	case p.matchTok(token.DEF):
		return p.funDecl("function")
	case p.matchTok(token.VAR):
		return p.varDecl()
	default:
		return p.statement()
	}
}

func (p *parser) classDecl() ast.Stmt {
	line := p.prev.Line
	name := p.expectIdent("class name")

	var super *ast.VariableExpr
	if p.matchTok(token.COLON) {
		superLine := p.val.Line
		superName := p.expectIdent("superclass name")
		super = &ast.VariableExpr{LineNo: superLine, Name: superName, Site: p.site()}
	}

	p.expect(token.LBRACE, "'{' before class body")
	var methods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && p.tok != token.EOF {
		methods = append(methods, p.funDecl("method"))
	}
	p.expect(token.RBRACE, "'}' after class body")

	return &ast.ClassStmt{LineNo: line, Name: name, Superclass: super, Methods: methods}
}

func (p *parser) funDecl(kind string) *ast.FunctionStmt {
	line := p.val.Line
	name := p.expectIdent(kind + " name")
	p.expect(token.LPAREN, "'(' after "+kind+" name")

	var params []string
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAtCurrent("can't have more than 255 parameters")
			}
			params = append(params, p.expectIdent("parameter name"))
			if !p.matchTok(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN, "')' after parameters")
	p.expect(token.LBRACE, "'{' before "+kind+" body")
	body := p.block()
	return &ast.FunctionStmt{LineNo: line, Name: name, Params: params, Body: body}
}

func (p *parser) varDecl() ast.Stmt {
	line := p.prev.Line
	name := p.expectIdent("variable name")

	var init ast.Expr
	if p.matchTok(token.EQ) {
		init = p.expression()
	}
	p.expect(token.SEMICOLON, "';' after variable declaration")
	return &ast.VarStmt{LineNo: line, Name: name, Initializer: init}
}

// block parses the statements between an already-consumed '{' and the
// matching '}', without wrapping them in a BlockStmt; callers that need the
// scoping node (as opposed to a function/method body) wrap the result
// themselves.
func (p *parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && p.tok != token.EOF {
		if d := p.declaration(); d != nil {
			stmts = append(stmts, d)
		}
	}
	p.expect(token.RBRACE, "'}' after block")
	return stmts
}
