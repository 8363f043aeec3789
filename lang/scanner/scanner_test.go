package scanner_test

import (
	"testing"

	"github.com/ferronlang/lox/lang/scanner"
	"github.com/ferronlang/lox/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) ([]token.Token, []token.Value, []scanner.Error) {
	t.Helper()

	var errs scanner.ErrorList
	var s scanner.Scanner
	s.Init([]byte(src), errs.Add)

	var toks []token.Token
	var vals []token.Value
	for {
		tok, val := s.Scan()
		toks = append(toks, tok)
		vals = append(vals, val)
		if tok == token.EOF {
			break
		}
	}
	return toks, vals, errs
}

func TestScanPunctuation(t *testing.T) {
	toks, _, errs := scanAll(t, "(){},.-+;*/! != = == < <= > >= :")
	require.Empty(t, errs)
	want := []token.Token{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.SLASH, token.BANG, token.BANG_EQ, token.EQ, token.EQ_EQ,
		token.LT, token.LT_EQ, token.GT, token.GT_EQ, token.COLON, token.EOF,
	}
	assert.Equal(t, want, toks)
}

func TestScanKeywordsAndIdents(t *testing.T) {
	toks, vals, errs := scanAll(t, "var foo = nil; class Bar")
	require.Empty(t, errs)
	require.Equal(t, []token.Token{
		token.VAR, token.IDENT, token.EQ, token.NIL, token.SEMICOLON,
		token.CLASS, token.IDENT, token.EOF,
	}, toks)
	assert.Equal(t, "foo", vals[1].Lexeme)
	assert.Equal(t, "Bar", vals[6].Lexeme)
}

func TestScanNumber(t *testing.T) {
	toks, vals, errs := scanAll(t, "123 4.5")
	require.Empty(t, errs)
	require.Equal(t, []token.Token{token.NUMBER, token.NUMBER, token.EOF}, toks)
	assert.Equal(t, 123.0, vals[0].Number)
	assert.Equal(t, 4.5, vals[1].Number)
}

func TestScanStringNoEscapes(t *testing.T) {
	toks, vals, errs := scanAll(t, `"a\nb"`)
	require.Empty(t, errs)
	require.Equal(t, []token.Token{token.STRING, token.EOF}, toks)
	// No escape processing: the backslash and 'n' are literal characters.
	assert.Equal(t, `a\nb`, vals[0].Str)
}

func TestScanUnterminatedString(t *testing.T) {
	_, _, errs := scanAll(t, `"abc`)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Line)
	assert.Contains(t, errs[0].Msg, "unterminated string")
}

func TestScanLineComment(t *testing.T) {
	toks, _, errs := scanAll(t, "1 // a comment\n2")
	require.Empty(t, errs)
	assert.Equal(t, []token.Token{token.NUMBER, token.NUMBER, token.EOF}, toks)
}

func TestScanLineTracking(t *testing.T) {
	_, vals, errs := scanAll(t, "1\n2\n\n3")
	require.Empty(t, errs)
	assert.Equal(t, 1, vals[0].Line)
	assert.Equal(t, 2, vals[1].Line)
	assert.Equal(t, 4, vals[2].Line)
}

func TestErrorListFormat(t *testing.T) {
	var errs scanner.ErrorList
	errs.Add(3, "bad token")
	assert.Equal(t, "[line 3] bad token", errs.Err().Error())
}
