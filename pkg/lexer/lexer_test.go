package lexer

import "testing"

func TestNextTokenOperators(t *testing.T) {
	input := `int x = 1; x += 2; x <<= 1; x >>= 1; *&x; x == x != x <= x >= x && x || x;`

	tests := []struct {
		wantType TokenType
		wantLit  string
	}{
		{TokenIntKw, "int"},
		{TokenIdent, "x"},
		{TokenAssign, "="},
		{TokenInt, "1"},
		{TokenSemicolon, ";"},
		{TokenIdent, "x"},
		{TokenPlusEq, "+="},
		{TokenInt, "2"},
		{TokenSemicolon, ";"},
		{TokenIdent, "x"},
		{TokenShlEq, "<<="},
		{TokenInt, "1"},
		{TokenSemicolon, ";"},
		{TokenIdent, "x"},
		{TokenShrEq, ">>="},
		{TokenInt, "1"},
		{TokenSemicolon, ";"},
		{TokenStar, "*"},
		{TokenAmp, "&"},
		{TokenIdent, "x"},
		{TokenSemicolon, ";"},
		{TokenIdent, "x"},
		{TokenEq, "=="},
		{TokenIdent, "x"},
		{TokenNotEq, "!="},
		{TokenIdent, "x"},
		{TokenLe, "<="},
		{TokenIdent, "x"},
		{TokenGe, ">="},
		{TokenIdent, "x"},
		{TokenAmpAmp, "&&"},
		{TokenIdent, "x"},
		{TokenPipePipe, "||"},
		{TokenIdent, "x"},
		{TokenSemicolon, ";"},
		{TokenEOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Fatalf("test %d: type = %s, want %s (lit %q)", i, tok.Type, tt.wantType, tok.Literal)
		}

		if tok.Literal != tt.wantLit {
			t.Fatalf("test %d: literal = %q, want %q", i, tok.Literal, tt.wantLit)
		}
	}
}

func TestNextTokenNumberLiterals(t *testing.T) {
	input := `0 42 0x1A 0XFF 3.14 0.5`

	tests := []struct {
		wantType TokenType
		wantLit  string
	}{
		{TokenInt, "0"},
		{TokenInt, "42"},
		{TokenInt, "0x1A"},
		{TokenInt, "0XFF"},
		{TokenFloat, "3.14"},
		{TokenFloat, "0.5"},
		{TokenEOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType || tok.Literal != tt.wantLit {
			t.Fatalf("test %d: got (%s, %q), want (%s, %q)", i, tok.Type, tok.Literal, tt.wantType, tt.wantLit)
		}
	}
}

func TestNextTokenKeywordsAndIdents(t *testing.T) {
	input := `void char short int long float double signed unsigned print foo_bar Baz123`

	tests := []TokenType{
		TokenVoid, TokenChar, TokenShort, TokenIntKw, TokenLong,
		TokenFloatKw, TokenDouble, TokenSigned, TokenUnsigned, TokenPrint,
		TokenIdent, TokenIdent, TokenEOF,
	}

	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("test %d: type = %s, want %s", i, tok.Type, want)
		}
	}
}

func TestNextTokenIdentifierOverflow(t *testing.T) {
	long := ""
	for i := 0; i < 65; i++ {
		long += "a"
	}

	l := NewWithLimit(long, 64)
	tok := l.NextToken()
	if tok.Type != TokenIllegal {
		t.Fatalf("type = %s, want ILLEGAL for %d-byte identifier", tok.Type, len(long))
	}
}

func TestNextTokenIllegalQuote(t *testing.T) {
	l := New(`"hi"`)
	tok := l.NextToken()
	if tok.Type != TokenIllegal {
		t.Fatalf("type = %s, want ILLEGAL for string literal", tok.Type)
	}
}

func TestNextTokenLineAndColumn(t *testing.T) {
	l := New("x\ny")
	first := l.NextToken()
	if first.Line != 1 {
		t.Fatalf("first token line = %d, want 1", first.Line)
	}

	second := l.NextToken()
	if second.Line != 2 {
		t.Fatalf("second token line = %d, want 2", second.Line)
	}
}
