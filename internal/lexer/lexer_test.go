package lexer

import (
	"testing"

	"github.com/cwbudde/ecmaparse/pkg/token"
)

func TestIntegerAndFloatLiteralValues(t *testing.T) {
	tests := []struct {
		src      string
		wantLit  string
		wantNum  float64
		wantType token.Type
	}{
		{"0", "0", 0, token.NUMBER},
		{"123", "123", 123, token.NUMBER},
		{"0x1F", "0x1F", 31, token.NUMBER},
		{"0X10", "0X10", 16, token.NUMBER},
		{"3.5", "3.5", 3.5, token.NUMBER},
		{"1.5e2", "1.5e2", 150, token.NUMBER},
		{"2E+3", "2E+3", 2000, token.NUMBER},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			l := New(tt.src)
			tok := l.NextToken()
			if tok.Type != tt.wantType {
				t.Fatalf("type = %v, want %v", tok.Type, tt.wantType)
			}
			if tok.Literal != tt.wantLit {
				t.Fatalf("literal = %q, want %q", tok.Literal, tt.wantLit)
			}
			if tok.NumValue != tt.wantNum {
				t.Fatalf("numvalue = %v, want %v", tok.NumValue, tt.wantNum)
			}
		})
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	l := New("let x = await")

	tok := l.NextToken()
	if tok.Type != token.KEYWORD || tok.Keyword != token.KwLet {
		t.Fatalf("first token = %+v, want KEYWORD let", tok)
	}
	tok = l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "x" {
		t.Fatalf("second token = %+v, want IDENT x", tok)
	}
	tok = l.NextToken()
	if tok.Type != token.PUNCT {
		t.Fatalf("third token = %+v, want PUNCT =", tok)
	}
	tok = l.NextToken()
	if tok.Type != token.KEYWORD || tok.Keyword != token.KwAwait {
		t.Fatalf("fourth token = %+v, want KEYWORD await", tok)
	}
}

func TestBooleanAndNullLiterals(t *testing.T) {
	l := New("true false null")
	tok := l.NextToken()
	if tok.Type != token.BOOLEAN || tok.Literal != "true" {
		t.Fatalf("got %+v, want BOOLEAN true", tok)
	}
	tok = l.NextToken()
	if tok.Type != token.BOOLEAN || tok.Literal != "false" {
		t.Fatalf("got %+v, want BOOLEAN false", tok)
	}
	tok = l.NextToken()
	if tok.Type != token.NULLLIT {
		t.Fatalf("got %+v, want NULLLIT", tok)
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	l := New(`"a\nb" 'c\'d'`)
	tok := l.NextToken()
	if tok.Type != token.STRING || tok.Literal != "a\nb" {
		t.Fatalf("got %+v, want STRING a\\nb", tok)
	}
	tok = l.NextToken()
	if tok.Type != token.STRING || tok.Literal != "c'd" {
		t.Fatalf("got %+v, want STRING c'd", tok)
	}
}

func TestGoalSensitiveSlash(t *testing.T) {
	l := New("/abc/g")
	l.SetGoal(GoalRegExp)
	tok := l.NextToken()
	if tok.Type != token.REGEXP {
		t.Fatalf("got %+v, want REGEXP under GoalRegExp", tok)
	}

	l = New("/ 2")
	l.SetGoal(GoalDiv)
	tok = l.NextToken()
	if tok.Type != token.PUNCT || tok.Punct != token.SLASH {
		t.Fatalf("got %+v, want PUNCT SLASH under GoalDiv", tok)
	}
}

func TestNewlineBeforeTracksASIOpportunities(t *testing.T) {
	l := New("a\nb")
	tok := l.NextToken()
	if tok.NewlineBefore {
		t.Fatalf("first token should not report a preceding newline")
	}
	tok = l.NextToken()
	if !tok.NewlineBefore {
		t.Fatalf("second token should report a preceding newline")
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	l := New("a // line comment\n/* block */ b")
	tok := l.NextToken()
	if tok.Literal != "a" {
		t.Fatalf("got %+v, want IDENT a", tok)
	}
	tok = l.NextToken()
	if tok.Literal != "b" {
		t.Fatalf("got %+v, want IDENT b after skipped comments", tok)
	}
}

func TestEOFAtEndOfInput(t *testing.T) {
	l := New("  ")
	tok := l.NextToken()
	if tok.Type != token.EOF {
		t.Fatalf("got %+v, want EOF", tok)
	}
}
