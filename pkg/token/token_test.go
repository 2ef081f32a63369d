package token

import "testing"

func TestLookupKnownKeywords(t *testing.T) {
	tests := []struct {
		src  string
		want Keyword
	}{
		{"var", KwVar},
		{"let", KwLet},
		{"function", KwFunction},
		{"yield", KwYield},
		{"await", KwAwait},
		{"with", KwWith},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			kw, ok := Lookup(tt.src)
			if !ok {
				t.Fatalf("Lookup(%q) reported not-found", tt.src)
			}
			if kw != tt.want {
				t.Fatalf("Lookup(%q) = %v, want %v", tt.src, kw, tt.want)
			}
		})
	}
}

func TestLookupRejectsPlainIdentifier(t *testing.T) {
	if _, ok := Lookup("myVariable"); ok {
		t.Fatalf("Lookup reported a keyword match for a plain identifier")
	}
}

func TestKeywordStringRoundTripsLookup(t *testing.T) {
	for kw := range keywordNames {
		spelling := kw.String()
		got, ok := Lookup(spelling)
		if !ok || got != kw {
			t.Fatalf("String()/Lookup round trip failed for %v: spelling=%q got=%v ok=%v", kw, spelling, got, ok)
		}
	}
}

func TestUnknownKeywordString(t *testing.T) {
	if got := Keyword(-1).String(); got != "<unknown-keyword>" {
		t.Fatalf("String() for an invalid keyword = %q, want %q", got, "<unknown-keyword>")
	}
}

func TestIsStrictReservedOnly(t *testing.T) {
	for _, kw := range []Keyword{KwLet, KwYield, KwStatic} {
		if !IsStrictReservedOnly(kw) {
			t.Fatalf("%v should be strict-reserved-only", kw)
		}
	}
	for _, kw := range []Keyword{KwVar, KwFunction, KwIf} {
		if IsStrictReservedOnly(kw) {
			t.Fatalf("%v should not be strict-reserved-only", kw)
		}
	}
}

func TestTokenLengthMatchesSpan(t *testing.T) {
	tok := Token{
		Pos: Position{Line: 1, Column: 1},
		Span: Span{
			Start: Position{Line: 1, Column: 1},
			End:   Position{Line: 1, Column: 5},
		},
	}
	if got := tok.Length(); got != 4 {
		t.Fatalf("Length() = %d, want 4", got)
	}
}
