package cmd

import (
	"fmt"

	"github.com/cwbudde/ecmaparse/internal/lexer"
	"github.com/cwbudde/ecmaparse/pkg/token"
	"github.com/spf13/cobra"
)

var (
	tokensShowPos bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize an ECMAScript file or expression",
	Long: `Tokenize a script and print the resulting token stream, one token
per line.

Examples:
  ecmaparse tokens script.js
  ecmaparse tokens -e "let x = 1;"
  ecmaparse tokens --show-pos script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	tokensCmd.Flags().BoolVar(&tokensShowPos, "show-pos", false, "show token positions (line:column)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, _, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(src)
	for {
		tok := l.NextToken()
		printToken(tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return nil
}

func printToken(tok token.Token) {
	var kind string
	switch tok.Type {
	case token.IDENT:
		kind = "IDENT"
	case token.KEYWORD:
		kind = "KEYWORD"
	case token.PUNCT:
		kind = "PUNCT"
	case token.STRING:
		kind = "STRING"
	case token.NUMBER:
		kind = "NUMBER"
	case token.REGEXP:
		kind = "REGEXP"
	case token.BOOLEAN:
		kind = "BOOLEAN"
	case token.NULLLIT:
		kind = "NULL"
	case token.EOF:
		kind = "EOF"
	default:
		kind = "ILLEGAL"
	}

	out := fmt.Sprintf("[%-8s] %s", kind, tok.String())
	if tokensShowPos {
		out += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(out)
}
