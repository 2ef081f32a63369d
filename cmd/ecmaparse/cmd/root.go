package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ecmaparse",
	Short: "ECMAScript script recogniser",
	Long: `ecmaparse is a hand-written recursive-descent parser for a
top-level ECMAScript Script: it consumes a token stream and produces a
validated abstract syntax tree, or the first syntax error.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// evalExpr holds inline source passed via -e/--eval, shared by the parse
// and tokens subcommands.
var evalExpr string

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

func readSource(args []string) (src, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := readFile(args[0])
		if readErr != nil {
			return "", "", readErr
		}
		return content, args[0], nil
	}
	return "", "", errNoInput
}
