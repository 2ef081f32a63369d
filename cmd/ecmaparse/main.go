// Command ecmaparse is a CLI front-end over the ecmaparse parser core, used
// to tokenize or parse a script file from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/ecmaparse/cmd/ecmaparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
