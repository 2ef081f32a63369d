package cmd

import (
	"errors"
	"os"
)

var errNoInput = errors.New("either provide a file path or use -e flag for inline code")

func readFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
