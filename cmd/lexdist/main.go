// Command lexdist compares languages by the lexical distance of their ASJP
// word lists.
package main

import (
	"os"

	"github.com/katalvlaran/lexdist/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
