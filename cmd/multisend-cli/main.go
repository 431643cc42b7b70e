// multisend-cli is a command-line client for a multisendd API server.
package main

import (
	"fmt"
	"os"

	"github.com/Klingon-tech/multisend/cmd/multisend-cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
