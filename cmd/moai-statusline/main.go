// Command moai-statusline prints the active MoAI task for editor statuslines.
package main

import (
	"os"

	"github.com/moai-adk/moai-statusline/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
