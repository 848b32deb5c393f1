// Command clrdecl converts CLR assembly metadata exports into
// TypeScript declaration files plus a binding sidecar.
package main

import (
	"os"

	"github.com/clrdecl/clrdecl/logger"
)

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
