// Command siplinedump tokenizes a SIP message dump and prints the token
// stream, one token per line. Malformed lines are reported and skipped.
package main

import (
	"os"

	"github.com/spf13/afero"
)

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
