package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "httpintake",
	Short: "httpintake parses raw HTTP/1.x requests off sockets and files.",
	Long: `httpintake turns raw, untrusted HTTP/1.x bytes into validated requests.

Run 'httpintake serve' to accept connections, or 'httpintake inspect' to
look at a captured request.`,
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
