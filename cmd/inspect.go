package cmd

import (
	"fmt"
	"io"
	"os"

	"httpintake/internal/config"
	"httpintake/internal/http/request"
	"httpintake/internal/inspect"

	"github.com/spf13/cobra"
)

var inspectPlain bool

var inspectCmd = &cobra.Command{
	Use:   "inspect [file|-]",
	Short: "Parse a raw request from a file or stdin and describe it",
	Long: `Parse a captured HTTP/1.x request with the configured limits and print its
head, form fields and multipart parts. Each part is listed with its size
and BLAKE2b-256 digest. Colours are disabled by --plain or NO_COLOR.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		src := "-"
		if len(args) == 1 {
			src = args[0]
		}
		raw, err := readSource(cmd.InOrStdin(), src)
		if err != nil {
			return err
		}

		plain := inspectPlain || os.Getenv("NO_COLOR") != ""
		return runInspect(cmd.OutOrStdout(), raw, plain)
	},
}

func readSource(stdin io.Reader, src string) ([]byte, error) {
	if src == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	return raw, nil
}

func runInspect(w io.Writer, raw []byte, plain bool) error {
	cfg, err := config.MustLoad()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	status, req, err := request.Parse(raw, cfg.Limits())
	if err != nil {
		return fmt.Errorf("parse request: %w", err)
	}
	if status != request.Complete {
		return fmt.Errorf("parse request: input ends before the request is complete (%d bytes read)", len(raw))
	}

	return inspect.Render(w, req, inspect.Options{Plain: plain})
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectPlain, "plain", false, "disable colours and text attributes")
	rootCmd.AddCommand(inspectCmd)
}
