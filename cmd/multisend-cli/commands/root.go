// Package commands implements the multisend-cli command tree.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Klingon-tech/multisend/internal/apiclient"
)

// DefaultAPI is the server URL used when --api is not given.
const DefaultAPI = "http://127.0.0.1:8001"

// cli holds state shared by every subcommand.
type cli struct {
	apiURL  string
	jsonOut bool
	timeout time.Duration
	client  *apiclient.Client
	isTTY   func() bool
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&cli{
		isTTY: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
	})
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "multisend-cli",
		Short:         "Command-line client for the Solana Multi-Send API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.apiURL == "" {
				c.apiURL = os.Getenv("MULTISEND_API")
			}
			if c.apiURL == "" {
				c.apiURL = DefaultAPI
			}
			c.client = apiclient.NewWithTimeout(c.apiURL, c.timeout)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.apiURL, "api", "", "API base URL (default $MULTISEND_API or "+DefaultAPI+")")
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "print raw JSON instead of tables")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 10*time.Second, "HTTP request timeout")

	root.AddCommand(
		validateCmd(c),
		estimateCmd(c),
		parseCmd(c),
		tokensCmd(c),
		historyCmd(c),
		saveCmd(c),
	)
	return root
}

// wantJSON reports whether output should be JSON: when asked for, or when
// stdout is not a terminal.
func (c *cli) wantJSON() bool {
	return c.jsonOut || !c.isTTY()
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// shorten abbreviates long identifiers for table cells.
func shorten(s string, n int) string {
	if len(s) <= n || n < 8 {
		return s
	}
	half := (n - 3) / 2
	return fmt.Sprintf("%s...%s", s[:half], s[len(s)-half:])
}
