package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// parse <file.csv>: show how the server reads a recipient file.
func parseCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file.csv>",
		Short: "Parse a CSV recipient file without validating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.uploadCSV(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.wantJSON() {
				return printJSON(out, res)
			}
			tw := newTable(out)
			fmt.Fprintln(tw, "#\tADDRESS\tAMOUNT")
			for i, r := range res.Recipients {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, r.WalletAddress, r.Amount)
			}
			tw.Flush()
			fmt.Fprintf(out, "\n%d recipients\n", res.Count)
			for _, e := range res.Errors {
				fmt.Fprintf(out, "  %s\n", e)
			}
			return nil
		},
	}
}
