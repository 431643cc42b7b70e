package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// tokens: list the tokens the server offers.
func tokensCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "List supported tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.client.TokenList(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.wantJSON() {
				return printJSON(out, list)
			}
			tw := newTable(out)
			fmt.Fprintln(tw, "SYMBOL\tNAME\tDECIMALS\tMINT")
			for _, t := range list {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", t.Symbol, t.Name, t.Decimals, t.Mint)
			}
			return tw.Flush()
		},
	}
}
