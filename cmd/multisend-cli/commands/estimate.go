package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// estimate <file.csv>: compute fees for sending to a CSV file's recipients.
func estimateCmd(c *cli) *cobra.Command {
	var flags sendFlags
	cmd := &cobra.Command{
		Use:   "estimate <file.csv>",
		Short: "Estimate developer and network fees for a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := c.buildRequest(cmd.Context(), args[0], &flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			est, err := c.client.EstimateFees(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.wantJSON() {
				return printJSON(out, est)
			}
			fmt.Fprintf(out, "Recipients:    %d\n", est.TotalRecipients)
			fmt.Fprintf(out, "Transactions:  %d\n", est.TransactionCount)
			fmt.Fprintf(out, "Fee recipient: %s\n\n", est.DeveloperFeeRecipient)
			fmt.Fprintln(out, est.Breakdown)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
