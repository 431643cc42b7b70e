package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// validate <file.csv>: check every recipient of a CSV file.
func validateCmd(c *cli) *cobra.Command {
	var flags sendFlags
	cmd := &cobra.Command{
		Use:   "validate <file.csv>",
		Short: "Validate the recipients of a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := c.buildRequest(cmd.Context(), args[0], &flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			res, err := c.client.ValidateRecipients(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.wantJSON() {
				if err := printJSON(out, res); err != nil {
					return err
				}
			} else {
				tw := newTable(out)
				fmt.Fprintln(tw, "#\tADDRESS\tAMOUNT\tVALID\tISSUES")
				for i, r := range res.Results {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, r.Address, r.Amount, yesNo(r.Valid), strings.Join(r.Issues, "; "))
				}
				tw.Flush()
				fmt.Fprintf(out, "\n%d recipients: %d valid, %d invalid. Ready to send: %s\n",
					res.TotalRecipients, res.ValidRecipients, res.InvalidRecipients, yesNo(res.ReadyToSend))
			}

			if !res.ReadyToSend {
				return fmt.Errorf("%d invalid recipients", res.InvalidRecipients)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
