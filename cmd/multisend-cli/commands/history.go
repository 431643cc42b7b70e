package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Klingon-tech/multisend/internal/history"
	"github.com/Klingon-tech/multisend/internal/tokens"
)

// history <wallet>: list a sender's saved multi-sends.
func historyCmd(c *cli) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history <wallet>",
		Short: "Show a wallet's multi-send history, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := c.client.TransactionHistory(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.wantJSON() {
				return printJSON(out, recs)
			}
			if len(recs) == 0 {
				fmt.Fprintln(out, "No transactions.")
				return nil
			}
			tw := newTable(out)
			fmt.Fprintln(tw, "TIME\tID\tTOKEN\tRECIPIENTS\tAMOUNT\tFEE\tSTATUS")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
					r.Timestamp.Local().Format(time.DateTime), r.ID, tokenLabel(r.TokenMint),
					r.RecipientCount, r.TotalAmount, r.DeveloperFee, r.Status)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", history.DefaultLimit, "maximum number of records")
	return cmd
}

// save: record a submitted multi-send.
func saveCmd(c *cli) *cobra.Command {
	var (
		sender, token, amount, devFee, status string
		count                                 int
		sigs                                  []string
	)
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Record a submitted multi-send in the history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid --amount %q: %w", amount, err)
			}
			rec := history.Record{
				SenderWallet:   sender,
				TokenMint:      tokens.ResolveMint(token),
				RecipientCount: count,
				TotalAmount:    total,
				Status:         history.Status(status),
				Signatures:     sigs,
			}
			if devFee != "" {
				if rec.DeveloperFee, err = decimal.NewFromString(devFee); err != nil {
					return fmt.Errorf("invalid --fee %q: %w", devFee, err)
				}
			}

			saved, err := c.client.SaveTransaction(cmd.Context(), rec)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.wantJSON() {
				return printJSON(out, saved)
			}
			fmt.Fprintf(out, "Saved %s (%s, %d recipients, %s %s)\n",
				saved.ID, saved.Status, saved.RecipientCount, saved.TotalAmount, tokenLabel(saved.TokenMint))
			return nil
		},
	}
	cmd.Flags().StringVar(&sender, "sender", "", "sender wallet address")
	cmd.Flags().StringVar(&token, "token", "SOL", "token symbol or mint address")
	cmd.Flags().IntVar(&count, "count", 0, "number of recipients")
	cmd.Flags().StringVar(&amount, "amount", "0", "total amount sent")
	cmd.Flags().StringVar(&devFee, "fee", "", "developer fee paid")
	cmd.Flags().StringVar(&status, "status", string(history.StatusPending), "pending, confirmed or failed")
	cmd.Flags().StringSliceVar(&sigs, "sig", nil, "transaction signature (repeatable)")
	_ = cmd.MarkFlagRequired("sender")
	return cmd
}

// tokenLabel shows a known token by symbol and others by shortened mint.
func tokenLabel(mint string) string {
	if t, ok := tokens.ByMint(mint); ok {
		return t.Symbol
	}
	return shorten(mint, 13)
}
