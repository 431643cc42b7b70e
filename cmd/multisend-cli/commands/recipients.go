package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/multisend/internal/api"
	"github.com/Klingon-tech/multisend/internal/tokens"
)

// uploadCSV sends a recipient file to the server for parsing.
func (c *cli) uploadCSV(ctx context.Context, path string) (*api.ParseCSVResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return c.client.ParseCSV(ctx, filepath.Base(path), f)
}

// sendFlags are the flags shared by validate and estimate.
type sendFlags struct {
	token  string
	sender string
}

func (f *sendFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.token, "token", "SOL", "token symbol (SOL, USDC, USDT) or mint address")
	cmd.Flags().StringVar(&f.sender, "sender", "", "sender wallet address")
	_ = cmd.MarkFlagRequired("sender")
}

// buildRequest parses the file and turns its rows into a multi-send request.
// Row errors are reported on errOut and do not stop the request.
func (c *cli) buildRequest(ctx context.Context, path string, f *sendFlags, errOut io.Writer) (*api.MultiSendRequest, error) {
	parsed, err := c.uploadCSV(ctx, path)
	if err != nil {
		return nil, err
	}
	for _, e := range parsed.Errors {
		fmt.Fprintf(errOut, "Warning: %s\n", e)
	}
	if parsed.Count == 0 {
		return nil, fmt.Errorf("%s contains no recipients", path)
	}
	return &api.MultiSendRequest{
		TokenMint:    tokens.ResolveMint(f.token),
		SenderWallet: f.sender,
		Recipients:   parsed.Recipients,
	}, nil
}
