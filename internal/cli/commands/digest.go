package commands

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/logicossoftware/go-binresource"
	"github.com/spf13/cobra"
	"github.com/zeebo/blake3"
)

func newDigestCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "digest FILE...",
		Short: "Print the BLAKE3 digest of each payload",
		Long: `Print the BLAKE3 digest of the payload of each FILE. The header is not
hashed, so rewriting metadata leaves the digest unchanged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				sum, n, err := payloadDigest(path)
				if err != nil {
					return err
				}
				a.logger.Debug("payload hashed", "path", path, "bytes", n)
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", hex.EncodeToString(sum), path)
			}
			return nil
		},
	}
}

func payloadDigest(path string) ([]byte, int64, error) {
	r, err := binresource.OpenFile(path)
	if err != nil {
		return nil, 0, err
	}
	defer r.Close()

	h := blake3.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return nil, n, fmt.Errorf("failed to read payload: %w", err)
	}
	return h.Sum(nil), n, nil
}
