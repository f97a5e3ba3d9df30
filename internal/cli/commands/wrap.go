package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/logicossoftware/go-binresource"
	"github.com/spf13/cobra"
)

// now is replaced in tests.
var now = time.Now

func newWrapCommand(a *app) *cobra.Command {
	var flags metadataFlags
	cmd := &cobra.Command{
		Use:   "wrap PAYLOAD OUT",
		Short: "Write PAYLOAD behind a new header into OUT",
		Long: `Write PAYLOAD behind a new header into OUT.

Metadata fields default to the configured tool identity and the current
time; each can be overridden with a flag.

Examples:
  binres wrap trace.raw trace.bin
  binres wrap --type 42 --format-version 2.0.0 trace.raw trace.bin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := a.cfg.BinTool().Metadata(now())
			if err != nil {
				return err
			}
			md, err := flags.apply(cmd, base)
			if err != nil {
				return err
			}
			n, headerSize, err := wrapFile(args[0], args[1], md)
			if err != nil {
				return err
			}
			a.logger.Info("resource written", "path", args[1], "header_size", headerSize, "payload_bytes", n)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func wrapFile(payloadPath, outPath string, md binresource.Metadata) (int64, int64, error) {
	in, err := os.Open(payloadPath)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open payload: %w", err)
	}
	defer in.Close()

	w, err := binresource.CreateFile(outPath, md)
	if err != nil {
		return 0, 0, err
	}
	n, err := io.Copy(w, in)
	if err != nil {
		_ = w.Close()
		return n, 0, fmt.Errorf("failed to write payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return n, 0, err
	}
	return n, w.MetadataSize(), nil
}
