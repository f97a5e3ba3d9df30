package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/logicossoftware/go-binresource"
	"github.com/spf13/cobra"
)

func newUnwrapCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unwrap FILE OUT",
		Short: "Copy the payload of FILE into OUT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := binresource.OpenFile(args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			out, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			n, err := io.Copy(out, r)
			if err != nil {
				_ = out.Close()
				return fmt.Errorf("failed to copy payload: %w", err)
			}
			if err := out.Close(); err != nil {
				return err
			}
			a.logger.Info("payload extracted", "path", args[1], "bytes", n)
			return nil
		},
	}
}
