package commands

import (
	"github.com/logicossoftware/go-binresource"
	"github.com/spf13/cobra"
)

func newSetMetadataCommand(a *app) *cobra.Command {
	var flags metadataFlags
	cmd := &cobra.Command{
		Use:   "set-metadata FILE",
		Short: "Rewrite the header of FILE in place",
		Long: `Rewrite the header of FILE in place, keeping the payload untouched.

Fields without a flag keep their current value. FILE must use the current
header version; older resources can be read but not rewritten.

Examples:
  binres set-metadata --tool-info "re-stamped by ci" trace.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := readMetadata(args[0])
			if err != nil {
				return err
			}
			md, err := flags.apply(cmd, current)
			if err != nil {
				return err
			}

			w, err := binresource.OpenFileWriter(args[0])
			if err != nil {
				return err
			}
			if err := w.SetMetadata(md); err != nil {
				_ = w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}
			a.logger.Info("metadata rewritten", "path", args[0], "header_size", w.MetadataSize())
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func readMetadata(path string) (binresource.Metadata, error) {
	r, err := binresource.OpenFile(path)
	if err != nil {
		return binresource.Metadata{}, err
	}
	defer r.Close()
	return r.Metadata(), nil
}
