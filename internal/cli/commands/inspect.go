package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/logicossoftware/go-binresource"
	"github.com/logicossoftware/go-binresource/internal/cli/output"
	"github.com/spf13/cobra"
)

// resourceInfo is the machine readable output of inspect.
type resourceInfo struct {
	Path           string `json:"path" yaml:"path"`
	HeaderVersion  uint32 `json:"header_version" yaml:"header_version"`
	HeaderSize     int64  `json:"header_size" yaml:"header_size"`
	PayloadSize    int64  `json:"payload_size" yaml:"payload_size"`
	Type           uint32 `json:"type" yaml:"type"`
	FormatVersion  string `json:"format_version" yaml:"format_version"`
	ToolName       string `json:"tool_name" yaml:"tool_name"`
	ToolVersion    string `json:"tool_version" yaml:"tool_version"`
	ToolInfo       string `json:"tool_info" yaml:"tool_info"`
	GenerationDate uint64 `json:"generation_date" yaml:"generation_date"`
}

// Pairs implements output.Pairer.
func (i resourceInfo) Pairs() [][2]string {
	generated := time.Unix(int64(i.GenerationDate), 0).UTC().Format(time.RFC3339)
	return [][2]string{
		{"Header version", strconv.FormatUint(uint64(i.HeaderVersion), 10)},
		{"Header size", strconv.FormatInt(i.HeaderSize, 10)},
		{"Payload size", strconv.FormatInt(i.PayloadSize, 10)},
		{"Type", fmt.Sprintf("%d (%#08x)", i.Type, i.Type)},
		{"Format version", i.FormatVersion},
		{"Tool name", i.ToolName},
		{"Tool version", i.ToolVersion},
		{"Tool info", i.ToolInfo},
		{"Generation date", fmt.Sprintf("%d (%s)", i.GenerationDate, generated)},
	}
}

func newInspectCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the header of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			info, err := inspectFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("header read", "path", info.Path, "header_size", info.HeaderSize)
			return output.Print(cmd.OutOrStdout(), f, info)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

func inspectFile(path string) (resourceInfo, error) {
	r, err := binresource.OpenFile(path)
	if err != nil {
		return resourceInfo{}, err
	}
	defer r.Close()

	size, err := r.Size()
	if err != nil {
		return resourceInfo{}, fmt.Errorf("failed to size payload: %w", err)
	}
	md := r.Metadata()
	return resourceInfo{
		Path:           path,
		HeaderVersion:  r.HeaderVersion(),
		HeaderSize:     r.MetadataSize(),
		PayloadSize:    size,
		Type:           md.Type(),
		FormatVersion:  md.FormatVersion(),
		ToolName:       md.ToolName(),
		ToolVersion:    md.ToolVersion(),
		ToolInfo:       md.ToolInfo(),
		GenerationDate: md.GenerationDate(),
	}, nil
}
