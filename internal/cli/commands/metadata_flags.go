package commands

import (
	"github.com/logicossoftware/go-binresource"
	"github.com/spf13/cobra"
)

// metadataFlags are the per-field overrides accepted by wrap and set-metadata.
type metadataFlags struct {
	typ           uint32
	formatVersion string
	toolName      string
	toolVersion   string
	toolInfo      string
	date          uint64
}

func (f *metadataFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Uint32Var(&f.typ, "type", 0, "Resource type tag")
	fs.StringVar(&f.formatVersion, "format-version", "", "Payload format version")
	fs.StringVar(&f.toolName, "tool-name", "", "Producing tool name")
	fs.StringVar(&f.toolVersion, "tool-version", "", "Producing tool version")
	fs.StringVar(&f.toolInfo, "tool-info", "", "Free-form tool information")
	fs.Uint64Var(&f.date, "date", 0, "Generation date in Unix seconds")
}

// apply builds Metadata from base, replacing every field whose flag was set.
func (f *metadataFlags) apply(cmd *cobra.Command, base binresource.Metadata) (binresource.Metadata, error) {
	fs := cmd.Flags()
	typ, formatVersion, toolName := base.Type(), base.FormatVersion(), base.ToolName()
	toolVersion, toolInfo, date := base.ToolVersion(), base.ToolInfo(), base.GenerationDate()
	if fs.Changed("type") {
		typ = f.typ
	}
	if fs.Changed("format-version") {
		formatVersion = f.formatVersion
	}
	if fs.Changed("tool-name") {
		toolName = f.toolName
	}
	if fs.Changed("tool-version") {
		toolVersion = f.toolVersion
	}
	if fs.Changed("tool-info") {
		toolInfo = f.toolInfo
	}
	if fs.Changed("date") {
		date = f.date
	}
	return binresource.NewMetadata(typ, formatVersion, toolName, toolVersion, toolInfo, date)
}
