package binresource

import "time"

const (
	// HeaderVersion is the header version written by this package. It is
	// bumped whenever the set of metadata fields changes.
	HeaderVersion uint32 = 1

	// Magic is the 8-byte signature ("rvnbinrs") of versioned resources.
	Magic uint64 = 0x72766e62696e7273

	// LegacyMagic identifies resources written before the header version
	// existed. Those carry no version field and decode as version 0.
	LegacyMagic uint64 = 0x7262696e72737263

	// DefaultToolVersion is reported for headers older than version 1,
	// which had no tool version field.
	DefaultToolVersion = "1.0.0-prerelease"

	magicSize         = 8
	headerVersionSize = 4

	// metadataOffset is where the metadata fields start in a versioned resource.
	metadataOffset = magicSize + headerVersionSize
)

// Metadata describes the provenance of a resource.
//
// Values are built with [NewMetadata] (usually through a [Tool]) or obtained
// from a decoded header. The zero value is valid and has empty fields.
type Metadata struct {
	typ            uint32
	formatVersion  string
	toolName       string
	toolVersion    string
	toolInfo       string
	generationDate uint64
}

// Type is the tag identifying the semantic kind of the resource.
func (m Metadata) Type() uint32 { return m.typ }

// FormatVersion is the version of the payload format, conventionally "x.y.z[-suffix]".
func (m Metadata) FormatVersion() string { return m.formatVersion }

// ToolName is the name of the tool that produced the resource.
func (m Metadata) ToolName() string { return m.toolName }

// ToolVersion is the version of the producing tool.
func (m Metadata) ToolVersion() string { return m.toolVersion }

// ToolInfo is free-form text, typically tool and writer library versions.
func (m Metadata) ToolInfo() string { return m.toolInfo }

// GenerationDate is the opaque generation timestamp.
func (m Metadata) GenerationDate() uint64 { return m.generationDate }

// GenerationTime interprets GenerationDate as Unix seconds.
func (m Metadata) GenerationTime() time.Time {
	return time.Unix(int64(m.generationDate), 0).UTC()
}
