package binresource

// Maximum byte length of each string field. On the wire every field is
// padded to its maximum so the header size only depends on the version.
const (
	FormatVersionMaxSize = 512
	ToolNameMaxSize      = 512
	ToolVersionMaxSize   = 512
	ToolInfoMaxSize      = 2048

	maxFieldSize = ToolInfoMaxSize

	typeSize           = 4
	lengthPrefixSize   = 8
	generationDateSize = 8
)

type stringField int

const (
	fieldFormatVersion stringField = iota
	fieldToolName
	fieldToolVersion
	fieldToolInfo
)

type fieldLimit struct {
	name string
	max  int
	// since is the first header version carrying the field.
	since uint32
}

// fieldLayout lists the string fields in wire order.
var fieldLayout = [...]fieldLimit{
	fieldFormatVersion: {name: "format version", max: FormatVersionMaxSize},
	fieldToolName:      {name: "tool name", max: ToolNameMaxSize},
	fieldToolVersion:   {name: "tool version", max: ToolVersionMaxSize, since: 1},
	fieldToolInfo:      {name: "tool info", max: ToolInfoMaxSize},
}

func (f stringField) limit() fieldLimit { return fieldLayout[f] }

func (f stringField) present(version uint32) bool { return version >= fieldLayout[f].since }

func (f stringField) get(m *Metadata) *string {
	switch f {
	case fieldFormatVersion:
		return &m.formatVersion
	case fieldToolName:
		return &m.toolName
	case fieldToolVersion:
		return &m.toolVersion
	default:
		return &m.toolInfo
	}
}

// MetadataSize returns the encoded size of the metadata fields for the
// given header version, excluding magic and header version.
func MetadataSize(version uint32) int64 {
	n := int64(typeSize + generationDateSize)
	for i := range fieldLayout {
		f := stringField(i)
		if f.present(version) {
			n += int64(lengthPrefixSize + f.limit().max)
		}
	}
	return n
}
