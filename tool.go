package binresource

import "time"

// Tool holds the fixed identity of a resource producer. Tools typically
// declare one package-level Tool and build every Metadata through it:
//
//	var traceTool = binresource.Tool{
//		Type:          0x74726163,
//		FormatVersion: "2.1.0",
//		Name:          "tracer",
//		Version:       "4.0.0",
//		Info:          "tracer 4.0.0, binresource writer",
//	}
//
//	md, err := traceTool.Metadata(time.Now())
type Tool struct {
	Type          uint32
	FormatVersion string
	Name          string
	Version       string
	Info          string
}

// Validate reports whether the tool's strings fit the field maxima.
func (t Tool) Validate() error {
	_, err := t.MetadataAt(0)
	return err
}

// Metadata builds the tool's Metadata stamped with generated as Unix seconds.
func (t Tool) Metadata(generated time.Time) (Metadata, error) {
	return t.MetadataAt(uint64(generated.Unix()))
}

// MetadataAt builds the tool's Metadata with a raw generation date.
func (t Tool) MetadataAt(generationDate uint64) (Metadata, error) {
	return NewMetadata(t.Type, t.FormatVersion, t.Name, t.Version, t.Info, generationDate)
}
