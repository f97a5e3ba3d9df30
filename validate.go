package binresource

import "fmt"

// NewMetadata builds a Metadata from its six fields.
//
// It fails with ErrWriteMetadata and ErrFieldTooLong when a string field is
// longer than its maximum; values exactly at the maximum are accepted.
// Nothing is truncated. Once built, a Metadata always encodes.
func NewMetadata(typ uint32, formatVersion, toolName, toolVersion, toolInfo string, generationDate uint64) (Metadata, error) {
	md := Metadata{
		typ:            typ,
		formatVersion:  formatVersion,
		toolName:       toolName,
		toolVersion:    toolVersion,
		toolInfo:       toolInfo,
		generationDate: generationDate,
	}
	if err := validateMetadata(&md); err != nil {
		return Metadata{}, err
	}
	return md, nil
}

func validateMetadata(md *Metadata) error {
	for i := range fieldLayout {
		f := stringField(i)
		if err := validateField(f, *f.get(md)); err != nil {
			return err
		}
	}
	return nil
}

func validateField(f stringField, v string) error {
	l := f.limit()
	if len(v) > l.max {
		return fmt.Errorf("%w: %s: %w: %d bytes, max size is %d", ErrWriteMetadata, l.name, ErrFieldTooLong, len(v), l.max)
	}
	return nil
}
