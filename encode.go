package binresource

import (
	"encoding/binary"
	"fmt"
	"io"
)

// EncodeMetadata writes md to w in the current header version layout and
// returns the number of bytes written, which is always MetadataSize(HeaderVersion)
// on success.
func EncodeMetadata(w io.Writer, md Metadata) (int64, error) {
	return EncodeMetadataVersion(w, HeaderVersion, md)
}

// EncodeMetadataVersion writes md using the field set of the given header
// version. Version 0 has no tool version field. Versions newer than
// HeaderVersion are rejected with ErrFutureVersion.
//
// The layout is:
//   - type, 4 bytes
//   - for each of format version, tool name, tool version (version >= 1)
//     and tool info: an 8-byte length, the content, then zero padding up
//     to the field maximum
//   - generation date, 8 bytes
//
// Integers are little-endian. The encoded header is emitted as one Write.
func EncodeMetadataVersion(w io.Writer, version uint32, md Metadata) (int64, error) {
	if version > HeaderVersion {
		return 0, fmt.Errorf("%w: %w: %d, current is %d", ErrWriteMetadata, ErrFutureVersion, version, HeaderVersion)
	}
	if err := validateMetadata(&md); err != nil {
		return 0, err
	}
	buf := appendMetadata(make([]byte, 0, MetadataSize(version)), version, &md)
	n, err := writeAll(w, buf)
	if err != nil {
		return int64(n), fmt.Errorf("%w: %w: %w", ErrWriteMetadata, ErrIO, err)
	}
	return int64(n), nil
}

func appendMetadata(b []byte, version uint32, md *Metadata) []byte {
	var padding [maxFieldSize]byte
	b = binary.LittleEndian.AppendUint32(b, md.typ)
	for i := range fieldLayout {
		f := stringField(i)
		if !f.present(version) {
			continue
		}
		v := *f.get(md)
		b = binary.LittleEndian.AppendUint64(b, uint64(len(v)))
		b = append(b, v...)
		b = append(b, padding[:f.limit().max-len(v)]...)
	}
	return binary.LittleEndian.AppendUint64(b, md.generationDate)
}
