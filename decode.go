package binresource

import (
	"encoding/binary"
	"fmt"
	"io"
)

// DecodeMetadata reads metadata encoded with the given header version from r.
//
// Every fixed-size read must complete; a short read fails with ErrTruncated
// naming the field. A length prefix above the field maximum fails with
// ErrFieldTooLong before anything is allocated for the content. Padding is
// consumed and discarded. For version 0 the tool version is not read and is
// reported as DefaultToolVersion.
//
// All errors wrap ErrReadMetadata.
func DecodeMetadata(version uint32, r io.Reader) (Metadata, error) {
	md, err := decodeMetadata(version, r)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %w", ErrReadMetadata, err)
	}
	return md, nil
}

func decodeMetadata(version uint32, r io.Reader) (Metadata, error) {
	var md Metadata
	var scratch [maxFieldSize]byte

	if err := readExact(r, scratch[:typeSize], "type"); err != nil {
		return Metadata{}, err
	}
	md.typ = binary.LittleEndian.Uint32(scratch[:typeSize])

	for i := range fieldLayout {
		f := stringField(i)
		if !f.present(version) {
			continue
		}
		s, err := readField(r, f, scratch[:])
		if err != nil {
			return Metadata{}, err
		}
		*f.get(&md) = s
	}
	if !fieldToolVersion.present(version) {
		md.toolVersion = DefaultToolVersion
	}

	if err := readExact(r, scratch[:generationDateSize], "generation date"); err != nil {
		return Metadata{}, err
	}
	md.generationDate = binary.LittleEndian.Uint64(scratch[:generationDateSize])
	return md, nil
}

// readField reads one length-prefixed, padded string field. scratch must
// hold at least maxFieldSize bytes.
func readField(r io.Reader, f stringField, scratch []byte) (string, error) {
	l := f.limit()
	if err := readExact(r, scratch[:lengthPrefixSize], l.name+" length"); err != nil {
		return "", err
	}
	n := binary.LittleEndian.Uint64(scratch[:lengthPrefixSize])
	if n > uint64(l.max) {
		return "", fmt.Errorf("%s length: %w: %d bytes, max size is %d", l.name, ErrFieldTooLong, n, l.max)
	}
	content := scratch[:n]
	if err := readExact(r, content, l.name); err != nil {
		return "", err
	}
	s := string(content)
	if err := readExact(r, scratch[:l.max-int(n)], l.name+" padding"); err != nil {
		return "", err
	}
	return s, nil
}
