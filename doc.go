// Package binresource implements self-describing binary resources: a fixed
// size metadata header in front of an opaque payload.
//
// The header records what the payload is (a type tag and a payload format
// version) and who produced it (tool name, version, free-form info and a
// generation date). [Reader] and [Writer] hide the header so that offset 0
// is the first payload byte.
//
// # File Format Overview
//
// All integers are little-endian.
//
//	offset 0   magic            8 bytes  Magic, or LegacyMagic for pre-versioning files
//	offset 8   header version   4 bytes  absent for LegacyMagic (implicit version 0)
//	then, for format version, tool name, tool version (version >= 1), tool info:
//	           length           8 bytes
//	           content          length bytes
//	           padding          field maximum - length, zero bytes
//	then       generation date  8 bytes
//
// String fields are padded to their maximum ([FormatVersionMaxSize],
// [ToolNameMaxSize], [ToolVersionMaxSize], [ToolInfoMaxSize]) so a header has
// the same size for every Metadata of a given version. [Writer.SetMetadata]
// relies on this to rewrite a header without moving the payload.
//
// # Basic Usage
//
// To create a resource:
//
//	tool := binresource.Tool{Type: 42, FormatVersion: "1.0.0", Name: "mytool", Version: "1.2.0"}
//	md, err := tool.Metadata(time.Now())
//	w, err := binresource.CreateFile("out.bin", md)
//	defer w.Close()
//	_, err = w.Write(payload)
//
// To read it back:
//
//	r, err := binresource.OpenFile("out.bin")
//	defer r.Close()
//	fmt.Println(r.Metadata().ToolName())
//	payload, err := io.ReadAll(r)
//
// # Compatibility
//
// Readers accept any header version up to [HeaderVersion], including legacy
// files. Writers opened on an existing resource require exactly
// [HeaderVersion]; there is no in-place migration of older files.
//
// A Reader or Writer owns its stream and is not safe for concurrent use.
package binresource
