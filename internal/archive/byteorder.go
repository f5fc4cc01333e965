// Package archive implements the three-stream Spritezip container: an
// 8-byte header, a compressed image-data stream, a compressed bitmap
// stream, and a compressed metadata stream. Grounded on the teacher's
// internal/pmtiles/header.go (offset header, Serialize/Deserialize
// pairing) and original_source/src/extract.rs for the exact stream
// layout.
package archive

import "encoding/binary"

// HeaderSize is the fixed size, in bytes, of the archive's leading
// offset header: a single little-endian u64 giving the absolute byte
// offset of the metadata stream.
const HeaderSize = 8

// PutUint64LE writes v into the first 8 bytes of buf in little-endian
// order. Grounded on original_source/src/common.rs's
// u64_to_u8_buf_little_endian, generalized to binary.LittleEndian
// rather than a manual byte-shift loop since Go's stdlib already
// provides this primitive the way the teacher's header.go uses it.
func PutUint64LE(buf []byte, v uint64) {
	binary.LittleEndian.PutUint64(buf, v)
}

// Uint64LE reads a little-endian u64 from the first 8 bytes of buf.
// Grounded on original_source/src/common.rs's u8_buf_to_u64_little_endian.
func Uint64LE(buf []byte) uint64 {
	return binary.LittleEndian.Uint64(buf)
}
