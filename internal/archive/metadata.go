package archive

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ImageDescriptor is one record of the metadata stream's images_info
// sequence, per spec §6. The `toarray` marker makes cbor.Marshal emit
// (and cbor.Unmarshal expect) the fields as a CBOR array in declaration
// order rather than a map — this is what makes the encoding "stable" in
// the sense spec §6 requires, and is load-bearing for interop with the
// field order quoted there.
type ImageDescriptor struct {
	_ struct{} `cbor:",toarray"`

	// StartIndex is reserved; not consulted during extraction. Written
	// as 0, per spec.md §9's Open Question decision.
	StartIndex uint64

	X, Y                  uint32
	DiffWidth, DiffHeight  uint32
	OutputWidth, OutputHeight uint32
	OutputPath string
}

// DecompressionInfo is the single global metadata record stored in the
// metadata stream.
type DecompressionInfo struct {
	_ struct{} `cbor:",toarray"`

	// CanvasSize is legacy: written as {0,0} on encode, ignored on
	// decode. Kept for format stability per spec §9.
	CanvasSize [2]uint32

	// BitmapDataStart is the absolute byte offset, within the archive
	// file, where the compressed bitmap stream begins.
	BitmapDataStart uint64

	ImagesInfo []ImageDescriptor
}

// MarshalMetadata serializes info with fxamacker/cbor's default encoding
// options, preserving the toarray field order above. The toarray layout
// contains no maps, so no key sorting is involved.
func MarshalMetadata(info DecompressionInfo) ([]byte, error) {
	b, err := cbor.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("archive: marshal metadata: %w", err)
	}
	return b, nil
}

// UnmarshalMetadata deserializes a DecompressionInfo previously produced
// by MarshalMetadata. A failure here is always reported as
// ErrMalformedArchive, per the error taxonomy in spec §7.
func UnmarshalMetadata(b []byte) (DecompressionInfo, error) {
	var info DecompressionInfo
	if err := cbor.Unmarshal(b, &info); err != nil {
		return DecompressionInfo{}, fmt.Errorf("%w: decoding metadata: %v", ErrMalformedArchive, err)
	}
	return info, nil
}
