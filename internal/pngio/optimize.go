package pngio

import (
	"bytes"
	"fmt"
	"image/png"
)

// MaxOptimizeLevel is the highest size-optimization level accepted;
// levels above this clamp to it, per spec §6.
const MaxOptimizeLevel = 6

// Optimize re-encodes a PNG at an increasing compression effort keyed
// by level (clamped to [0, MaxOptimizeLevel]). It decodes and
// re-encodes through the same stdlib image/png path DecodeRGBA and
// EncodeRGBA use, so bit depth, color type, and palette are never
// altered — only the deflate effort changes. Grounded on
// original_source/src/extract.rs's oxipng integration point; ported to
// a stdlib re-encode since no PNG-optimizer crate appears anywhere in
// the retrieved pack (see DESIGN.md).
func Optimize(data []byte, level int) ([]byte, error) {
	if level < 0 {
		level = 0
	}
	if level > MaxOptimizeLevel {
		level = MaxOptimizeLevel
	}

	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: optimizing: %v", ErrDecodeFailure, err)
	}

	enc := &png.Encoder{CompressionLevel: compressionLevelFor(level)}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, src); err != nil {
		return nil, fmt.Errorf("pngio: re-encoding at level %d: %w", level, err)
	}
	return buf.Bytes(), nil
}

func compressionLevelFor(level int) png.CompressionLevel {
	switch {
	case level <= 0:
		return png.NoCompression
	case level <= 2:
		return png.BestSpeed
	case level <= 4:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}
