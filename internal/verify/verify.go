// Package verify implements the codec verifier (C9): it re-decodes an
// archive's output folder and compares it against the original input
// folder, distinguishing exact matches from alpha-invisible mismatches
// and true failures. Grounded on original_source/src/common.rs's
// verify_images, extended with the InvisibleMatch tolerance rule
// spec.md §4.8 adds.
package verify

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/drojf/SpriteZip/internal/pngio"
	"github.com/drojf/SpriteZip/internal/raster"
	"github.com/drojf/SpriteZip/internal/walk"
)

// Result is the three-valued (four, counting NotFound) outcome of
// comparing one image pair.
type Result int

const (
	ExactMatch Result = iota
	InvisibleMatch
	Failure
	NotFound
)

func (r Result) String() string {
	switch r {
	case ExactMatch:
		return "exact match"
	case InvisibleMatch:
		return "invisible match"
	case Failure:
		return "failure"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Compare walks inputRoot for .png files (the same lexical order
// compress uses) and compares each against its counterpart under
// outputRoot, returning one Result per relative path.
func Compare(inputRoot, outputRoot string) (map[string]Result, error) {
	paths, err := walk.PNGs(inputRoot)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	results := make(map[string]Result, len(paths))
	for _, rel := range paths {
		results[rel] = compareOne(filepath.Join(inputRoot, rel), filepath.Join(outputRoot, rel))
	}
	return results, nil
}

func compareOne(inputPath, outputPath string) Result {
	inImg, err := decodeFile(inputPath)
	if err != nil {
		return Failure
	}

	outImg, err := decodeFile(outputPath)
	if err != nil {
		return NotFound
	}

	if inImg.Width != outImg.Width || inImg.Height != outImg.Height {
		return Failure
	}

	sawInvisibleMismatch := false
	for y := uint32(0); y < inImg.Height; y++ {
		for x := uint32(0); x < inImg.Width; x++ {
			a := inImg.At(x, y)
			b := outImg.At(x, y)
			if a == b {
				continue
			}
			// Invisible pixel: both fully transparent, RGB arbitrary.
			if a[3] == 0 && b[3] == 0 {
				sawInvisibleMismatch = true
				continue
			}
			return Failure
		}
	}

	if sawInvisibleMismatch {
		return InvisibleMatch
	}
	return ExactMatch
}

func decodeFile(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := pngio.DecodeRGBA(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
