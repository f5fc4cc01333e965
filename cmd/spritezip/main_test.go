package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/drojf/SpriteZip/internal/archive"
	"github.com/drojf/SpriteZip/internal/delta"
	"github.com/drojf/SpriteZip/internal/pngio"
	"github.com/drojf/SpriteZip/internal/raster"
	"github.com/drojf/SpriteZip/internal/verify"
	"github.com/drojf/SpriteZip/internal/walk"
)

// chdirTemp switches the working directory to a fresh temp dir for the
// duration of the test, restoring the original on cleanup. The driver
// operates on fixed relative paths (input_images/, output_images/,
// compressed_images.brotli), so exercising it end to end means running
// it from a scratch directory.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatalf("restoring cwd: %v", err)
		}
	})
	return dir
}

func writeFixturePNG(t *testing.T, path string, img *raster.Image) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()
	if err := pngio.EncodeRGBA(f, img); err != nil {
		t.Fatalf("EncodeRGBA: %v", err)
	}
}

// TestCompressExtractVerifyRoundTrip drives the three core library
// calls the compress/extract/verify modes wire together, bypassing
// main's os.Exit-happy flag parsing and log.Fatalf exits (neither is
// friendly to a test binary). It exercises the same package-level
// entry points runCompress/runExtract/runVerify call.
func TestCompressExtractVerifyRoundTrip(t *testing.T) {
	chdirTemp(t)

	frameA := raster.New(4, 4)
	for y := uint32(0); y < 4; y++ {
		for x := uint32(0); x < 4; x++ {
			frameA.Set(x, y, [4]byte{byte(x * 10), byte(y * 10), 200, 255})
		}
	}
	// frameB differs from frameA only at (1,1), exercising a small diff.
	frameB := raster.New(4, 4)
	copy(frameB.Pix, frameA.Pix)
	frameB.Set(1, 1, [4]byte{9, 9, 9, 9})

	writeFixturePNG(t, filepath.Join(inputDir, "a.png"), frameA)
	writeFixturePNG(t, filepath.Join(inputDir, "sub", "b.png"), frameB)

	paths, err := walk.PNGs(inputDir)
	if err != nil {
		t.Fatalf("walk.PNGs: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("found %d input PNGs, want 2", len(paths))
	}

	w, err := archive.Create(archivePath)
	if err != nil {
		t.Fatalf("archive.Create: %v", err)
	}
	enc := delta.NewEncoder(w.Bitmap(), w.ImageData())
	for _, rel := range paths {
		img, err := decodePNG(filepath.Join(inputDir, rel))
		if err != nil {
			t.Fatalf("decodePNG(%s): %v", rel, err)
		}
		desc, err := enc.EncodeNext(img, rel)
		if err != nil {
			t.Fatalf("EncodeNext(%s): %v", rel, err)
		}
		w.AppendDescriptor(desc)
	}
	if err := w.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	r, err := archive.Open(archivePath)
	if err != nil {
		t.Fatalf("archive.Open: %v", err)
	}
	defer r.Close()

	info := r.Info()
	if len(info.ImagesInfo) != 2 {
		t.Fatalf("archive has %d descriptors, want 2", len(info.ImagesInfo))
	}

	dec := delta.NewDecoder(r.BitmapSource(), r.ImageDataSource())
	for _, desc := range info.ImagesInfo {
		img, err := dec.DecodeNext(desc)
		if err != nil {
			t.Fatalf("DecodeNext(%s): %v", desc.OutputPath, err)
		}
		if err := writeOutputPNG(desc.OutputPath, img, -1); err != nil {
			t.Fatalf("writeOutputPNG(%s): %v", desc.OutputPath, err)
		}
	}

	results, err := verify.Compare(inputDir, outputDir)
	if err != nil {
		t.Fatalf("verify.Compare: %v", err)
	}
	for path, res := range results {
		if res != verify.ExactMatch {
			t.Fatalf("%s: verify result = %v, want ExactMatch", path, res)
		}
	}

	gotA, err := decodePNG(filepath.Join(outputDir, "a.png"))
	if err != nil {
		t.Fatalf("decoding round-tripped a.png: %v", err)
	}
	if !bytes.Equal(gotA.Pix, frameA.Pix) {
		t.Fatalf("a.png round-trip mismatch")
	}
}

func TestWriteOutputPNGOptimizeLevelPreservesPixels(t *testing.T) {
	chdirTemp(t)

	img := raster.New(3, 2)
	for y := uint32(0); y < 2; y++ {
		for x := uint32(0); x < 3; x++ {
			img.Set(x, y, [4]byte{byte(x), byte(y), 255, 255})
		}
	}

	if err := writeOutputPNG("opt.png", img, 6); err != nil {
		t.Fatalf("writeOutputPNG: %v", err)
	}

	got, err := decodePNG(filepath.Join(outputDir, "opt.png"))
	if err != nil {
		t.Fatalf("decodePNG: %v", err)
	}
	if !bytes.Equal(got.Pix, img.Pix) {
		t.Fatalf("optimized round-trip mismatch")
	}
}

func TestClampLevel(t *testing.T) {
	cases := map[int]int{-5: 0, 0: 0, 3: 3, 6: 6, 100: pngio.MaxOptimizeLevel}
	for in, want := range cases {
		if got := clampLevel(in); got != want {
			t.Fatalf("clampLevel(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestHumanSize(t *testing.T) {
	cases := map[int64]string{
		500:                    "500 B",
		2048:                   "2.0 KB",
		5 * 1024 * 1024:        "5.0 MB",
		3 * 1024 * 1024 * 1024: "3.0 GB",
	}
	for in, want := range cases {
		if got := humanSize(in); got != want {
			t.Fatalf("humanSize(%d) = %q, want %q", in, got, want)
		}
	}
}
