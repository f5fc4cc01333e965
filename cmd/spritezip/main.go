// Command spritezip is the Spritezip driver (C10): it parses the
// positional CLI surface described in spec.md §6 and sequences
// compress / extract / verify / selftest / alphablend. Grounded on the
// teacher's cmd/geotiff2pmtiles/main.go for the flag/settings-banner
// layout and log.Fatalf error style, generalized from the teacher's
// many-flag config to Spritezip's purely positional mode dispatch.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/drojf/SpriteZip/internal/alphablend"
	"github.com/drojf/SpriteZip/internal/archive"
	"github.com/drojf/SpriteZip/internal/delta"
	"github.com/drojf/SpriteZip/internal/pngio"
	"github.com/drojf/SpriteZip/internal/progress"
	"github.com/drojf/SpriteZip/internal/raster"
	"github.com/drojf/SpriteZip/internal/verify"
	"github.com/drojf/SpriteZip/internal/walk"
)

const (
	inputDir    = "input_images"
	outputDir   = "output_images"
	archivePath = "compressed_images.brotli"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spritezip <compress|extract|verify|selftest|alphablend> [level] [debug]\n\n")
		fmt.Fprintf(os.Stderr, "  compress            scan %s/ and write %s\n", inputDir, archivePath)
		fmt.Fprintf(os.Stderr, "  extract [level]     read %s and write %s/, optionally re-optimizing (level 0-6)\n", archivePath, outputDir)
		fmt.Fprintf(os.Stderr, "  verify              compare %s/ against %s/\n", inputDir, outputDir)
		fmt.Fprintf(os.Stderr, "  selftest            compress -> extract -> verify; refuses if %s/ exists\n", outputDir)
		fmt.Fprintf(os.Stderr, "  alphablend          convert %s/ to the OnScripter alphablend format\n\n", inputDir)
		fmt.Fprintf(os.Stderr, "  debug               optional trailing token enabling verbose per-image logging\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	mode := args[0]
	debugMode := false
	level := -1
	for _, tok := range args[1:] {
		if tok == "debug" {
			debugMode = true
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			log.Fatalf("Unrecognized argument %q", tok)
		}
		level = n
	}

	switch mode {
	case "compress":
		runCompress(debugMode)
	case "extract":
		runExtract(level, debugMode)
	case "verify":
		runVerify()
	case "selftest":
		runSelftest(debugMode)
	case "alphablend":
		runAlphablend()
	default:
		log.Fatalf("Unknown mode %q", mode)
	}
}

func runCompress(debugMode bool) {
	start := time.Now()
	paths, err := walk.PNGs(inputDir)
	if err != nil {
		log.Fatalf("Scanning %s: %v", inputDir, err)
	}

	fmt.Println("spritezip compress")
	fmt.Printf("  %-14s %d file(s)\n", "Input:", len(paths))
	fmt.Printf("  %-14s %s\n", "Output:", archivePath)

	w, err := archive.Create(archivePath)
	if err != nil {
		log.Fatalf("Creating archive: %v", err)
	}
	enc := delta.NewEncoder(w.Bitmap(), w.ImageData())

	bar := progress.New("Compressing", int64(len(paths)))
	for _, rel := range paths {
		if debugMode {
			log.Printf("Encoding %s", rel)
		}
		img, err := decodePNG(filepath.Join(inputDir, rel))
		if err != nil {
			w.Abort()
			log.Fatalf("Reading %s: %v", rel, err)
		}
		desc, err := enc.EncodeNext(img, rel)
		if err != nil {
			w.Abort()
			log.Fatalf("Encoding %s: %v", rel, err)
		}
		w.AppendDescriptor(desc)
		bar.Increment()
	}
	bar.Finish()

	if err := w.Finalize(); err != nil {
		log.Fatalf("Finalizing archive: %v", err)
	}

	fi, err := os.Stat(archivePath)
	if err != nil {
		log.Fatalf("Stat %s: %v", archivePath, err)
	}
	fmt.Printf("Done: %d image(s), %s, %v -> %s\n",
		len(paths), humanSize(fi.Size()), time.Since(start).Round(time.Millisecond), archivePath)
}

func runExtract(level int, debugMode bool) {
	if _, err := os.Stat(archivePath); err != nil {
		log.Fatalf("Archive %s not found: %v", archivePath, err)
	}

	start := time.Now()
	r, err := archive.Open(archivePath)
	if err != nil {
		log.Fatalf("Opening archive: %v", err)
	}
	defer r.Close()

	info := r.Info()
	fmt.Println("spritezip extract")
	fmt.Printf("  %-14s %d image(s)\n", "Archive:", len(info.ImagesInfo))
	if level >= 0 {
		fmt.Printf("  %-14s %d\n", "Optimize level:", clampLevel(level))
	}
	fmt.Printf("  %-14s %s\n", "Output:", outputDir)

	dec := delta.NewDecoder(r.BitmapSource(), r.ImageDataSource())

	bar := progress.New("Extracting", int64(len(info.ImagesInfo)))
	for _, desc := range info.ImagesInfo {
		if debugMode {
			log.Printf("Decoding %s (full %dx%d, diff %dx%d)",
				desc.OutputPath, desc.OutputWidth, desc.OutputHeight, desc.DiffWidth, desc.DiffHeight)
		}
		img, err := dec.DecodeNext(desc)
		if err != nil {
			log.Fatalf("Decoding %s: %v", desc.OutputPath, err)
		}
		if err := writeOutputPNG(desc.OutputPath, img, level); err != nil {
			log.Fatalf("Writing %s: %v", desc.OutputPath, err)
		}
		bar.Increment()
	}
	bar.Finish()

	fmt.Printf("Done: %d image(s), %v -> %s\n",
		len(info.ImagesInfo), time.Since(start).Round(time.Millisecond), outputDir)
}

func runVerify() {
	results, err := verify.Compare(inputDir, outputDir)
	if err != nil {
		log.Fatalf("Verifying: %v", err)
	}

	var exact, invisible, failed, missing int
	for path, res := range results {
		switch res {
		case verify.ExactMatch:
			exact++
		case verify.InvisibleMatch:
			invisible++
			log.Printf("WARNING: %s: %s", path, res)
		case verify.Failure:
			failed++
			log.Printf("FAILURE: %s: %s", path, res)
		case verify.NotFound:
			missing++
			log.Printf("MISSING: %s: %s", path, res)
		}
	}

	fmt.Printf("Verify: %d exact, %d invisible, %d failed, %d missing (of %d)\n",
		exact, invisible, failed, missing, len(results))
	if failed > 0 || missing > 0 {
		os.Exit(1)
	}
}

func runSelftest(debugMode bool) {
	if _, err := os.Stat(outputDir); err == nil {
		log.Fatalf("Selftest refused: %s already exists", outputDir)
	}
	runCompress(debugMode)
	runExtract(-1, debugMode)
	runVerify()
}

func runAlphablend() {
	paths, err := walk.PNGs(inputDir)
	if err != nil {
		log.Fatalf("Scanning %s: %v", inputDir, err)
	}

	fmt.Println("spritezip alphablend")
	fmt.Printf("  %-14s %d file(s)\n", "Input:", len(paths))

	for _, rel := range paths {
		img, err := decodePNG(filepath.Join(inputDir, rel))
		if err != nil {
			log.Fatalf("Reading %s: %v", rel, err)
		}
		out := alphablend.Convert(img)
		if err := writeOutputPNG(rel, out, -1); err != nil {
			log.Fatalf("Writing %s: %v", rel, err)
		}
	}

	fmt.Printf("Done: %d image(s) -> %s\n", len(paths), outputDir)
}

func decodePNG(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return pngio.DecodeRGBA(f)
}

// writeOutputPNG writes img to outputDir/relPath, creating parent
// directories as needed. A non-negative level enables the size
// optimization post-pass from spec §4.9.
func writeOutputPNG(relPath string, img *raster.Image, level int) error {
	outPath := filepath.Join(outputDir, relPath)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if level < 0 {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return pngio.EncodeRGBA(f, img)
	}

	var buf bytes.Buffer
	if err := pngio.EncodeRGBA(&buf, img); err != nil {
		return err
	}
	optimized, err := pngio.Optimize(buf.Bytes(), level)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, optimized, 0o644)
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > pngio.MaxOptimizeLevel {
		return pngio.MaxOptimizeLevel
	}
	return level
}

func humanSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
