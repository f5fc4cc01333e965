package archive

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Writer owns the three sinks of a Spritezip archive (image-data
// stream, bitmap stream, metadata stream) and lays out the file per
// spec §4.5/§6. Grounded on the teacher's internal/pmtiles.Writer for
// the overall "open, stream, Finalize" shape and on
// original_source/src/extract.rs for the exact byte layout it must
// produce.
type Writer struct {
	file *os.File

	imageData *Compressor // wraps file directly, starting at byte HeaderSize

	bitmapBuf        *bytes.Buffer
	bitmapCompressor *Compressor // wraps bitmapBuf, sized once finalized

	descriptors []ImageDescriptor

	finalized bool
}

// Create opens path for writing and reserves the 8-byte header slot.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("archive: creating %s: %w", path, err)
	}
	if _, err := f.Write(make([]byte, HeaderSize)); err != nil {
		f.Close()
		return nil, fmt.Errorf("archive: reserving header: %w", err)
	}

	bitmapBuf := new(bytes.Buffer)
	return &Writer{
		file:             f,
		imageData:        NewCompressor(f),
		bitmapBuf:        bitmapBuf,
		bitmapCompressor: NewCompressor(bitmapBuf),
	}, nil
}

// ImageData returns the sink changed-pixel RGBA quadruples are written
// to, in image order.
func (w *Writer) ImageData() io.Writer { return w.imageData }

// Bitmap returns the sink per-pixel 0/1 bitmap bytes are written to, in
// image order.
func (w *Writer) Bitmap() io.Writer { return w.bitmapCompressor }

// AppendDescriptor records one image's descriptor, in the same order
// its bytes were written to the two stream sinks above. Ordering here
// is load-bearing per spec §5: descriptor order must equal stream
// write order.
func (w *Writer) AppendDescriptor(desc ImageDescriptor) {
	w.descriptors = append(w.descriptors, desc)
}

// Finalize closes both stream compressors in the order spec §4.5
// requires, appends the bitmap stream and the compressed metadata
// record, then backfills the header with the metadata offset. The
// Writer's underlying file is closed before returning.
func (w *Writer) Finalize() error {
	if w.finalized {
		return fmt.Errorf("archive: writer already finalized")
	}
	w.finalized = true

	if err := w.imageData.Close(); err != nil {
		w.file.Close()
		return err
	}
	bitmapDataStart := uint64(HeaderSize) + w.imageData.BytesWritten()

	if err := w.bitmapCompressor.Close(); err != nil {
		w.file.Close()
		return err
	}
	if _, err := w.file.Write(w.bitmapBuf.Bytes()); err != nil {
		w.file.Close()
		return fmt.Errorf("archive: writing bitmap stream: %w", err)
	}
	metadataStart := bitmapDataStart + uint64(w.bitmapBuf.Len())

	info := DecompressionInfo{
		CanvasSize:      [2]uint32{0, 0},
		BitmapDataStart: bitmapDataStart,
		ImagesInfo:      w.descriptors,
	}
	raw, err := MarshalMetadata(info)
	if err != nil {
		w.file.Close()
		return err
	}

	metadataCompressor := NewCompressor(w.file)
	if _, err := metadataCompressor.Write(raw); err != nil {
		w.file.Close()
		return err
	}
	if err := metadataCompressor.Close(); err != nil {
		w.file.Close()
		return err
	}

	header := make([]byte, HeaderSize)
	PutUint64LE(header, metadataStart)
	if _, err := w.file.WriteAt(header, 0); err != nil {
		w.file.Close()
		return fmt.Errorf("archive: backfilling header: %w", err)
	}

	return w.file.Close()
}

// Abort closes the underlying file and removes the partial archive.
// Callers must discard partial archives on cancellation, per spec §5.
func (w *Writer) Abort() {
	name := w.file.Name()
	w.file.Close()
	os.Remove(name)
}
