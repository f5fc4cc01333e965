package archive

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Reader parses an archive's header and metadata, then exposes the
// bitmap and image-data streams as plain io.Readers for the delta
// decoder to consume in lockstep. Grounded on
// original_source/src/extract.rs's archive-opening preamble.
type Reader struct {
	file      *os.File
	info      DecompressionInfo
	bitmap    io.Reader
	imageData io.Reader
}

// Open reads and validates an archive's header and metadata section,
// then positions two independent decompressor sources over the bitmap
// and image-data regions, per spec §4.6.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("archive: opening %s: %w", path, err)
	}

	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(f, header); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: reading header: %v", ErrMalformedArchive, err)
	}
	metadataStart := Uint64LE(header)

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("archive: stat %s: %w", path, err)
	}
	size := uint64(fi.Size())
	if metadataStart < HeaderSize || metadataStart > size {
		f.Close()
		return nil, fmt.Errorf("%w: metadata_start %d outside file of size %d", ErrMalformedArchive, metadataStart, size)
	}

	if _, err := f.Seek(int64(metadataStart), io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("archive: seeking to metadata: %w", err)
	}
	rawMetadata, err := io.ReadAll(NewDecompressor(f))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: decompressing metadata: %v", ErrMalformedArchive, err)
	}
	info, err := UnmarshalMetadata(rawMetadata)
	if err != nil {
		f.Close()
		return nil, err
	}

	if info.BitmapDataStart < HeaderSize || info.BitmapDataStart >= metadataStart {
		f.Close()
		return nil, fmt.Errorf("%w: bitmap_data_start %d outside [%d, %d)", ErrMalformedArchive, info.BitmapDataStart, HeaderSize, metadataStart)
	}

	bitmapLen := metadataStart - info.BitmapDataStart
	if _, err := f.Seek(int64(info.BitmapDataStart), io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("archive: seeking to bitmap stream: %w", err)
	}
	rawBitmap := make([]byte, bitmapLen)
	if _, err := io.ReadFull(f, rawBitmap); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: reading bitmap region: %v", ErrMalformedArchive, err)
	}

	if _, err := f.Seek(HeaderSize, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("archive: seeking to image-data stream: %w", err)
	}

	return &Reader{
		file:      f,
		info:      info,
		bitmap:    NewDecompressor(bytes.NewReader(rawBitmap)),
		imageData: NewDecompressor(f),
	}, nil
}

// Info returns the archive's global metadata record.
func (r *Reader) Info() DecompressionInfo { return r.info }

// BitmapSource returns the decompressed bitmap stream, ready to be read
// in image order.
func (r *Reader) BitmapSource() io.Reader { return r.bitmap }

// ImageDataSource returns the decompressed image-data stream, ready to
// be read in image order.
func (r *Reader) ImageDataSource() io.Reader { return r.imageData }

// Close releases the archive's file handle.
func (r *Reader) Close() error {
	return r.file.Close()
}
