package archive

import "errors"

// Sentinel errors forming the error taxonomy shared by internal/archive
// and internal/delta (internal/pngio defines its own ErrDecodeFailure),
// so callers can discriminate with
// errors.Is the way the teacher's pmtiles package distinguishes its own
// failure modes.
var (
	// ErrMalformedArchive covers header offsets pointing outside the
	// file, metadata that fails to deserialize, or a bitmap segment
	// whose size disagrees with the descriptor totals.
	ErrMalformedArchive = errors.New("archive: malformed archive")

	// ErrStreamExhausted means a decompressor yielded fewer bytes than
	// a descriptor required.
	ErrStreamExhausted = errors.New("archive: stream exhausted before descriptor was satisfied")
)
