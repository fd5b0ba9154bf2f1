package download

import (
	"encoding/hex"
	"hash"
	"io"
)

// hashWriter is a pass-through sink that forwards every write to the wrapped
// writer and feeds exactly the bytes the wrapped writer accepted into the
// digest. On a partial write the digest covers only what reached the sink.
type hashWriter struct {
	w io.Writer
	h hash.Hash
}

func newHashWriter(w io.Writer, h hash.Hash) *hashWriter {
	return &hashWriter{w: w, h: h}
}

func (hw *hashWriter) Write(p []byte) (int, error) {
	n, err := hw.w.Write(p)
	if n > 0 {
		// hash.Hash writes never fail.
		_, _ = hw.h.Write(p[:n])
	}
	return n, err
}

// Sum finalizes the digest and returns it hex-encoded.
func (hw *hashWriter) Sum() string {
	return hex.EncodeToString(hw.h.Sum(nil))
}
