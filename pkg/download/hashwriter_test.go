package download

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chokeWriter accepts at most limit bytes per call and then fails.
type chokeWriter struct {
	buf     bytes.Buffer
	limit   int
	failNow bool
}

func (c *chokeWriter) Write(p []byte) (int, error) {
	if c.failNow {
		return 0, errors.New("sink closed")
	}
	if len(p) > c.limit {
		n, _ := c.buf.Write(p[:c.limit])
		c.failNow = true
		return n, errors.New("short write")
	}
	return c.buf.Write(p)
}

func md5Hex(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

func TestHashWriterDigestMatchesSink(t *testing.T) {
	var sink bytes.Buffer
	hw := newHashWriter(&sink, md5.New())

	payload := []byte("the quick brown fox jumps over the lazy dog")
	for _, chunk := range [][]byte{payload[:7], payload[7:20], payload[20:]} {
		n, err := hw.Write(chunk)
		require.NoError(t, err)
		assert.Equal(t, len(chunk), n)
	}

	assert.Equal(t, payload, sink.Bytes())
	assert.Equal(t, md5Hex(sink.Bytes()), hw.Sum())
}

func TestHashWriterDigestIsChunkingInvariant(t *testing.T) {
	payload := bytes.Repeat([]byte("abc123"), 1000)

	for _, size := range []int{1, 7, 64, 4096, len(payload)} {
		var sink bytes.Buffer
		hw := newHashWriter(&sink, md5.New())
		for off := 0; off < len(payload); off += size {
			end := min(off+size, len(payload))
			_, err := hw.Write(payload[off:end])
			require.NoError(t, err)
		}
		assert.Equal(t, md5Hex(payload), hw.Sum(), "chunk size %d", size)
	}
}

func TestHashWriterPartialWrite(t *testing.T) {
	sink := &chokeWriter{limit: 5}
	hw := newHashWriter(sink, md5.New())

	n, err := hw.Write([]byte("0123456789"))
	require.Error(t, err)
	assert.Equal(t, 5, n)

	// The digest covers only the bytes the sink actually accepted.
	assert.Equal(t, md5Hex([]byte("01234")), hw.Sum())
	assert.Equal(t, "01234", sink.buf.String())
}

func TestHashWriterWorksWithCopy(t *testing.T) {
	payload := bytes.Repeat([]byte{0xA5}, 100_000)
	var sink bytes.Buffer
	hw := newHashWriter(&sink, md5.New())

	written, err := io.Copy(hw, bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), written)
	assert.Equal(t, md5Hex(payload), hw.Sum())
}
