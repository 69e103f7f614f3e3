package savefile

import (
	"fmt"
	"math"

	"github.com/pierrec/lz4/v4"
)

// The container's two payloads are independent raw LZ4 blocks with no frame
// around them, so block sizes come from the header, not the stream.

func compress(src []byte) ([]byte, error) {
	if len(src) > math.MaxInt32 {
		return nil, ErrOutputTooLarge
	}
	if len(src) == 0 {
		// A single empty-literal token is the canonical empty block.
		return []byte{0}, nil
	}
	var c lz4.Compressor
	dst := make([]byte, lz4.CompressBlockBound(len(src)))
	n, err := c.CompressBlock(src, dst)
	if err != nil || n == 0 {
		return nil, ErrCompress
	}
	return dst[:n], nil
}

// decompress expands src and fails unless the result is exactly size bytes.
// There is no lenient mode: a length mismatch means the block or the header
// lies about it.
func decompress(src []byte, size int) ([]byte, error) {
	dst := make([]byte, size)
	if size == 0 {
		return dst, nil
	}
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if n != size {
		return nil, fmt.Errorf("%w: decompressed %d bytes, header says %d", ErrCorrupt, n, size)
	}
	return dst, nil
}
