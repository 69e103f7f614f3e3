package savefile

import (
	"encoding/binary"
	"fmt"
)

const (
	magic            = 1932684653
	supportedVersion = 4

	// Combined decompressed payload cap.
	maxDecompressed = 4 << 30

	headerSize = 24
)

// header is the fixed container prefix: six little-endian int32 fields.
type header struct {
	magic            int32
	version          int32
	compressedInfo   int32
	decompressedInfo int32
	compressedData   int32
	decompressedData int32
}

func parseHeader(d []byte) (header, error) {
	var h header
	if len(d) < headerSize {
		return h, ErrFormat
	}
	h.magic = int32(binary.LittleEndian.Uint32(d[0:]))
	h.version = int32(binary.LittleEndian.Uint32(d[4:]))
	h.compressedInfo = int32(binary.LittleEndian.Uint32(d[8:]))
	h.decompressedInfo = int32(binary.LittleEndian.Uint32(d[12:]))
	h.compressedData = int32(binary.LittleEndian.Uint32(d[16:]))
	h.decompressedData = int32(binary.LittleEndian.Uint32(d[20:]))

	if h.magic != magic || h.compressedInfo <= 0 || h.decompressedInfo <= 0 ||
		h.compressedData <= 0 || h.decompressedData <= 0 {
		return h, ErrFormat
	}
	if h.version != supportedVersion {
		return h, fmt.Errorf("%w (%d)", ErrVersion, h.version)
	}
	if int64(h.decompressedInfo)+int64(h.decompressedData) > maxDecompressed {
		return h, ErrTooLarge
	}
	return h, nil
}

// appendTo appends the 24 header bytes to out.
func (h header) appendTo(out []byte) []byte {
	out = binary.LittleEndian.AppendUint32(out, uint32(h.magic))
	out = binary.LittleEndian.AppendUint32(out, uint32(h.version))
	out = binary.LittleEndian.AppendUint32(out, uint32(h.compressedInfo))
	out = binary.LittleEndian.AppendUint32(out, uint32(h.decompressedInfo))
	out = binary.LittleEndian.AppendUint32(out, uint32(h.compressedData))
	out = binary.LittleEndian.AppendUint32(out, uint32(h.decompressedData))
	return out
}
