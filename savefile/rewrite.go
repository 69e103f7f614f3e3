package savefile

import (
	"math"

	"github.com/sieve-mind/mmsavefix/debug"
	"github.com/sieve-mind/mmsavefix/fsio"
)

// The rewrite never touches the original buffers. Each output payload is a
// fresh allocation of exactly the final length, filled by copying unmodified
// byte ranges verbatim around the substituted fields, then recompressed.

// Encode builds a complete container image with newName spliced into the
// info text and every changed driver position spliced into the data text.
func (sf *SaveFile) Encode(newName string) ([]byte, error) {
	return packContainer(sf.spliceInfo(newName), sf.spliceData())
}

// Write encodes the current edits and places the result at path through the
// temp-file-plus-rename discipline. Without overwrite an existing
// destination is refused.
func (sf *SaveFile) Write(path, newName string, overwrite bool) error {
	out, err := sf.Encode(newName)
	if err != nil {
		return err
	}
	return fsio.WriteAtomic(path, out, overwrite)
}

func (sf *SaveFile) spliceInfo(newName string) []byte {
	out := make([]byte, 0, len(sf.info)-sf.nameLen+len(newName))
	out = append(out, sf.info[:sf.nameOff]...)
	out = append(out, newName...)
	out = append(out, sf.info[sf.nameOff+sf.nameLen:]...)
	return out
}

func (sf *SaveFile) spliceData() []byte {
	size := len(sf.data)
	for i := range sf.drivers {
		d := &sf.drivers[i]
		size += len(d.pos.literal()) - len(d.origPos.literal())
	}

	// Drivers are offset-sorted since extraction, so one forward sweep
	// covers every substitution. Unchanged literals are copied with the
	// surrounding text.
	out := make([]byte, 0, size)
	copied := 0
	for i := range sf.drivers {
		d := &sf.drivers[i]
		if d.pos == d.origPos {
			continue
		}
		if debug.Write() {
			debug.Logf("splicing %s over %s at %d\n", d.pos.literal(), d.origPos.literal(), d.carIDOff)
		}
		out = append(out, sf.data[copied:d.carIDOff]...)
		out = append(out, d.pos.literal()...)
		copied = d.carIDOff + len(d.origPos.literal())
	}
	return append(out, sf.data[copied:]...)
}

// Pack builds a container image from raw info and data texts.
func Pack(info, data []byte) ([]byte, error) {
	if int64(len(info))+int64(len(data)) > maxDecompressed {
		return nil, ErrTooLarge
	}
	return packContainer(info, data)
}

func packContainer(info, data []byte) ([]byte, error) {
	ci, err := compress(info)
	if err != nil {
		return nil, err
	}
	cd, err := compress(data)
	if err != nil {
		return nil, err
	}
	// Every size must fit the header's signed 32-bit fields.
	for _, n := range []int{len(ci), len(info), len(cd), len(data)} {
		if n > math.MaxInt32 {
			return nil, ErrOutputTooLarge
		}
	}
	h := header{
		magic:            magic,
		version:          supportedVersion,
		compressedInfo:   int32(len(ci)),
		decompressedInfo: int32(len(info)),
		compressedData:   int32(len(cd)),
		decompressedData: int32(len(data)),
	}
	out := make([]byte, 0, headerSize+len(ci)+len(cd))
	out = h.appendTo(out)
	out = append(out, ci...)
	return append(out, cd...), nil
}
