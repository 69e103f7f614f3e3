package savefile

import (
	"github.com/sieve-mind/mmsavefix/fsio"
)

// NumDrivers is the number of contract-owned drivers a player team has.
const NumDrivers = 3

// A SaveFile holds the two decompressed payloads of one save container
// together with the byte offsets of its editable fields. The payloads are
// owned by the SaveFile: every span and DriverRef derived from it borrows
// from them and is dead once the SaveFile is discarded. A SaveFile is not
// safe for concurrent use.
type SaveFile struct {
	info []byte
	data []byte

	nameOff, nameLen int
	teamID           string

	drivers [NumDrivers]driver
}

type driver struct {
	name     string
	pos      Position
	origPos  Position
	carIDOff int
}

// Open reads and decodes the save container at path.
func Open(path string) (*SaveFile, error) {
	raw, err := fsio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

// Decode validates the container image, decompresses both payloads and runs
// field extraction once. raw is not retained.
func Decode(raw []byte) (*SaveFile, error) {
	info, data, err := Unpack(raw)
	if err != nil {
		return nil, err
	}
	sf := &SaveFile{info: info, data: data}
	if err := sf.findSaveName(); err != nil {
		return nil, err
	}
	if err := sf.findDrivers(); err != nil {
		return nil, err
	}
	return sf, nil
}

// Unpack decodes a container image into its decompressed info and data
// texts without running field extraction.
func Unpack(raw []byte) (info, data []byte, err error) {
	h, err := parseHeader(raw)
	if err != nil {
		return nil, nil, err
	}
	rest := raw[headerSize:]
	if int64(len(rest)) < int64(h.compressedInfo)+int64(h.compressedData) {
		return nil, nil, ErrFormat
	}
	info, err = decompress(rest[:h.compressedInfo], int(h.decompressedInfo))
	if err != nil {
		return nil, nil, err
	}
	data, err = decompress(rest[h.compressedInfo:int64(h.compressedInfo)+int64(h.compressedData)], int(h.decompressedData))
	if err != nil {
		return nil, nil, err
	}
	return info, data, nil
}

// Name returns the save's display name.
func (sf *SaveFile) Name() string {
	return string(sf.info[sf.nameOff : sf.nameOff+sf.nameLen])
}

// TeamID returns the player team's reference identifier.
func (sf *SaveFile) TeamID() string {
	return sf.teamID
}

// A DriverRef addresses one of the three extracted drivers by index. It is
// valid only for the lifetime of the SaveFile it came from.
type DriverRef struct {
	sf *SaveFile
	i  int
}

// Driver returns a reference to driver i, 0 <= i < NumDrivers, in ascending
// order of position-literal offset.
func (sf *SaveFile) Driver(i int) DriverRef {
	return DriverRef{sf: sf, i: i}
}

// Name returns the driver's "First Last" display name.
func (r DriverRef) Name() string {
	return r.sf.drivers[r.i].name
}

func (r DriverRef) Position() Position {
	return r.sf.drivers[r.i].pos
}

// SetPosition records the position the rewrite pass will splice in. The
// original buffers are untouched.
func (r DriverRef) SetPosition(p Position) {
	r.sf.drivers[r.i].pos = p
}
