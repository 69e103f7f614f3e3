package savefile

import (
	"fmt"

	"github.com/sieve-mind/mmsavefix/scan"
)

// Position is a driver's assignment within the team. The three values map
// bijectively to the mCarID literals "-1", "0" and "1" in the data text.
type Position int

const (
	Reserve Position = iota
	Car1
	Car2
)

func (p Position) String() string {
	switch p {
	case Reserve:
		return "reserve"
	case Car1:
		return "car1"
	case Car2:
		return "car2"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// literal returns p as it is written in the data text.
func (p Position) literal() string {
	switch p {
	case Reserve:
		return "-1"
	case Car1:
		return "0"
	case Car2:
		return "1"
	}
	panic("bad position")
}

// ParsePosition maps the user-facing names accepted on the command line.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "reserve":
		return Reserve, nil
	case "car1":
		return Car1, nil
	case "car2":
		return Car2, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrPosition, s)
}

// parsePositionAt reads the mCarID literal at off. Only "-1", "0" and "1",
// each immediately followed by ',' or '}', are driver positions.
func parsePositionAt(d []byte, off int) (Position, error) {
	if off+2 >= len(d) {
		return 0, scan.ErrMalformed
	}
	switch {
	case d[off] == '-' && d[off+1] == '1' && literalEnd(d[off+2]):
		return Reserve, nil
	case d[off] == '0' && literalEnd(d[off+1]):
		return Car1, nil
	case d[off] == '1' && literalEnd(d[off+1]):
		return Car2, nil
	}
	return 0, fmt.Errorf("%w: bad mCarID literal", ErrPosition)
}

func literalEnd(c byte) bool {
	return c == ',' || c == '}'
}
