package savefile

import "errors"

var (
	ErrFormat         = errors.New("not a valid Motorsport Manager save file")
	ErrVersion        = errors.New("unsupported save file version")
	ErrTooLarge       = errors.New("save file too large")
	ErrOutputTooLarge = errors.New("output too large")
	ErrCorrupt        = errors.New("save file invalid or corrupted")
	ErrMissingField   = errors.New("missing field")
	ErrPosition       = errors.New("invalid driver position")
	ErrTeamSize       = errors.New("unable to locate the team's 3 drivers")

	// ErrCompress signals an internal defect: valid input never fails to
	// compress.
	ErrCompress = errors.New("internal error: compression failure")
)
