package savefile

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/sieve-mind/mmsavefix/debug"
	"github.com/sieve-mind/mmsavefix/scan"
)

// Extraction relies on literal patterns to find its anchors: the save texts
// are machine-written with no optional whitespace, and the reference shapes
// below never occur as incidental text.
const (
	saveInfoPat   = `"saveInfo":{`
	playerTeamPat = `"mPlayerTeam":{`
	contractKey   = `"contract":`

	// "mEmployeer" is how it is spelled in the save data.
	employerRefPre = `"mEmployeerTeam":{"$ref":"`
)

// findSaveName records the span of the save's display name inside the info
// text: "saveInfo":{...,"name":"<NAME>",...}.
func (sf *SaveFile) findSaveName() error {
	at := bytes.Index(sf.info, []byte(saveInfoPat))
	if at < 0 {
		return fmt.Errorf("%w: could not find save name", ErrMissingField)
	}
	brace := at + len(saveInfoPat) - 1
	if debug.Scan() {
		debug.Logf("saveInfo object opens at %d\n", brace)
	}
	valOff, ok, err := scan.Lookup(sf.info, brace, "name")
	if err != nil {
		return err
	}
	if !ok || sf.info[valOff] != '"' {
		return fmt.Errorf("%w: could not find save name", ErrMissingField)
	}
	end, err := scan.ClosingQuote(sf.info, valOff)
	if err != nil {
		return err
	}
	sf.nameOff = valOff + 1
	sf.nameLen = end - sf.nameOff
	if debug.Extract() {
		debug.Logf("save name %q at [%d,%d)\n", sf.Name(), sf.nameOff, sf.nameOff+sf.nameLen)
	}
	return nil
}

// playerTeamID reads the player team's "$id" from the data text:
// "mPlayerTeam":{...,"$id":"<ID>",...}.
func (sf *SaveFile) playerTeamID() (string, error) {
	at := bytes.Index(sf.data, []byte(playerTeamPat))
	if at < 0 {
		return "", fmt.Errorf("%w: could not find player team data", ErrMissingField)
	}
	brace := at + len(playerTeamPat) - 1
	valOff, ok, err := scan.Lookup(sf.data, brace, "$id")
	if err != nil {
		return "", err
	}
	if !ok || sf.data[valOff] != '"' {
		return "", fmt.Errorf("%w: could not find player team data", ErrMissingField)
	}
	end, err := scan.ClosingQuote(sf.data, valOff)
	if err != nil {
		return "", err
	}
	return string(sf.data[valOff+1 : end]), nil
}

// findDrivers locates every contract owned by the player team, keeps the
// contracts that belong to drivers, and requires exactly three of them.
func (sf *SaveFile) findDrivers() error {
	id, err := sf.playerTeamID()
	if err != nil {
		return err
	}
	sf.teamID = id
	if debug.Extract() {
		debug.Logf("player team id %q\n", id)
	}

	ref := []byte(employerRefPre + id + `"}`)
	var found []driver
	for start := 0; ; {
		i := bytes.Index(sf.data[start:], ref)
		if i < 0 {
			break
		}
		at := start + i
		if debug.Scan() {
			debug.Logf("employer team ref at %d\n", at)
		}
		d, ok, err := sf.driverAt(at)
		if err != nil {
			return err
		}
		if ok {
			found = append(found, d)
		}
		start = at + 1
	}
	if len(found) != NumDrivers {
		return fmt.Errorf("%w: found %d", ErrTeamSize, len(found))
	}

	// The rewrite pass splices in one forward sweep, so it needs the
	// position literals in ascending offset order.
	sort.Slice(found, func(i, j int) bool {
		return found[i].carIDOff < found[j].carIDOff
	})
	copy(sf.drivers[:], found)
	return nil
}

// driverAt inspects the employer-team reference at refOff. It reports a
// driver only when the reference sits inside the value of a "contract" key
// and the employee object carries an mCarID; employees without one are not
// drivers and are silently skipped.
func (sf *SaveFile) driverAt(refOff int) (driver, bool, error) {
	var zero driver
	if refOff == 0 {
		return zero, false, nil
	}
	objStart, err := scan.ObjectStart(sf.data, refOff-1)
	if err != nil {
		return zero, false, err
	}
	ck := len(contractKey)
	if objStart <= ck || !bytes.Equal(sf.data[objStart-ck:objStart], []byte(contractKey)) {
		return zero, false, nil
	}
	anchor := objStart - ck // opening quote of the "contract" key

	var (
		carIDOff            = -1
		first, last         []byte
		haveFirst, haveLast bool
		nameErr             error
	)
	err = scan.VisitSiblings(sf.data, anchor, func(key []byte, valOff int) bool {
		switch string(key) {
		case "mCarID":
			carIDOff = valOff
		case "mFirstName":
			first, nameErr = sf.quoted(valOff)
			haveFirst = nameErr == nil
		case "mLastName":
			last, nameErr = sf.quoted(valOff)
			haveLast = nameErr == nil
		}
		if nameErr != nil {
			return false
		}
		return !(carIDOff >= 0 && haveFirst && haveLast)
	})
	if err != nil {
		return zero, false, err
	}
	if nameErr != nil {
		return zero, false, nameErr
	}
	if carIDOff < 0 || !haveFirst || !haveLast {
		return zero, false, nil
	}

	pos, err := parsePositionAt(sf.data, carIDOff)
	if err != nil {
		return zero, false, err
	}
	d := driver{
		name:     string(first) + " " + string(last),
		pos:      pos,
		origPos:  pos,
		carIDOff: carIDOff,
	}
	if debug.Extract() {
		debug.Logf("driver %q %s, mCarID at %d\n", d.name, d.pos, d.carIDOff)
	}
	return d, true, nil
}

// quoted returns the content of the string value starting at off in the
// data text.
func (sf *SaveFile) quoted(off int) ([]byte, error) {
	if sf.data[off] != '"' {
		return nil, fmt.Errorf("%w: invalid driver name", ErrCorrupt)
	}
	end, err := scan.ClosingQuote(sf.data, off)
	if err != nil {
		return nil, err
	}
	return sf.data[off+1 : end], nil
}
