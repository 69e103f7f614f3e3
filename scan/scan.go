package scan

// ClosingQuote returns the offset of the quote terminating the string whose
// opening quote is at open.
func ClosingQuote(d []byte, open int) (int, error) {
	esc := false
	for i := open + 1; i < len(d); i++ {
		switch d[i] {
		case '\\':
			esc = !esc
		case '"':
			if !esc {
				return i, nil
			}
			esc = false
		default:
			esc = false
		}
	}
	return 0, ErrMalformed
}

// backslashRun counts the contiguous backslashes immediately before off.
func backslashRun(d []byte, off int) int {
	n := 0
	for i := off - 1; i >= 0 && d[i] == '\\'; i-- {
		n++
	}
	return n
}

// OpeningQuote returns the offset of the quote opening the string whose
// closing quote is at close. Candidate quotes preceded by an odd backslash
// run are escaped content and skipped; an even nonzero run would escape
// itself and leave the quote live, which no string this scanner understands
// can produce, so it is malformed.
func OpeningQuote(d []byte, close int) (int, error) {
	for i := close - 1; i >= 0; i-- {
		if d[i] != '"' {
			continue
		}
		switch run := backslashRun(d, i); {
		case run == 0:
			return i, nil
		case run%2 == 1:
			i -= run
		default:
			return 0, ErrMalformed
		}
	}
	return 0, ErrMalformed
}

// MatchingBrace returns the offset of the brace or bracket matching the one
// at off, scanning forward from '{' or '[' and backward from '}' or ']'.
// The anchor must not lie inside a string or mid-escape; that precondition
// is the caller's to keep and is not checked.
func MatchingBrace(d []byte, off int) (int, error) {
	if off < 0 || off >= len(d) {
		return 0, ErrMalformed
	}
	switch d[off] {
	case '{':
		return closingBrace(d, off+1, '}')
	case '[':
		return closingBrace(d, off+1, ']')
	case '}':
		return openingBrace(d, off-1, '{')
	case ']':
		return openingBrace(d, off-1, '[')
	}
	return 0, ErrMalformed
}

// ObjectStart returns the offset of the '{' opening the innermost object
// containing off. Same anchor precondition as MatchingBrace.
func ObjectStart(d []byte, off int) (int, error) {
	return openingBrace(d, off, '{')
}

func closingBrace(d []byte, from int, want byte) (int, error) {
	stack := []byte{want}
	for i := from; i < len(d); i++ {
		switch d[i] {
		case '"':
			j, err := ClosingQuote(d, i)
			if err != nil {
				return 0, err
			}
			i = j
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if d[i] != stack[len(stack)-1] {
				return 0, ErrMalformed
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i, nil
			}
		}
	}
	return 0, ErrMalformed
}

func openingBrace(d []byte, from int, want byte) (int, error) {
	stack := []byte{want}
	for i := from; i >= 0; i-- {
		switch d[i] {
		case '"':
			j, err := OpeningQuote(d, i)
			if err != nil {
				return 0, err
			}
			i = j
		case '}':
			stack = append(stack, '{')
		case ']':
			stack = append(stack, '[')
		case '{', '[':
			if d[i] != stack[len(stack)-1] {
				return 0, ErrMalformed
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i, nil
			}
		}
	}
	return 0, ErrMalformed
}

// A Visitor receives each key together with the offset where its value
// starts. Returning false stops the walk.
type Visitor func(key []byte, valOff int) bool

// VisitSiblings calls visit for every key/value pair in the object holding
// the key whose opening quote is at anchor. Pairs at and after the anchor
// come first in document order, then the pairs before it in reverse order.
// Starting from a key already in hand lets extraction resume mid-object
// instead of re-walking from the opening brace.
func VisitSiblings(d []byte, anchor int, visit Visitor) error {
	// Forward from the anchor to the object's end.
	for i := anchor; i < len(d) && d[i] == '"'; {
		keyOpen := i
		keyClose, err := ClosingQuote(d, keyOpen)
		if err != nil {
			return err
		}
		if keyClose+2 >= len(d) || d[keyClose+1] != ':' {
			return ErrMalformed
		}
		valOff := keyClose + 2
		if !visit(d[keyOpen+1:keyClose], valOff) {
			return nil
		}

		valEnd, err := valueEnd(d, valOff)
		if err != nil {
			return err
		}
		i = valEnd + 1
		if i < len(d) && d[i] == ',' {
			i++
		}
	}

	// Then backward from the anchor to the object's start.
	for i := anchor - 1; i != 0 && d[i] != '{'; {
		if d[i] != ',' {
			return ErrMalformed
		}
		valOff, err := valueStart(d, i-1)
		if err != nil {
			return err
		}
		if valOff < 3 || d[valOff-1] != ':' || d[valOff-2] != '"' {
			return ErrMalformed
		}
		keyClose := valOff - 2
		keyOpen, err := OpeningQuote(d, keyClose)
		if err != nil {
			return err
		}
		if keyOpen == 0 {
			return ErrMalformed
		}
		if !visit(d[keyOpen+1:keyClose], valOff) {
			return nil
		}
		i = keyOpen - 1
	}
	return nil
}

// valueEnd returns the offset of the last byte of the value starting at off.
func valueEnd(d []byte, off int) (int, error) {
	switch d[off] {
	case '"':
		return ClosingQuote(d, off)
	case '{', '[':
		return MatchingBrace(d, off)
	}
	for j := off + 1; j < len(d); j++ {
		if d[j] == ',' || d[j] == '}' {
			return j - 1, nil
		}
	}
	return 0, ErrMalformed
}

// valueStart returns the offset of the first byte of the value ending at end.
func valueStart(d []byte, end int) (int, error) {
	switch d[end] {
	case '"':
		return OpeningQuote(d, end)
	case '}', ']':
		return MatchingBrace(d, end)
	}
	for j := end; j != 0; j-- {
		if d[j-1] == ':' {
			return j, nil
		}
	}
	return 0, ErrMalformed
}

// VisitObject calls visit for every key/value pair of the object whose
// opening brace is at openBrace, in document order.
func VisitObject(d []byte, openBrace int, visit Visitor) error {
	start := openBrace + 1
	if start >= len(d) {
		return ErrMalformed
	}
	switch d[start] {
	case '"':
		return VisitSiblings(d, start, visit)
	case '}':
		return nil
	}
	return ErrMalformed
}

// Lookup returns the start offset of the value whose key matches key in the
// object opening at openBrace, or false when the object has no such key.
func Lookup(d []byte, openBrace int, key string) (int, bool, error) {
	var (
		off   int
		found bool
	)
	err := VisitObject(d, openBrace, func(k []byte, valOff int) bool {
		if string(k) == key {
			off, found = valOff, true
			return false
		}
		return true
	})
	if err != nil {
		return 0, false, err
	}
	return off, found, nil
}
