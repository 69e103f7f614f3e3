package scan

import (
	"errors"
	"testing"
)

func TestQuoteInverse(t *testing.T) {
	// Strings with no unescaped interior quote: OpeningQuote must undo
	// ClosingQuote exactly.
	for _, s := range []string{
		`""`,
		`"\\"`,
		`"\\\\"`,
		`"a\"b"`,
		`"\\\"a"`,
		`"plain text"`,
	} {
		d := []byte(s)
		close, err := ClosingQuote(d, 0)
		if err != nil {
			t.Errorf("ClosingQuote(%s): %v", s, err)
			continue
		}
		if close != len(d)-1 {
			t.Errorf("ClosingQuote(%s) = %d, want %d", s, close, len(d)-1)
			continue
		}
		open, err := OpeningQuote(d, close)
		if err != nil {
			t.Errorf("OpeningQuote(%s): %v", s, err)
			continue
		}
		if open != 0 {
			t.Errorf("OpeningQuote(%s) = %d, want 0", s, open)
		}
	}
}

func TestClosingQuoteUnterminated(t *testing.T) {
	for _, s := range []string{`"abc`, `"abc\"`, `"`} {
		if _, err := ClosingQuote([]byte(s), 0); !errors.Is(err, ErrMalformed) {
			t.Errorf("ClosingQuote(%s) err = %v, want ErrMalformed", s, err)
		}
	}
}

func TestOpeningQuoteBackslashRuns(t *testing.T) {
	// Backslash runs butting against the start of the buffer, one case per
	// run length. Odd runs escape the candidate quote, which leaves no
	// opening quote at all; even nonzero runs are rejected outright.
	tests := []struct {
		in    string
		close int
		open  int
		err   bool
	}{
		{in: `\"x"`, close: 3, err: true},      // run 1: quote escaped, nothing opens
		{in: `\\"x"`, close: 4, err: true},     // run 2: even, malformed
		{in: `\\\"x"`, close: 5, err: true},    // run 3: odd, skipped to buffer start
		{in: `\\\\"x"`, close: 6, err: true},   // run 4: even, malformed
		{in: `"\\"`, close: 3, open: 0},        // run 2 inside the string body
		{in: `x"y"`, close: 3, open: 1},        // no run at all
		{in: `"a\"b"`, close: 5, open: 0},      // run 1 mid-string
	}
	for _, tc := range tests {
		open, err := OpeningQuote([]byte(tc.in), tc.close)
		if tc.err {
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("OpeningQuote(%q, %d) err = %v, want ErrMalformed", tc.in, tc.close, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("OpeningQuote(%q, %d): %v", tc.in, tc.close, err)
			continue
		}
		if open != tc.open {
			t.Errorf("OpeningQuote(%q, %d) = %d, want %d", tc.in, tc.close, open, tc.open)
		}
	}
}

func TestMatchingBraceInvolution(t *testing.T) {
	// Matching forward then backward must land on the starting offset, and
	// brace-like characters inside strings must never affect matching.
	for _, s := range []string{
		`{}`,
		`{"a":{"b":[1,2]}}`,
		`[{"x":"}"}]`,
	} {
		d := []byte(s)
		end, err := MatchingBrace(d, 0)
		if err != nil {
			t.Errorf("MatchingBrace(%s, 0): %v", s, err)
			continue
		}
		if end != len(d)-1 {
			t.Errorf("MatchingBrace(%s, 0) = %d, want %d", s, end, len(d)-1)
		}
		start, err := MatchingBrace(d, end)
		if err != nil {
			t.Errorf("MatchingBrace(%s, %d): %v", s, end, err)
			continue
		}
		if start != 0 {
			t.Errorf("MatchingBrace(%s, %d) = %d, want 0", s, end, start)
		}
	}
}

func TestMatchingBraceInner(t *testing.T) {
	d := []byte(`{"a":{"b":[1,2]}}`)
	// inner object at 5, inner array at 10
	if end, err := MatchingBrace(d, 5); err != nil || end != 15 {
		t.Errorf("inner object: got %d, %v; want 15", end, err)
	}
	if end, err := MatchingBrace(d, 10); err != nil || end != 14 {
		t.Errorf("inner array: got %d, %v; want 14", end, err)
	}
	if start, err := MatchingBrace(d, 14); err != nil || start != 10 {
		t.Errorf("inner array backward: got %d, %v; want 10", start, err)
	}
}

func TestMatchingBraceMalformed(t *testing.T) {
	for _, tc := range []struct {
		in string
		at int
	}{
		{`{`, 0},
		{`}`, 0},
		{`{"a":1`, 0},
		{`{]`, 0},
		{`x`, 0},
		{`{}`, 5},
	} {
		if _, err := MatchingBrace([]byte(tc.in), tc.at); !errors.Is(err, ErrMalformed) {
			t.Errorf("MatchingBrace(%q, %d) err = %v, want ErrMalformed", tc.in, tc.at, err)
		}
	}
}

func TestVisitObjectOrder(t *testing.T) {
	d := []byte(`{"a":1,"b":"x","c":{"d":2}}`)
	var keys []string
	var firsts []byte
	err := VisitObject(d, 0, func(key []byte, valOff int) bool {
		keys = append(keys, string(key))
		firsts = append(firsts, d[valOff])
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("visited %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, keys[i], want[i])
		}
	}
	for i, c := range []byte{'1', '"', '{'} {
		if firsts[i] != c {
			t.Errorf("value %d starts with %q, want %q", i, firsts[i], c)
		}
	}
}

func TestVisitObjectEmpty(t *testing.T) {
	err := VisitObject([]byte(`{}`), 0, func([]byte, int) bool {
		t.Error("visited a key in an empty object")
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestVisitSiblingsFromAnchor(t *testing.T) {
	d := []byte(`{"a":1,"b":2,"c":3}`)
	anchor := 7 // opening quote of "b"
	if d[anchor] != '"' || d[anchor+1] != 'b' {
		t.Fatalf("bad anchor %d", anchor)
	}
	var keys []string
	if err := VisitSiblings(d, anchor, func(key []byte, valOff int) bool {
		keys = append(keys, string(key))
		return true
	}); err != nil {
		t.Fatal(err)
	}
	// Forward pass first in document order, then the backward pass in
	// reverse document order.
	want := []string{"b", "c", "a"}
	if len(keys) != len(want) {
		t.Fatalf("visited %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestVisitSiblingsEarlyStop(t *testing.T) {
	d := []byte(`{"a":1,"b":2,"c":3}`)
	n := 0
	if err := VisitSiblings(d, 7, func([]byte, int) bool {
		n++
		return false
	}); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("visited %d keys after stop, want 1", n)
	}
}

func TestVisitSiblingsSkipsStructuredValues(t *testing.T) {
	d := []byte(`{"a":{"x":[1,{"y":"}"}]},"b":"v,w","c":3}`)
	var keys []string
	if err := VisitObject(d, 0, func(key []byte, _ int) bool {
		keys = append(keys, string(key))
		return true
	}); err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("visited %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestLookup(t *testing.T) {
	d := []byte(`{"a":1,"name":"hi","c":3}`)
	off, ok, err := Lookup(d, 0, "name")
	if err != nil || !ok {
		t.Fatalf("Lookup name: ok=%v err=%v", ok, err)
	}
	if d[off] != '"' || string(d[off:off+4]) != `"hi"` {
		t.Errorf("Lookup name offset %d points at %q", off, d[off])
	}
	if _, ok, err := Lookup(d, 0, "missing"); err != nil || ok {
		t.Errorf("Lookup missing: ok=%v err=%v, want found=false", ok, err)
	}
}

func TestObjectStart(t *testing.T) {
	d := []byte(`{"a":{"b":1,"c":2}}`)
	// from inside the inner object
	at := 12 // opening quote of "c"
	if d[at] != '"' {
		t.Fatalf("bad offset %d", at)
	}
	start, err := ObjectStart(d, at-1)
	if err != nil {
		t.Fatal(err)
	}
	if start != 5 {
		t.Errorf("ObjectStart = %d, want 5", start)
	}
}
