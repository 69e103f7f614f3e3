package savefile

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	large := make([]byte, 1<<20)
	for i := range large {
		large[i] = byte(rng.Intn(16))
	}
	for _, in := range [][]byte{
		nil,
		[]byte("x"),
		[]byte(`{"a":1}`),
		bytes.Repeat([]byte("abc"), 1000),
		large,
	} {
		c, err := compress(in)
		if err != nil {
			t.Errorf("compress(%d bytes): %v", len(in), err)
			continue
		}
		out, err := decompress(c, len(in))
		if err != nil {
			t.Errorf("decompress(%d bytes): %v", len(in), err)
			continue
		}
		if !bytes.Equal(out, in) {
			t.Errorf("round trip of %d bytes differs", len(in))
		}
	}
}

func TestDecompressExactLength(t *testing.T) {
	in := []byte(`{"name":"length check"}`)
	c, err := compress(in)
	if err != nil {
		t.Fatal(err)
	}
	for _, size := range []int{len(in) - 1, len(in) + 1, len(in) * 2} {
		if _, err := decompress(c, size); !errors.Is(err, ErrCorrupt) {
			t.Errorf("decompress with size %d: err = %v, want ErrCorrupt", size, err)
		}
	}
	if _, err := decompress([]byte{0xff, 0xff, 0xff}, len(in)); !errors.Is(err, ErrCorrupt) {
		t.Errorf("decompress of garbage: err = %v, want ErrCorrupt", err)
	}
}
