package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/scott-cotton/cli"

	"github.com/sieve-mind/mmsavefix/savefile"
)

func TestPosOpt(t *testing.T) {
	cfg := &EditConfig{MainConfig: &MainConfig{}}
	fn := posOptFunc(cfg)
	for _, a := range []string{"1=car1", "2=reserve", "3=car2"} {
		if _, err := fn(nil, a); err != nil {
			t.Fatalf("%q: %v", a, err)
		}
	}
	want := []move{
		{driver: 0, pos: savefile.Car1},
		{driver: 1, pos: savefile.Reserve},
		{driver: 2, pos: savefile.Car2},
	}
	if len(cfg.moves) != len(want) {
		t.Fatalf("moves = %v", cfg.moves)
	}
	for i, m := range want {
		if cfg.moves[i] != m {
			t.Errorf("move %d = %v, want %v", i, cfg.moves[i], m)
		}
	}

	for _, a := range []string{"car1", "0=car1", "4=car1", "x=car1", "1=车"} {
		if _, err := fn(nil, a); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%q: err = %v, want usage error", a, err)
		}
	}
}

func TestResolve(t *testing.T) {
	cfg := &MainConfig{Dir: "/saves"}
	tests := []struct {
		in, want string
	}{
		{"career.sav", filepath.Join("/saves", "career.sav")},
		{"./career.sav", "./career.sav"},
		{"/tmp/career.sav", "/tmp/career.sav"},
		{"-", "-"},
	}
	for _, tc := range tests {
		if got := cfg.resolve(tc.in); got != tc.want {
			t.Errorf("resolve(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
