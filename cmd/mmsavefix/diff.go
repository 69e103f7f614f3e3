package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sieve-mind/mmsavefix/fsio"
	"github.com/sieve-mind/mmsavefix/savefile"
)

// diffSaves is a debugging aid for working out what the game itself edits
// between two saves. It compares the decompressed texts, not the container
// bytes, since recompression alone changes the latter.
func diffSaves(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two save files", cli.ErrUsage)
	}
	infoA, dataA, err := unpackFile(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	infoB, dataB, err := unpackFile(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	for _, part := range []struct {
		label string
		a, b  []byte
	}{
		{"info", infoA, infoB},
		{"data", dataA, dataB},
	} {
		diffs := dmp.DiffMain(string(part.a), string(part.b), true)
		if allEqual(diffs) {
			fmt.Fprintf(cc.Out, "# %s: no changes\n", part.label)
			continue
		}
		fmt.Fprintf(cc.Out, "# %s\n", part.label)
		writeDiffs(cfg.MainConfig, cc.Out, diffs)
	}
	return nil
}

func unpackFile(cfg *MainConfig, arg string) (info, data []byte, err error) {
	raw, err := fsio.ReadFile(cfg.resolve(arg))
	if err != nil {
		return nil, nil, err
	}
	info, data, err = savefile.Unpack(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return info, data, nil
}

func allEqual(diffs []diffmatchpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return false
		}
	}
	return true
}

// writeDiffs prints inserts and deletes with a little unchanged context,
// colored on a tty.
func writeDiffs(cfg *MainConfig, w io.Writer, diffs []diffmatchpatch.Diff) {
	pal := cfg.palette(w)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			fmt.Fprintf(w, " %s\n", clip(d.Text))
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(w, "%s\n", pal.pos("-%s", d.Text))
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(w, "%s\n", pal.value("+%s", d.Text))
		}
	}
}

const clipLen = 60

// clip keeps unchanged runs readable: the texts have no newlines to break
// on, so long equal spans get elided from the middle.
func clip(s string) string {
	if len(s) <= 2*clipLen {
		return s
	}
	return s[:clipLen] + " [...] " + s[len(s)-clipLen:]
}
