package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/sieve-mind/mmsavefix/fsio"
	"github.com/sieve-mind/mmsavefix/savefile"
)

// jsonPrefix strips the save extension so edits land next to the save.
func jsonPrefix(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func unpack(cfg *UnpackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unpack.Parse(cc, args)
	if err != nil {
		cfg.Unpack.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: unpack takes exactly one save file", cli.ErrUsage)
	}
	src := cfg.resolve(args[0])
	raw, err := fsio.ReadFile(src)
	if err != nil {
		return err
	}
	info, data, err := savefile.Unpack(raw)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	prefix := jsonPrefix(src)
	for _, out := range []struct {
		path string
		text []byte
	}{
		{prefix + "-info.json", info},
		{prefix + "-data.json", data},
	} {
		if err := fsio.WriteAtomic(out.path, out.text, cfg.Force); err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "wrote %s\n", out.path)
	}
	return nil
}
