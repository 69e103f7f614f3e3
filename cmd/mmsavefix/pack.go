package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/sieve-mind/mmsavefix/fsio"
	"github.com/sieve-mind/mmsavefix/savefile"
)

func pack(cfg *PackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pack.Parse(cc, args)
	if err != nil {
		cfg.Pack.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: pack takes an info file and a data file", cli.ErrUsage)
	}
	info, err := fsio.ReadFile(cfg.resolve(args[0]))
	if err != nil {
		return err
	}
	data, err := fsio.ReadFile(cfg.resolve(args[1]))
	if err != nil {
		return err
	}
	out, err := savefile.Pack(info, data)
	if err != nil {
		return err
	}
	dest := cfg.Out
	if dest == "" {
		dest = strings.TrimSuffix(jsonPrefix(cfg.resolve(args[1])), "-data") + ".sav"
	} else {
		dest = cfg.resolve(dest)
	}
	if err := fsio.WriteAtomic(dest, out, cfg.Force); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "wrote %s\n", dest)
	return nil
}
