package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sieve-mind/mmsavefix/savefile"
)

func edit(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		cfg.Edit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: edit takes exactly one save file", cli.ErrUsage)
	}
	if cfg.Out == "" {
		return fmt.Errorf("%w: edit requires -o <dest>", cli.ErrUsage)
	}
	if cfg.Name == "" && len(cfg.moves) == 0 {
		return fmt.Errorf("%w: nothing to edit, pass -name or -pos", cli.ErrUsage)
	}

	src := cfg.resolve(args[0])
	sf, err := savefile.Open(src)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	name := sf.Name()
	if cfg.Name != "" {
		name = cfg.Name
	}
	for _, m := range cfg.moves {
		sf.Driver(m.driver).SetPosition(m.pos)
	}

	dest := cfg.resolve(cfg.Out)
	if err := sf.Write(dest, name, cfg.Force); err != nil {
		return fmt.Errorf("error writing %s: %w", cfg.Out, err)
	}
	fmt.Fprintf(cc.Out, "wrote %s\n", dest)
	return nil
}
