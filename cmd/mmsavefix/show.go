package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/sieve-mind/mmsavefix/savefile"
)

func show(cfg *ShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Show.Parse(cc, args)
	if err != nil {
		cfg.Show.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: show requires at least one save file", cli.ErrUsage)
	}
	for i, arg := range args {
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		if err := showFile(cfg, cc.Out, arg); err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
	}
	return nil
}

func showFile(cfg *ShowConfig, w io.Writer, arg string) error {
	sf, err := savefile.Open(cfg.resolve(arg))
	if err != nil {
		return err
	}
	pal := cfg.palette(w)
	fmt.Fprintf(w, "%s: %s\n", pal.field("save"), pal.value("%s", sf.Name()))
	fmt.Fprintf(w, "%s: %s\n", pal.field("team"), sf.TeamID())
	for i := 0; i < savefile.NumDrivers; i++ {
		d := sf.Driver(i)
		fmt.Fprintf(w, "  %d. %s %s\n", i+1, pal.value("%-24s", d.Name()), pal.pos("%s", d.Position()))
	}
	return nil
}

type palette struct {
	field func(string, ...any) string
	value func(string, ...any) string
	pos   func(string, ...any) string
}

// palette colors output on a tty or when forced with -color.
func (cfg *MainConfig) palette(w io.Writer) *palette {
	p := &palette{field: fmt.Sprintf, value: fmt.Sprintf, pos: fmt.Sprintf}
	if !cfg.Color {
		f, ok := w.(*os.File)
		if !ok || !isatty.IsTerminal(f.Fd()) {
			return p
		}
	}
	p.field = color.RGB(128, 168, 196).SprintfFunc()
	p.value = color.RGB(8, 196, 16).SprintfFunc()
	p.pos = color.CyanString
	return p
}
