package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"
	"gopkg.in/ini.v1"

	"github.com/sieve-mind/mmsavefix/savefile"
)

// iniFile is looked up in the working directory for a default save
// directory, so bare save names resolve without typing the game's deeply
// nested save path every time.
const iniFile = "mmsavefix.ini"

type MainConfig struct {
	Color bool   `cli:"name=color desc='color output even when not a tty'"`
	Dir   string `cli:"name=dir desc='directory for resolving bare save names'"`

	Main *cli.Command
}

// saveDir resolves the save directory: -dir flag, then mmsavefix.ini, then
// the working directory.
func (cfg *MainConfig) saveDir() string {
	if cfg.Dir != "" {
		return cfg.Dir
	}
	if f, err := ini.Load(iniFile); err == nil {
		if dir := f.Section("").Key("dir").String(); dir != "" {
			return dir
		}
	}
	wd, _ := os.Getwd()
	return wd
}

// resolve joins bare file names onto the save directory; anything carrying
// its own path is used as given.
func (cfg *MainConfig) resolve(path string) string {
	if path == "-" || path != filepath.Base(path) {
		return path
	}
	return filepath.Join(cfg.saveDir(), path)
}

type ShowConfig struct {
	*MainConfig

	Show *cli.Command
}

type move struct {
	driver int
	pos    savefile.Position
}

type EditConfig struct {
	*MainConfig
	Out   string `cli:"name=o desc='destination save file'"`
	Force bool   `cli:"name=f desc='overwrite the destination'"`
	Name  string `cli:"name=name desc='new save name'"`

	moves []move

	Edit *cli.Command
}

// posOptFunc parses one -pos argument of the form driver=position, with
// driver in 1..3 as printed by show and position one of reserve/car1/car2.
func posOptFunc(cfg *EditConfig) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("%w: -pos expects driver=position, got %q", cli.ErrUsage, a)
		}
		n, err := strconv.Atoi(k)
		if err != nil || n < 1 || n > savefile.NumDrivers {
			return nil, fmt.Errorf("%w: driver must be 1..%d, got %q", cli.ErrUsage, savefile.NumDrivers, k)
		}
		p, err := savefile.ParsePosition(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		cfg.moves = append(cfg.moves, move{driver: n - 1, pos: p})
		return a, nil
	}
}

type UnpackConfig struct {
	*MainConfig
	Force bool `cli:"name=f desc='overwrite existing json files'"`

	Unpack *cli.Command
}

type PackConfig struct {
	*MainConfig
	Out   string `cli:"name=o desc='destination save file'"`
	Force bool   `cli:"name=f desc='overwrite the destination'"`

	Pack *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
