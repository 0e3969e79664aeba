package main

import (
	"flag"

	"github.com/example/ovalpad/internal/config"
	"github.com/example/ovalpad/internal/sketch"
)

type sketchCmd struct {
	*root
	fs *flag.FlagSet
}

func parseSketchCmd(args []string, r *root) (*sketchCmd, error) {
	fs := flag.NewFlagSet("sketch", flag.ExitOnError)
	c := &sketchCmd{root: r.subcommand("sketch"), fs: fs}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *sketchCmd) Run() error {
	opts := []sketch.Option{
		sketch.WithWindow(config.Window{
			Width:  c.width,
			Height: c.height,
			Title:  c.title,
		}),
		sketch.WithTheme(c.activeTheme),
		sketch.WithNotifier(c.notifier),
	}
	if c.scale > 0 {
		opts = append(opts, sketch.WithScale(c.scale))
	}
	sketch.New(opts...).Run()
	return nil
}
