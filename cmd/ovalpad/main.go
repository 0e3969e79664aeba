package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/ovalpad/internal/config"
	"github.com/example/ovalpad/internal/notify"
	"github.com/example/ovalpad/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	config      *config.Config
	notifier    *notify.Notifier
	copyAlerts  bool
	themeName   string
	scale       float64
	title       string
	width       int
	height      int
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:     program,
		config:      r.config,
		notifier:    r.notifier,
		copyAlerts:  r.copyAlerts,
		themeName:   r.themeName,
		scale:       r.scale,
		title:       r.title,
		width:       r.width,
		height:      r.height,
		activeTheme: r.activeTheme,
	}
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("ovalpad", flag.ExitOnError),
		program:  "ovalpad",
		notifier: notify.New(notify.DefaultPreferences()),
		config:   cfg,
	}
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying a frame to the clipboard")
	r.fs.Float64Var(&r.scale, "scale", cfg.Scale, "pixels per DIP; 0 detects the display scale")
	r.fs.StringVar(&r.title, "title", cfg.Window.Title, "window title")
	r.fs.IntVar(&r.width, "width", cfg.Window.Width, "initial window width in pixels")
	r.fs.IntVar(&r.height, "height", cfg.Window.Height, "initial window height in pixels")

	// Precedence: CLI > Env > Config > Default; fallback happens in Run.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, dark)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}

	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("OVALPAD_THEME")
	}
	if themeName == "" {
		themeName = r.config.Theme
	}
	if cfgTheme, ok := r.config.Themes[themeName]; ok {
		r.activeTheme = cfgTheme
	} else {
		r.activeTheme = theme.Lookup(themeName)
	}

	cmdName := "sketch"
	subArgs := []string{}
	if r.fs.NArg() > 0 {
		cmdName = r.fs.Arg(0)
		subArgs = r.fs.Args()[1:]
	}

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "sketch":
		cmd, err = parseSketchCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
