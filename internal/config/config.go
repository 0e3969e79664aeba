package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/ovalpad/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Copy bool
}

// Window holds the initial window geometry and title.
type Window struct {
	Width  int
	Height int
	Title  string
}

// Config holds the application configuration.
type Config struct {
	Theme string
	// Scale overrides the pixels-per-DIP factor; 0 means detect it from the
	// window shell.
	Scale  float64
	Window Window
	Notify Notify
	Themes map[string]*theme.Theme
}

// DefaultWindow is the geometry used when no configuration overrides it.
var DefaultWindow = Window{Width: 640, Height: 480, Title: "Draw Circle"}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:  "", // Default to empty to allow fallback to flag/default
		Window: DefaultWindow,
		Notify: Notify{Copy: false},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.Scale != 0 {
		fmt.Fprintf(&sb, "scale = %g\n", c.Scale)
	}
	sb.WriteString("\n")

	sb.WriteString("[window]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Window.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Window.Height)
	fmt.Fprintf(&sb, "title = %s\n", c.Window.Title)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Themes sections, sorted for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		fmt.Fprintf(&sb, "Background: %s\n", toHex(t.Background))
		fmt.Fprintf(&sb, "Fill: %s\n", toHex(t.Fill))
		sb.WriteString("\n")
	}

	return sb.String()
}

func toHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
