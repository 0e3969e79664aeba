//go:build linux

package platform

import (
	"errors"
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var errNoDisplayGeometry = errors.New("display does not report physical dimensions")

// DisplayDPI probes the default X11 screen for its physical pixel density.
// It is the fallback scale source when the window shell does not report one.
func DisplayDPI() (float64, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return 0, fmt.Errorf("connect X server: %w", err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	if setup == nil {
		return 0, fmt.Errorf("xproto setup unavailable")
	}
	screen := setup.DefaultScreen(conn)
	if screen == nil {
		return 0, fmt.Errorf("xproto screen unavailable")
	}
	if screen.WidthInMillimeters == 0 {
		return 0, errNoDisplayGeometry
	}
	return float64(screen.WidthInPixels) * 25.4 / float64(screen.WidthInMillimeters), nil
}
