//go:build !linux

package platform

import "errors"

// DisplayDPI is unavailable off X11; callers fall back to the default scale.
func DisplayDPI() (float64, error) {
	return 0, errors.New("display density probe is not supported on this platform")
}
