package palette

import (
	"errors"
	"os"
	"strings"
)

// DefaultSource lists the usual rgb.txt locations for a GOOS value, most likely first
func DefaultSource(goos string) []string {
	switch goos {
	case "freebsd", "openbsd", "netbsd", "dragonfly":
		return []string{"/usr/local/lib/X11/rgb.txt", "/usr/X11R6/lib/X11/rgb.txt"}
	case "linux":
		return []string{"/usr/share/X11/rgb.txt", "/etc/X11/rgb.txt", "/usr/lib/X11/rgb.txt"}
	case "darwin":
		return []string{"/opt/X11/share/X11/rgb.txt", "/usr/X11/share/X11/rgb.txt"}
	default:
		return nil
	}
}

// Resolve returns the first path that names a readable regular file
func Resolve(paths []string) (string, error) {
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		f, err := os.Open(p)
		if err != nil {
			continue
		}
		f.Close()
		return p, nil
	}
	if len(paths) == 0 {
		return "", &sourceError{Path: "(none)", Err: errors.New("no known colour file location for this platform")}
	}
	return "", &sourceError{Path: strings.Join(paths, ", ")}
}
