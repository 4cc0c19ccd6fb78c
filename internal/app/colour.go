package app

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/andyballingall/lintwalk/internal/fs"
)

// NoColourEnvVar disables colour when set to any value (https://no-color.org).
const NoColourEnvVar = "NO_COLOR"

// colourEnabled reports whether output to w should be coloured: only when w
// is a terminal and colour has not been turned off by flag or environment.
func colourEnabled(noColour bool, w io.Writer, env fs.EnvProvider) bool {
	if noColour || env.Get(NoColourEnvVar) != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
