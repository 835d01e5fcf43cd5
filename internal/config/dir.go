package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the deckhand global configuration directory.
//
// Resolution:
//   - $DECKHAND_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/deckhand if set (respects XDG on any platform)
//   - %AppData%/deckhand on Windows
//   - ~/.config/deckhand on macOS and Linux
func Dir() string {
	if dir := os.Getenv("DECKHAND_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "deckhand")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "deckhand")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "deckhand")
}
