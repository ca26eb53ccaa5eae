package terminal

import (
	"os"
	"strings"
)

// trueColorHosts are emulators that export an identifying variable and render 24-bit color
var trueColorHosts = []string{
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"ITERM_SESSION_ID",
	"ALACRITTY_WINDOW_ID",
	"ALACRITTY_LOG",
	"WEZTERM_PANE",
}

// DetectColorMode guesses color depth from the environment
func DetectColorMode() ColorMode {
	return detectColorMode(os.Getenv)
}

func detectColorMode(getenv func(string) string) ColorMode {
	switch getenv("COLORTERM") {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}

	for _, name := range trueColorHosts {
		if getenv(name) != "" {
			return ColorModeTrueColor
		}
	}

	term := getenv("TERM")
	for _, hint := range []string{"truecolor", "24bit", "direct"} {
		if strings.Contains(term, hint) {
			return ColorModeTrueColor
		}
	}
	return ColorMode256
}

// ResolveColorMode replaces auto with the detected mode
func ResolveColorMode(mode ColorMode) ColorMode {
	if mode == ColorModeAuto {
		return DetectColorMode()
	}
	return mode
}
