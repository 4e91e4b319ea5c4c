// Package usecase contains the application use cases behind the plugin's
// host callbacks.
package usecase

import "strings"

// ParseFontCommand maps a keybinding command string to a pixel-size step.
// Recognized commands are "font:increment" (+1) and "font:decrement" (-1);
// anything else reports ok=false and is ignored by the caller.
func ParseFontCommand(cmd string) (delta int, ok bool) {
	rest, found := strings.CutPrefix(cmd, "font:")
	if !found {
		return 0, false
	}
	word, found := strings.CutSuffix(rest, "crement")
	if !found {
		return 0, false
	}
	switch word {
	case "in":
		return 1, true
	case "de":
		return -1, true
	}
	return 0, false
}
