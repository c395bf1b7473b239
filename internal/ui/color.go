// Package ui renders colored terminal output for the non-interactive
// commands
package ui

import (
	"github.com/pterm/pterm"

	"github.com/hvila/hvila/internal/phase"
)

// DarkTheme selects the light variants of each color.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Phase colors a with the color of p, matching the interactive timer.
func Phase(p phase.Phase, a any) string {
	switch p {
	case phase.MicroBreak:
		return Cyan(a)
	case phase.ExerciseBreak:
		return Yellow(a)
	case phase.LongBreak:
		return Magenta(a)
	default:
		return Green(a)
	}
}
