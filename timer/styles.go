package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hvila/hvila/internal/phase"
)

const (
	padding  = 2
	maxWidth = 80
)

var phaseColors = map[phase.Phase]string{
	phase.Work:          "#B0DB43",
	phase.MicroBreak:    "#12EAEA",
	phase.ExerciseBreak: "#F4A259",
	phase.LongBreak:     "#C492B1",
}

type styles struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Warning   lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Message   lipgloss.Style
	Phase     map[phase.Phase]lipgloss.Style
}

func newStyles(darkTheme bool) styles {
	text := lipgloss.Color("#FFFDF5")
	hint := lipgloss.Color("#7D7D7D")

	if !darkTheme {
		text = lipgloss.Color("#1A1A1A")
		hint = lipgloss.Color("#5C5C5C")
	}

	s := styles{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		Warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F")),
		Secondary: lipgloss.NewStyle().Foreground(text).MarginLeft(1),
		Hint:      lipgloss.NewStyle().Foreground(hint).MarginLeft(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(hint).
			Padding(0, 1).
			MaxWidth(maxWidth),
		CardTitle: lipgloss.NewStyle().Bold(true),
		Message:   lipgloss.NewStyle().Italic(true).Foreground(text),
		Phase:     make(map[phase.Phase]lipgloss.Style, len(phaseColors)),
	}

	for p, c := range phaseColors {
		s.Phase[p] = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color(c))
	}

	return s
}
