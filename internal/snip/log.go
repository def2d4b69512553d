package snip

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log/v2"
)

// logStyles returns the logger styles, spelling level names out in full
// rather than the default truncated 4 character form.
func logStyles() *log.Styles {
	return &log.Styles{
		Timestamp: lipgloss.NewStyle(),
		Caller:    lipgloss.NewStyle().Faint(true),
		Prefix:    lipgloss.NewStyle().Bold(true).Faint(true),
		Message:   lipgloss.NewStyle(),
		Key:       lipgloss.NewStyle().Faint(true),
		Value:     lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle().Faint(true),
		Levels: map[log.Level]lipgloss.Style{
			log.DebugLevel: levelStyle(log.DebugLevel, "63"),
			log.InfoLevel:  levelStyle(log.InfoLevel, "86"),
			log.WarnLevel:  levelStyle(log.WarnLevel, "192"),
			log.ErrorLevel: levelStyle(log.ErrorLevel, "204"),
			log.FatalLevel: levelStyle(log.FatalLevel, "134"),
		},
		Keys:   map[string]lipgloss.Style{},
		Values: map[string]lipgloss.Style{},
	}
}

// levelStyle builds the display style for a single log level.
func levelStyle(level log.Level, color string) lipgloss.Style {
	const width = 5 // Wide enough that "DEBUG" and "ERROR" aren't cut off

	return lipgloss.NewStyle().
		SetString(strings.ToUpper(level.String())).
		Bold(true).
		MaxWidth(width).
		Foreground(lipgloss.Color(color))
}
