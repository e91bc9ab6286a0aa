package tui

import "github.com/charmbracelet/lipgloss"

// 配色与网页版保持一致
var (
	ColorPrimary = lipgloss.Color("#667eea")
	ColorAccent  = lipgloss.Color("#764ba2")
	ColorError   = lipgloss.Color("#ff6b6b")
	ColorMuted   = lipgloss.Color("#666666")
	ColorText    = lipgloss.Color("#f1faee")
	ColorBorder  = lipgloss.Color("#3d5a80")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	InputFocusedStyle = InputStyle.
				BorderForeground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorError).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 2).
			Align(lipgloss.Center)

	CardValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			MarginTop(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
