package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Text:    lipgloss.Color("#cdd6f4"),
		Muted:   lipgloss.Color("#a6adc8"),
		Accent:  lipgloss.Color("#cba6f7"),
		Border:  lipgloss.Color("#585b70"),
		Success: lipgloss.Color("#94e2d5"),
		Warning: lipgloss.Color("#f9e2af"),
	},
	"gruvbox": {
		Text:    lipgloss.Color("#ebdbb2"),
		Muted:   lipgloss.Color("#a89984"),
		Accent:  lipgloss.Color("#fabd2f"),
		Border:  lipgloss.Color("#665c54"),
		Success: lipgloss.Color("#b8bb26"),
		Warning: lipgloss.Color("#fe8019"),
	},
	"solarized_dark": {
		Text:    lipgloss.Color("#fdf6e3"),
		Muted:   lipgloss.Color("#93a1a1"),
		Accent:  lipgloss.Color("#b58900"),
		Border:  lipgloss.Color("#586e75"),
		Success: lipgloss.Color("#859900"),
		Warning: lipgloss.Color("#cb4b16"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["catppuccin"]
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := themeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}

type styleSet struct {
	title    lipgloss.Style
	label    lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style
	ok       lipgloss.Style
	warn     lipgloss.Style
}

func stylesFor(p palette) styleSet {
	return styleSet{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		label:    lipgloss.NewStyle().Foreground(p.Text),
		muted:    lipgloss.NewStyle().Foreground(p.Muted),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		ok:       lipgloss.NewStyle().Foreground(p.Success),
		warn:     lipgloss.NewStyle().Foreground(p.Warning),
	}
}
