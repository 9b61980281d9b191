// Package theme provides the color palettes used by the TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines all colors used in the application UI.
type Theme struct {
	Background lipgloss.Color
	Accent     lipgloss.Color
	AccentFg   lipgloss.Color // Foreground color for text on Accent background
	AccentDim  lipgloss.Color
	Border     lipgloss.Color
	BorderDim  lipgloss.Color
	MutedFg    lipgloss.Color
	TextFg     lipgloss.Color
	SuccessFg  lipgloss.Color
	WarnFg     lipgloss.Color
	ErrorFg    lipgloss.Color
	Cyan       lipgloss.Color
	Yellow     lipgloss.Color
}

// Theme names.
const (
	DraculaName         = "dracula"
	NarnaName           = "narna"
	CleanLightName      = "clean-light"
	CatppuccinMochaName = "catppuccin-mocha"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282A36"),
		Accent:     lipgloss.Color("#BD93F9"), // Purple
		AccentFg:   lipgloss.Color("#282A36"),
		AccentDim:  lipgloss.Color("#44475A"),
		Border:     lipgloss.Color("#6272A4"),
		BorderDim:  lipgloss.Color("#44475A"),
		MutedFg:    lipgloss.Color("#6272A4"),
		TextFg:     lipgloss.Color("#F8F8F2"),
		SuccessFg:  lipgloss.Color("#50FA7B"),
		WarnFg:     lipgloss.Color("#FFB86C"),
		ErrorFg:    lipgloss.Color("#FF5555"),
		Cyan:       lipgloss.Color("#8BE9FD"),
		Yellow:     lipgloss.Color("#F1FA8C"),
	}
}

// Narna returns a balanced dark theme with blue accents.
func Narna() *Theme {
	return &Theme{
		Background: lipgloss.Color("#0D1117"),
		Accent:     lipgloss.Color("#41ADFF"),
		AccentFg:   lipgloss.Color("#0D1117"),
		AccentDim:  lipgloss.Color("#1A2230"),
		Border:     lipgloss.Color("#30363D"),
		BorderDim:  lipgloss.Color("#20252D"),
		MutedFg:    lipgloss.Color("#8B949E"),
		TextFg:     lipgloss.Color("#E6EDF3"),
		SuccessFg:  lipgloss.Color("#3FB950"),
		WarnFg:     lipgloss.Color("#E3B341"),
		ErrorFg:    lipgloss.Color("#F47067"),
		Cyan:       lipgloss.Color("#7CE0F3"),
		Yellow:     lipgloss.Color("#F2CC60"),
	}
}

// CleanLight returns a theme optimized for light terminal backgrounds.
func CleanLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#FFFFFF"),
		Accent:     lipgloss.Color("#c6dbe5"),
		AccentFg:   lipgloss.Color("#24292F"),
		AccentDim:  lipgloss.Color("#DDF4FF"),
		Border:     lipgloss.Color("#D0D7DE"),
		BorderDim:  lipgloss.Color("#E1E4E8"),
		MutedFg:    lipgloss.Color("#6E7781"),
		TextFg:     lipgloss.Color("#24292F"),
		SuccessFg:  lipgloss.Color("#1A7F37"),
		WarnFg:     lipgloss.Color("#9A6700"),
		ErrorFg:    lipgloss.Color("#CF222E"),
		Cyan:       lipgloss.Color("#0598BC"),
		Yellow:     lipgloss.Color("#D4A72C"),
	}
}

// CatppuccinMocha returns the Catppuccin Mocha theme (dark).
func CatppuccinMocha() *Theme {
	return &Theme{
		Background: lipgloss.Color("#1E1E2E"),
		Accent:     lipgloss.Color("#89B4FA"), // Blue
		AccentFg:   lipgloss.Color("#1E1E2E"),
		AccentDim:  lipgloss.Color("#313244"),
		Border:     lipgloss.Color("#6C7086"),
		BorderDim:  lipgloss.Color("#45475A"),
		MutedFg:    lipgloss.Color("#A6ADC8"),
		TextFg:     lipgloss.Color("#CDD6F4"),
		SuccessFg:  lipgloss.Color("#A6E3A1"),
		WarnFg:     lipgloss.Color("#F9E2AF"),
		ErrorFg:    lipgloss.Color("#F38BA8"),
		Cyan:       lipgloss.Color("#89DCEB"),
		Yellow:     lipgloss.Color("#F9E2AF"),
	}
}

var themesByName = map[string]func() *Theme{
	DraculaName:         Dracula,
	NarnaName:           Narna,
	CleanLightName:      CleanLight,
	CatppuccinMochaName: CatppuccinMocha,
}

// ByName returns the named theme, or nil when the name is unknown.
func ByName(name string) *Theme {
	if f, ok := themesByName[name]; ok {
		return f()
	}
	return nil
}

// Default returns the theme used when nothing is configured.
func Default() *Theme {
	return Narna()
}

// AvailableThemes lists the registered theme names.
func AvailableThemes() []string {
	names := make([]string, 0, len(themesByName))
	for name := range themesByName {
		names = append(names, name)
	}
	return names
}
