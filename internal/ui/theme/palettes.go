package theme

import "github.com/charmbracelet/lipgloss"

func c(dark, light string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: dark, Light: light}
}

// Registration order matters: the first palette is the default.
func init() {
	RegisterTheme("tokyonight", Palette{
		PrimaryColor:             c("#82aaff", "#2e7de9"),
		SecondaryColor:           c("#c099ff", "#9854f1"),
		AccentColor:              c("#ff966c", "#b15c00"),
		SuccessColor:             c("#c3e88d", "#587539"),
		ErrorColor:               c("#ff757f", "#f52a65"),
		TextColor:                c("#c8d3f5", "#3760bf"),
		TextMutedColor:           c("#636da6", "#848cb5"),
		BackgroundSecondaryColor: c("#2f334d", "#c8c9ce"),
		BackgroundDarkerColor:    c("#1e2030", "#d5d6db"),
		BorderNormalColor:        c("#3b4261", "#a8aecb"),
		BorderFocusedColor:       c("#82aaff", "#2e7de9"),
		BorderDimColor:           c("#292e42", "#c8c9ce"),
	})
	RegisterTheme("dracula", Palette{
		PrimaryColor:             c("#bd93f9", "#7e57c2"),
		SecondaryColor:           c("#8be9fd", "#0097a7"),
		AccentColor:              c("#ffb86c", "#ef6c00"),
		SuccessColor:             c("#50fa7b", "#388e3c"),
		ErrorColor:               c("#ff5555", "#d32f2f"),
		TextColor:                c("#f8f8f2", "#212121"),
		TextMutedColor:           c("#6272a4", "#757575"),
		BackgroundSecondaryColor: c("#44475a", "#e0e0e0"),
		BackgroundDarkerColor:    c("#1e1f29", "#bdbdbd"),
		BorderNormalColor:        c("#6272a4", "#bdbdbd"),
		BorderFocusedColor:       c("#bd93f9", "#7e57c2"),
		BorderDimColor:           c("#44475a", "#e0e0e0"),
	})
	RegisterTheme("nord", Palette{
		PrimaryColor:             c("#88C0D0", "#5E81AC"),
		SecondaryColor:           c("#81A1C1", "#81A1C1"),
		AccentColor:              c("#D08770", "#D08770"),
		SuccessColor:             c("#A3BE8C", "#A3BE8C"),
		ErrorColor:               c("#BF616A", "#BF616A"),
		TextColor:                c("#ECEFF4", "#2E3440"),
		TextMutedColor:           c("#8B95A7", "#3B4252"),
		BackgroundSecondaryColor: c("#3B4252", "#E5E9F0"),
		BackgroundDarkerColor:    c("#434C5E", "#D8DEE9"),
		BorderNormalColor:        c("#434C5E", "#4C566A"),
		BorderFocusedColor:       c("#4C566A", "#434C5E"),
		BorderDimColor:           c("#434C5E", "#4C566A"),
	})
	RegisterTheme("catppuccin", Palette{
		PrimaryColor:             c("#89b4fa", "#1e66f5"),
		SecondaryColor:           c("#cba6f7", "#8839ef"),
		AccentColor:              c("#fab387", "#fe640b"),
		SuccessColor:             c("#a6e3a1", "#40a02b"),
		ErrorColor:               c("#f38ba8", "#d20f39"),
		TextColor:                c("#cdd6f4", "#4c4f69"),
		TextMutedColor:           c("#6c7086", "#9ca0b0"),
		BackgroundSecondaryColor: c("#313244", "#e6e9ef"),
		BackgroundDarkerColor:    c("#181825", "#dce0e8"),
		BorderNormalColor:        c("#6c7086", "#9ca0b0"),
		BorderFocusedColor:       c("#89b4fa", "#1e66f5"),
		BorderDimColor:           c("#45475a", "#ccd0da"),
	})
}
