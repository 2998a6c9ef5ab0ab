// Package theme provides the semantic color system for the tag picker.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colors the picker and the demo host draw with.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	Primary() lipgloss.AdaptiveColor   // Headings, focused trigger border
	Secondary() lipgloss.AdaptiveColor // Highlighted dropdown row
	Accent() lipgloss.AdaptiveColor    // Create-tag row

	Success() lipgloss.AdaptiveColor // Check marks on selected rows
	Error() lipgloss.AdaptiveColor   // Status line errors

	Text() lipgloss.AdaptiveColor      // Labels
	TextMuted() lipgloss.AdaptiveColor // Placeholders, hints, chevron

	BackgroundSecondary() lipgloss.AdaptiveColor // Cursor row background
	BackgroundDarker() lipgloss.AdaptiveColor    // Dropdown panel

	BorderNormal() lipgloss.AdaptiveColor  // Dropdown border
	BorderFocused() lipgloss.AdaptiveColor // Open trigger border
	BorderDim() lipgloss.AdaptiveColor     // Closed trigger border
}

// Palette is a Theme spelled out as data.
type Palette struct {
	PrimaryColor             lipgloss.AdaptiveColor
	SecondaryColor           lipgloss.AdaptiveColor
	AccentColor              lipgloss.AdaptiveColor
	SuccessColor             lipgloss.AdaptiveColor
	ErrorColor               lipgloss.AdaptiveColor
	TextColor                lipgloss.AdaptiveColor
	TextMutedColor           lipgloss.AdaptiveColor
	BackgroundSecondaryColor lipgloss.AdaptiveColor
	BackgroundDarkerColor    lipgloss.AdaptiveColor
	BorderNormalColor        lipgloss.AdaptiveColor
	BorderFocusedColor       lipgloss.AdaptiveColor
	BorderDimColor           lipgloss.AdaptiveColor
}

func (p Palette) Primary() lipgloss.AdaptiveColor             { return p.PrimaryColor }
func (p Palette) Secondary() lipgloss.AdaptiveColor           { return p.SecondaryColor }
func (p Palette) Accent() lipgloss.AdaptiveColor              { return p.AccentColor }
func (p Palette) Success() lipgloss.AdaptiveColor             { return p.SuccessColor }
func (p Palette) Error() lipgloss.AdaptiveColor               { return p.ErrorColor }
func (p Palette) Text() lipgloss.AdaptiveColor                { return p.TextColor }
func (p Palette) TextMuted() lipgloss.AdaptiveColor           { return p.TextMutedColor }
func (p Palette) BackgroundSecondary() lipgloss.AdaptiveColor { return p.BackgroundSecondaryColor }
func (p Palette) BackgroundDarker() lipgloss.AdaptiveColor    { return p.BackgroundDarkerColor }
func (p Palette) BorderNormal() lipgloss.AdaptiveColor        { return p.BorderNormalColor }
func (p Palette) BorderFocused() lipgloss.AdaptiveColor       { return p.BorderFocusedColor }
func (p Palette) BorderDim() lipgloss.AdaptiveColor           { return p.BorderDimColor }
