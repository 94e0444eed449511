// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the TableTalk CLI.
package ux

import (
	"github.com/charmbracelet/lipgloss"
)

// TableTalk color palette - warm candlelight and table linen
var (
	ColorAmber   = lipgloss.Color("#F4A259") // Amber - highlights, prompts
	ColorCopper  = lipgloss.Color("#BC6C25") // Copper - brand accents
	ColorCream   = lipgloss.Color("#FEFAE0") // Cream - primary text on dark terminals
	ColorOlive   = lipgloss.Color("#606C38") // Olive - muted text, borders
	ColorSuccess = lipgloss.Color("#8AB17D") // Sage green for success
	ColorError   = lipgloss.Color("#E74C3C") // Red for errors
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Title  lipgloss.Style
	System lipgloss.Style
	Prompt lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style

	Box lipgloss.Style
}{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(ColorAmber),
	System: lipgloss.NewStyle().Foreground(ColorCream),
	Prompt: lipgloss.NewStyle().Bold(true).Foreground(ColorCopper),
	Muted:  lipgloss.NewStyle().Foreground(ColorOlive),
	Error:  lipgloss.NewStyle().Foreground(ColorError),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorCopper).
		Padding(0, 1),
}

// PromptMarker is the styled input marker for the chat loop.
func PromptMarker() string {
	return Styles.Prompt.Render("> ")
}
