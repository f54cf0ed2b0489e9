package listing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Cenagaurav77/Present-App/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const maxPageMarks = 12

type RenderOptions struct {
	Now   time.Time
	Owner domain.OwnerID
}

func renderView(presentations []domain.Presentation, opts RenderOptions, s styles) string {
	header := fmt.Sprintf("presentations: %d", len(presentations))
	if opts.Owner != "" {
		header = fmt.Sprintf("owner: %s  %s", opts.Owner, header)
	}
	lines := []string{
		s.title.Render("Presentations"),
		s.header.Render(header),
	}

	if len(presentations) == 0 {
		lines = append(lines, s.empty.Render("No presentations yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, presentation := range presentations {
		lines = append(lines, s.section.Render(renderPresentation(presentation, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPresentation(presentation domain.Presentation, opts RenderOptions, s styles) string {
	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.name.Render(displayName(presentation.Name)),
		" ",
		s.id.Render(fmt.Sprintf("(%s)", presentation.ID)),
	)

	pages := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detail.Render(pagesLabel(presentation.PageCount())),
		" ",
		renderPageStrip(presentation.PageCount(), s),
	)

	parts := []string{title, pages}
	if !presentation.UpdatedAt.IsZero() {
		updatedStyle := lipgloss.NewStyle().Foreground(ageColor(presentation.UpdatedAt, opts.Now))
		parts = append(parts, updatedStyle.Render(formatUpdated(presentation.UpdatedAt, opts.Now)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "(unnamed)"
	}
	return name
}

func pagesLabel(count int) string {
	if count == 1 {
		return "1 page"
	}
	return fmt.Sprintf("%d pages", count)
}

func renderPageStrip(count int, s styles) string {
	if count == 0 {
		return s.noPages.Render("[ ]")
	}

	marks := count
	overflow := ""
	if marks > maxPageMarks {
		marks = maxPageMarks
		overflow = fmt.Sprintf(" +%d", count-maxPageMarks)
	}

	return s.pageBox.Render("["+strings.Repeat("#", marks)+"]") + s.detail.Render(overflow)
}

func formatUpdated(updatedAt, now time.Time) string {
	if now.IsZero() {
		return "updated " + updatedAt.Format(time.RFC3339)
	}

	elapsed := now.Sub(updatedAt)
	if elapsed < time.Minute {
		return "updated just now"
	}
	if elapsed < time.Hour {
		minutes := int(elapsed.Minutes())
		return fmt.Sprintf("updated %d %s ago", minutes, plural(minutes, "minute"))
	}
	if elapsed < 24*time.Hour {
		hours := int(math.Floor(elapsed.Hours()))
		return fmt.Sprintf("updated %d %s ago (%s)", hours, plural(hours, "hour"), updatedAt.Format("15:04"))
	}

	days := int(math.Floor(elapsed.Hours() / 24))
	return fmt.Sprintf("updated %d %s ago (%s)", days, plural(days, "day"), updatedAt.Format("15:04 on 02 Jan"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp: 240 faded at min, 255 bright at max.
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}

// ageColor fades from bright for a fresh edit to grey after a week untouched.
func ageColor(updatedAt, now time.Time) lipgloss.Color {
	if now.IsZero() || updatedAt.After(now) {
		return lipgloss.Color("255")
	}

	window := 7 * 24 * time.Hour
	inverted := window.Seconds() - now.Sub(updatedAt).Seconds()
	return interpolateColor(inverted, 0, window.Seconds())
}
