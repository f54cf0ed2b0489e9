package names

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpText = "tab/shift+tab move (saves) | enter save | ctrl+n new | ctrl+d remove | ctrl+r reload | esc quit"

func (m Model) View() string {
	lines := []string{m.styles.title.Render("My presentations")}

	switch {
	case len(m.ids) == 0 && m.busy == "" && m.err == nil:
		lines = append(lines, m.styles.empty.Render("No presentations yet. Press ctrl+n to create one."))
	default:
		entries := m.reconciler.Entries()
		for i, entry := range entries {
			input, ok := m.inputs[entry.ID]
			if !ok {
				continue
			}

			marker := "  "
			if i == m.focus {
				marker = m.styles.marker.Render("> ")
			}
			dirty := " "
			if entry.Dirty {
				dirty = m.styles.dirty.Render("*")
			}
			meta := m.styles.meta.Render(fmt.Sprintf("%d %s", entry.PageCount, pagesWord(entry.PageCount)))

			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, marker, dirty, " ", input.View(), "  ", meta))
		}
	}

	lines = append(lines, "")
	switch {
	case m.busy != "":
		lines = append(lines, m.styles.busy.Render(m.busy))
	case m.err != nil:
		lines = append(lines, m.styles.err.Render("Error: "+m.err.Error()))
	case m.status != "":
		lines = append(lines, m.styles.status.Render(m.status))
	}
	lines = append(lines, m.styles.help.Render(helpText))

	return strings.Join(lines, "\n") + "\n"
}

func pagesWord(count int) string {
	if count == 1 {
		return "page"
	}
	return "pages"
}
