package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"govprograms/internal/catalog"
	"govprograms/internal/program"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f38ba8"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func styledTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderProgramTable(c *catalog.Catalog, programs []program.Program) string {
	t := styledTable().Headers("ID", "STATE", "CATEGORY", "TITLE")
	for _, p := range programs {
		state, _ := c.StateOf(p.ID)
		t.Row(p.ID, state, string(p.Category), p.Title)
	}
	return t.String()
}

func renderStateTable(infos []catalog.StateInfo) string {
	t := styledTable().Headers("CODE", "NAME", "PROGRAMS")
	for _, info := range infos {
		t.Row(info.Code, info.Name, fmt.Sprint(info.Count))
	}
	return t.String()
}

func renderProgramDetail(p program.Program, state string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n",
		labelStyle.Render("id:"), p.ID,
		labelStyle.Render("state:"), state,
		labelStyle.Render("category:"), p.Category,
	)
	if p.Description != "" {
		b.WriteString("\n")
		b.WriteString(p.Description)
		b.WriteString("\n")
	}
	writeList(&b, "Benefits", p.Benefits)
	writeList(&b, "Eligibility", p.Eligibility)
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("phone:"), p.Contact.Phone)
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("website:"), p.Contact.Website)
	return b.String()
}

func writeList(b *strings.Builder, heading string, items []string) {
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(heading))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("  • ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}

func joinIDs(ids []string) string {
	return strings.Join(ids, ", ")
}
