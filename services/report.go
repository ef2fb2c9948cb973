package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"inventory-report/models"
)

// Reporter renders an InventoryReport as text. Styling degrades to plain
// text when out is not a terminal.
type Reporter struct {
	out     io.Writer
	title   lipgloss.Style
	heading lipgloss.Style
	money   lipgloss.Style
	alert   lipgloss.Style
}

func NewReporter(out io.Writer) *Reporter {
	r := lipgloss.NewRenderer(out)
	return &Reporter{
		out:     out,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		money:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		alert:   r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (p *Reporter) Print(r *models.InventoryReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(p.out, "\n%s\n", p.title.Render(sep))
	fmt.Fprintf(p.out, "%s\n", p.title.Render("  INVENTORY ANALYSIS REPORT"))
	fmt.Fprintf(p.out, "%s\n\n", p.title.Render(sep))

	fmt.Fprintf(p.out, "%s\n", p.heading.Render("  Overview"))
	fmt.Fprintf(p.out, "  %s\n", thin)
	fmt.Fprintf(p.out, "  %-23s: %d\n", "Total records", r.TotalRecords)
	if r.Skipped > 0 {
		fmt.Fprintf(p.out, "  %-23s: %d\n", "Skipped invalid items", r.Skipped)
	}
	fmt.Fprintf(p.out, "  %-23s: %d\n", fmt.Sprintf("Below threshold (%d)", r.Threshold), len(r.LowStock))
	fmt.Fprintf(p.out, "  %-23s: %s\n", "Total inventory value", p.money.Render(r.TotalValue.StringFixedBank(2)))
	fmt.Fprintln(p.out)

	fmt.Fprintf(p.out, "%s\n", p.heading.Render("  Value by Category"))
	fmt.Fprintf(p.out, "  %s\n", thin)
	for _, cat := range r.Categories.Categories() {
		total, _ := r.Categories.Get(cat)
		fmt.Fprintf(p.out, "  %-15s : %s\n", cat, total.StringFixedBank(2))
	}

	if len(r.LowStock) == 0 {
		fmt.Fprintf(p.out, "\n  No low-stock items.\n\n")
		return
	}

	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "%s\n", p.heading.Render("  Low-Stock Items"))
	fmt.Fprintf(p.out, "  %s\n", thin)
	for _, rec := range r.LowStock {
		line := fmt.Sprintf("%4s | %-20s | qty: %3d | unit price: %s",
			rec.ID, truncate(rec.Name, 20), rec.Quantity, rec.UnitPrice.StringFixedBank(2))
		fmt.Fprintf(p.out, "  %s\n", p.alert.Render(line))
	}
	fmt.Fprintln(p.out)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
