package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"

	"github.com/stockroute/stockroute/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderAllocation formats an allocation report for terminal output.
func RenderAllocation(report domain.AllocationReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("stockroute")
	subtitle := dimStyle.Render("Order Allocation")
	var status string
	if report.Fulfilled() {
		status = lipgloss.NewStyle().Bold(true).Foreground(success).Render("FULFILLED")
	} else {
		status = lipgloss.NewStyle().Bold(true).Foreground(danger).Render("NOT FULFILLED")
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + status))
	b.WriteString("\n\n")

	if !report.Fulfilled() {
		b.WriteString("  " + failStyle.Render("✗") + " " + dimStyle.Render(report.Shortfall.String()) + "\n\n")
		return b.String()
	}

	if len(report.Shipments) == 0 {
		b.WriteString("  " + dimStyle.Render("Nothing to ship.") + "\n\n")
		return b.String()
	}

	// ── Shipments ──
	for _, s := range report.Shipments {
		fmt.Fprintf(&b, "  %s %s  %s\n",
			passStyle.Render("●"),
			nameStyle.Render(padRight(Humanize(s.Warehouse), 24)),
			dimStyle.Render(fmt.Sprintf("%d units", s.Items.Total())),
		)
		renderItems(&b, s.Items)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Totals ──
	totals := report.Shipments.Totals()
	fmt.Fprintf(&b, "  %s  %s\n\n",
		titleStyle.Render("Total"),
		dimStyle.Render(fmt.Sprintf("%d units from %d warehouses", totals.Total(), len(report.Shipments))),
	)
	return b.String()
}

// RenderInventory formats warehouse stock in priority order.
func RenderInventory(warehouses []domain.Warehouse) string {
	if len(warehouses) == 0 {
		return "  " + dimStyle.Render("No warehouses stocked.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Inventory") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, w := range warehouses {
		total := w.Inventory.Total()
		icon := passStyle.Render("●")
		if total == 0 {
			icon = warnStyle.Render("○")
		}
		fmt.Fprintf(&b, "  %s %s %s  %s\n",
			faintStyle.Render(fmt.Sprintf("%d.", i+1)),
			icon,
			nameStyle.Render(padRight(Humanize(w.Name), 24)),
			dimStyle.Render(fmt.Sprintf("%d units", total)),
		)
		renderItems(&b, w.Inventory)
	}
	b.WriteString("\n")
	return b.String()
}

func renderItems(b *strings.Builder, ledger *domain.ItemLedger) {
	for _, iq := range ledger.Items() {
		qty := fmt.Sprintf("%d", iq.Quantity)
		if iq.Quantity == 0 {
			qty = faintStyle.Render(qty)
		}
		fmt.Fprintf(b, "      %s %s\n", dimStyle.Render(padRight(iq.Item, 20)), qty)
	}
}

// RenderJournal formats the operation journal for terminal output.
func RenderJournal(entries []domain.JournalEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No journal entries found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Journal") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.Revision
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}
		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			faintStyle.Render(fmt.Sprintf("#%-3d", e.Seq)),
			dimStyle.Render(date),
			faintStyle.Render(hash),
			padRight(string(e.Operation), 9),
		)
		line += "  " + journalDetail(e)

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func journalDetail(e domain.JournalEntry) string {
	switch e.Operation {
	case domain.OperationAllocate:
		if !e.Fulfilled {
			detail := "not fulfilled"
			if e.Shortfall != nil {
				detail += " (" + e.Shortfall.String() + ")"
			}
			return failStyle.Render("✗ " + detail)
		}
		return passStyle.Render("✓ " + strings.Join(e.Shipments.Warehouses(), ", "))
	default:
		names := make([]string, 0, len(e.Warehouses))
		for _, w := range e.Warehouses {
			names = append(names, w.Name)
		}
		return dimStyle.Render(fmt.Sprintf("%d warehouses: %s", len(names), strings.Join(names, ", ")))
	}
}

// Humanize turns a warehouse identifier like "warehouse_one" or "eastDepot"
// into a display label ("Warehouse One", "East Depot").
func Humanize(name string) string {
	var words []string
	for _, part := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	}) {
		for _, w := range camelcase.Split(part) {
			if strings.TrimSpace(w) == "" {
				continue
			}
			words = append(words, capitalize(w))
		}
	}
	if len(words) == 0 {
		return name
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	r := []rune(w)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
