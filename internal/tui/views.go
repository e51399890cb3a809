package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"portafoglio/internal/core"
	"portafoglio/internal/stats"
)

const maxListRows = 12

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Wallet"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.mode {
	case modeAddForm:
		b.WriteString(m.renderAddForm())
	case modeSettingsForm:
		b.WriteString(m.renderSettingsForm())
	default:
		switch m.tab {
		case tabHome:
			b.WriteString(m.renderHome())
		case tabStats:
			b.WriteString(m.renderStats())
		case tabNotifications:
			b.WriteString(m.renderNotifications())
		case tabSettings:
			b.WriteString(m.renderSettings())
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(m.styles.statusErr.Render(m.status))
		} else {
			b.WriteString(m.styles.statusOK.Render(m.status))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render(m.keyHints()))

	return m.styles.app.Render(b.String())
}

func (m model) renderTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d:%s", i+1, name)
		if tab(i) == m.tab {
			parts = append(parts, m.styles.tabActive.Render(label))
		} else {
			parts = append(parts, m.styles.tabInactive.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m model) renderHome() string {
	balance := core.FormatAmount(m.state.Balance)
	balanceStyle := m.styles.balancePos
	if m.state.Balance < 0 {
		balanceStyle = m.styles.balanceNeg
		balance = "-" + core.FormatAmount(-m.state.Balance)
	}
	card := m.styles.balanceCard.Render(
		m.styles.muted.Render("Balance") + "\n" + balanceStyle.Render(balance))

	var list strings.Builder
	if len(m.state.Transactions) == 0 {
		list.WriteString(m.styles.muted.Render("No transactions yet. Press a to add one."))
	} else {
		start, end := listWindow(m.cursor, len(m.state.Transactions))
		for i := start; i < end; i++ {
			list.WriteString(m.renderTransactionRow(i))
			list.WriteString("\n")
		}
		if end < len(m.state.Transactions) {
			list.WriteString(m.styles.muted.Render(fmt.Sprintf("… %d more", len(m.state.Transactions)-end)))
		}
	}

	return card + "\n\n" + list.String()
}

// listWindow keeps the cursor visible when the ledger outgrows the screen.
func listWindow(cursor, total int) (start, end int) {
	if total <= maxListRows {
		return 0, total
	}
	start = cursor - maxListRows/2
	if start < 0 {
		start = 0
	}
	end = start + maxListRows
	if end > total {
		end = total
		start = end - maxListRows
	}
	return start, end
}

func (m model) renderTransactionRow(i int) string {
	tx := m.state.Transactions[i]

	amountStyle := m.styles.expense
	if tx.Type == core.Income {
		amountStyle = m.styles.income
	}
	amount := amountStyle.Render(core.FormatSigned(tx.Signed()))

	label := tx.Category
	if tx.Description != "" {
		label += " · " + tx.Description
	}
	line := fmt.Sprintf("%s %s  %s  %s",
		core.CategoryIcon(tx.Category),
		tx.Date.Format("Jan 02"),
		amount,
		label)

	if i == m.cursor {
		return m.styles.listSelected.Render("> " + line)
	}
	return m.styles.listItem.Render("  " + line)
}

func (m model) renderStats() string {
	filtered, summary := m.svc.Statistics(m.window, time.Now())
	avg := stats.AverageDailySpend(summary.Expenses, m.window)
	insight := stats.Insight(summary)

	var b strings.Builder
	b.WriteString(m.renderWindowTabs())
	b.WriteString("\n\n")

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("Income", m.styles.income.Render(core.FormatAmount(summary.Income))),
		" ",
		m.statCard("Expenses", m.styles.expense.Render(core.FormatAmount(summary.Expenses))),
		" ",
		m.statCard("Net", core.FormatSigned(summary.Net)),
	)
	b.WriteString(row)
	b.WriteString("\n\n")

	b.WriteString(m.styles.muted.Render("Avg daily spend "))
	b.WriteString(core.FormatAmount(avg))
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("   %d transactions", len(filtered))))
	b.WriteString("\n\n")

	b.WriteString(m.styles.insightCard.Render(insight))
	return b.String()
}

func (m model) statCard(label, value string) string {
	return m.styles.insightCard.Render(m.styles.muted.Render(label) + "\n" + value)
}

func (m model) renderWindowTabs() string {
	parts := make([]string, 0, len(stats.Windows))
	for _, w := range stats.Windows {
		if w == m.window {
			parts = append(parts, m.styles.tabActive.Render(string(w)))
		} else {
			parts = append(parts, m.styles.tabInactive.Render(string(w)))
		}
	}
	return strings.Join(parts, "  ")
}

func (m model) renderNotifications() string {
	if len(m.state.Notifications) == 0 {
		return m.styles.muted.Render("Nothing to see here.")
	}

	var b strings.Builder
	shown := len(m.state.Notifications)
	if shown > maxListRows {
		shown = maxListRows
	}
	for _, n := range m.state.Notifications[:shown] {
		dot := " "
		if !n.Read {
			dot = m.styles.unreadDot.Render("●")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", dot, n.Title))
		b.WriteString("  " + m.styles.muted.Render(n.Message) + "\n")
	}
	if shown < len(m.state.Notifications) {
		b.WriteString(m.styles.muted.Render(fmt.Sprintf("… %d more", len(m.state.Notifications)-shown)))
	}
	return b.String()
}

func (m model) renderSettings() string {
	u := m.state.User
	var b strings.Builder
	b.WriteString(m.styles.formLabel.Render("Name") + u.Name + "\n")
	b.WriteString(m.styles.formLabel.Render("Email") + u.Email + "\n")
	b.WriteString(m.styles.formLabel.Render("Avatar") + m.styles.muted.Render(u.Avatar) + "\n")
	b.WriteString(m.styles.formLabel.Render("Theme") + string(m.state.Theme) + "\n")
	return b.String()
}

func (m model) renderAddForm() string {
	typeLabel := "Expense"
	typeStyle := m.styles.expense
	if m.form.txType == core.Income {
		typeLabel = "Income"
		typeStyle = m.styles.income
	}

	labels := []string{"Amount", "Category", "Description", "Date"}
	if m.form.scanning {
		labels = append(labels, "Receipt")
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("New transaction") + "  " + typeStyle.Render(typeLabel) + "\n\n")
	for i, label := range labels {
		b.WriteString(m.styles.formLabel.Render(label))
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) renderSettingsForm() string {
	labels := []string{"Name", "Email", "Avatar", "Balance"}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("Edit settings") + "\n\n")
	for i, label := range labels {
		b.WriteString(m.styles.formLabel.Render(label))
		b.WriteString(m.settings.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) keyHints() string {
	switch m.mode {
	case modeAddForm:
		hints := "enter save · esc cancel · tab next field · ctrl+t income/expense"
		if m.form.scanning {
			hints += " · ctrl+o scan receipt"
		}
		return hints
	case modeSettingsForm:
		return "enter save · esc cancel · tab next field"
	}

	switch m.tab {
	case tabStats:
		return "w window · e export csv · a add · t theme · q quit"
	case tabNotifications:
		return "c clear · a add · t theme · q quit"
	case tabSettings:
		return "s edit · a add · t theme · q quit"
	default:
		return "a add · d delete · j/k move · t theme · q quit"
	}
}
