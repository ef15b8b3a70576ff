package tui

import (
	"strings"

	"github.com/averlane/bankist/internal/session"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.sink.loggedIn {
		return m.renderDashboard()
	}
	return m.renderLogin()
}

func (m Model) renderLogin() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Bankist"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(m.sink.welcome))
	b.WriteString("\n\n")
	b.WriteString(m.inputs[inputLoginUser].View())
	b.WriteString("\n")
	b.WriteString(m.inputs[inputLoginPIN].View())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(m.theme.Status.Render(m.status))
		b.WriteString("\n\n")
	}
	b.WriteString(m.theme.Muted.Render("tab: switch field · enter: log in · ctrl+c: quit"))

	box := m.theme.Box.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderDashboard() string {
	d := m.sink.dashboard

	header := m.renderHeader(d)
	movements := m.renderMovements(d)
	forms := m.renderForms()
	summary := m.renderSummary(d)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Box.Render(movements),
		" ",
		m.theme.Box.Render(forms),
	)

	parts := []string{header, body, summary}
	if m.status != "" {
		parts = append(parts, m.theme.Status.Render(m.status))
	}
	parts = append(parts, m.theme.Muted.Render(
		"tab: next field · enter: submit · ctrl+s: sort · ctrl+o: default order · esc: log out"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader(d session.Dashboard) string {
	left := m.theme.Title.Render(m.sink.welcome)
	date := m.theme.Subtitle.Render(d.DateLabel)

	timer := ""
	if m.sink.timer != "" {
		timer = m.theme.Muted.Render("logout in ") + m.theme.Timer.Render(m.sink.timer)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, left, "   ", date, "   ", timer)
}

func (m Model) renderMovements(d session.Dashboard) string {
	var b strings.Builder

	b.WriteString(m.theme.Label.Render("Movements"))
	b.WriteString("  ")
	b.WriteString(m.theme.Muted.Render(sortLabel(d.Order)))
	b.WriteString("\n\n")

	if len(d.Rows) == 0 {
		b.WriteString(m.theme.Muted.Render("no movements"))
	}
	for _, row := range d.Rows {
		kind := m.theme.Withdrawal.Render("▼ " + string(row.Kind))
		if row.Amount.IsPositive() {
			kind = m.theme.Deposit.Render("▲ " + string(row.Kind))
		}
		b.WriteString(kind)
		b.WriteString("  ")
		b.WriteString(m.theme.Muted.Render(padRight(row.DateLabel, 12)))
		b.WriteString("  ")
		b.WriteString(m.theme.Normal.Render(row.AmountLabel))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Label.Render("Balance  "))
	b.WriteString(m.theme.Balance.Render(d.BalanceLabel))
	return b.String()
}

func (m Model) renderForms() string {
	var b strings.Builder

	b.WriteString(m.theme.Label.Render("Transfer money"))
	b.WriteString("\n")
	b.WriteString(m.inputs[inputTransferTo].View())
	b.WriteString("\n")
	b.WriteString(m.inputs[inputTransferAmount].View())
	b.WriteString("\n\n")

	b.WriteString(m.theme.Label.Render("Request loan"))
	b.WriteString("\n")
	b.WriteString(m.inputs[inputLoanAmount].View())
	b.WriteString("\n\n")

	b.WriteString(m.theme.Label.Render("Close account"))
	b.WriteString("\n")
	b.WriteString(m.inputs[inputCloseUser].View())
	b.WriteString("\n")
	b.WriteString(m.inputs[inputClosePIN].View())
	return b.String()
}

func (m Model) renderSummary(d session.Dashboard) string {
	parts := []string{
		m.theme.Label.Render("In ") + m.theme.Deposit.Render(d.InLabel),
		m.theme.Label.Render("Out ") + m.theme.Withdrawal.Render(d.OutLabel),
		m.theme.Label.Render("Interest ") + m.theme.Normal.Render(d.InterestLabel),
	}
	return strings.Join(parts, m.theme.Muted.Render("  ·  "))
}

func sortLabel(order session.Order) string {
	switch order {
	case session.OrderAmountDesc:
		return "sorted ↓"
	case session.OrderAmountAsc:
		return "sorted ↑"
	default:
		return "most recent first"
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
