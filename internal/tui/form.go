package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"portafoglio/internal/core"
	"portafoglio/internal/ledger"
)

const dateLayout = "2006-01-02"

// addForm collects a new transaction. The receipt field is only shown
// when a scanner is configured.
type addForm struct {
	txType   core.TransactionType
	inputs   []textinput.Model
	focus    int
	scanning bool
}

const (
	fieldAmount = iota
	fieldCategory
	fieldDescription
	fieldDate
	fieldReceipt
)

func newAddForm(scanEnabled bool) addForm {
	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 12
	amount.Width = 14

	category := textinput.New()
	category.Placeholder = "Food"
	category.CharLimit = 32
	category.Width = 24

	description := textinput.New()
	description.Placeholder = "optional"
	description.CharLimit = 120
	description.Width = 40

	date := textinput.New()
	date.Placeholder = dateLayout
	date.SetValue(time.Now().Format(dateLayout))
	date.CharLimit = len(dateLayout)
	date.Width = 14

	inputs := []textinput.Model{amount, category, description, date}
	if scanEnabled {
		receipt := textinput.New()
		receipt.Placeholder = "path to receipt image"
		receipt.CharLimit = 200
		receipt.Width = 40
		inputs = append(inputs, receipt)
	}

	f := addForm{
		txType:   core.Expense,
		inputs:   inputs,
		scanning: scanEnabled,
	}
	f.inputs[fieldAmount].Focus()
	return f
}

func (f addForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f *addForm) setAmount(v float64) {
	f.inputs[fieldAmount].SetValue(fmt.Sprintf("%.2f", v))
}

func (f *addForm) cycleFocus(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (m model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.status = ""
		return m, nil

	case "tab", "down":
		m.form.cycleFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.form.cycleFocus(-1)
		return m, nil

	case "ctrl+t":
		if m.form.txType == core.Expense {
			m.form.txType = core.Income
		} else {
			m.form.txType = core.Expense
		}
		return m, nil

	case "ctrl+o":
		if !m.form.scanning {
			return m, nil
		}
		path := strings.TrimSpace(m.form.inputs[fieldReceipt].Value())
		if path == "" {
			m.status, m.statusErr = "Enter a receipt image path first", true
			return m, nil
		}
		m.status, m.statusErr = "Scanning receipt...", false
		return m, m.scanCmd(path)

	case "enter":
		return m.submitAddForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m model) submitAddForm() (tea.Model, tea.Cmd) {
	amount, err := core.ParseAmount(m.form.inputs[fieldAmount].Value())
	if err != nil {
		m.status, m.statusErr = "Enter a positive amount", true
		return m, nil
	}

	category := strings.TrimSpace(m.form.inputs[fieldCategory].Value())
	if category == "" {
		m.status, m.statusErr = "Category is required", true
		return m, nil
	}

	date := time.Now()
	if raw := strings.TrimSpace(m.form.inputs[fieldDate].Value()); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			m.status, m.statusErr = "Date must look like "+dateLayout, true
			return m, nil
		}
		date = parsed
	}

	description := strings.TrimSpace(m.form.inputs[fieldDescription].Value())
	return m, m.recordCmd(m.form.txType, amount, category, description, date)
}

// settingsForm edits the profile and optionally corrects the balance.
type settingsForm struct {
	inputs []textinput.Model
	focus  int
}

const (
	settingName = iota
	settingEmail
	settingAvatar
	settingBalance
)

func newSettingsForm(state core.WalletState) settingsForm {
	name := textinput.New()
	name.SetValue(state.User.Name)
	name.CharLimit = 60
	name.Width = 32

	email := textinput.New()
	email.SetValue(state.User.Email)
	email.CharLimit = 120
	email.Width = 32

	avatar := textinput.New()
	avatar.SetValue(state.User.Avatar)
	avatar.CharLimit = 300
	avatar.Width = 48

	balance := textinput.New()
	balance.Placeholder = fmt.Sprintf("%.2f", state.Balance)
	balance.CharLimit = 14
	balance.Width = 14

	f := settingsForm{inputs: []textinput.Model{name, email, avatar, balance}}
	f.inputs[settingName].Focus()
	return f
}

func (f settingsForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f *settingsForm) cycleFocus(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (m model) updateSettingsForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.status = ""
		return m, nil

	case "tab", "down":
		m.settings.cycleFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.settings.cycleFocus(-1)
		return m, nil

	case "enter":
		return m.submitSettingsForm()
	}

	var cmd tea.Cmd
	m.settings.inputs[m.settings.focus], cmd = m.settings.inputs[m.settings.focus].Update(msg)
	return m, cmd
}

func (m model) submitSettingsForm() (tea.Model, tea.Cmd) {
	var update ledger.ProfileUpdate
	if v := strings.TrimSpace(m.settings.inputs[settingName].Value()); v != "" {
		update.Name = &v
	}
	if v := strings.TrimSpace(m.settings.inputs[settingEmail].Value()); v != "" {
		update.Email = &v
	}
	if v := strings.TrimSpace(m.settings.inputs[settingAvatar].Value()); v != "" {
		update.Avatar = &v
	}
	if raw := strings.TrimSpace(m.settings.inputs[settingBalance].Value()); raw != "" {
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			m.status, m.statusErr = "Balance must be a number", true
			return m, nil
		}
		update.Balance = &v
	}

	svc := m.svc
	m.mode = modeBrowse
	m.status, m.statusErr = "Settings saved", false
	return m, func() tea.Msg {
		svc.UpdateProfile(context.Background(), update)
		return stateMsg{state: svc.State()}
	}
}
