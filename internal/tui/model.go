// Package tui is the interactive terminal frontend. It renders snapshots
// and forwards user actions to the wallet service; no ledger logic lives
// here.
package tui

import (
	"context"
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"portafoglio/internal/core"
	"portafoglio/internal/export"
	"portafoglio/internal/log"
	"portafoglio/internal/scan"
	"portafoglio/internal/stats"
	"portafoglio/internal/wallet"
)

type tab int

const (
	tabHome tab = iota
	tabStats
	tabNotifications
	tabSettings
)

var tabNames = []string{"Home", "Statistics", "Notifications", "Settings"}

type mode int

const (
	modeBrowse mode = iota
	modeAddForm
	modeSettingsForm
)

type (
	// stateMsg carries a fresh snapshot after any mutation.
	stateMsg struct {
		state core.WalletState
	}

	recordDoneMsg struct {
		err error
	}

	scanDoneMsg struct {
		amount float64
		err    error
	}

	exportDoneMsg struct {
		path string
		err  error
	}
)

type model struct {
	svc     *wallet.Service
	scanner *scan.Service // nil when scanning is not configured
	logger  *log.Logger

	state  core.WalletState
	styles styles

	tab    tab
	mode   mode
	cursor int
	window stats.Window

	form     addForm
	settings settingsForm

	status    string
	statusErr bool

	width  int
	height int
}

// New builds the TUI model around a loaded wallet service. scanner may
// be nil; the scan action is hidden then.
func New(svc *wallet.Service, scanner *scan.Service, logger *log.Logger) tea.Model {
	state := svc.State()
	return model{
		svc:     svc,
		scanner: scanner,
		logger:  logger.WithComponent(log.ComponentTUI),
		state:   state,
		styles:  newStyles(state.Theme),
		window:  stats.Month,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateMsg:
		m.state = msg.state
		m.styles = newStyles(m.state.Theme)
		if m.cursor >= len(m.state.Transactions) {
			m.cursor = max(0, len(m.state.Transactions)-1)
		}
		return m, nil

	case recordDoneMsg:
		if msg.err != nil {
			m.status, m.statusErr = "Could not record: "+msg.err.Error(), true
			return m, nil
		}
		m.mode = modeBrowse
		m.status, m.statusErr = "Transaction recorded", false
		return m, m.refreshCmd()

	case scanDoneMsg:
		if msg.err != nil {
			// No amount means no transaction; prompt for another try.
			m.status, m.statusErr = "Scan failed - try another photo", true
			if !errors.Is(msg.err, scan.ErrNoAmount) {
				m.status = "Scan failed: " + msg.err.Error()
			}
			return m, nil
		}
		m.form.setAmount(msg.amount)
		m.status, m.statusErr = "Scanned amount filled in - review and confirm", false
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status, m.statusErr = "Export failed: "+msg.err.Error(), true
			return m, nil
		}
		m.status, m.statusErr = "Exported to "+msg.path, false
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeAddForm:
			return m.updateAddForm(msg)
		case modeSettingsForm:
			return m.updateSettingsForm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "right", "l":
		m.tab = (m.tab + 1) % tab(len(tabNames))
		m.status = ""
		return m, nil
	case "shift+tab", "left", "h":
		m.tab = (m.tab + tab(len(tabNames)) - 1) % tab(len(tabNames))
		m.status = ""
		return m, nil
	case "1", "2", "3", "4":
		m.tab = tab(int(msg.String()[0] - '1'))
		m.status = ""
		return m, nil

	case "up", "k":
		if m.tab == tabHome && m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.tab == tabHome && m.cursor < len(m.state.Transactions)-1 {
			m.cursor++
		}
		return m, nil

	case "a":
		m.form = newAddForm(m.scanner != nil)
		m.mode = modeAddForm
		m.status = ""
		return m, m.form.focusCmd()

	case "d":
		if m.tab == tabHome && m.cursor < len(m.state.Transactions) {
			id := m.state.Transactions[m.cursor].ID
			return m, m.deleteCmd(id)
		}
		return m, nil

	case "t":
		return m, m.toggleThemeCmd()

	case "c":
		if m.tab == tabNotifications {
			return m, m.clearNotificationsCmd()
		}
		return m, nil

	case "w":
		if m.tab == tabStats {
			m.window = nextWindow(m.window)
		}
		return m, nil

	case "e":
		if m.tab == tabStats {
			return m, m.exportCmd(m.window)
		}
		return m, nil

	case "s":
		if m.tab == tabSettings {
			m.settings = newSettingsForm(m.state)
			m.mode = modeSettingsForm
			m.status = ""
			return m, m.settings.focusCmd()
		}
		return m, nil
	}
	return m, nil
}

func nextWindow(w stats.Window) stats.Window {
	for i, cur := range stats.Windows {
		if cur == w {
			return stats.Windows[(i+1)%len(stats.Windows)]
		}
	}
	return stats.Month
}

// refreshCmd re-reads the snapshot from the service.
func (m model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return stateMsg{state: m.svc.State()}
	}
}

func (m model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		m.svc.DeleteTransaction(context.Background(), id)
		return stateMsg{state: m.svc.State()}
	}
}

func (m model) toggleThemeCmd() tea.Cmd {
	return func() tea.Msg {
		m.svc.ToggleTheme(context.Background())
		return stateMsg{state: m.svc.State()}
	}
}

func (m model) clearNotificationsCmd() tea.Cmd {
	return func() tea.Msg {
		m.svc.ClearNotifications(context.Background())
		return stateMsg{state: m.svc.State()}
	}
}

func (m model) recordCmd(t core.TransactionType, amount float64, category, description string, date time.Time) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.RecordTransaction(context.Background(), t, amount, category, description, date)
		return recordDoneMsg{err: err}
	}
}

func (m model) scanCmd(path string) tea.Cmd {
	return func() tea.Msg {
		img, err := os.ReadFile(path)
		if err != nil {
			return scanDoneMsg{err: err}
		}
		amount, err := m.scanner.Scan(context.Background(), img)
		if err != nil {
			return scanDoneMsg{err: err}
		}
		return scanDoneMsg{amount: amount}
	}
}

func (m model) exportCmd(w stats.Window) tea.Cmd {
	return func() tea.Msg {
		filtered, _ := m.svc.Statistics(w, time.Now())
		path := export.Filename(w)
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer f.Close()
		if err := export.WriteCSV(f, filtered); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
