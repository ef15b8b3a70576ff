package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/averlane/bankist/internal/session"
	"github.com/averlane/bankist/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// Input field indices. The first two belong to the login form, the rest to
// the dashboard forms.
const (
	inputLoginUser = iota
	inputLoginPIN
	inputTransferTo
	inputTransferAmount
	inputLoanAmount
	inputCloseUser
	inputClosePIN
	inputCount
)

var loginFields = []int{inputLoginUser, inputLoginPIN}

var dashboardFields = []int{
	inputTransferTo,
	inputTransferAmount,
	inputLoanAmount,
	inputCloseUser,
	inputClosePIN,
}

// Model holds the dashboard TUI state. All banking state lives in the
// session; the model owns only presentation concerns.
type Model struct {
	session  *session.Session
	sink     *Sink
	theme    themes.Theme
	keymap   KeyMap
	status   string
	inputs   [inputCount]textinput.Model
	focus    int
	width    int
	height   int
	quitting bool
}

// newModel creates a model over an already-wired session and sink.
func newModel(cfg Config, sess *session.Session, sink *Sink) Model {
	m := Model{
		session: sess,
		sink:    sink,
		theme:   cfg.Theme,
		keymap:  DefaultKeyMap(),
		width:   cfg.Width,
		height:  cfg.Height,
	}

	placeholders := [inputCount]string{
		inputLoginUser:      "user",
		inputLoginPIN:       "PIN",
		inputTransferTo:     "transfer to",
		inputTransferAmount: "amount",
		inputLoanAmount:     "loan amount",
		inputCloseUser:      "confirm user",
		inputClosePIN:       "confirm PIN",
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 24
		in.Prompt = "› "
		m.inputs[i] = in
	}
	m.inputs[inputLoginPIN].EchoMode = textinput.EchoPassword
	m.inputs[inputClosePIN].EchoMode = textinput.EchoPassword

	m.setFocus(inputLoginUser)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.session.TickIdle(msg.generation) {
			return m, tickCmd(msg.generation)
		}
		// Countdown expired or superseded; the session already rendered
		// whatever follows.
		m.syncAfterSession()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Logout):
		if !m.sink.loggedIn {
			m.quitting = true
			return m, tea.Quit
		}
		m.session.Logout()
		m.syncAfterSession()
		return m, nil

	case key.Matches(msg, m.keymap.Sort):
		if err := m.session.ToggleSort(); err == nil {
			m.status = ""
		}
		return m, nil

	case key.Matches(msg, m.keymap.Default):
		if err := m.session.ShowDefault(); err == nil {
			m.status = ""
		}
		return m, nil

	case key.Matches(msg, m.keymap.NextField):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.keymap.PrevField):
		m.cycleFocus(-1)
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		return m.submit()
	}

	return m.updateFocusedInput(msg)
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit dispatches the form owning the focused field.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.sink.loggedIn {
		return m.submitLogin()
	}

	var err error
	switch m.focus {
	case inputTransferTo, inputTransferAmount:
		to := strings.TrimSpace(m.inputs[inputTransferTo].Value())
		err = m.session.Transfer(to, m.parseAmount(inputTransferAmount))
	case inputLoanAmount:
		err = m.session.RequestLoan(m.parseAmount(inputLoanAmount))
	case inputCloseUser, inputClosePIN:
		handle := strings.TrimSpace(m.inputs[inputCloseUser].Value())
		err = m.session.CloseAccount(handle, m.parsePIN(inputClosePIN))
	default:
		return m, nil
	}

	m.status = statusFor(err)
	m.syncAfterSession()
	return m, nil
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	handle := strings.TrimSpace(m.inputs[inputLoginUser].Value())
	err := m.session.Login(handle, m.parsePIN(inputLoginPIN))
	m.status = statusFor(err)
	m.syncAfterSession()

	if err != nil {
		return m, nil
	}
	m.setFocus(inputTransferTo)
	return m, tickCmd(m.session.IdleGeneration())
}

// parseAmount reads a field permissively: anything unparseable becomes
// zero, which then fails the session's amount > 0 validation.
func (m Model) parseAmount(idx int) decimal.Decimal {
	amount, err := decimal.NewFromString(strings.TrimSpace(m.inputs[idx].Value()))
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// parsePIN reads a pin field permissively; garbage becomes 0, which never
// matches a real pin.
func (m Model) parsePIN(idx int) int {
	pin, err := strconv.Atoi(strings.TrimSpace(m.inputs[idx].Value()))
	if err != nil {
		return 0
	}
	return pin
}

// syncAfterSession consumes pending field wipes and realigns focus with the
// current login state.
func (m *Model) syncAfterSession() {
	fields := m.sink.TakeClears()
	if fields&session.FieldsLogin != 0 {
		m.inputs[inputLoginUser].SetValue("")
		m.inputs[inputLoginPIN].SetValue("")
	}
	if fields&session.FieldsTransfer != 0 {
		m.inputs[inputTransferTo].SetValue("")
		m.inputs[inputTransferAmount].SetValue("")
	}
	if fields&session.FieldsLoan != 0 {
		m.inputs[inputLoanAmount].SetValue("")
	}
	if fields&session.FieldsClose != 0 {
		m.inputs[inputCloseUser].SetValue("")
		m.inputs[inputClosePIN].SetValue("")
	}

	if !m.sink.loggedIn && m.focus != inputLoginUser && m.focus != inputLoginPIN {
		m.setFocus(inputLoginUser)
	}
}

// cycleFocus moves focus within the active form group.
func (m *Model) cycleFocus(step int) {
	group := loginFields
	if m.sink.loggedIn {
		group = dashboardFields
	}

	pos := 0
	for i, idx := range group {
		if idx == m.focus {
			pos = i
			break
		}
	}
	pos = (pos + step + len(group)) % len(group)
	m.setFocus(group[pos])
}

func (m *Model) setFocus(idx int) {
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
			m.inputs[i].PromptStyle = m.theme.Focused
			m.inputs[i].TextStyle = m.theme.Normal
		} else {
			m.inputs[i].Blur()
			m.inputs[i].PromptStyle = m.theme.Muted
			m.inputs[i].TextStyle = m.theme.Muted
		}
	}
	m.focus = idx
}

// statusFor maps operation errors to the short line shown under the forms.
// Failures never carry more ceremony than that; the form stays open for
// another attempt.
func statusFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, session.ErrAuthentication):
		return "Wrong user or PIN"
	case errors.Is(err, session.ErrInsufficientFunds):
		return "Insufficient funds"
	case errors.Is(err, session.ErrSelfTransfer):
		return "Cannot transfer to your own account"
	case errors.Is(err, session.ErrUnknownReceiver):
		return "No such account"
	case errors.Is(err, session.ErrNoCollateral):
		return "No qualifying deposit for that loan"
	case errors.Is(err, session.ErrBadCredentials):
		return "Confirmation does not match"
	case errors.Is(err, session.ErrBadAmount):
		return "Enter a positive amount"
	default:
		return "Request rejected"
	}
}
