package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medvision-ai/medvision-client/internal/service"
	"github.com/medvision-ai/medvision-client/models"
)

// registrable roles, admin excluded on purpose
var registerRoles = []models.Role{
	models.RoleDoctor,
	models.RoleHealthcareWorker,
	models.RoleResearcher,
}

// RegisterModel is the Bubble Tea model for the account creation screen:
// name, email, password, password confirmation, and a role selector. On
// success the account is also signed in, so a [LoginResult] finishes the
// flow just like the sign-in screen.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	roleIdx    int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	fields := make([]textinput.Model, 4)

	fields[0] = textinput.New()
	fields[0].Placeholder = "full name"
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "email"
	fields[1].CharLimit = 128
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "password"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "repeat password"
	fields[3].EchoMode = textinput.EchoPassword
	fields[3].EchoCharacter = '*'
	fields[3].Width = 40

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = registerErrorMessage(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "left":
			if m.focus == len(m.inputs) && m.roleIdx > 0 {
				m.roleIdx--
			}
			if m.focus == len(m.inputs) {
				return m, nil
			}
		case "right":
			if m.focus == len(m.inputs) && m.roleIdx < len(registerRoles)-1 {
				m.roleIdx++
			}
			if m.focus == len(m.inputs) {
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *RegisterModel) submit() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[0].Value())
	email := strings.TrimSpace(m.inputs[1].Value())
	pass := m.inputs[2].Value()
	repeat := m.inputs[3].Value()

	switch {
	case name == "" || email == "" || pass == "":
		m.errMsg = "Name, email and password are required"
		return m, nil
	case pass != repeat:
		m.errMsg = "Passwords do not match"
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true
	return m, m.cmdRegister(name, email, pass, registerRoles[m.roleIdx])
}

func (m *RegisterModel) View() string {
	labels := []string{"Name     ", "Email    ", "Password ", "Repeat   "}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString("│ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	b.WriteString("Role     │ ")
	for i, role := range registerRoles {
		marker := "  "
		if i == m.roleIdx {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(roleLabel(role))
	}
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ←/→: role │ enter: submit")
}

func (m *RegisterModel) cmdRegister(name, email, pass string, role models.Role) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Register(ctx, name, email, pass, role)
		return LoginResult{User: user, Err: err}
	}
}

// focus cycles through the text inputs plus one extra slot for the role
// selector.
func (m *RegisterModel) focusNext() {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + 1) % (len(m.inputs) + 1)
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func (m *RegisterModel) focusPrev() {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus - 1 + len(m.inputs) + 1) % (len(m.inputs) + 1)
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func roleLabel(role models.Role) string {
	switch role {
	case models.RoleDoctor:
		return "Doctor"
	case models.RoleHealthcareWorker:
		return "Healthcare worker"
	case models.RoleResearcher:
		return "Researcher"
	case models.RoleAdmin:
		return "Admin"
	default:
		return string(role)
	}
}

func registerErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		return "An account with this email already exists"
	case errors.Is(err, service.ErrServer):
		return "Server unavailable, check the auth service and try again"
	default:
		return err.Error()
	}
}
