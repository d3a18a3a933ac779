package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medvision-ai/medvision-client/models"
)

// NavigateTo switches the RootModel to another page, optionally delivering a
// payload message to it on arrival.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login flow. On success the RootModel quits the
// login program and hands the user to the main loop.
type LoginResult struct {
	User models.User
	Err  error
}

type statsLoadedMsg struct {
	stats models.DashboardStats
	err   error
}

type historyLoadedMsg struct {
	scans []models.Scan
	err   error
}

type usersLoadedMsg struct {
	users []models.User
	err   error
}

type allScansLoadedMsg struct {
	scans []models.Scan
	err   error
}

type diagnosisDoneMsg struct {
	scan models.Scan
	err  error
}

type fileStagedMsg struct {
	name string
	err  error
}

type scanDeletedMsg struct {
	err error
}

type userChangedMsg struct {
	err error
}

type reportSavedMsg struct {
	path string
	err  error
}
