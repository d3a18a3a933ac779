package tui

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medvision-ai/medvision-client/internal/report"
	"github.com/medvision-ai/medvision-client/internal/service"
	"github.com/medvision-ai/medvision-client/internal/store"
	"github.com/medvision-ai/medvision-client/models"
)

type mainTab int

const (
	tabDashboard mainTab = iota
	tabDiagnose
	tabHistory
	tabAdmin
)

type adminView int

const (
	adminViewUsers adminView = iota
	adminViewScans
)

var errFileNotStaged = errors.New("no file staged for submission")

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	tab    mainTab
	status string
	errMsg string

	statsLoading bool
	stats        models.DashboardStats

	fileInput  textinput.Model
	editing    bool
	stagedName string
	modality   models.ImageType
	submitting bool
	result     *models.Scan

	histLoading bool
	histScans   []models.Scan
	histIdx     int
	histDetail  bool

	adminLoading bool
	adminView    adminView
	users        []models.User
	userIdx      int
	allScans     []models.Scan
	allScanIdx   int

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User) mainLoopModel {
	fileInput := textinput.New()
	fileInput.Placeholder = "/path/to/image.jpg"
	fileInput.Width = 54

	return mainLoopModel{
		ctx:          ctx,
		services:     services,
		user:         user,
		fileInput:    fileInput,
		modality:     models.ImageTypeXRay,
		statsLoading: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadStats()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.statsLoading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.stats = msg.stats
		return m, nil

	case historyLoadedMsg:
		m.histLoading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.histScans = msg.scans
		if m.histIdx >= len(m.histScans) {
			m.histIdx = len(m.histScans) - 1
		}
		if m.histIdx < 0 {
			m.histIdx = 0
		}
		return m, nil

	case usersLoadedMsg:
		m.adminLoading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.users = msg.users
		if m.userIdx >= len(m.users) {
			m.userIdx = len(m.users) - 1
		}
		if m.userIdx < 0 {
			m.userIdx = 0
		}
		return m, nil

	case allScansLoadedMsg:
		m.adminLoading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.allScans = msg.scans
		if m.allScanIdx >= len(m.allScans) {
			m.allScanIdx = len(m.allScans) - 1
		}
		if m.allScanIdx < 0 {
			m.allScanIdx = 0
		}
		return m, nil

	case fileStagedMsg:
		if msg.err != nil {
			m.errMsg = stageErrorMessage(msg.err)
			return m, nil
		}
		m.stagedName = msg.name
		m.result = nil
		m.status = "File staged: " + msg.name
		m.errMsg = ""
		return m, nil

	case diagnosisDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = submitErrorMessage(msg.err)
			return m, nil
		}
		scan := msg.scan
		m.result = &scan
		m.stagedName = ""
		m.status = "Analysis complete"
		m.errMsg = ""
		return m, nil

	case scanDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "Scan deleted"
		m.errMsg = ""
		m.histDetail = false
		if m.tab == tabAdmin {
			m.adminLoading = true
			return m, m.cmdLoadAllScans()
		}
		m.histLoading = true
		return m, m.cmdLoadHistory()

	case userChangedMsg:
		if msg.err != nil {
			m.errMsg = adminErrorMessage(msg.err)
			return m, nil
		}
		m.status = "User updated"
		m.errMsg = ""
		m.adminLoading = true
		return m, m.cmdLoadUsers()

	case reportSavedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Export failed: %v", msg.err)
			return m, nil
		}
		m.status = "Report saved to " + msg.path
		m.errMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editingFile() {
			var cmd tea.Cmd
			m.fileInput, cmd = m.fileInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.editingFile() {
		return m.updateFileInput(keyMsg)
	}

	switch keyMsg.String() {
	case "tab":
		return m.switchTab((m.tab + 1) % mainTab(m.tabCount()))
	case "shift+tab":
		return m.switchTab((m.tab - 1 + mainTab(m.tabCount())) % mainTab(m.tabCount()))
	case "1":
		return m.switchTab(tabDashboard)
	case "2":
		return m.switchTab(tabDiagnose)
	case "3":
		return m.switchTab(tabHistory)
	case "4":
		if m.user.IsAdmin() {
			return m.switchTab(tabAdmin)
		}
		return m, nil
	case "l":
		m.logout = true
		return m, tea.Quit
	case "q":
		return m, tea.Quit
	}

	switch m.tab {
	case tabDiagnose:
		return m.updateDiagnose(keyMsg)
	case tabHistory:
		return m.updateHistory(keyMsg)
	case tabAdmin:
		return m.updateAdmin(keyMsg)
	}

	return m, nil
}

func (m mainLoopModel) editingFile() bool {
	return m.tab == tabDiagnose && m.editing
}

func (m mainLoopModel) tabCount() int {
	if m.user.IsAdmin() {
		return 4
	}
	return 3
}

// switchTab changes the active tab and reloads its data. Every switch
// refetches so edits made on other tabs are always visible.
func (m mainLoopModel) switchTab(tab mainTab) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.status = ""
	m.errMsg = ""

	switch tab {
	case tabDashboard:
		m.statsLoading = true
		return m, m.cmdLoadStats()
	case tabHistory:
		m.histLoading = true
		m.histDetail = false
		return m, m.cmdLoadHistory()
	case tabAdmin:
		m.adminLoading = true
		if m.adminView == adminViewScans {
			return m, m.cmdLoadAllScans()
		}
		return m, m.cmdLoadUsers()
	}
	return m, nil
}

func (m mainLoopModel) updateFileInput(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.editing = false
		m.fileInput.Blur()
		return m, nil
	case "enter":
		path := strings.TrimSpace(m.fileInput.Value())
		if path == "" {
			m.errMsg = "File path is required"
			return m, nil
		}
		m.editing = false
		m.fileInput.Blur()
		return m, m.cmdStageFile(path)
	}

	var cmd tea.Cmd
	m.fileInput, cmd = m.fileInput.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updateDiagnose(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "f":
		if m.submitting {
			return m, nil
		}
		m.editing = true
		m.errMsg = ""
		m.fileInput.Focus()
		return m, textinput.Blink
	case "m":
		if m.submitting {
			return m, nil
		}
		if m.modality == models.ImageTypeXRay {
			m.modality = models.ImageTypeCT
		} else {
			m.modality = models.ImageTypeXRay
		}
	case "enter":
		if m.submitting {
			return m, nil
		}
		if m.stagedName == "" {
			m.errMsg = errFileNotStaged.Error()
			return m, nil
		}
		m.submitting = true
		m.status = "Analyzing..."
		m.errMsg = ""
		return m, m.cmdSubmit()
	case "x":
		if m.submitting {
			return m, nil
		}
		m.services.DiagnosisService.Reset()
		m.stagedName = ""
		m.result = nil
		m.fileInput.SetValue("")
		m.status = ""
		m.errMsg = ""
	case "c":
		if m.result != nil {
			return m.copyReport(*m.result)
		}
	case "p":
		if m.result != nil {
			return m, m.cmdSaveReport(*m.result)
		}
	}

	return m, nil
}

func (m mainLoopModel) updateHistory(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.histDetail {
		scan, ok := m.currentHistScan()
		if !ok {
			m.histDetail = false
			return m, nil
		}

		switch keyMsg.String() {
		case "esc":
			m.histDetail = false
		case "c":
			return m.copyReport(scan)
		case "p":
			return m, m.cmdSaveReport(scan)
		case "ctrl+d":
			return m, m.cmdDeleteHistScan(scan.ID)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.histIdx > 0 {
			m.histIdx--
		}
	case "down", "j":
		if m.histIdx < len(m.histScans)-1 {
			m.histIdx++
		}
	case "enter":
		if _, ok := m.currentHistScan(); ok {
			m.histDetail = true
		}
	case "ctrl+d":
		scan, ok := m.currentHistScan()
		if !ok {
			m.status = "No scans"
			return m, nil
		}
		return m, m.cmdDeleteHistScan(scan.ID)
	case "r":
		m.histLoading = true
		return m, m.cmdLoadHistory()
	}

	return m, nil
}

func (m mainLoopModel) updateAdmin(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "v":
		if m.adminView == adminViewUsers {
			m.adminView = adminViewScans
			m.adminLoading = true
			return m, m.cmdLoadAllScans()
		}
		m.adminView = adminViewUsers
		m.adminLoading = true
		return m, m.cmdLoadUsers()
	case "r":
		m.adminLoading = true
		if m.adminView == adminViewScans {
			return m, m.cmdLoadAllScans()
		}
		return m, m.cmdLoadUsers()
	}

	if m.adminView == adminViewUsers {
		switch keyMsg.String() {
		case "up", "k":
			if m.userIdx > 0 {
				m.userIdx--
			}
		case "down", "j":
			if m.userIdx < len(m.users)-1 {
				m.userIdx++
			}
		case "b":
			user, ok := m.currentUserRow()
			if !ok {
				m.status = "No users"
				return m, nil
			}
			return m, m.cmdSetBlocked(user.ID, !user.IsBlocked)
		case "ctrl+d":
			user, ok := m.currentUserRow()
			if !ok {
				m.status = "No users"
				return m, nil
			}
			return m, m.cmdDeleteUser(user.ID)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.allScanIdx > 0 {
			m.allScanIdx--
		}
	case "down", "j":
		if m.allScanIdx < len(m.allScans)-1 {
			m.allScanIdx++
		}
	case "ctrl+d":
		if m.allScanIdx >= 0 && m.allScanIdx < len(m.allScans) {
			return m, m.cmdDeleteAdminScan(m.allScans[m.allScanIdx].ID)
		}
		m.status = "No scans"
	}

	return m, nil
}

func (m mainLoopModel) copyReport(scan models.Scan) (tea.Model, tea.Cmd) {
	if err := clipboard.WriteAll(report.Text(scan)); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}
	m.status = "Report copied to clipboard"
	m.errMsg = ""
	return m, nil
}

func (m mainLoopModel) currentHistScan() (models.Scan, bool) {
	if len(m.histScans) == 0 || m.histIdx < 0 || m.histIdx >= len(m.histScans) {
		return models.Scan{}, false
	}
	return m.histScans[m.histIdx], true
}

func (m mainLoopModel) currentUserRow() (models.User, bool) {
	if len(m.users) == 0 || m.userIdx < 0 || m.userIdx >= len(m.users) {
		return models.User{}, false
	}
	return m.users[m.userIdx], true
}

func (m mainLoopModel) cmdLoadStats() tea.Cmd {
	ctx := m.ctx
	svc := m.services.StatsService

	return func() tea.Msg {
		stats, err := svc.GetStats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m mainLoopModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	userID := m.user.ID

	return func() tea.Msg {
		scans, err := svc.UserScans(ctx, userID)
		return historyLoadedMsg{scans: scans, err: err}
	}
}

func (m mainLoopModel) cmdLoadUsers() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AdminService

	return func() tea.Msg {
		users, err := svc.ListUsers(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m mainLoopModel) cmdLoadAllScans() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AdminService

	return func() tea.Msg {
		scans, err := svc.AllScans(ctx)
		return allScansLoadedMsg{scans: scans, err: err}
	}
}

func (m mainLoopModel) cmdStageFile(path string) tea.Cmd {
	svc := m.services.DiagnosisService

	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return fileStagedMsg{err: err}
		}

		contentType := mime.TypeByExtension(filepath.Ext(path))
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}

		name := filepath.Base(path)
		if err := svc.SelectFile(name, contentType, data); err != nil {
			return fileStagedMsg{err: err}
		}
		return fileStagedMsg{name: name}
	}
}

func (m mainLoopModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	svc := m.services.DiagnosisService
	user := m.user
	modality := m.modality

	return func() tea.Msg {
		scan, err := svc.Submit(ctx, user, modality)
		return diagnosisDoneMsg{scan: scan, err: err}
	}
}

func (m mainLoopModel) cmdDeleteHistScan(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService

	return func() tea.Msg {
		return scanDeletedMsg{err: svc.DeleteScan(ctx, id)}
	}
}

func (m mainLoopModel) cmdDeleteAdminScan(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AdminService

	return func() tea.Msg {
		return scanDeletedMsg{err: svc.DeleteScan(ctx, id)}
	}
}

func (m mainLoopModel) cmdSetBlocked(id string, blocked bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AdminService

	return func() tea.Msg {
		return userChangedMsg{err: svc.SetBlocked(ctx, id, blocked)}
	}
}

func (m mainLoopModel) cmdDeleteUser(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AdminService

	return func() tea.Msg {
		return userChangedMsg{err: svc.DeleteUser(ctx, id)}
	}
}

func (m mainLoopModel) cmdSaveReport(scan models.Scan) tea.Cmd {
	return func() tea.Msg {
		path := report.FileName(scan)
		if err := report.SaveToFile(scan, path); err != nil {
			return reportSavedMsg{err: err}
		}
		return reportSavedMsg{path: path}
	}
}

func stageErrorMessage(err error) string {
	if errors.Is(err, service.ErrNotAnImage) {
		return "Only image files can be analyzed"
	}
	if errors.Is(err, service.ErrSubmissionInFlight) {
		return "Wait for the running analysis to finish"
	}
	return fmt.Sprintf("Cannot stage file: %v", err)
}

func submitErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrNoFileSelected):
		return errFileNotStaged.Error()
	case errors.Is(err, service.ErrSubmissionInFlight):
		return "Analysis already running"
	case errors.Is(err, service.ErrServer):
		return "Analysis failed, the inference service is unavailable. The file is kept, retry with enter"
	default:
		return err.Error()
	}
}

func adminErrorMessage(err error) string {
	if errors.Is(err, store.ErrAdminImmutable) {
		return "Admin accounts cannot be blocked or deleted"
	}
	return err.Error()
}

func (m mainLoopModel) View() string {
	var title, body, hotKeys string

	switch m.tab {
	case tabDashboard:
		title, body, hotKeys = m.viewDashboard()
	case tabDiagnose:
		title, body, hotKeys = m.viewDiagnose()
	case tabHistory:
		title, body, hotKeys = m.viewHistory()
	case tabAdmin:
		title, body, hotKeys = m.viewAdmin()
	}

	return m.viewTabBar() + "\n" + renderPage(title, strings.TrimRight(body, "\n"), hotKeys)
}

func (m mainLoopModel) viewTabBar() string {
	names := []string{"1 Dashboard", "2 Diagnose", "3 History"}
	if m.user.IsAdmin() {
		names = append(names, "4 Admin")
	}

	var b strings.Builder
	b.WriteString("  ")
	for i, name := range names {
		if mainTab(i) == m.tab {
			b.WriteString(activeTab.Render(name))
		} else {
			b.WriteString(tabStyle.Render(name))
		}
	}
	return b.String()
}

func (m mainLoopModel) statusLines() string {
	out := ""
	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += statusStyle.Render(m.status) + "\n"
	}
	if out != "" {
		out += "\n"
	}
	return out
}

func (m mainLoopModel) viewDashboard() (string, string, string) {
	hotKeys := "tab/1-3: switch │ l: logout │ q: quit"
	if m.user.IsAdmin() {
		hotKeys = "tab/1-4: switch │ l: logout │ q: quit"
	}

	if m.statsLoading {
		return "DASHBOARD", "Loading dashboard...", hotKeys
	}

	out := m.statusLines()
	out += fmt.Sprintf("Welcome back, %s\n\n", m.user.Name)
	out += fmt.Sprintf("Total scans      : %d\n", m.stats.TotalScans)
	out += fmt.Sprintf("Diseases detected: %d\n", m.stats.DiseasesDetected)
	out += fmt.Sprintf("Accuracy rate    : %s\n", percent(m.stats.AccuracyRate))
	out += fmt.Sprintf("Scans this month : %d\n", m.stats.ScansThisMonth)

	out += "\nBreakdown\n"
	for _, entry := range m.stats.DiseaseBreakdown {
		out += fmt.Sprintf("  %-18s %d\n", service.DiseaseName(entry.Disease), entry.Count)
	}

	out += "\nSix-month trend\n"
	out += "  Month │ Scans │ Detections\n"
	for _, month := range m.stats.MonthlyTrend {
		out += fmt.Sprintf("  %-5s │ %5d │ %d\n", month.Month, month.Scans, month.Detections)
	}

	out += "\nRecent scans\n"
	if len(m.stats.RecentScans) == 0 {
		out += "  No scans yet\n"
	}
	for _, scan := range m.stats.RecentScans {
		out += "  " + scanLine(scan) + "\n"
	}

	return "DASHBOARD", out, hotKeys
}

func (m mainLoopModel) viewDiagnose() (string, string, string) {
	out := m.statusLines()

	if m.editing {
		out += "Image file: [ " + m.fileInput.View() + " ]\n"
		return "NEW DIAGNOSIS", out, "enter: stage file │ esc: cancel"
	}

	staged := "-"
	if m.stagedName != "" {
		staged = m.stagedName
	}
	out += fmt.Sprintf("Image file : %s\n", staged)
	out += fmt.Sprintf("Modality   : %s\n", modalityLabel(m.modality))

	if m.submitting {
		out += "\nAnalyzing image...\n"
		return "NEW DIAGNOSIS", out, ""
	}

	if m.result != nil {
		out += "\n" + scanDetail(*m.result)
		return "NEW DIAGNOSIS", out, "f: new file │ x: reset │ c: copy report │ p: save pdf │ l: logout"
	}

	return "NEW DIAGNOSIS", out, "f: choose file │ m: toggle modality │ enter: analyze │ l: logout"
}

func (m mainLoopModel) viewHistory() (string, string, string) {
	if m.histLoading {
		return "SCAN HISTORY", "Loading history...", ""
	}

	if m.histDetail {
		scan, ok := m.currentHistScan()
		if !ok {
			return "SCAN DETAILS", "Scan not found", "esc: back"
		}
		out := m.statusLines() + scanDetail(scan)
		return "SCAN DETAILS", out, "c: copy report │ p: save pdf │ ctrl+d: delete │ esc: back"
	}

	out := m.statusLines()
	if len(m.histScans) == 0 {
		out += "No scans yet\n"
		return "SCAN HISTORY", out, "r: refresh │ l: logout"
	}

	for i, scan := range m.histScans {
		cursor := " "
		if i == m.histIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %s\n", cursor, scanLine(scan))
	}

	return "SCAN HISTORY", out, "enter: open │ ctrl+d: delete │ r: refresh │ ↑/↓: navigate │ l: logout"
}

func (m mainLoopModel) viewAdmin() (string, string, string) {
	if m.adminLoading {
		return "ADMINISTRATION", "Loading...", ""
	}

	out := m.statusLines()

	if m.adminView == adminViewUsers {
		if len(m.users) == 0 {
			out += "No users\n"
			return "ADMINISTRATION: USERS", out, "v: scans │ r: refresh"
		}

		out += "  Name                 │ Email                      │ Role              │ Status\n"
		for i, user := range m.users {
			cursor := " "
			if i == m.userIdx {
				cursor = ">"
			}
			status := "active"
			if user.IsBlocked {
				status = "blocked"
			}
			out += fmt.Sprintf("%s %-20s │ %-26s │ %-17s │ %s\n",
				cursor, fitText(user.Name, 20), fitText(user.Email, 26), string(user.Role), status)
		}

		return "ADMINISTRATION: USERS", out, "b: block/unblock │ ctrl+d: delete │ v: scans │ ↑/↓: navigate"
	}

	if len(m.allScans) == 0 {
		out += "No scans\n"
		return "ADMINISTRATION: SCANS", out, "v: users │ r: refresh"
	}

	for i, scan := range m.allScans {
		cursor := " "
		if i == m.allScanIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %s\n", cursor, scanLine(scan))
	}

	return "ADMINISTRATION: SCANS", out, "ctrl+d: delete │ v: users │ ↑/↓: navigate"
}

func modalityLabel(t models.ImageType) string {
	if t == models.ImageTypeCT {
		return "CT"
	}
	return "X-Ray"
}

func scanDetail(scan models.Scan) string {
	out := fmt.Sprintf("Scan ID    : %s\n", scan.ID)
	out += fmt.Sprintf("Date       : %s\n", scan.CreatedAt.Format("2006-01-02 15:04"))
	out += fmt.Sprintf("Clinician  : %s\n", scan.UserName)
	out += fmt.Sprintf("Modality   : %s (%s)\n", modalityLabel(scan.ImageType), scan.BodyPart)
	out += fmt.Sprintf("Finding    : %s\n", service.DiseaseName(scan.Diagnosis.Disease))
	out += fmt.Sprintf("Confidence : %s\n", percent(scan.Diagnosis.Confidence))
	out += fmt.Sprintf("Risk       : %s\n", riskLabel(scan.Diagnosis.RiskLevel))

	if len(scan.Diagnosis.AffectedRegions) > 0 {
		out += "Regions    : " + strings.Join(scan.Diagnosis.AffectedRegions, ", ") + "\n"
	}

	if scan.Diagnosis.Explanation != "" {
		out += "\n" + strings.ReplaceAll(scan.Diagnosis.Explanation, "**", "") + "\n"
	}

	if len(scan.Diagnosis.Recommendations) > 0 {
		out += "\nRecommendations\n"
		for _, rec := range scan.Diagnosis.Recommendations {
			out += "  - " + rec + "\n"
		}
	}

	return out
}
