package service

import (
	"context"

	"github.com/medvision-ai/medvision-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// ClientAuthService is the session holder: it owns the at-most-one current
// user of the running client and the two-stage (local-then-remote)
// login/register strategy.
type ClientAuthService interface {
	// Login authenticates the user. The local credential store is tried
	// first: a blocked match fails with ErrAccountBlocked, an unblocked
	// match establishes a password-free local session. On a local miss
	// the remote auth collaborator is consulted; its user object and
	// opaque token become the session. Remote failures are wrapped in
	// ErrServer.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Register creates a new account. It fails immediately with
	// ErrEmailAlreadyRegistered when the email exists in the local
	// collection; otherwise the remote registration collaborator is
	// called and, on success, a session is established with its result.
	Register(ctx context.Context, name, email, password string, role models.Role) (models.User, error)

	// Logout clears the in-memory session and the persisted session user
	// and token. Idempotent.
	Logout(ctx context.Context) error

	// RestoreSession loads a previously persisted session user into
	// memory. Returns store.ErrSessionNotFound when none exists.
	RestoreSession(ctx context.Context) (models.User, error)

	// CurrentUser returns the session user, if any.
	CurrentUser() (models.User, bool)

	// IsAdmin reports whether the current session's role is admin.
	IsAdmin() bool
}

// AdminService exposes the administrative operations over users and scans.
// Admin accounts are immune to block and delete; both operations return
// store.ErrAdminImmutable and leave the record unchanged.
type AdminService interface {
	// ListUsers returns all stored accounts with passwords stripped,
	// in collection order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// SetBlocked blocks or unblocks the target account.
	SetBlocked(ctx context.Context, id string, blocked bool) error

	// DeleteUser removes the target account. The user's scans are kept;
	// there is no cascade.
	DeleteUser(ctx context.Context, id string) error

	// AllScans returns the whole scan collection in store order.
	AllScans(ctx context.Context) ([]models.Scan, error)

	// DeleteScan removes a scan record. Absent ids are a no-op.
	DeleteScan(ctx context.Context, id string) error
}

// HistoryService is the per-user view over the scan collection, backing the
// history screen.
type HistoryService interface {
	// UserScans returns the scans owned by userID, newest first.
	UserScans(ctx context.Context, userID string) ([]models.Scan, error)

	// DeleteScan removes a scan from the history. Absent ids are a no-op.
	DeleteScan(ctx context.Context, id string) error
}

// StatsService derives the dashboard summary. Every call recomputes from
// the full scan collection; nothing is cached, so cost is linear in the
// total scan count.
type StatsService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

// SubmissionState is the phase of the single in-flight diagnosis
// submission.
type SubmissionState string

const (
	StateIdle         SubmissionState = "idle"
	StateFileSelected SubmissionState = "file_selected"
	StateSubmitting   SubmissionState = "submitting"
	StateSucceeded    SubmissionState = "succeeded"
	StateFailed       SubmissionState = "failed"
)

// DiagnosisService drives the image submission flow:
// idle → file_selected → submitting → {succeeded, failed}. A failed
// submission drops back to file_selected with the file retained, so a retry
// is just another Submit.
type DiagnosisService interface {
	// SelectFile stages a file for submission. Non-image content types
	// are rejected with ErrNotAnImage and leave the state unchanged.
	// Selecting is allowed from every state except submitting.
	SelectFile(name, contentType string, data []byte) error

	// Submit sends the staged file to the inference collaborator and, on
	// success, maps the verdict into a Scan owned by user and appends it
	// to the scan store. Only one submission may be in flight at a time.
	Submit(ctx context.Context, user models.User, modality models.ImageType) (models.Scan, error)

	// Reset discards the staged file and any result, returning to idle.
	Reset()

	// State returns the current phase.
	State() SubmissionState

	// Result returns the scan produced by the last successful submission.
	Result() (models.Scan, bool)
}
