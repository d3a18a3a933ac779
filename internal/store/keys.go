package store

// Fixed keys of the persisted key-value layout. The names are part of the
// on-disk format and must not change.
const (
	usersKey       = "medvision_users"
	currentUserKey = "medvision_current_user"
	tokenKey       = "token"
	scansKey       = "medvision_scans"
)
