package storage

// User is a provisioned account. Username is unique and immutable,
// SessionToken holds the single active token, empty until first login.
type User struct {
	Username     string
	Name         string
	PasswordHash string
	SessionToken string
}

// Reminder is a stored note. ID is unique across the live set,
// CreatedAt is milliseconds since epoch.
type Reminder struct {
	ID        string
	Content   string
	Important bool
	CreatedAt int64
}
