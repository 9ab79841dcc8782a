package core

// Reminder is the wire shape of a stored reminder. CreatedAt is
// milliseconds since epoch.
type Reminder struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Important bool   `json:"important"`
	CreatedAt int64  `json:"createdAt"`
}

type AuthMessage struct {
	Username string
	Password string
}

// Session is the result of a successful login.
type Session struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// Account identifies the user a resolved token belongs to.
type Account struct {
	Username string
	Name     string
}

type CreateReminderMessage struct {
	Content   string
	Important bool
}

// UpdateReminderMessage carries a partial update. Nil fields were absent
// from the request and keep their prior values, a non-nil false or any
// supplied value is applied as given.
type UpdateReminderMessage struct {
	Content   *string
	Important *bool
}
