package core

import (
	"context"
	"remindr/internal/storage"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CredentialStore . CredentialStore
type CredentialStore interface {
	UserByUsername(ctx context.Context, username string) (storage.User, error)
	UserByToken(ctx context.Context, token string) (storage.User, error)
	SetToken(ctx context.Context, username string, token string) error
}

//counterfeiter:generate -o fake -fake-name ReminderStore . ReminderStore
type ReminderStore interface {
	All(ctx context.Context) ([]storage.Reminder, error)
	Get(ctx context.Context, id string) (storage.Reminder, error)
	Insert(ctx context.Context, reminder storage.Reminder) error
	Update(ctx context.Context, reminder storage.Reminder) error
	Delete(ctx context.Context, id string) error
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Issue() (string, error)
}

//counterfeiter:generate -o fake -fake-name PasswordVerifier . PasswordVerifier
type PasswordVerifier interface {
	Verify(password string, encoded string) error
}
