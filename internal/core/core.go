package core

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"remindr/internal/storage"
	"remindr/pkg/passhash"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUserNotFound error = errors.New("user does not exist")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrInvalidToken error = errors.New("invalid token")
var ErrReminderNotFound error = errors.New("reminder not found")

// Remindr is the reminder service. It owns no state itself, both
// collections live in the injected stores.
type Remindr struct {
	logs      *zap.SugaredLogger
	users     CredentialStore
	reminders ReminderStore
	tokens    TokenIssuer
	passwords PasswordVerifier
}

// NewRemindr is a constructor function for the Remindr type.
func NewRemindr(logger *zap.SugaredLogger, users CredentialStore, reminders ReminderStore, tokens TokenIssuer, passwords PasswordVerifier) *Remindr {
	return &Remindr{
		logs:      logger,
		users:     users,
		reminders: reminders,
		tokens:    tokens,
		passwords: passwords,
	}
}

// Authenticate checks the provided username and password against the stored
// hash. On success it issues a fresh session token and attaches it to the
// account, invalidating the previous one.
func (s *Remindr) Authenticate(ctx context.Context, msg AuthMessage) (Session, error) {
	user, err := s.users.UserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return Session{}, ErrUserNotFound
		}
		return Session{}, fmt.Errorf("get user by username: %w", err)
	}

	if err := s.passwords.Verify(msg.Password, user.PasswordHash); err != nil {
		if errors.Is(err, passhash.ErrPasswordMismatch) {
			return Session{}, ErrIncorrectPassword
		}
		return Session{}, fmt.Errorf("verify password: %w", err)
	}

	token, err := s.tokens.Issue()
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}

	if err := s.users.SetToken(ctx, user.Username, token); err != nil {
		return Session{}, fmt.Errorf("set session token: %w", err)
	}

	s.logs.Infow("session token rotated", "username", user.Username)

	return Session{
		Username: user.Username,
		Name:     user.Name,
		Token:    token,
	}, nil
}

// Authorize resolves a session token to the account currently holding it.
func (s *Remindr) Authorize(ctx context.Context, token string) (Account, error) {
	user, err := s.users.UserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return Account{}, ErrInvalidToken
		}
		return Account{}, fmt.Errorf("get user by token: %w", err)
	}

	return Account{
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

// ListReminders returns all reminders sorted by importance first and
// creation time second, both descending. The sort is stable.
func (s *Remindr) ListReminders(ctx context.Context) ([]Reminder, error) {
	stored, err := s.reminders.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all reminders: %w", err)
	}

	records := make([]Reminder, 0, len(stored))
	for _, reminder := range stored {
		records = append(records, storedToRecord(reminder))
	}

	slices.SortStableFunc(records, func(a, b Reminder) int {
		if a.Important != b.Important {
			if a.Important {
				return -1
			}
			return 1
		}
		if a.CreatedAt != b.CreatedAt {
			if a.CreatedAt > b.CreatedAt {
				return -1
			}
			return 1
		}
		return 0
	})

	return records, nil
}

// CreateReminder assigns a fresh id and creation timestamp and appends the
// record to the store. Content is expected to be validated by the caller.
func (s *Remindr) CreateReminder(ctx context.Context, msg CreateReminderMessage) (Reminder, error) {
	reminder := storage.Reminder{
		ID:        uuid.NewString(),
		Content:   msg.Content,
		Important: msg.Important,
		CreatedAt: time.Now().UnixMilli(),
	}

	if err := s.reminders.Insert(ctx, reminder); err != nil {
		return Reminder{}, fmt.Errorf("insert reminder: %w", err)
	}

	s.logs.Infow("reminder created", "id", reminder.ID, "important", reminder.Important)

	return storedToRecord(reminder), nil
}

// UpdateReminder applies a partial update. Supplied fields overwrite,
// absent fields keep their prior value, id and creation time never change.
func (s *Remindr) UpdateReminder(ctx context.Context, id string, msg UpdateReminderMessage) (Reminder, error) {
	reminder, err := s.reminders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrReminderNotFound) {
			return Reminder{}, ErrReminderNotFound
		}
		return Reminder{}, fmt.Errorf("get reminder: %w", err)
	}

	if msg.Content != nil {
		reminder.Content = *msg.Content
	}
	if msg.Important != nil {
		reminder.Important = *msg.Important
	}

	if err := s.reminders.Update(ctx, reminder); err != nil {
		if errors.Is(err, storage.ErrReminderNotFound) {
			return Reminder{}, ErrReminderNotFound
		}
		return Reminder{}, fmt.Errorf("update reminder: %w", err)
	}

	s.logs.Infow("reminder updated", "id", reminder.ID)

	return storedToRecord(reminder), nil
}

// DeleteReminder removes the record from the store.
func (s *Remindr) DeleteReminder(ctx context.Context, id string) error {
	if err := s.reminders.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrReminderNotFound) {
			return ErrReminderNotFound
		}
		return fmt.Errorf("delete reminder: %w", err)
	}

	s.logs.Infow("reminder deleted", "id", id)

	return nil
}

func storedToRecord(reminder storage.Reminder) Reminder {
	return Reminder{
		ID:        reminder.ID,
		Content:   reminder.Content,
		Important: reminder.Important,
		CreatedAt: reminder.CreatedAt,
	}
}
