package handler

import (
	"context"
	"net/http"

	"remindr/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name ReminderService . ReminderService
type ReminderService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.Session, error)
	ListReminders(ctx context.Context) ([]core.Reminder, error)
	CreateReminder(ctx context.Context, msg core.CreateReminderMessage) (core.Reminder, error)
	UpdateReminder(ctx context.Context, id string, msg core.UpdateReminderMessage) (core.Reminder, error)
	DeleteReminder(ctx context.Context, id string) error
}
