package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"remindr/internal/core"
	"remindr/internal/http/handler/middleware"
	"remindr/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Login          = "POST /api/auth/login"
	ListReminders  = "GET /api/reminders"
	CreateReminder = "POST /api/reminders"
	UpdateReminder = "PATCH /api/reminders/{id}"
	DeleteReminder = "DELETE /api/reminders/{id}"
)

type ReminderHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	remindr          ReminderService
}

func NewReminderHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, reminderService ReminderService) *ReminderHandler {
	return &ReminderHandler{
		logs:             logger,
		requestValidator: requestValidator,
		remindr:          reminderService,
	}
}

func (h *ReminderHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AuthRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload); err != nil {
		h.respondError(w, msgMissingCredentials, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate login payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	session, err := h.remindr.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		httpCode := http.StatusInternalServerError
		message := msgUnexpected
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			message = err.Error()
		}

		h.respondError(w, message, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, session, http.StatusOK, requestId)
}

func (h *ReminderHandler) HandleListReminders(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	reminders, err := h.remindr.ListReminders(r.Context())
	if err != nil {
		h.respondError(w, msgUnexpected, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list reminders",
			"error", err,
			"handler", ListReminders,
			"request_id", requestId)
		return
	}

	h.respond(w, reminders, http.StatusOK, requestId)
}

func (h *ReminderHandler) HandleCreateReminder(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.CreateReminderRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload); err != nil {
		h.respondError(w, msgInvalidPayload, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate create payload",
			"error", err,
			"handler", CreateReminder,
			"request_id", requestId)
		return
	}

	reminder, err := h.remindr.CreateReminder(r.Context(), payload.ToMessage())
	if err != nil {
		h.respondError(w, msgUnexpected, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to create reminder",
			"error", err,
			"handler", CreateReminder,
			"request_id", requestId)
		return
	}

	h.logs.Infow("reminder created",
		"id", reminder.ID,
		"username", username(r),
		"handler", CreateReminder,
		"request_id", requestId)

	h.respond(w, reminder, http.StatusCreated, requestId)
}

func (h *ReminderHandler) HandleUpdateReminder(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	id := r.PathValue("id")

	var payload payload.UpdateReminderRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload); err != nil {
		h.respondError(w, msgInvalidPayload, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate update payload",
			"error", err,
			"handler", UpdateReminder,
			"request_id", requestId)
		return
	}

	reminder, err := h.remindr.UpdateReminder(r.Context(), id, payload.ToMessage())
	if err != nil {
		httpCode := http.StatusInternalServerError
		message := msgUnexpected
		if errors.Is(err, core.ErrReminderNotFound) {
			httpCode = http.StatusNotFound
			message = err.Error()
		}

		h.respondError(w, message, httpCode, requestId)
		h.logs.Errorw("failed to update reminder",
			"error", err,
			"id", id,
			"handler", UpdateReminder,
			"request_id", requestId)
		return
	}

	h.respond(w, reminder, http.StatusOK, requestId)
}

func (h *ReminderHandler) HandleDeleteReminder(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	id := r.PathValue("id")

	if err := h.remindr.DeleteReminder(r.Context(), id); err != nil {
		httpCode := http.StatusInternalServerError
		message := msgUnexpected
		if errors.Is(err, core.ErrReminderNotFound) {
			httpCode = http.StatusNotFound
			message = err.Error()
		}

		h.respondError(w, message, httpCode, requestId)
		h.logs.Errorw("failed to delete reminder",
			"error", err,
			"id", id,
			"handler", DeleteReminder,
			"request_id", requestId)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ReminderHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func (h *ReminderHandler) respondError(w http.ResponseWriter, message string, code int, requestId string) {
	h.respond(w, ErrorResponse{Error: message}, code, requestId)
}

func requestID(r *http.Request) string {
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx == nil {
		return ""
	}
	return reqIdCtx.(string)
}

func username(r *http.Request) string {
	account, ok := r.Context().Value(middleware.UserKey).(core.Account)
	if !ok {
		return ""
	}
	return account.Username
}
