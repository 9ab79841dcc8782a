package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"remindr/internal/core"
	"remindr/internal/http/handler"
	"remindr/internal/http/handler/fake"
	"remindr/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("ReminderHandler", func() {
	var (
		fakeValidator *fake.RequestValidator
		fakeService   *fake.ReminderService
		fakeLogger    *zap.SugaredLogger

		reminderHandler *handler.ReminderHandler
		recorder        *httptest.ResponseRecorder

		fakeErr error
	)

	BeforeEach(func() {
		fakeValidator = new(fake.RequestValidator)
		fakeService = new(fake.ReminderService)
		fakeLogger = zap.NewNop().Sugar()

		reminderHandler = handler.NewReminderHandler(fakeLogger, fakeValidator, fakeService)
		recorder = httptest.NewRecorder()

		fakeErr = errors.New("fake error")
	})

	decodeError := func() map[string]string {
		var resp map[string]string
		Expect(json.Unmarshal(recorder.Body.Bytes(), &resp)).To(Succeed())
		return resp
	}

	Describe("HandleLogin", func() {
		var request *http.Request

		BeforeEach(func() {
			request = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
		})

		JustBeforeEach(func() {
			reminderHandler.HandleLogin(recorder, request)
		})

		When("the credentials are valid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadCalls(func(r *http.Request, object any) error {
					auth := object.(*payload.AuthRequest)
					auth.Username = "admin"
					auth.Password = "certamen123"
					return nil
				})
				fakeService.AuthenticateReturns(core.Session{
					Username: "admin",
					Name:     "Administrator",
					Token:    "session-token",
				}, nil)
			})

			It("should return the session", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(recorder.Header().Get("Content-Type")).To(Equal("application/json"))

				var session core.Session
				Expect(json.Unmarshal(recorder.Body.Bytes(), &session)).To(Succeed())
				Expect(session.Token).To(Equal("session-token"))
				Expect(session.Username).To(Equal("admin"))
				Expect(session.Name).To(Equal("Administrator"))

				Expect(fakeService.AuthenticateCallCount()).To(Equal(1))
				_, msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg.Username).To(Equal("admin"))
				Expect(msg.Password).To(Equal("certamen123"))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400 without calling the service", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeError()["error"]).To(Equal("username and password are required"))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns(core.Session{}, core.ErrUserNotFound)
			})

			It("should return 401 with the failure reason", func() {
				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
				Expect(decodeError()["error"]).To(Equal("user does not exist"))
			})
		})

		When("the password is incorrect", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns(core.Session{}, core.ErrIncorrectPassword)
			})

			It("should return 401 with the failure reason", func() {
				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
				Expect(decodeError()["error"]).To(Equal("incorrect password"))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns(core.Session{}, fakeErr)
			})

			It("should return 500 with a generic message", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
				Expect(decodeError()["error"]).To(Equal("unexpected error occurred"))
			})
		})
	})

	Describe("HandleListReminders", func() {
		var request *http.Request

		BeforeEach(func() {
			request = httptest.NewRequest(http.MethodGet, "/api/reminders", nil)
		})

		JustBeforeEach(func() {
			reminderHandler.HandleListReminders(recorder, request)
		})

		When("reminders exist", func() {
			BeforeEach(func() {
				fakeService.ListRemindersReturns([]core.Reminder{
					{ID: "c", Content: "call home", Important: true, CreatedAt: 200},
					{ID: "a", Content: "walk the dog", Important: false, CreatedAt: 100},
				}, nil)
			})

			It("should return the records in the order the service produced", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))

				var records []core.Reminder
				Expect(json.Unmarshal(recorder.Body.Bytes(), &records)).To(Succeed())
				Expect(records).To(HaveLen(2))
				Expect(records[0].ID).To(Equal("c"))
				Expect(records[1].ID).To(Equal("a"))
			})
		})

		When("no reminders exist", func() {
			BeforeEach(func() {
				fakeService.ListRemindersReturns([]core.Reminder{}, nil)
			})

			It("should return an empty JSON array", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(strings.TrimSpace(recorder.Body.String())).To(Equal("[]"))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.ListRemindersReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleCreateReminder", func() {
		var request *http.Request

		BeforeEach(func() {
			request = httptest.NewRequest(http.MethodPost, "/api/reminders", strings.NewReader(`{}`))
		})

		JustBeforeEach(func() {
			reminderHandler.HandleCreateReminder(recorder, request)
		})

		When("the payload is valid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadCalls(func(r *http.Request, object any) error {
					create := object.(*payload.CreateReminderRequest)
					create.Content = "water the plants"
					return nil
				})
				fakeService.CreateReminderReturns(core.Reminder{
					ID:        "rem-1",
					Content:   "water the plants",
					Important: false,
					CreatedAt: 1700000000000,
				}, nil)
			})

			It("should return 201 with the created record", func() {
				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var record core.Reminder
				Expect(json.Unmarshal(recorder.Body.Bytes(), &record)).To(Succeed())
				Expect(record.ID).To(Equal("rem-1"))
				Expect(record.CreatedAt).To(Equal(int64(1700000000000)))

				Expect(fakeService.CreateReminderCallCount()).To(Equal(1))
				_, msg := fakeService.CreateReminderArgsForCall(0)
				Expect(msg.Content).To(Equal("water the plants"))
				Expect(msg.Important).To(BeFalse())
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400 without calling the service", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeError()["error"]).To(Equal("invalid reminder payload"))
				Expect(fakeService.CreateReminderCallCount()).To(Equal(0))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.CreateReminderReturns(core.Reminder{}, fakeErr)
			})

			It("should return 500", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleUpdateReminder", func() {
		var request *http.Request

		BeforeEach(func() {
			request = httptest.NewRequest(http.MethodPatch, "/api/reminders/rem-1", strings.NewReader(`{}`))
			request.SetPathValue("id", "rem-1")
		})

		JustBeforeEach(func() {
			reminderHandler.HandleUpdateReminder(recorder, request)
		})

		When("the update succeeds", func() {
			BeforeEach(func() {
				fakeService.UpdateReminderReturns(core.Reminder{
					ID:        "rem-1",
					Content:   "revised",
					Important: true,
					CreatedAt: 1700000000000,
				}, nil)
			})

			It("should return 200 with the updated record", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))

				var record core.Reminder
				Expect(json.Unmarshal(recorder.Body.Bytes(), &record)).To(Succeed())
				Expect(record.Content).To(Equal("revised"))
				Expect(record.Important).To(BeTrue())

				Expect(fakeService.UpdateReminderCallCount()).To(Equal(1))
				_, id, _ := fakeService.UpdateReminderArgsForCall(0)
				Expect(id).To(Equal("rem-1"))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400 without calling the service", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UpdateReminderCallCount()).To(Equal(0))
			})
		})

		When("the reminder does not exist", func() {
			BeforeEach(func() {
				fakeService.UpdateReminderReturns(core.Reminder{}, core.ErrReminderNotFound)
			})

			It("should return 404", func() {
				Expect(recorder.Code).To(Equal(http.StatusNotFound))
				Expect(decodeError()["error"]).To(Equal("reminder not found"))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.UpdateReminderReturns(core.Reminder{}, fakeErr)
			})

			It("should return 500", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleDeleteReminder", func() {
		var request *http.Request

		BeforeEach(func() {
			request = httptest.NewRequest(http.MethodDelete, "/api/reminders/rem-1", nil)
			request.SetPathValue("id", "rem-1")
		})

		JustBeforeEach(func() {
			reminderHandler.HandleDeleteReminder(recorder, request)
		})

		When("the delete succeeds", func() {
			BeforeEach(func() {
				fakeService.DeleteReminderReturns(nil)
			})

			It("should return 204 with no body", func() {
				Expect(recorder.Code).To(Equal(http.StatusNoContent))
				Expect(recorder.Body.Len()).To(Equal(0))

				Expect(fakeService.DeleteReminderCallCount()).To(Equal(1))
				_, id := fakeService.DeleteReminderArgsForCall(0)
				Expect(id).To(Equal("rem-1"))
			})
		})

		When("the reminder does not exist", func() {
			BeforeEach(func() {
				fakeService.DeleteReminderReturns(core.ErrReminderNotFound)
			})

			It("should return 404", func() {
				Expect(recorder.Code).To(Equal(http.StatusNotFound))
				Expect(decodeError()["error"]).To(Equal("reminder not found"))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.DeleteReminderReturns(fakeErr)
			})

			It("should return 500", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
