package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"remindr/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"
)

var _ = Describe("RequestIDMiddleware", func() {
	It("should tag the response header and the request context with the same uuid", func() {
		var fromContext string
		wrapped := middleware.NewRequestIDMiddleware().RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromContext, _ = r.Context().Value(middleware.RequestIDKey).(string)
		}))

		recorder := httptest.NewRecorder()
		wrapped.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		header := recorder.Header().Get("X-Request-Id")
		Expect(header).NotTo(BeEmpty())
		Expect(fromContext).To(Equal(header))
		_, err := uuid.Parse(header)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should tag each request with a distinct uuid", func() {
		wrapped := middleware.NewRequestIDMiddleware().RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		first := httptest.NewRecorder()
		second := httptest.NewRecorder()
		wrapped.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
		wrapped.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(first.Header().Get("X-Request-Id")).NotTo(Equal(second.Header().Get("X-Request-Id")))
	})
})
