package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"remindr/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func decodeRequest(body string, target any) error {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return payload.DecodeValidator{}.DecodeAndValidateJSONPayload(req, target)
}

var _ = Describe("DecodeValidator", func() {
	Describe("AuthRequest", func() {
		It("should accept a complete credential pair", func() {
			var target payload.AuthRequest
			err := decodeRequest(`{"username":"admin","password":"certamen123"}`, &target)
			Expect(err).NotTo(HaveOccurred())
			Expect(target.Username).To(Equal("admin"))
			Expect(target.Password).To(Equal("certamen123"))
		})

		It("should reject a missing password", func() {
			var target payload.AuthRequest
			err := decodeRequest(`{"username":"admin"}`, &target)
			Expect(err).To(HaveOccurred())
		})

		It("should reject empty credentials", func() {
			var target payload.AuthRequest
			err := decodeRequest(`{"username":"","password":""}`, &target)
			Expect(err).To(HaveOccurred())
		})

		It("should reject unknown fields", func() {
			var target payload.AuthRequest
			err := decodeRequest(`{"username":"admin","password":"x","extra":true}`, &target)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("CreateReminderRequest", func() {
		It("should accept content with an explicit flag", func() {
			var target payload.CreateReminderRequest
			err := decodeRequest(`{"content":"water the plants","important":true}`, &target)
			Expect(err).NotTo(HaveOccurred())

			msg := target.ToMessage()
			Expect(msg.Content).To(Equal("water the plants"))
			Expect(msg.Important).To(BeTrue())
		})

		It("should default the flag to false when absent", func() {
			var target payload.CreateReminderRequest
			err := decodeRequest(`{"content":"water the plants"}`, &target)
			Expect(err).NotTo(HaveOccurred())
			Expect(target.ToMessage().Important).To(BeFalse())
		})

		It("should accept content of exactly 120 characters", func() {
			content := strings.Repeat("a", 120)
			var target payload.CreateReminderRequest
			err := decodeRequest(`{"content":"`+content+`"}`, &target)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject content of 121 characters", func() {
			content := strings.Repeat("a", 121)
			var target payload.CreateReminderRequest
			err := decodeRequest(`{"content":"`+content+`"}`, &target)
			Expect(err).To(HaveOccurred())
		})

		It("should reject missing content", func() {
			var target payload.CreateReminderRequest
			err := decodeRequest(`{"important":true}`, &target)
			Expect(err).To(HaveOccurred())
		})

		It("should reject whitespace-only content", func() {
			var target payload.CreateReminderRequest
			err := decodeRequest(`{"content":"   "}`, &target)
			Expect(err).To(HaveOccurred())
		})

		It("should reject a non-boolean flag", func() {
			var target payload.CreateReminderRequest
			err := decodeRequest(`{"content":"x","important":"true"}`, &target)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("UpdateReminderRequest", func() {
		It("should accept a flag-only update", func() {
			var target payload.UpdateReminderRequest
			err := decodeRequest(`{"important":true}`, &target)
			Expect(err).NotTo(HaveOccurred())

			msg := target.ToMessage()
			Expect(msg.Content).To(BeNil())
			Expect(msg.Important).NotTo(BeNil())
			Expect(*msg.Important).To(BeTrue())
		})

		It("should accept a content-only update", func() {
			var target payload.UpdateReminderRequest
			err := decodeRequest(`{"content":"revised"}`, &target)
			Expect(err).NotTo(HaveOccurred())

			msg := target.ToMessage()
			Expect(msg.Content).NotTo(BeNil())
			Expect(*msg.Content).To(Equal("revised"))
			Expect(msg.Important).To(BeNil())
		})

		It("should accept an empty body object", func() {
			var target payload.UpdateReminderRequest
			err := decodeRequest(`{}`, &target)
			Expect(err).NotTo(HaveOccurred())
			Expect(target.ToMessage().Content).To(BeNil())
			Expect(target.ToMessage().Important).To(BeNil())
		})

		It("should reject supplied blank content", func() {
			var target payload.UpdateReminderRequest
			err := decodeRequest(`{"content":"  "}`, &target)
			Expect(err).To(HaveOccurred())
		})

		It("should reject supplied content over 120 characters", func() {
			content := strings.Repeat("я", 121)
			var target payload.UpdateReminderRequest
			err := decodeRequest(`{"content":"`+content+`"}`, &target)
			Expect(err).To(HaveOccurred())
		})

		It("should count characters, not bytes", func() {
			content := strings.Repeat("я", 120)
			var target payload.UpdateReminderRequest
			err := decodeRequest(`{"content":"`+content+`"}`, &target)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
