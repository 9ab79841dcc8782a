package storage_test

import (
	"context"

	"remindr/internal/storage"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ReminderStore", func() {
	var (
		store *storage.ReminderStore
		ctx   context.Context
	)

	BeforeEach(func() {
		store = storage.NewReminderStore()
		ctx = context.Background()
	})

	Describe("All", func() {
		It("should return an empty slice for a fresh store", func() {
			reminders, err := store.All(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(reminders).To(BeEmpty())
		})

		It("should keep insertion order", func() {
			Expect(store.Insert(ctx, storage.Reminder{ID: "a"})).To(Succeed())
			Expect(store.Insert(ctx, storage.Reminder{ID: "b"})).To(Succeed())
			Expect(store.Insert(ctx, storage.Reminder{ID: "c"})).To(Succeed())

			reminders, err := store.All(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(reminders).To(HaveLen(3))
			Expect(reminders[0].ID).To(Equal("a"))
			Expect(reminders[1].ID).To(Equal("b"))
			Expect(reminders[2].ID).To(Equal("c"))
		})

		It("should return a copy the caller can mutate freely", func() {
			Expect(store.Insert(ctx, storage.Reminder{ID: "a", Content: "original"})).To(Succeed())

			reminders, err := store.All(ctx)
			Expect(err).NotTo(HaveOccurred())
			reminders[0].Content = "mutated"

			stored, err := store.Get(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Content).To(Equal("original"))
		})
	})

	Describe("Insert", func() {
		It("should reject a duplicate id", func() {
			Expect(store.Insert(ctx, storage.Reminder{ID: "a"})).To(Succeed())

			err := store.Insert(ctx, storage.Reminder{ID: "a"})
			Expect(err).To(MatchError(storage.ErrReminderExists))
		})
	})

	Describe("Get", func() {
		It("should return reminder not found for an unknown id", func() {
			_, err := store.Get(ctx, "missing")
			Expect(err).To(MatchError(storage.ErrReminderNotFound))
		})
	})

	Describe("Update", func() {
		It("should replace the record in place, keeping its position", func() {
			Expect(store.Insert(ctx, storage.Reminder{ID: "a", Content: "first"})).To(Succeed())
			Expect(store.Insert(ctx, storage.Reminder{ID: "b", Content: "second"})).To(Succeed())

			err := store.Update(ctx, storage.Reminder{ID: "a", Content: "revised", Important: true})
			Expect(err).NotTo(HaveOccurred())

			reminders, err := store.All(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(reminders[0].ID).To(Equal("a"))
			Expect(reminders[0].Content).To(Equal("revised"))
			Expect(reminders[0].Important).To(BeTrue())
			Expect(reminders[1].ID).To(Equal("b"))
		})

		It("should return reminder not found for an unknown id", func() {
			err := store.Update(ctx, storage.Reminder{ID: "missing"})
			Expect(err).To(MatchError(storage.ErrReminderNotFound))
		})
	})

	Describe("Delete", func() {
		It("should remove the record", func() {
			Expect(store.Insert(ctx, storage.Reminder{ID: "a"})).To(Succeed())
			Expect(store.Delete(ctx, "a")).To(Succeed())

			_, err := store.Get(ctx, "a")
			Expect(err).To(MatchError(storage.ErrReminderNotFound))

			err = store.Delete(ctx, "a")
			Expect(err).To(MatchError(storage.ErrReminderNotFound))
		})
	})
})
