package history_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cresas/fiziksim2/internal/history"
)

func fill(s *history.Store, n int) {
	for i := 0; i < n; i++ {
		s.Append(history.Record{Time: float64(i) * 0.1})
	}
}

var _ = Describe("Store pagination", func() {
	var store *history.Store

	BeforeEach(func() {
		store = history.NewStore()
	})

	It("reports zero pages when empty", func() {
		Expect(store.TotalPages(history.PageSize)).To(Equal(0))
		Expect(store.Page(1, history.PageSize)).To(BeEmpty())
	})

	It("computes ceil(len/pageSize) pages", func() {
		fill(store, 45)
		Expect(store.TotalPages(20)).To(Equal(3))

		store.Clear()
		fill(store, 40)
		Expect(store.TotalPages(20)).To(Equal(2))

		store.Clear()
		fill(store, 1)
		Expect(store.TotalPages(20)).To(Equal(1))
	})

	It("starts page 1 at index 0", func() {
		fill(store, 45)
		page := store.Page(1, 20)
		Expect(page).To(HaveLen(20))
		Expect(page[0].Time).To(BeNumerically("==", 0))
	})

	It("sizes the last page as len mod pageSize", func() {
		fill(store, 45)
		Expect(store.Page(3, 20)).To(HaveLen(5))

		store.Clear()
		fill(store, 40)
		Expect(store.Page(2, 20)).To(HaveLen(20))
	})

	It("returns nothing for out-of-range pages", func() {
		fill(store, 45)
		Expect(store.Page(4, 20)).To(BeEmpty())
		Expect(store.Page(0, 20)).To(BeEmpty())
		Expect(store.Page(-2, 20)).To(BeEmpty())
	})

	It("preserves insertion order across pages", func() {
		fill(store, 45)
		page := store.Page(2, 20)
		Expect(page[0].Time).To(BeNumerically("~", 2.0, 1e-9))
		Expect(page[19].Time).To(BeNumerically("~", 3.9, 1e-9))
	})
})

var _ = Describe("Cursor", func() {
	It("starts at page 1", func() {
		c := history.NewCursor()
		Expect(c.Page()).To(Equal(1))
	})

	It("ignores moves past either end", func() {
		c := history.NewCursor()
		c.Prev()
		Expect(c.Page()).To(Equal(1))

		c.Next(3)
		c.Next(3)
		c.Next(3)
		c.Next(3)
		Expect(c.Page()).To(Equal(3))
	})

	It("clamps after the store shrinks", func() {
		c := history.NewCursor()
		c.Next(5)
		c.Next(5)
		Expect(c.Page()).To(Equal(3))

		c.Clamp(2)
		Expect(c.Page()).To(Equal(2))

		c.Clamp(0)
		Expect(c.Page()).To(Equal(1))
	})

	It("keeps two cursors over one store independent", func() {
		store := history.NewStore()
		fill(store, 100)
		total := store.TotalPages(history.PageSize)

		inline := history.NewCursor()
		modal := history.NewCursor()

		modal.Next(total)
		modal.Next(total)
		Expect(modal.Page()).To(Equal(3))
		Expect(inline.Page()).To(Equal(1))

		inline.Next(total)
		Expect(inline.Page()).To(Equal(2))
		Expect(modal.Page()).To(Equal(3))
	})
})
