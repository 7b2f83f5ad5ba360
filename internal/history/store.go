package history

// PageSize is the number of records shown per table page.
const PageSize = 20

// Record is one immutable snapshot of simulated quantities at a tick. All
// fields are rounded to two decimals at creation.
type Record struct {
	Time         float64
	Height       float64
	Velocity     float64
	Acceleration float64
	Displacement float64
	Mass         float64
}

// Store is an append-only ordered sequence of records. It owns no cursor
// state; paged consumers each keep their own Cursor over the same store.
type Store struct {
	records []Record
}

func NewStore() *Store {
	return &Store{records: make([]Record, 0, 256)}
}

func (s *Store) Append(r Record) {
	s.records = append(s.records, r)
}

func (s *Store) Len() int {
	return len(s.records)
}

// Records returns the full ordered history. Callers must not mutate it.
func (s *Store) Records() []Record {
	return s.records
}

func (s *Store) Clear() {
	s.records = s.records[:0]
}

// TotalPages returns ceil(len/pageSize); 0 for an empty store.
func (s *Store) TotalPages(pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (len(s.records) + pageSize - 1) / pageSize
}

// Page returns the contiguous slice for a 1-based page cursor, clamped to
// store bounds. Out-of-range pages yield an empty slice, not an error.
func (s *Store) Page(page, pageSize int) []Record {
	if page < 1 || pageSize <= 0 {
		return nil
	}
	lo := (page - 1) * pageSize
	if lo >= len(s.records) {
		return nil
	}
	hi := lo + pageSize
	if hi > len(s.records) {
		hi = len(s.records)
	}
	return s.records[lo:hi]
}

// Cursor is 1-based page position owned by a single table view. Two views
// over one store hold independent cursors; moving one never moves the other.
type Cursor struct {
	page int
}

func NewCursor() Cursor {
	return Cursor{page: 1}
}

func (c *Cursor) Page() int {
	if c.page < 1 {
		return 1
	}
	return c.page
}

// Next advances one page; a request past the last page is a no-op.
func (c *Cursor) Next(totalPages int) {
	if c.Page() < totalPages {
		c.page = c.Page() + 1
	}
}

// Prev moves one page back, never below page 1.
func (c *Cursor) Prev() {
	if c.Page() > 1 {
		c.page = c.Page() - 1
	}
}

// Clamp pulls the cursor back into [1, totalPages] after the store shrank.
func (c *Cursor) Clamp(totalPages int) {
	if totalPages < 1 {
		totalPages = 1
	}
	if c.Page() > totalPages {
		c.page = totalPages
	}
}

func (c *Cursor) Reset() {
	c.page = 1
}
