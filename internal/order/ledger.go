package order

// Record is what the ledger keeps per completed order: the line items as
// checked out, the construction-time total, and the current status.
type Record struct {
	Books      map[int64]int32
	TotalCents int64
	Status     Status
}

// Ledger holds every successfully checked-out order for the life of the
// process. Entries are created only by checkout, updated in place by status
// transitions, and never deleted. It is an explicit handle threaded through
// the order service, not a package global.
type Ledger struct {
	records map[int64]*Record
}

func NewLedger() *Ledger {
	return &Ledger{records: make(map[int64]*Record)}
}

func (l *Ledger) Get(id int64) (*Record, bool) {
	rec, ok := l.records[id]
	return rec, ok
}

func (l *Ledger) Put(id int64, rec *Record) {
	l.records[id] = rec
}

func (l *Ledger) Len() int { return len(l.records) }
