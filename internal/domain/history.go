package domain

import "iter"

// History is the append-only log of the successful transactions of one account.
// Only transactions of this package can append to it.
type History struct {
	records []TransactionRecord
	counts  map[TransactionKind]int
}

func newHistory() *History {
	return &History{counts: make(map[TransactionKind]int)}
}

func (h *History) append(r TransactionRecord) {
	h.records = append(h.records, r)
	h.counts[r.Kind]++
}

// Entries yields the records in chronological order. It can be ranged over any number of times.
func (h *History) Entries() iter.Seq[TransactionRecord] {
	return func(yield func(TransactionRecord) bool) {
		for _, r := range h.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Records returns a copy of the log.
func (h *History) Records() []TransactionRecord {
	out := make([]TransactionRecord, len(h.records))
	copy(out, h.records)
	return out
}

func (h *History) Len() int {
	return len(h.records)
}

func (h *History) CountByKind(kind TransactionKind) int {
	return h.counts[kind]
}
