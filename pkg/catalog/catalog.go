package catalog

import (
	"sort"
	"strings"
)

// DefaultDifficulty is assigned when a word list row has a missing or
// unparsable difficulty value.
const DefaultDifficulty = 5

// WordRecord is one entry of the word list. Only Word is required; empty
// hint fields resolve to placeholder replies at query time.
type WordRecord struct {
	Word       string
	Difficulty int
	Definition string
	Origin     string
	Sentence   string
}

// Catalog is an immutable word list ordered hardest-first. It is established
// once at load time and never mutated afterwards.
type Catalog struct {
	records []WordRecord
	index   map[string]int
}

// New builds a catalog from records, sorted by descending difficulty. The
// sort is stable, so rows with equal difficulty keep their input order.
func New(records []WordRecord) *Catalog {
	sorted := make([]WordRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Difficulty > sorted[j].Difficulty
	})

	idx := make(map[string]int, len(sorted))
	for i, r := range sorted {
		key := normalize(r.Word)
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}
	return &Catalog{records: sorted, index: idx}
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int { return len(c.records) }

// At returns the record at position i in difficulty order.
func (c *Catalog) At(i int) WordRecord { return c.records[i] }

// Lookup finds a record by word. Matching is case-insensitive on the trimmed
// input; ok is false when the word is not in the catalog.
func (c *Catalog) Lookup(word string) (WordRecord, bool) {
	key := normalize(word)
	if key == "" {
		return WordRecord{}, false
	}
	i, ok := c.index[key]
	if !ok {
		return WordRecord{}, false
	}
	return c.records[i], true
}

func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
