package importer

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/japaniel/spelltutor/pkg/catalog"
	"github.com/japaniel/spelltutor/pkg/db"
)

// Importer seeds the word bank from parsed word-list records.
type Importer struct {
	DB *sql.DB
	// Workers normalize records concurrently.
	Workers int
	// BatchSize is the number of upserts committed per transaction.
	BatchSize int
	// Logger is used for informational messages. nil means no logging.
	Logger *log.Logger
}

// New creates an Importer with default concurrency settings.
func New(conn *sql.DB) *Importer {
	return &Importer{
		DB:        conn,
		Workers:   4,
		BatchSize: 50,
	}
}

type indexedRecord struct {
	idx int
	rec catalog.WordRecord
}

type indexedWord struct {
	idx  int
	word db.Word
	skip bool
}

// Import normalizes records concurrently and writes them to the word bank in
// batched transactions. Results are reassembled in input order before
// writing, so row ids follow the word list and difficulty ties stay
// deterministic. Returns the number of words written.
func (im *Importer) Import(ctx context.Context, records []catalog.WordRecord) (int, error) {
	workers := im.Workers
	if workers <= 0 {
		workers = 1
	}
	batchSize := im.BatchSize
	if batchSize <= 0 {
		batchSize = 50
	}

	jobs := make(chan indexedRecord)
	results := make(chan indexedWord, workers*2)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- indexedWord{
					idx:  j.idx,
					word: normalizeRecord(j.rec),
					skip: strings.TrimSpace(j.rec.Word) == "",
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, rec := range records {
			select {
			case <-ctx.Done():
				return
			case jobs <- indexedRecord{idx: i, rec: rec}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	buffer := make(map[int]indexedWord)
	next := 0
	batch := make([]db.Word, 0, batchSize)
	count := 0
	var importErr error

	flush := func() {
		if importErr != nil || len(batch) == 0 {
			return
		}
		tx, err := im.DB.BeginTx(ctx, nil)
		if err != nil {
			importErr = fmt.Errorf("begin import tx: %w", err)
			return
		}
		for _, w := range batch {
			if _, err := db.UpsertWord(tx, w); err != nil {
				_ = tx.Rollback()
				importErr = fmt.Errorf("import word %q: %w", w.Word, err)
				return
			}
		}
		if err := tx.Commit(); err != nil {
			importErr = fmt.Errorf("commit import batch (%d words): %w", len(batch), err)
			return
		}
		count += len(batch)
		batch = batch[:0]
	}

	for res := range results {
		if importErr != nil {
			continue // drain so workers can finish
		}
		buffer[res.idx] = res

		// Write out the contiguous prefix.
		for {
			item, ok := buffer[next]
			if !ok {
				break
			}
			delete(buffer, next)
			next++
			if item.skip {
				continue
			}
			batch = append(batch, item.word)
			if len(batch) >= batchSize {
				flush()
			}
		}
	}

	if importErr != nil {
		return count, importErr
	}
	if err := ctx.Err(); err != nil {
		return count, err
	}
	flush()
	if importErr != nil {
		return count, importErr
	}
	if im.Logger != nil {
		im.Logger.Printf("Imported %d words", count)
	}
	return count, nil
}

func normalizeRecord(rec catalog.WordRecord) db.Word {
	d := rec.Difficulty
	if d <= 0 {
		d = catalog.DefaultDifficulty
	}
	return db.Word{
		Word:       strings.TrimSpace(rec.Word),
		Difficulty: d,
		Definition: strings.TrimSpace(rec.Definition),
		Origin:     strings.TrimSpace(rec.Origin),
		Sentence:   strings.TrimSpace(rec.Sentence),
	}
}
