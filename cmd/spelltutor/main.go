package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/japaniel/spelltutor/pkg/catalog"
	"github.com/japaniel/spelltutor/pkg/config"
	"github.com/japaniel/spelltutor/pkg/db"
	"github.com/japaniel/spelltutor/pkg/importer"
	"github.com/japaniel/spelltutor/pkg/interpreter"
	"github.com/japaniel/spelltutor/pkg/quiz"

	_ "github.com/mattn/go-sqlite3"
)

// commandPolicy describes the command grammar to the interpreter service.
// The service may only act through the advertised quiz actions.
const commandPolicy = `You are a spelling quiz tutor. The user controls the quiz with short
commands: 'start'/'start quiz'/'begin'/'quiz me' begins a round,
'definition'/'origin'/'sentence' reveal hints for the current word, 'next'
skips ahead, 'stop'/'end'/'finish' ends the session, and anything else is a
spelling attempt for the current word. Use only the registered actions to
read or change quiz state, and answer with a single short tutor reply.`

var quizActions = []string{
	"get_next_word",
	"get_current",
	"check_spelling",
	"get_definition",
	"get_origin",
	"get_sentence",
	"get_progress",
}

func main() {
	wordsFlag := flag.String("words", "", "Path to a word list CSV (quizzes directly from the file, bypassing the word bank)")
	dbFlag := flag.String("db", "", "Path to the SQLite word bank (default from SPELLTUTOR_DB)")
	importFlag := flag.String("import", "", "Path to a word list CSV to import into the word bank, then exit")
	interpreterFlag := flag.String("interpreter", "", "Interpreter service URL (overrides SPELLTUTOR_INTERPRETER_URL)")
	roundFlag := flag.Int("round", 0, "Words per round (overrides SPELLTUTOR_ROUND_SIZE)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *dbFlag != "" {
		cfg.DBPath = *dbFlag
	}
	if *interpreterFlag != "" {
		cfg.InterpreterURL = *interpreterFlag
	}
	if *roundFlag > 0 {
		cfg.RoundSize = *roundFlag
	}

	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Handle word-list import (seed the word bank and exit).
	if *importFlag != "" {
		conn, err := sql.Open("sqlite3", cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open word bank: %v", err)
		}
		defer conn.Close()
		if err := db.InitDB(conn); err != nil {
			log.Fatalf("Failed to initialize word bank: %v", err)
		}

		records, err := catalog.LoadCSVFile(*importFlag)
		if err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
		count, err := importer.New(conn).Import(ctx, records)
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		fmt.Printf("Imported %d words into %s\n", count, cfg.DBPath)
		return
	}

	records, err := loadRecords(ctx, cfg, *wordsFlag)
	if err != nil {
		log.Fatalf("Failed to load word catalog: %v", err)
	}
	if len(records) == 0 {
		log.Fatal("Word catalog is empty; run with -import to seed the word bank or pass -words")
	}

	cat := catalog.New(records)
	session := quiz.NewSession(cat, cfg.RoundSize)
	engine := quiz.NewEngine(session)

	// The interpreter goes first in the chain; the deterministic engine
	// answers whenever delegation yields nothing usable.
	var providers []quiz.Provider
	if cfg.InterpreterURL != "" {
		client := interpreter.NewClient(cfg.InterpreterURL, cfg.InterpreterTimeout)
		client.Policy = commandPolicy
		client.Actions = quizActions
		providers = append(providers, &interpreter.Provider{Client: client})
	}
	providers = append(providers, engine)
	resolver := quiz.NewResolver(providers...)

	fmt.Println("Type: 'start' (or 'start quiz'), then 'definition'/'origin'/'sentence', type your spelling attempt, 'next', or 'stop'.")

	runLoop(ctx, resolver, os.Stdin)
}

// runLoop reads one line at a time, resolves it and prints the reply until a
// terminal reply or EOF.
func runLoop(ctx context.Context, resolver *quiz.Resolver, in io.Reader) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		reply, ok := resolver.Resolve(ctx, input)
		if !ok || reply.Text == "" {
			fmt.Println("Tutor: [no response]")
			continue
		}
		fmt.Println("Tutor: " + reply.Text)
		if reply.Terminal {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Failed to read input: %v", err)
	}
}

// loadRecords prefers a CSV passed on the command line; otherwise it reads
// the word bank.
func loadRecords(ctx context.Context, cfg config.Config, wordsPath string) ([]catalog.WordRecord, error) {
	if wordsPath != "" {
		if cfg.WordListURL != "" {
			if err := catalog.EnsureWordList(ctx, wordsPath, cfg.WordListURL); err != nil {
				log.Printf("Warning: failed to fetch word list: %v. Trying local copy.", err)
			}
		}
		return catalog.LoadCSVFile(wordsPath)
	}

	conn, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open word bank: %w", err)
	}
	defer conn.Close()
	if err := db.InitDB(conn); err != nil {
		return nil, fmt.Errorf("init word bank: %w", err)
	}

	words, err := db.ListByDifficulty(conn)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	records := make([]catalog.WordRecord, 0, len(words))
	for _, w := range words {
		records = append(records, catalog.WordRecord{
			Word:       w.Word,
			Difficulty: w.Difficulty,
			Definition: w.Definition,
			Origin:     w.Origin,
			Sentence:   w.Sentence,
		})
	}
	return records, nil
}
