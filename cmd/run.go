package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/danang/kuiskata/internal/app"
	"github.com/danang/kuiskata/internal/history"
	engine "github.com/danang/kuiskata/internal/quiz"
	"github.com/danang/kuiskata/internal/vocab"
	"github.com/spf13/cobra"
)

// runApp opens the history store, builds the vocabulary loader, and
// launches the TUI.
func runApp(cmd *cobra.Command, startLevel *engine.Level) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		History:    st,
		LoadVocab:  vocabLoader(cmd),
		StartLevel: startLevel,
	}
	return app.Run(opts)
}

// vocabLoader returns a loader for the word list: --vocab flag first,
// then KUISKATA_VOCAB, then the embedded dataset. The list is loaded
// once and shared by every screen that asks for it.
func vocabLoader(cmd *cobra.Command) func() ([]vocab.Entry, error) {
	path, _ := cmd.Flags().GetString("vocab")
	if path == "" {
		path = os.Getenv("KUISKATA_VOCAB")
	}

	var (
		once    sync.Once
		entries []vocab.Entry
		err     error
	)
	return func() ([]vocab.Entry, error) {
		once.Do(func() {
			if path != "" {
				entries, err = vocab.LoadFile(path)
				return
			}
			entries, err = vocab.LoadDefault()
		})
		return entries, err
	}
}
