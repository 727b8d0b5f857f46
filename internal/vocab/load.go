package vocab

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrNoData indicates the vocabulary source could not provide any entries.
// A quiz cannot start without a source; callers should surface this as a
// retryable loading failure.
var ErrNoData = errors.New("vocab: no entries available")

// defaultData is the bundled dataset, ordered by descending usage frequency
// (most common words first).
//
//go:embed data/vocab_full.json
var defaultData []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// LoadDefault parses the embedded dataset.
func LoadDefault() ([]Entry, error) {
	return parse(defaultData)
}

// LoadFile reads and parses a dataset from an external JSON file.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocab file: %w", err)
	}
	entries, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// parse validates raw JSON against the dataset schema and unmarshals it.
func parse(data []byte) ([]Entry, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := datasetSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("dataset validation failed: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoData
	}
	return entries, nil
}

// datasetSchema compiles entriesSchema once and caches the result.
func datasetSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The compiler expects a parsed JSON value, so round-trip the
		// definition through encoding/json first.
		defBytes, err := json.Marshal(entriesSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://vocab-entries.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
