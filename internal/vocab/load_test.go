package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefault(t *testing.T) {
	entries, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("LoadDefault returned no entries")
	}
	for i, e := range entries {
		if e.English == "" || e.Indonesia == "" {
			t.Fatalf("entry %d has empty word: %+v", i, e)
		}
	}
}

func TestLoadDefault_NoDuplicateEnglish(t *testing.T) {
	entries, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	seen := map[string]bool{}
	for _, e := range entries {
		if seen[e.English] {
			t.Errorf("duplicate english word %q in bundled list", e.English)
		}
		seen[e.English] = true
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	data := `[{"english": "cat", "indonesia": "kucing", "type": "noun"}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(entries) != 1 || entries[0].English != "cat" || entries[0].Indonesia != "kucing" {
		t.Errorf("LoadFile = %+v, want single cat/kucing entry", entries)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{broken`},
		{"not an array", `{"english": "cat", "indonesia": "kucing"}`},
		{"empty array", `[]`},
		{"missing indonesia", `[{"english": "cat"}]`},
		{"empty english", `[{"english": "", "indonesia": "kucing"}]`},
		{"unknown field", `[{"english": "cat", "indonesia": "kucing", "extra": 1}]`},
	}

	for _, tc := range tests {
		path := filepath.Join(t.TempDir(), "words.json")
		if err := os.WriteFile(path, []byte(tc.data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Errorf("%s: LoadFile succeeded, want error", tc.name)
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("LoadFile on missing file succeeded, want error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped os.ErrNotExist", err)
	}
}
