package quiz

import (
	"fmt"
	"testing"

	"github.com/danang/kuiskata/internal/vocab"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"easy", LevelEasy},
		{"medium", LevelMedium},
		{"hard", LevelHard},
		{"quick", LevelQuick},
		{"", LevelQuick},
		{"EASY", LevelQuick},
		{"nonsense", LevelQuick},
	}

	for _, tc := range tests {
		got := ParseLevel(tc.input)
		if got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestLevelBounds(t *testing.T) {
	tests := []struct {
		level                  Level
		wantStart, wantEnd     int
		wantCount              int
	}{
		{LevelQuick, 0, 10, 10},
		{LevelEasy, 0, 200, 200},
		{LevelMedium, 200, 700, 500},
		{LevelHard, 700, 1700, 1000},
	}

	for _, tc := range tests {
		start, end, count := tc.level.Bounds()
		if start != tc.wantStart || end != tc.wantEnd || count != tc.wantCount {
			t.Errorf("%v.Bounds() = (%d, %d, %d), want (%d, %d, %d)",
				tc.level, start, end, count, tc.wantStart, tc.wantEnd, tc.wantCount)
		}
	}
}

func TestSelectPool_Clamping(t *testing.T) {
	tests := []struct {
		name    string
		entries int
		level   Level
		want    int
	}{
		{"quick full", 50, LevelQuick, 10},
		{"easy short list", 120, LevelEasy, 120},
		{"medium partial band", 450, LevelMedium, 250},
		{"medium below band", 150, LevelMedium, 0},
		{"hard below band", 500, LevelHard, 0},
		{"empty list", 0, LevelEasy, 0},
	}

	for _, tc := range tests {
		pool := SelectPool(makePool(tc.entries), tc.level)
		if len(pool) != tc.want {
			t.Errorf("%s: len(SelectPool) = %d, want %d", tc.name, len(pool), tc.want)
		}
	}
}

func TestSelectPool_Band(t *testing.T) {
	entries := makePool(800)
	pool := SelectPool(entries, LevelMedium)
	if pool[0].English != entries[200].English {
		t.Errorf("medium pool starts at %q, want %q", pool[0].English, entries[200].English)
	}
	if pool[len(pool)-1].English != entries[699].English {
		t.Errorf("medium pool ends at %q, want %q", pool[len(pool)-1].English, entries[699].English)
	}
}

func makePool(n int) []vocab.Entry {
	entries := make([]vocab.Entry, n)
	for i := range entries {
		entries[i] = vocab.Entry{
			English:   fmt.Sprintf("word-%d", i),
			Indonesia: fmt.Sprintf("kata-%d", i),
		}
	}
	return entries
}
