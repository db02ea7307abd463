package history

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndRecent(t *testing.T) {
	store := openTestStore(t)

	inputs := []string{"add = wrap(\\x, y -> x + y)", "2 | add | 3", "print(5)"}
	for _, input := range inputs {
		if err := store.Append(input); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != len(inputs) {
		t.Fatalf("got %d entries, want %d", len(entries), len(inputs))
	}
	// Newest first.
	for i, entry := range entries {
		want := inputs[len(inputs)-1-i]
		if entry.Input != want {
			t.Errorf("entries[%d].Input = %q, want %q", i, entry.Input, want)
		}
		if entry.Session != store.Session() {
			t.Errorf("entries[%d].Session = %q, want %q", i, entry.Session, store.Session())
		}
	}
	if entries[0].Seq != 3 {
		t.Errorf("newest seq = %d, want 3", entries[0].Seq)
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := store.Append("line"); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := store.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}

func TestSessionsAreDistinct(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Append("one"); err != nil {
		t.Fatal(err)
	}
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	if err := second.Append("two"); err != nil {
		t.Fatal(err)
	}

	entries, err := second.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries across sessions, want 2", len(entries))
	}
	if entries[0].Session == entries[1].Session {
		t.Error("expected distinct session ids across processes")
	}
}
