package state

import (
	"os"
	"path/filepath"
	"testing"

	"fixturecal/internal/domain"
)

func TestLoadMissingFileIsEmptyState(t *testing.T) {
	s := NewFSStore(filepath.Join(t.TempDir(), "state.json"))
	got, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty state, got %v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFSStore(filepath.Join(t.TempDir(), "nested", "state.json"))
	in := domain.State{
		"uid-1": {Fingerprint: "fp-a", Revision: 2},
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	out, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	st, ok := out["uid-1"]
	if !ok || st.Fingerprint != "fp-a" || st.Revision != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestSaveIdenticalContentSkipsRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := NewFSStore(path)
	in := domain.State{"uid-1": {Fingerprint: "fp-a"}}
	if err := s.Save(in); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatalf("identical save rewrote the file")
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	s := NewFSStore(path)
	if err := s.Save(domain.State{"uid-1": {}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := NewFSStore(path).Load(); err == nil {
		t.Fatalf("expected error for corrupt state file")
	}
}
