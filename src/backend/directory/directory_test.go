package directory_test

import (
	"os"
	"path/filepath"
	"testing"

	dir "chef-backup/src/backend/directory"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestList_All(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "chef.example.com_20120102T030405-0000")
	writeFile(t, filepath.Join(root, "nodes", "n1.json"))
	writeFile(t, filepath.Join(root, "nodes", "n2.json"))
	writeFile(t, filepath.Join(root, "environments", "production.json"))
	writeFile(t, filepath.Join(root, "data_bags", "mybag", "myitem.json"))

	b, err := dir.New(parent)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	entries, err := b.List("all")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3: %+v", len(entries), entries)
	}
	// kinds come back in processing order
	if entries[0].Kind != "nodes" || entries[0].Count != 2 {
		t.Fatalf("nodes entry: %+v", entries[0])
	}
	if entries[1].Kind != "environments" || entries[1].Count != 1 {
		t.Fatalf("environments entry: %+v", entries[1])
	}
	if entries[2].Kind != "data_bags" || entries[2].Count != 1 {
		t.Fatalf("data_bags entry: %+v", entries[2])
	}
	if entries[0].Host != "chef.example.com" || entries[0].Timestamp != "20120102T030405-0000" {
		t.Fatalf("root name not split: %+v", entries[0])
	}
}

func TestList_SingleKind(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "chef.example.com_20120102T030405-0000")
	writeFile(t, filepath.Join(root, "nodes", "n1.json"))
	writeFile(t, filepath.Join(root, "roles", "web.json"))

	b, err := dir.New(parent)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	entries, err := b.List("roles")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Kind != "roles" || entries[0].Count != 1 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestNew_RejectsMissingDir(t *testing.T) {
	if _, err := dir.New(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
	if _, err := dir.New(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
