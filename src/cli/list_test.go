package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chef-backup/src/backend"
	"chef-backup/src/cli"
)

func seedBackupRoot(t *testing.T) string {
	t.Helper()
	parent := t.TempDir()
	root := filepath.Join(parent, "chef.example.com_20120102T030405-0000")
	for _, p := range []string{
		"nodes/mynode.json",
		"roles/web.json",
		"data_bags/mybag/myitem.json",
	} {
		full := filepath.Join(root, p)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte("{}\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return parent
}

func TestListCmd_Table(t *testing.T) {
	parent := seedBackupRoot(t)

	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{"list", "--backup-dir", parent})
	if _, e := cmd.ExecuteC(); e != nil {
		t.Fatalf("unexpected error: %v", e)
	}
	s := out.String()
	if !strings.Contains(s, "ROOT") || !strings.Contains(s, "KIND") {
		t.Fatalf("missing header in table output: %q", s)
	}
	if !strings.Contains(s, "chef.example.com") || !strings.Contains(s, "20120102T030405-0000") {
		t.Fatalf("missing expected row content: %q", s)
	}
	if !strings.Contains(s, "data_bags") {
		t.Fatalf("missing data_bags row: %q", s)
	}
}

func TestListCmd_JSON(t *testing.T) {
	parent := seedBackupRoot(t)

	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{"list", "nodes", "--backup-dir", parent, "-o", "json"})
	if _, e := cmd.ExecuteC(); e != nil {
		t.Fatalf("unexpected error: %v", e)
	}
	var entries []backend.Entry
	if err := json.Unmarshal(out.Bytes(), &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(entries) != 1 || entries[0].Kind != "nodes" || entries[0].Count != 1 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestListCmd_InvalidKind(t *testing.T) {
	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{"list", "cookbooks", "--backup-dir", t.TempDir()})
	if _, e := cmd.ExecuteC(); e == nil {
		t.Fatal("expected error for invalid kind")
	}
}
