package directory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chef-backup/src/backend"
	"chef-backup/src/backup"
)

// Backend scans a parent directory of backup roots laid out as
// <parent>/<host>_<timestamp>/<kind>/... and reports what each root holds.
type Backend struct {
	Parent string
}

func New(parent string) (*Backend, error) {
	if parent == "" {
		return nil, errors.New("backup directory must not be empty")
	}
	info, err := os.Stat(parent)
	if err != nil {
		return nil, fmt.Errorf("stat backup directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", parent)
	}
	return &Backend{Parent: parent}, nil
}

func (b *Backend) List(kind string) ([]backend.Entry, error) {
	kinds := backup.Kinds
	if kind != "" && kind != backend.KindAll {
		kinds = []string{kind}
	}

	roots, err := os.ReadDir(b.Parent)
	if err != nil {
		return nil, err
	}
	var entries []backend.Entry
	for _, root := range roots {
		if !root.IsDir() {
			continue
		}
		host, ts := splitRootName(root.Name())
		for _, k := range kinds {
			dir := filepath.Join(b.Parent, root.Name(), k)
			count, err := countItems(dir, k)
			if err != nil {
				return nil, err
			}
			if count < 0 {
				continue // kind not present in this root
			}
			entries = append(entries, backend.Entry{
				Root:      root.Name(),
				Host:      host,
				Timestamp: ts,
				Kind:      k,
				Count:     count,
				Path:      dir,
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		a, c := entries[i], entries[j]
		if a.Root != c.Root {
			return a.Root < c.Root
		}
		return kindRank(a.Kind) < kindRank(c.Kind)
	})
	return entries, nil
}

// countItems returns the number of JSON files under dir, descending one
// level into bag subdirectories for data_bags. A missing dir yields -1.
func countItems(dir, kind string) (int, error) {
	des, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return -1, nil
	}
	if err != nil {
		return 0, err
	}
	count := 0
	for _, de := range des {
		if kind == backup.KindDataBags && de.IsDir() {
			items, err := os.ReadDir(filepath.Join(dir, de.Name()))
			if err != nil {
				return 0, err
			}
			for _, it := range items {
				if !it.IsDir() && strings.HasSuffix(it.Name(), ".json") {
					count++
				}
			}
			continue
		}
		if !de.IsDir() && strings.HasSuffix(de.Name(), ".json") {
			count++
		}
	}
	return count, nil
}

// splitRootName separates "<host>_<YYYYMMDDTHHMMSS><offset>" into its
// parts; roots with other names come back with empty host and timestamp.
func splitRootName(name string) (host, ts string) {
	i := strings.LastIndex(name, "_")
	if i <= 0 || i == len(name)-1 {
		return "", ""
	}
	return name[:i], name[i+1:]
}

func kindRank(k string) int {
	for i, v := range backup.Kinds {
		if v == k {
			return i
		}
	}
	return len(backup.Kinds)
}
