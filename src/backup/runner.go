package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"chef-backup/src/chefapi"
)

// Component names accepted on the command line, in processing order.
const (
	KindNodes        = "nodes"
	KindRoles        = "roles"
	KindEnvironments = "environments"
	KindDataBags     = "data_bags"
)

// Kinds is the fixed processing order for a full backup.
var Kinds = []string{KindNodes, KindRoles, KindEnvironments, KindDataBags}

// UsageError reports an unrecognized component-type argument. It is
// returned before any network or filesystem activity takes place.
type UsageError struct{ Component string }

func (e *UsageError) Error() string {
	return fmt.Sprintf("invalid component type %q (expected nodes, roles, environments, or data_bags)", e.Component)
}

// Options carries everything the runner needs beyond the API client.
type Options struct {
	// ServerHost names the default backup root.
	ServerHost string
	// FileBackupPath is the parent directory for computed roots.
	FileBackupPath string
	// BackupDir, when set, is used as the backup root verbatim.
	BackupDir string
}

// Runner exports server objects into per-kind subdirectories of a backup
// root, one pretty-printed JSON file per object.
type Runner struct {
	client chefapi.Client
	opts   Options
	stdout io.Writer
}

func NewRunner(client chefapi.Client, opts Options, stdout io.Writer) *Runner {
	return &Runner{client: client, opts: opts, stdout: stdout}
}

// DefaultRoot derives the backup root for a run starting at now:
// <fileBackupPath>/<host>_<YYYYMMDDTHHMMSS>-0000. Times are taken in UTC;
// the offset is always rendered as -0000.
func DefaultRoot(fileBackupPath, host string, now time.Time) string {
	ts := now.UTC().Format("20060102T150405") + "-0000"
	return filepath.Join(fileBackupPath, host+"_"+ts)
}

// Run backs up one component kind, or all four when component is empty.
// It returns the backup root it wrote into.
func (r *Runner) Run(component string, now time.Time) (string, error) {
	if component != "" && !IsValidKind(component) {
		return "", &UsageError{Component: component}
	}

	root := r.opts.BackupDir
	if root == "" {
		root = DefaultRoot(r.opts.FileBackupPath, r.opts.ServerHost, now)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", err
	}
	logrus.Debugf("backup root: %s", root)

	for _, kind := range Kinds {
		if component != "" && component != kind {
			continue
		}
		var err error
		switch kind {
		case KindNodes:
			err = r.backupNodes(root)
		case KindRoles:
			err = r.backupRoles(root)
		case KindEnvironments:
			err = r.backupEnvironments(root)
		case KindDataBags:
			err = r.backupDataBags(root)
		}
		if err != nil {
			return "", err
		}
	}
	return root, nil
}

func (r *Runner) backupNodes(root string) error {
	return r.backupFlat(root, KindNodes, "node", r.client.ListNodes, r.client.GetNode)
}

func (r *Runner) backupRoles(root string) error {
	return r.backupFlat(root, KindRoles, "role", r.client.ListRoles, r.client.GetRole)
}

func (r *Runner) backupEnvironments(root string) error {
	return r.backupFlat(root, KindEnvironments, "environment",
		func() (map[string]string, error) {
			envs, err := r.client.ListEnvironments()
			if err != nil {
				return nil, err
			}
			// _default is server-managed and never backed up
			delete(envs, "_default")
			return envs, nil
		},
		r.client.GetEnvironment)
}

// backupFlat handles the kinds whose items live directly under
// <root>/<kind>/<name>.json.
func (r *Runner) backupFlat(root, kind, singular string, list func() (map[string]string, error), get func(string) (chefapi.Object, error)) error {
	dir := filepath.Join(root, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	names, err := list()
	if err != nil {
		return err
	}
	for name := range names {
		obj, err := get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.stdout, "Backing up %s %s\n", singular, name)
		if err := writeJSON(filepath.Join(dir, name+".json"), obj); err != nil {
			return err
		}
	}
	return nil
}

// backupDataBags nests item files under <root>/data_bags/<bag>/<item>.json.
func (r *Runner) backupDataBags(root string) error {
	dir := filepath.Join(root, KindDataBags)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	bags, err := r.client.ListDataBags()
	if err != nil {
		return err
	}
	for bag := range bags {
		bagDir := filepath.Join(dir, bag)
		if err := os.MkdirAll(bagDir, 0o755); err != nil {
			return err
		}
		items, err := r.client.ListDataBagItems(bag)
		if err != nil {
			return err
		}
		for item := range items {
			obj, err := r.client.GetDataBagItem(bag, item)
			if err != nil {
				return err
			}
			if obj == nil {
				obj = chefapi.Object{}
			}
			// raw items carry only an id; give them their composite name
			obj["name"] = fmt.Sprintf("data_bag_item_%s_%s", bag, item)
			fmt.Fprintf(r.stdout, "Backing up data bag %s item %s\n", bag, item)
			if err := writeJSON(filepath.Join(bagDir, item+".json"), obj); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// IsValidKind reports whether s names one of the backed-up kinds.
func IsValidKind(s string) bool {
	for _, k := range Kinds {
		if s == k {
			return true
		}
	}
	return false
}
