package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"chef-backup/src/backend"
	dir "chef-backup/src/backend/directory"
	"chef-backup/src/backup"
)

func newListCmd(stdout, stderr io.Writer) *cobra.Command {
	var parent string
	var output string
	cmd := &cobra.Command{
		Use:   "list [all|nodes|roles|environments|data_bags]",
		Short: "List existing backups under the backup directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := backend.KindAll
			if len(args) == 1 {
				kind = strings.ToLower(args[0])
			}
			if kind != backend.KindAll && !backup.IsValidKind(kind) {
				return &backup.UsageError{Component: kind}
			}
			if parent == "" {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				parent = cfg.FileBackupPath
			}
			if parent == "" {
				return errors.New("no backup directory; set file_backup_path or pass --backup-dir")
			}
			b, err := dir.New(parent)
			if err != nil {
				return err
			}
			entries, err := b.List(kind)
			if err != nil {
				return err
			}
			switch output {
			case "json":
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			case "table", "":
				return renderTable(stdout, entries)
			default:
				return fmt.Errorf("unsupported --output: %s", output)
			}
		},
	}
	cmd.Flags().StringVar(&parent, "backup-dir", "", "Parent directory holding backup roots (default: file_backup_path)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table|json")
	return cmd
}

func renderTable(w io.Writer, entries []backend.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROOT\tHOST\tTIMESTAMP\tKIND\tCOUNT")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Root, e.Host, e.Timestamp, e.Kind, strconv.Itoa(e.Count))
	}
	return tw.Flush()
}
