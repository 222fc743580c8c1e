package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"chef-backup/src/backup"
	"chef-backup/src/chefapi"
)

func newBackupCmd(stdout, stderr io.Writer) *cobra.Command {
	var backupDir string
	cmd := &cobra.Command{
		Use:   "backup [nodes|roles|environments|data_bags]",
		Short: "Back up server objects to JSON files (all kinds when none is named)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			component := ""
			if len(args) == 1 {
				component = args[0]
			}
			// reject bad arguments before touching config or network
			if component != "" && !backup.IsValidKind(component) {
				return &backup.UsageError{Component: component}
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if backupDir == "" {
				backupDir = cfg.BackupDir
			}
			host := ""
			if backupDir == "" {
				if host, err = cfg.ServerHost(); err != nil {
					return err
				}
			}

			client, err := chefapi.Connect(cfg)
			if err != nil {
				return err
			}
			runner := backup.NewRunner(client, backup.Options{
				ServerHost:     host,
				FileBackupPath: cfg.FileBackupPath,
				BackupDir:      backupDir,
			}, stdout)
			root, err := runner.Run(component, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Backup written to %s\n", root)
			return nil
		},
	}
	cmd.Flags().StringVar(&backupDir, "backup-dir", "", "Write into this directory instead of a computed <host>_<timestamp> root")
	return cmd
}
