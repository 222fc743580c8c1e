package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config holds the server connection settings and backup paths, normally
// loaded from a YAML file. It is passed explicitly to whoever needs it;
// there is no process-wide configuration state.
type Config struct {
	// ServerURL is the Chef server endpoint including the organization,
	// e.g. https://chef.example.com/organizations/acme.
	ServerURL string `yaml:"server_url"`
	// ClientName and KeyPath identify the API client used to sign requests.
	ClientName string `yaml:"client_name"`
	KeyPath    string `yaml:"key_path"`

	// FileBackupPath is the parent directory for computed backup roots.
	FileBackupPath string `yaml:"file_backup_path"`
	// BackupDir, when set, is used as the backup root verbatim instead of
	// deriving one from the server host and timestamp.
	BackupDir string `yaml:"backup_dir"`

	SSLVerify *bool `yaml:"ssl_verify"`
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPath returns the default config file location, ~/.chef-backup.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chef-backup.yaml"
	}
	return filepath.Join(home, ".chef-backup.yaml")
}

// ServerHost returns the hostname part of ServerURL, used to name the
// default backup root.
func (c *Config) ServerHost() (string, error) {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return "", fmt.Errorf("parse server_url: %w", err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("server_url %q has no hostname", c.ServerURL)
	}
	return u.Hostname(), nil
}

// VerifySSL reports whether server certificates should be verified.
// Unset means verify.
func (c *Config) VerifySSL() bool {
	return c.SSLVerify == nil || *c.SSLVerify
}
