package chefapi

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-chef/chef"
	"github.com/sirupsen/logrus"

	"chef-backup/src/config"
)

// RealClient wraps the official go-chef client. Request signing and
// authentication are entirely the SDK's job.
type RealClient struct {
	c *chef.Client
}

// Connect builds an authenticated client from the configuration.
func Connect(cfg *config.Config) (*RealClient, error) {
	if cfg.ServerURL == "" || cfg.ClientName == "" || cfg.KeyPath == "" {
		return nil, fmt.Errorf("server_url, client_name and key_path must all be configured")
	}
	key, err := os.ReadFile(cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("read client key: %w", err)
	}
	baseURL := cfg.ServerURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	c, err := chef.NewClient(&chef.Config{
		Name:    cfg.ClientName,
		Key:     string(key),
		BaseURL: baseURL,
		SkipSSL: !cfg.VerifySSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.ServerURL, err)
	}
	return &RealClient{c: c}, nil
}

func (r *RealClient) ListNodes() (map[string]string, error) { return r.list("nodes") }
func (r *RealClient) ListRoles() (map[string]string, error) { return r.list("roles") }
func (r *RealClient) ListEnvironments() (map[string]string, error) {
	return r.list("environments")
}
func (r *RealClient) ListDataBags() (map[string]string, error) { return r.list("data") }
func (r *RealClient) ListDataBagItems(bag string) (map[string]string, error) {
	return r.list("data/" + url.PathEscape(bag))
}

func (r *RealClient) GetNode(name string) (Object, error) {
	return r.get("nodes/" + url.PathEscape(name))
}
func (r *RealClient) GetRole(name string) (Object, error) {
	return r.get("roles/" + url.PathEscape(name))
}
func (r *RealClient) GetEnvironment(name string) (Object, error) {
	return r.get("environments/" + url.PathEscape(name))
}
func (r *RealClient) GetDataBagItem(bag, item string) (Object, error) {
	return r.get("data/" + url.PathEscape(bag) + "/" + url.PathEscape(item))
}

// list and get fetch endpoints as raw JSON through the SDK's signed
// transport, so backups keep the server's exact representation instead of
// round-tripping through typed structs.
func (r *RealClient) list(path string) (map[string]string, error) {
	var out map[string]string
	if err := r.getJSON(path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RealClient) get(path string) (Object, error) {
	var out Object
	if err := r.getJSON(path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RealClient) getJSON(path string, out any) error {
	logrus.Debugf("GET %s", path)
	req, err := r.c.NewRequest("GET", path, nil)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if _, err := r.c.Do(req, out); err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return nil
}
