// Package config loads the optional TOML configuration files accepted by
// cmd/aurd and cmd/aurctl. Command-line flags always take precedence over
// a config file's values; config files exist only to avoid repeating long
// flag invocations.
package config

import (
	"time"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// ServerConfig holds aurd's file-based defaults.
type ServerConfig struct {
	ListenAddress    string
	StorageRoot      string
	DefaultFieldMask []string
	RequestTimeout   time.Duration
}

// ClientConfig holds aurctl's file-based defaults.
type ClientConfig struct {
	ServerAddress string
	LookupBy      string
	SearchBy      string
	SearchLogic   string
	FieldMask     []string
}

// mapper mirrors the teacher's tomlMapper: it threads a *toml.Tree and a
// sticky error through a chain of key reads so that callers don't have to
// check an error after every single field.
type mapper struct {
	tree *toml.Tree
	err  error
}

func newMapper(path string) (*mapper, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading config %s", path)
	}
	return &mapper{tree: tree}, nil
}

func (m *mapper) readString(key, def string) string {
	if m.err != nil {
		return def
	}
	raw := m.tree.GetDefault(key, def)
	value, ok := raw.(string)
	if !ok {
		m.err = errors.Errorf("invalid type for %s, want string, got %T", key, raw)
		return def
	}
	return value
}

func (m *mapper) readDuration(key string, def time.Duration) time.Duration {
	if m.err != nil {
		return def
	}
	raw := m.tree.GetDefault(key, nil)
	if raw == nil {
		return def
	}
	s, ok := raw.(string)
	if !ok {
		m.err = errors.Errorf("invalid type for %s, want duration string, got %T", key, raw)
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		m.err = errors.Wrapf(err, "parsing %s", key)
		return def
	}
	return d
}

func (m *mapper) readStringList(key string) []string {
	if m.err != nil {
		return nil
	}
	query, err := m.tree.Query("$." + key)
	if err != nil {
		m.err = errors.Wrapf(err, "querying %s", key)
		return nil
	}
	matches := query.Values()
	if len(matches) == 0 {
		return nil
	}
	raw, ok := matches[0].([]interface{})
	if !ok {
		m.err = errors.Errorf("invalid type for %s, want a TOML list, got %T", key, matches[0])
		return nil
	}
	out := make([]string, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			m.err = errors.Errorf("invalid list element for %s, want string, got %T", key, v)
			return nil
		}
		out[i] = s
	}
	return out
}

// LoadServerConfig reads aurd's TOML config file.
func LoadServerConfig(path string) (*ServerConfig, error) {
	m, err := newMapper(path)
	if err != nil {
		return nil, err
	}

	cfg := &ServerConfig{
		ListenAddress:    m.readString("listen_address", "127.0.0.1:9000"),
		StorageRoot:      m.readString("storage_root", ""),
		DefaultFieldMask: m.readStringList("default_field_mask"),
		RequestTimeout:   m.readDuration("request_timeout", 30*time.Second),
	}
	if m.err != nil {
		return nil, m.err
	}
	return cfg, nil
}

// LoadClientConfig reads aurctl's TOML config file.
func LoadClientConfig(path string) (*ClientConfig, error) {
	m, err := newMapper(path)
	if err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		ServerAddress: m.readString("server_address", "127.0.0.1:9000"),
		LookupBy:      m.readString("lookup_by", "NAME"),
		SearchBy:      m.readString("search_by", "NAME_DESC"),
		SearchLogic:   m.readString("search_logic", "DISJUNCTIVE"),
		FieldMask:     m.readStringList("field_mask"),
	}
	if m.err != nil {
		return nil, m.err
	}
	return cfg, nil
}
