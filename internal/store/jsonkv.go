package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const stateFileName = "state.json"

// JSONKV is the default KV backend: a single human-readable file in the data
// dir. Loaded once, written through on every mutation.
type JSONKV struct {
	path string
	m    map[string]string
}

// OpenJSON loads (or initializes) the JSON state file under dir.
func OpenJSON(dir string) (*JSONKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	kv := &JSONKV{
		path: filepath.Join(dir, stateFileName),
		m:    map[string]string{},
	}
	b, err := os.ReadFile(kv.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return kv, nil
		}
		return nil, fmt.Errorf("read state: %w", err)
	}
	if err := json.Unmarshal(b, &kv.m); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}
	return kv, nil
}

func (kv *JSONKV) Get(key string) (string, bool, error) {
	v, ok := kv.m[key]
	return v, ok, nil
}

func (kv *JSONKV) Set(key, value string) error {
	kv.m[key] = value
	return kv.flush()
}

func (kv *JSONKV) Delete(key string) error {
	if _, ok := kv.m[key]; !ok {
		return nil
	}
	delete(kv.m, key)
	return kv.flush()
}

func (kv *JSONKV) Keys(prefix string) ([]string, error) {
	var out []string
	for k := range kv.m {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (kv *JSONKV) flush() error {
	b, err := json.MarshalIndent(kv.m, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(kv.path, b, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}
