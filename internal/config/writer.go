package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// settingKind is the type a writable setting is stored as.
type settingKind int

const (
	kindString settingKind = iota
	kindBool
	kindLevel
)

// settings lists every key `config set` accepts.
var settings = map[string]settingKind{
	"data.file":        kindString,
	"log.path":         kindString,
	"log.level":        kindLevel,
	"ui.title":         kindString,
	"ui.watch":         kindBool,
	"ui.confirmDelete": kindBool,
}

// SettingKeys returns the writable keys in sorted order.
func SettingKeys() []string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CanonicalKey maps a user-typed key to its canonical spelling, matching
// case-insensitively as viper does.
func CanonicalKey(key string) (string, bool) {
	for k := range settings {
		if strings.EqualFold(k, key) {
			return k, true
		}
	}
	return "", false
}

// ParseSetting converts a raw command-line value into the type stored for key.
func ParseSetting(key, raw string) (any, error) {
	canonical, ok := CanonicalKey(key)
	if !ok {
		return nil, fmt.Errorf("unknown config key: %s (available: %s)", key, strings.Join(SettingKeys(), ", "))
	}
	switch settings[canonical] {
	case kindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %q is not true or false", canonical, raw)
		}
		return b, nil
	case kindLevel:
		level := strings.ToLower(strings.TrimSpace(raw))
		if !slices.Contains(LogLevels, level) {
			return nil, fmt.Errorf("invalid value for %s: %q (use one of %s)", canonical, raw, strings.Join(LogLevels, ", "))
		}
		return level, nil
	default:
		if strings.TrimSpace(raw) == "" && canonical == "data.file" {
			return nil, fmt.Errorf("%s cannot be empty", canonical)
		}
		return raw, nil
	}
}

// ProjectConfigPath is where `config set` writes when no config file is in use.
func ProjectConfigPath() string {
	return filepath.Join(AppDirName, ConfigName+".yaml")
}

// WriteSetting stores key=value in the YAML config file at path, creating
// the file if needed. Other keys and their order are preserved.
func WriteSetting(path, key string, value any) error {
	canonical, ok := CanonicalKey(key)
	if !ok {
		return fmt.Errorf("unknown config key: %s", key)
	}

	doc := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
	case os.IsNotExist(err):
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := setNested(doc, strings.Split(canonical, "."), value); err != nil {
		return fmt.Errorf("set %s: %w", canonical, err)
	}

	var buf bytes.Buffer
	buf.WriteString("# TodoWing Configuration\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// setNested walks doc along parts, creating maps as needed. An existing key
// that differs only in case is replaced so viper sees a single value.
func setNested(doc map[string]any, parts []string, value any) error {
	head := parts[0]
	for k := range doc {
		if k != head && strings.EqualFold(k, head) {
			delete(doc, k)
		}
	}
	if len(parts) == 1 {
		doc[head] = value
		return nil
	}

	child, ok := doc[head].(map[string]any)
	if !ok {
		if existing, present := doc[head]; present && existing != nil {
			return fmt.Errorf("%s is not a mapping", head)
		}
		child = map[string]any{}
		doc[head] = child
	}
	return setNested(child, parts[1:], value)
}
