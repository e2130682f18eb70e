// Package config loads the lazystay configuration from YAML or TOML.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/chmouel/lazystay/internal/filter"
	"github.com/chmouel/lazystay/internal/theme"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// overridePrefix namespaces keys passed with --config.
const overridePrefix = "ls."

// Layout limits.
const (
	MinCardWidth     = 24
	DefaultCardWidth = 34
	DefaultItemWidth = 100
	DefaultDragStep  = 25
)

// AppConfig defines the global lazystay configuration options.
type AppConfig struct {
	Theme         string               // Theme name: see AvailableThemes in internal/theme
	DebugLog      string               // Debug log path, empty to discard
	CatalogFile   string               // YAML catalog; empty uses the embedded one
	WatchCatalog  bool                 // Reload CatalogFile when it changes on disk
	DismissPolicy filter.DismissPolicy // What closing the filter panel does to unapplied edits
	ItemWidth     float64              // Logical width of one carousel image
	DragStep      float64              // Offset delta for a drag key press or wheel tick
	CardWidth     int                  // Rendered card width in terminal cells
	ShowIcons     bool                 // Unicode glyphs instead of ASCII fallbacks
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Theme:         theme.DefaultDark(),
		DismissPolicy: filter.DismissKeep,
		ItemWidth:     DefaultItemWidth,
		DragStep:      DefaultDragStep,
		CardWidth:     DefaultCardWidth,
		ShowIcons:     true,
	}
}

// knownKeys lists every key accepted in files and overrides.
var knownKeys = map[string]struct{}{
	"theme":          {},
	"debug_log":      {},
	"catalog_file":   {},
	"watch_catalog":  {},
	"dismiss_policy": {},
	"item_width":     {},
	"drag_step":      {},
	"card_width":     {},
	"show_icons":     {},
}

// Keys returns the accepted configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if v == math.Trunc(v) {
			return int(v)
		}
	case string:
		text := strings.TrimSpace(v)
		if i, err := strconv.Atoi(text); err == nil {
			return i
		}
	}
	return defaultVal
}

func coerceFloat(value any, defaultVal float64) float64 {
	if value == nil {
		return defaultVal
	}

	var f float64
	switch v := value.(type) {
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return defaultVal
		}
		f = parsed
	default:
		return defaultVal
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return defaultVal
	}
	return f
}

func coerceString(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// apply merges the keys present in data into cfg. Invalid values keep the
// current setting.
func (cfg *AppConfig) apply(data map[string]any) {
	if v, ok := coerceString(data["theme"]); ok {
		if normalized := NormalizeThemeName(v); normalized != "" {
			cfg.Theme = normalized
		}
	}
	if v, ok := coerceString(data["debug_log"]); ok && v != "" {
		cfg.DebugLog = v
	}
	if v, ok := coerceString(data["catalog_file"]); ok && v != "" {
		cfg.CatalogFile = v
	}
	if v, ok := data["watch_catalog"]; ok {
		cfg.WatchCatalog = coerceBool(v, cfg.WatchCatalog)
	}
	if v, ok := coerceString(data["dismiss_policy"]); ok {
		if policy, valid := filter.ParseDismissPolicy(v); valid {
			cfg.DismissPolicy = policy
		}
	}
	if v, ok := data["item_width"]; ok {
		if w := coerceFloat(v, 0); w > 0 {
			cfg.ItemWidth = w
		}
	}
	if v, ok := data["drag_step"]; ok {
		if step := coerceFloat(v, 0); step > 0 {
			cfg.DragStep = step
		}
	}
	if v, ok := data["card_width"]; ok {
		cfg.CardWidth = max(coerceInt(v, cfg.CardWidth), MinCardWidth)
	}
	if v, ok := data["show_icons"]; ok {
		cfg.ShowIcons = coerceBool(v, cfg.ShowIcons)
	}
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	cfg.apply(data)
	return cfg
}

// ApplyCLIOverrides applies "ls.key=value" overrides on top of cfg.
func (cfg *AppConfig) ApplyCLIOverrides(overrides []string) error {
	data := make(map[string]any, len(overrides))
	for _, raw := range overrides {
		key, value, found := strings.Cut(raw, "=")
		key = strings.TrimSpace(key)
		if !found || !strings.HasPrefix(key, overridePrefix) {
			return fmt.Errorf("invalid override %q: expected %skey=value", raw, overridePrefix)
		}
		key = strings.TrimPrefix(key, overridePrefix)
		if _, ok := knownKeys[key]; !ok {
			return fmt.Errorf("unknown config key %q", key)
		}
		data[key] = value
	}
	cfg.apply(data)
	return nil
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// Dir returns the directory configuration files are read from.
func Dir() string {
	return filepath.Clean(filepath.Join(getConfigDir(), "lazystay"))
}

// LoadConfig reads the application configuration. An empty configPath
// searches config.yaml, config.yml and config.toml in Dir. The defaults
// are returned alongside any error.
func LoadConfig(configPath string) (*AppConfig, error) {
	configBase := Dir()

	var paths []string
	if configPath != "" {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return DefaultConfig(), err
		}
		if !isPathWithin(configBase, absPath) {
			return DefaultConfig(), fmt.Errorf("config path must reside inside %s", configBase)
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
			filepath.Join(configBase, "config.toml"),
		}
	}

	for _, path := range paths {
		// #nosec G304 -- path is constrained to the config directory after validation
		raw, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
		}

		data, err := decode(path, raw)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return parseConfig(data), nil
	}

	return DefaultConfig(), nil
}

func decode(path string, raw []byte) (map[string]any, error) {
	data := map[string]any{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(raw, &data); err != nil {
			return nil, err
		}
		return data, nil
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// ExpandPath expands a leading ~ and environment variables.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

func isPathWithin(base, target string) bool {
	base = filepath.Clean(base)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return true
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range theme.AvailableThemes() {
		if name == known {
			return name
		}
	}
	return ""
}
