// Package completion holds the flag metadata used to answer shell
// completion requests.
package completion

import (
	"sort"
	"strings"

	"github.com/chmouel/lazystay/internal/config"
	"github.com/chmouel/lazystay/internal/filter"
	"github.com/chmouel/lazystay/internal/theme"
)

// ConfigPrefix is the prefix of --config override keys.
const ConfigPrefix = "ls."

// FlagInfo contains metadata about a command-line flag for completion generation.
type FlagInfo struct {
	Name        string   // Flag name without dashes
	Short       string   // Single letter alias, if any
	Description string   // Human-readable description
	HasValue    bool     // true for string flags, false for bool flags
	ValueHint   string   // Hint for value type (e.g., "PATH", "NAME")
	Values      []string // Enumerated values for completion (e.g., theme names)
}

// Commands lists the subcommands offered when no flag is being completed.
var Commands = []string{"catalog", "themes", "version", "help"}

func dismissPolicies() []string {
	return []string{string(filter.DismissKeep), string(filter.DismissDiscard)}
}

// GetFlags returns metadata for all lazystay global flags.
func GetFlags() []FlagInfo {
	return []FlagInfo{
		{Name: "config-file", Description: "Path to configuration file", HasValue: true, ValueHint: "FILE"},
		{Name: "config", Short: "C", Description: "Override config values", HasValue: true, ValueHint: "KEY=VALUE"},
		{Name: "theme", Short: "t", Description: "Override UI theme", HasValue: true, ValueHint: "NAME", Values: theme.AvailableThemes()},
		{Name: "debug-log", Description: "Path to debug log file", HasValue: true, ValueHint: "PATH"},
		{Name: "catalog", Description: "Path to a YAML listing catalog", HasValue: true, ValueHint: "FILE"},
		{Name: "watch", Description: "Reload the catalog file when it changes"},
		{Name: "output-criteria", Description: "Write applied criteria to file", HasValue: true, ValueHint: "FILE"},
		{Name: "dismiss-policy", Description: "Filter panel dismiss behaviour", HasValue: true, ValueHint: "POLICY", Values: dismissPolicies()},
		{Name: "version", Short: "v", Description: "Print version information"},
		{Name: "help", Short: "h", Description: "Show help"},
	}
}

// lookup finds the flag spelled by word, e.g. "--theme" or "-t".
func lookup(word string) (FlagInfo, bool) {
	name, isLong := strings.CutPrefix(word, "--")
	if !isLong {
		var isShort bool
		name, isShort = strings.CutPrefix(word, "-")
		if !isShort || name == "" {
			return FlagInfo{}, false
		}
	}
	for _, f := range GetFlags() {
		if (isLong && f.Name == name) || (!isLong && f.Short == name) {
			return f, true
		}
	}
	return FlagInfo{}, false
}

// ConfigKeys returns "ls.key=" suggestions for the keys matching prefix.
func ConfigKeys(prefix string) []string {
	var matches []string
	for _, key := range config.Keys() {
		if strings.HasPrefix(key, prefix) {
			matches = append(matches, ConfigPrefix+key+"=")
		}
	}
	return matches
}

// ConfigValues returns value suggestions for a config key.
func ConfigValues(key string) []string {
	switch key {
	case "theme":
		return theme.AvailableThemes()
	case "dismiss_policy":
		return dismissPolicies()
	case "watch_catalog", "show_icons":
		return []string{"true", "false"}
	default:
		return nil
	}
}

// Suggest returns completions for the last word of words, which holds the
// command line typed so far without the program name.
func Suggest(words []string) []string {
	var prev, cur string
	if n := len(words); n > 0 {
		cur = words[n-1]
		if n > 1 {
			prev = words[n-2]
		}
	}

	if f, ok := lookup(prev); ok && f.HasValue {
		return suggestValue(f, cur)
	}
	if strings.HasPrefix(cur, "-") {
		var out []string
		for _, f := range GetFlags() {
			if long := "--" + f.Name; strings.HasPrefix(long, cur) {
				out = append(out, long)
			}
		}
		return out
	}
	return withPrefix(Commands, cur)
}

func suggestValue(f FlagInfo, cur string) []string {
	if f.Name != "config" {
		return withPrefix(f.Values, cur)
	}
	rest := strings.TrimPrefix(cur, ConfigPrefix)
	key, _, found := strings.Cut(rest, "=")
	if !found {
		return ConfigKeys(rest)
	}
	var out []string
	for _, v := range ConfigValues(key) {
		out = append(out, ConfigPrefix+key+"="+v)
	}
	return withPrefix(out, cur)
}

func withPrefix(values []string, prefix string) []string {
	var out []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
