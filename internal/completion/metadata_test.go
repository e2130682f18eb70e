package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  []string
	}{
		{name: "empty line", words: nil, want: []string{"catalog", "help", "themes", "version"}},
		{name: "command prefix", words: []string{"th"}, want: []string{"themes"}},
		{name: "flag prefix", words: []string{"--d"}, want: []string{"--debug-log", "--dismiss-policy"}},
		{name: "theme values", words: []string{"--theme", "c"}, want: []string{"catppuccin-latte", "clean-light"}},
		{name: "short theme flag", words: []string{"-t", "n"}, want: []string{"narna", "nord"}},
		{name: "dismiss policies", words: []string{"--dismiss-policy", ""}, want: []string{"discard", "keep"}},
		{name: "config keys", words: []string{"-C", "ls.d"}, want: []string{"ls.debug_log=", "ls.dismiss_policy=", "ls.drag_step="}},
		{name: "config key without prefix", words: []string{"--config", "the"}, want: []string{"ls.theme="}},
		{name: "config values", words: []string{"-C", "ls.show_icons="}, want: []string{"ls.show_icons=false", "ls.show_icons=true"}},
		{name: "free-form config value", words: []string{"-C", "ls.card_width="}, want: nil},
		{name: "path flag", words: []string{"--catalog", ""}, want: nil},
		{name: "bool flag does not take a value", words: []string{"--watch", "c"}, want: []string{"catalog"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.words))
		})
	}
}

func TestGetFlagsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range GetFlags() {
		assert.False(t, seen[f.Name], "duplicate flag %s", f.Name)
		seen[f.Name] = true
		if f.Values != nil {
			assert.True(t, f.HasValue, "%s enumerates values but takes none", f.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	f, ok := lookup("-C")
	assert.True(t, ok)
	assert.Equal(t, "config", f.Name)

	_, ok = lookup("-")
	assert.False(t, ok)
	_, ok = lookup("theme")
	assert.False(t, ok)
}
