package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srccheck/pkg/check"
	"github.com/yaklabco/srccheck/pkg/fix"
	"github.com/yaklabco/srccheck/pkg/source"
)

// applyRule runs a rule against content and returns its diagnostics.
func applyRule(t *testing.T, rule check.Rule, content []byte) []check.Diagnostic {
	t.Helper()
	ctx := check.NewRuleContext(
		context.Background(),
		source.NewFileSnapshot("test.txt", content),
		nil,
		nil,
	)
	diags, err := rule.Apply(ctx)
	require.NoError(t, err)
	return diags
}

// applyFixes applies every fix edit from the diagnostics and returns the result.
func applyFixes(t *testing.T, content []byte, diags []check.Diagnostic) []byte {
	t.Helper()
	var edits []fix.TextEdit
	for _, d := range diags {
		edits = append(edits, d.FixEdits...)
	}
	prepared, err := fix.PrepareEdits(edits, len(content))
	require.NoError(t, err)
	return fix.ApplyEdits(content, prepared)
}

func TestMalformedUTF8Rule(t *testing.T) {
	rule := NewMalformedUTF8Rule()

	t.Run("clean content", func(t *testing.T) {
		diags := applyRule(t, rule, []byte("hello, wörld\n"))
		assert.Empty(t, diags)
	})

	t.Run("lone continuation byte", func(t *testing.T) {
		diags := applyRule(t, rule, []byte{'a', 0x80, 'b'})
		require.Len(t, diags, 1)
		assert.Equal(t, "SE001", diags[0].RuleID)
		assert.Equal(t, 1, diags[0].ByteOffset)
	})

	t.Run("run of bad bytes is one diagnostic", func(t *testing.T) {
		diags := applyRule(t, rule, []byte{'a', 0xC0, 0xAF, 'b'})
		require.Len(t, diags, 1)
		assert.Equal(t, 1, diags[0].ByteOffset)
	})

	t.Run("truncated sequence at end", func(t *testing.T) {
		diags := applyRule(t, rule, []byte{'a', 'b', 0xC3})
		require.Len(t, diags, 1)
		assert.Equal(t, 2, diags[0].ByteOffset)
	})

	t.Run("fix replaces with replacement char", func(t *testing.T) {
		content := []byte{'a', 0x80, 'b', '\n'}
		diags := applyRule(t, rule, content)
		fixed := applyFixes(t, content, diags)
		assert.Equal(t, "a�b\n", string(fixed))
	})

	t.Run("literal replacement char is not flagged", func(t *testing.T) {
		diags := applyRule(t, rule, []byte("a�b\n"))
		assert.Empty(t, diags)
	})
}

func TestBareCarriageReturnRule(t *testing.T) {
	rule := NewBareCarriageReturnRule()

	tests := []struct {
		name    string
		content string
		offsets []int
	}{
		{name: "lf only", content: "a\nb\n", offsets: nil},
		{name: "crlf permitted", content: "a\r\nb\r\n", offsets: nil},
		{name: "bare cr mid file", content: "a\rb\n", offsets: []int{1}},
		{name: "cr at eof", content: "a\r", offsets: []int{1}},
		{name: "cr before crlf", content: "\r\r\n", offsets: []int{0}},
		{name: "multiple bare crs", content: "a\rb\rc\n", offsets: []int{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := applyRule(t, rule, []byte(tt.content))
			require.Len(t, diags, len(tt.offsets))
			for i, want := range tt.offsets {
				assert.Equal(t, want, diags[i].ByteOffset)
			}
		})
	}

	t.Run("fix converts to lf", func(t *testing.T) {
		content := []byte("a\rb\r\nc\r")
		diags := applyRule(t, rule, content)
		fixed := applyFixes(t, content, diags)
		assert.Equal(t, "a\nb\r\nc\n", string(fixed))
	})
}

func TestForbiddenControlRule(t *testing.T) {
	rule := NewForbiddenControlRule()

	t.Run("tab lf cr permitted", func(t *testing.T) {
		diags := applyRule(t, rule, []byte("a\tb\r\nc\n"))
		assert.Empty(t, diags)
	})

	tests := []struct {
		name    string
		content []byte
		offset  int
	}{
		{name: "nul", content: []byte{'a', 0x00, 'b'}, offset: 1},
		{name: "bel", content: []byte{0x07}, offset: 0},
		{name: "vt", content: []byte{'x', 0x0B}, offset: 1},
		{name: "form feed", content: []byte{0x0C, 'y'}, offset: 0},
		{name: "esc", content: []byte{'a', 'b', 0x1B}, offset: 2},
		{name: "del", content: []byte{'a', 0x7F}, offset: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := applyRule(t, rule, tt.content)
			require.Len(t, diags, 1)
			assert.Equal(t, "SE003", diags[0].RuleID)
			assert.Equal(t, tt.offset, diags[0].ByteOffset)
		})
	}

	t.Run("fix deletes character", func(t *testing.T) {
		content := []byte{'a', 0x00, 'b', '\n'}
		diags := applyRule(t, rule, content)
		fixed := applyFixes(t, content, diags)
		assert.Equal(t, "ab\n", string(fixed))
	})
}

func TestUnicodeLineSeparatorRule(t *testing.T) {
	rule := NewUnicodeLineSeparatorRule()

	tests := []struct {
		name    string
		content string
		offset  int
	}{
		{name: "nel", content: "ab", offset: 1},
		{name: "line separator", content: "a b", offset: 1},
		{name: "paragraph separator", content: "a b", offset: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := applyRule(t, rule, []byte(tt.content))
			require.Len(t, diags, 1)
			assert.Equal(t, "SE004", diags[0].RuleID)
			assert.Equal(t, tt.offset, diags[0].ByteOffset)
		})
	}

	t.Run("plain text", func(t *testing.T) {
		diags := applyRule(t, rule, []byte("a\nb\n"))
		assert.Empty(t, diags)
	})

	t.Run("fix converts to lf", func(t *testing.T) {
		content := []byte("a b\n")
		diags := applyRule(t, rule, content)
		fixed := applyFixes(t, content, diags)
		assert.Equal(t, "a\nb\n", string(fixed))
	})
}

func TestMisplacedBOMRule(t *testing.T) {
	rule := NewMisplacedBOMRule()

	t.Run("leading bom not flagged", func(t *testing.T) {
		diags := applyRule(t, rule, []byte("\uFEFFhello\n"))
		assert.Empty(t, diags)
	})

	t.Run("interior bom flagged", func(t *testing.T) {
		diags := applyRule(t, rule, []byte("a\uFEFFb"))
		require.Len(t, diags, 1)
		assert.Equal(t, "SE005", diags[0].RuleID)
		assert.Equal(t, 1, diags[0].ByteOffset)
	})

	t.Run("second bom after leading bom", func(t *testing.T) {
		diags := applyRule(t, rule, []byte("\uFEFF\uFEFFx"))
		require.Len(t, diags, 1)
		assert.Equal(t, 3, diags[0].ByteOffset)
	})

	t.Run("fix deletes bom", func(t *testing.T) {
		content := []byte("a\uFEFFb\n")
		diags := applyRule(t, rule, content)
		fixed := applyFixes(t, content, diags)
		assert.Equal(t, "ab\n", string(fixed))
	})
}

func TestLeadingBOMRule(t *testing.T) {
	rule := NewLeadingBOMRule()

	assert.False(t, rule.DefaultEnabled())

	t.Run("leading bom flagged", func(t *testing.T) {
		content := []byte("\uFEFFhello\n")
		diags := applyRule(t, rule, content)
		require.Len(t, diags, 1)
		assert.Equal(t, "SE006", diags[0].RuleID)
		assert.Equal(t, 0, diags[0].ByteOffset)

		fixed := applyFixes(t, content, diags)
		assert.Equal(t, "hello\n", string(fixed))
	})

	t.Run("no bom", func(t *testing.T) {
		diags := applyRule(t, rule, []byte("hello\n"))
		assert.Empty(t, diags)
	})

	t.Run("interior bom ignored", func(t *testing.T) {
		diags := applyRule(t, rule, []byte("a\uFEFFb"))
		assert.Empty(t, diags)
	})
}

func TestFinalNewlineRule(t *testing.T) {
	rule := NewFinalNewlineRule()

	t.Run("ends with newline", func(t *testing.T) {
		diags := applyRule(t, rule, []byte("hello\n"))
		assert.Empty(t, diags)
	})

	t.Run("empty file", func(t *testing.T) {
		diags := applyRule(t, rule, nil)
		assert.Empty(t, diags)
	})

	t.Run("missing newline", func(t *testing.T) {
		content := []byte("hello")
		diags := applyRule(t, rule, content)
		require.Len(t, diags, 1)
		assert.Equal(t, "SE007", diags[0].RuleID)

		fixed := applyFixes(t, content, diags)
		assert.Equal(t, "hello\n", string(fixed))
	})
}

func TestRegisterAll(t *testing.T) {
	registry := check.NewRegistry()
	RegisterAll(registry)

	ids := registry.IDs()
	assert.Equal(t, []string{"SE001", "SE002", "SE003", "SE004", "SE005", "SE006", "SE007"}, ids)

	for _, id := range ids {
		rule, ok := registry.GetByID(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, rule.Name())
		assert.NotEmpty(t, rule.Description())
		assert.True(t, rule.CanFix(), id)
	}
}

func TestRegisterAliases(t *testing.T) {
	registry := check.NewRegistry()
	RegisterAll(registry)
	RegisterAliases(registry)

	id, _, ok := registry.Resolve("crlf")
	require.True(t, ok)
	assert.Equal(t, "SE002", id)

	id, _, ok = registry.Resolve("bom")
	require.True(t, ok)
	assert.Equal(t, "SE005", id)
}

func TestRuleInfos(t *testing.T) {
	infos := RuleInfos()
	require.Len(t, infos, 7)
	assert.Equal(t, "SE001", infos[0].ID)
	assert.Equal(t, "malformed-utf8", infos[0].Name)
}
