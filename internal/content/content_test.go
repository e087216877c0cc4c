package content

import (
	"html"
	"testing"

	internal_errors "github.com/forumapi-dev/forumapi/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasPayload(t *testing.T) {
	p := New()

	tests := []struct {
		name       string
		input      string
		hasPayload bool
	}{
		{"normal text", "hello world", true},
		{"empty string", "", false},
		{"only whitespace", "   \n\n   ", false},
		{"empty code block", "```\n```", false},
		{"empty code block with whitespace", "```\n   \n```", false},
		{"code block with content", "```\ncode here\n```", true},
		{"only bold formatting", "**  **", true},
		{"bold with content", "**hello**", true},
		{"inline code", "`code`", true},
		{"multiple empty blocks", "```\n```\n\n```\n```", false},
		{"mixed empty and content", "```\n```\n\nhello", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hasPayload, p.HasPayload(tt.input))
		})
	}
}

func TestClean(t *testing.T) {
	p := New()

	t.Run("plain text untouched", func(t *testing.T) {
		out, err := p.Clean("content", "sebuah comment")
		require.NoError(t, err)
		assert.Equal(t, "sebuah comment", out)
	})

	t.Run("tags stripped", func(t *testing.T) {
		out, err := p.Clean("content", "<b>halo</b> dunia")
		require.NoError(t, err)
		assert.Equal(t, "halo dunia", out)
	})

	t.Run("entities kept readable", func(t *testing.T) {
		out, err := p.Clean("content", "it's 1 < 2 & true")
		require.NoError(t, err)
		assert.Equal(t, "it's 1 < 2 & true", out)
	})

	t.Run("script only is empty", func(t *testing.T) {
		_, err := p.Clean("content", "<script>alert(1)</script>")
		assert.True(t, internal_errors.Is[*internal_errors.InvariantError](err))
	})

	t.Run("entity encoded script is stripped", func(t *testing.T) {
		_, err := p.Clean("content", "&lt;script&gt;alert(1)&lt;/script&gt;")
		assert.True(t, internal_errors.Is[*internal_errors.InvariantError](err))
	})

	t.Run("entity encoded img is stripped", func(t *testing.T) {
		out, err := p.Clean("content", "hi &lt;img src=x onerror=alert(1)&gt;")
		require.NoError(t, err)
		assert.Equal(t, "hi", out)
	})

	t.Run("double encoded markup is stripped", func(t *testing.T) {
		out, err := p.Clean("content", "ok &amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt;")
		require.NoError(t, err)
		assert.Equal(t, "ok", out)
	})

	t.Run("deeply encoded markup is rejected", func(t *testing.T) {
		_, err := p.Clean("content", "ok &amp;amp;amp;amp;lt;b&amp;amp;amp;amp;gt;x")
		assert.True(t, internal_errors.Is[*internal_errors.InvariantError](err))
	})

	t.Run("output is stable under the policy", func(t *testing.T) {
		inputs := []string{
			"&lt;a href=javascript:alert(1)&gt;klik&lt;/a&gt;",
			"<p onclick=x>halo</p> &lt;iframe src=x&gt;&lt;/iframe&gt;",
			"1 &lt; 2 &amp;&amp; 3 &gt; 2",
		}
		for _, in := range inputs {
			out, err := p.Clean("content", in)
			require.NoError(t, err, in)
			assert.Equal(t, out, html.UnescapeString(p.policy.Sanitize(out)), in)
			assert.NotContains(t, out, "<iframe")
			assert.NotContains(t, out, "<a ")
		}
	})

	t.Run("blank", func(t *testing.T) {
		_, err := p.Clean("title", "   ")
		var inv *internal_errors.InvariantError
		require.ErrorAs(t, err, &inv)
		assert.Contains(t, inv.Message, "title")
	})
}
