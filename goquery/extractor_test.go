package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements webscrape.Extractor at compile time.
var _ webscrape.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns all page text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Example Domain</title></head>
<body>
<nav>Home</nav>
<h1>Example Domain</h1>
<p>This domain is for use in illustrative examples.</p>
<footer>Footer</footer>
</body>
</html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "Home")
		assert.Contains(t, result.Text, "This domain is for use in illustrative examples.")
		assert.Contains(t, result.Text, "Footer")
	})

	t.Run("drops script and style contents", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><style>body{color:red}</style><script>var secret = 1;</script></head>
<body><p>Visible</p><noscript>Enable JS</noscript><script>track()</script></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "Visible")
		assert.NotContains(t, result.Text, "secret")
		assert.NotContains(t, result.Text, "color:red")
		assert.NotContains(t, result.Text, "Enable JS")
		assert.NotContains(t, result.Text, "track()")
		assert.NotContains(t, result.ContentHTML, "track()")
	})

	t.Run("preserves surrounding whitespace for the caller to trim", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract("<html><body>  Hello World  </body></html>")

		require.NoError(t, err)
		assert.Equal(t, "Hello World", strings.TrimSpace(result.Text))
	})

	t.Run("extracts metadata", func(t *testing.T) {
		t.Parallel()

		html := `<html lang="en"><head>
<title> My Page </title>
<meta name="description" content="A short summary">
</head><body><p>x</p></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "My Page", result.Title)
		assert.Equal(t, "A short summary", result.Description)
		assert.Equal(t, "en", result.Language)
	})

	t.Run("falls back to og description", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:description" content="From OpenGraph"></head><body></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "From OpenGraph", result.Description)
	})

	t.Run("handles plain text input", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract("just some text")

		require.NoError(t, err)
		assert.Equal(t, "just some text", result.Text)
		assert.Empty(t, result.Title)
	})

	t.Run("returns body HTML as content HTML", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract("<html><body><h1>Hi</h1></body></html>")

		require.NoError(t, err)
		assert.Equal(t, "<h1>Hi</h1>", result.ContentHTML)
	})
}
