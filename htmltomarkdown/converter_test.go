package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements webscrape.Converter at compile time.
var _ webscrape.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Title</h1><h2>Subtitle</h2><p>Hello, world!</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>Visit <a href="https://example.com">Example</a> for more info.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><thead><tr><th>Name</th><th>Price</th></tr></thead><tbody><tr><td>Tea</td><td>2</td></tr></tbody></table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "| Name")
		assert.Contains(t, md, "Tea")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("\n\n<p>Body</p>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "Body", md)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		require.Error(t, err)
		assert.Equal(t, webscrape.EINVALID, webscrape.ErrorCode(err))
	})
}
