package webscrape

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Description is the page summary from meta tags, if any.
	Description string

	// Language is the declared document language, if any.
	Language string

	// Text is the page's textual content, untrimmed.
	Text string

	// ContentHTML is the extracted content as HTML, for converters.
	ContentHTML string
}

// Extractor derives textual content from a retrieved HTML document.
type Extractor interface {
	// Extract processes raw HTML and returns its content.
	Extract(html string) (*ExtractResult, error)
}
