package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/goquery"
	"github.com/fwojciec/skim/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements skim.Extractor at compile time.
var _ skim.Extractor = (*trafilatura.Extractor)(nil)

const newsArticle = `<!DOCTYPE html>
<html>
<head>
<title>Council Approves Parks Budget - City Herald</title>
<meta property="og:title" content="Council Approves Parks Budget">
<meta property="og:site_name" content="City Herald">
<meta name="author" content="Jane Reporter">
</head>
<body>
<nav><a href="/">Home</a><a href="/news">News</a><a href="/sport">Sport</a></nav>
<article>
<h1>Council Approves Parks Budget</h1>
<p>The city council approved a new budget for public parks on Monday evening after a long debate.</p>
<p>Parks across the city will receive funding for new trees, benches and playgrounds this year.</p>
<p>Residents who attended the meeting said the parks budget was long overdue and welcomed the vote.</p>
</article>
<aside>Most read stories</aside>
<footer>Copyright 2024 City Herald</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(newsArticle)

		require.NoError(t, err)
		assert.Contains(t, result.Title, "Council Approves Parks Budget")
	})

	t.Run("extracts article paragraphs", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(newsArticle)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "approved a new budget for public parks")
		assert.Contains(t, result.ContentHTML, "long overdue")
	})

	t.Run("keeps paragraph structure for the paragraph collector", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(newsArticle)
		require.NoError(t, err)

		text, err := goquery.Paragraphs(result.ContentHTML, 40)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text, "The city council approved"))
		assert.NotContains(t, text, "Copyright")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("  ")

		require.Error(t, err)
		assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
	})
}
