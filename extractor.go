package skim

import "strings"

// ExtractResult holds the main content isolated from an HTML page.
type ExtractResult struct {
	// Title is the article title from page metadata.
	Title string

	// Byline is the author line, if the page declares one.
	Byline string

	// SiteName is the publishing site's name, if known.
	SiteName string

	// ContentHTML is the article body as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor isolates the main article content of an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the article content.
	// The content HTML has boilerplate removed but keeps paragraph structure.
	Extract(html string) (*ExtractResult, error)
}

// titleSeparators split a page title from the site name appended to it.
var titleSeparators = []string{" | ", " - ", " – ", " — ", " :: "}

// CleanTitle trims title and removes a leading or trailing site name joined
// to it by a common separator, as in "Council Approves Budget - City Herald".
func CleanTitle(title, siteName string) string {
	title = strings.Join(strings.Fields(title), " ")
	siteName = strings.TrimSpace(siteName)
	if siteName == "" {
		return title
	}
	for _, sep := range titleSeparators {
		if rest, ok := strings.CutSuffix(title, sep+siteName); ok && rest != "" {
			return rest
		}
		if rest, ok := strings.CutPrefix(title, siteName+sep); ok && rest != "" {
			return rest
		}
	}
	return title
}
