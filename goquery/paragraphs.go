// Package goquery collects article text from HTML using goquery.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/skim"
)

// Paragraphs returns the text of every <p> element in html whose length is
// at least minLength characters, joined by single spaces in document order.
// Whitespace inside each paragraph is collapsed. A non-positive minLength
// keeps every non-empty paragraph.
func Paragraphs(html string, minLength int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", skim.Errorf(skim.EINVALID, "failed to parse HTML: %v", err)
	}

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := collapseWhitespace(sel.Text())
		if text == "" || utf8.RuneCountInString(text) < minLength {
			return
		}
		parts = append(parts, text)
	})

	return strings.Join(parts, " "), nil
}

// Title returns the page title, preferring the og:title meta tag over <title>.
// Returns an empty string when neither is present.
func Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if title := collapseWhitespace(og); title != "" {
			return title
		}
	}
	return collapseWhitespace(doc.Find("title").First().Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
