package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/skim"
)

// articleLinkSelectors match anchors in the content regions of an index
// page, in the order they are tried.
var articleLinkSelectors = []string{
	"article a[href]",
	"main a[href]",
	`[role="main"] a[href]`,
}

// ArticleLinks returns the same-host links of an HTML index page, such as a
// news front page or a blog archive, in document order. Links inside
// article or main regions are preferred; when none exist, every anchor
// under the page's path is used. Fragments are stripped and links back to
// the page itself are dropped.
func ArticleLinks(html string, pageURL string) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, skim.Errorf(skim.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, skim.Errorf(skim.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string
	collect := func(sel *goquery.Selection, underPath bool) {
		sel.Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			resolved := resolveLink(base, href)
			if resolved == nil || resolved.Host != base.Host {
				return
			}
			if underPath && !strings.HasPrefix(resolved.Path, strings.TrimSuffix(base.Path, "/")) {
				return
			}
			u := resolved.String()
			if seen[u] {
				return
			}
			seen[u] = true
			links = append(links, u)
		})
	}

	for _, selector := range articleLinkSelectors {
		collect(doc.Find(selector), false)
	}
	if len(links) == 0 {
		collect(doc.Find("a[href]"), true)
	}

	return links, nil
}

// resolveLink resolves href against base. Returns nil for non-HTTP links,
// unparseable hrefs and links to the base page itself.
func resolveLink(base *url.URL, href string) *url.URL {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return nil
	}
	ref, err := url.Parse(href)
	if err != nil {
		return nil
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return nil
	}
	resolved.Fragment = ""
	resolved.RawFragment = ""

	self := *base
	self.Fragment = ""
	if resolved.String() == self.String() {
		return nil
	}
	return resolved
}
