package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/goquery"
)

// Ensure URLSource implements skim.URLSource.
var _ skim.URLSource = (*URLSource)(nil)

// URLSource discovers article URLs from sitemaps and news feeds via HTTP.
type URLSource struct {
	client *http.Client
}

// NewURLSource creates a new URLSource with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewURLSource(client *http.Client) *URLSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &URLSource{client: client}
}

// DiscoverURLs lists the article URLs published by sourceURL.
//
// A site root (no path) is resolved through the Sitemap: directives of its
// robots.txt, falling back to /sitemap.xml; an empty slice is returned when
// neither exists. Any other URL is read as a sitemap, sitemap index, RSS
// channel or Atom feed; an HTML page yields the article links it contains.
func (s *URLSource) DiscoverURLs(ctx context.Context, sourceURL string, filter *skim.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, err := url.Parse(strings.TrimSpace(sourceURL))
	if err != nil || (source.Scheme != "http" && source.Scheme != "https") || source.Host == "" {
		return nil, skim.Errorf(skim.EINVALID, "invalid source url %q", sourceURL)
	}

	var documents []string
	if source.Path == "" || source.Path == "/" {
		if documents, err = s.findSitemapURLs(ctx, source); err != nil {
			return nil, err
		}
	} else {
		documents = []string{source.String()}
	}

	allURLs := []string{}
	seenDocuments := make(map[string]bool)
	seenURLs := make(map[string]bool)

	for _, doc := range documents {
		urls, err := s.processDocument(ctx, doc, seenDocuments)
		if err != nil {
			return nil, err
		}
		for _, u := range urls {
			if seenURLs[u] || !filter.Match(u) {
				continue
			}
			seenURLs[u] = true
			allURLs = append(allURLs, u)
		}
	}

	return allURLs, nil
}

// findSitemapURLs discovers sitemap URLs from robots.txt or falls back to /sitemap.xml.
func (s *URLSource) findSitemapURLs(ctx context.Context, base *url.URL) ([]string, error) {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.parseSitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	sitemapURL := base.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	exists, err := s.urlExists(ctx, sitemapURL.String())
	if err != nil {
		// Propagate context errors, treat other errors as "not found"
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if exists {
		return []string{sitemapURL.String()}, nil
	}

	return nil, nil
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *URLSource) parseSitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			if u := strings.TrimSpace(line[len("sitemap:"):]); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}

	return sitemaps, nil
}

// processDocument fetches and parses one XML document, following
// sitemap indexes recursively.
func (s *URLSource) processDocument(ctx context.Context, docURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if seen[docURL] {
		return nil, nil
	}
	seen[docURL] = true

	body, err := s.fetchURL(ctx, docURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, DefaultMaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", docURL, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil || doc.Root() == nil || strings.EqualFold(doc.Root().Tag, "html") {
		if !looksLikeHTML(data) {
			return nil, skim.Errorf(skim.EINVALID, "parsing %s: not a sitemap, feed or HTML page", docURL)
		}
		return goquery.ArticleLinks(string(data), docURL)
	}

	root := doc.Root()
	switch root.Tag {
	case "sitemapindex":
		return s.processSitemapIndex(ctx, root, seen)
	case "urlset":
		return parseURLSet(root), nil
	case "rss":
		return parseRSS(root), nil
	case "feed":
		return parseAtom(root), nil
	default:
		return nil, skim.Errorf(skim.EINVALID, "unsupported document <%s> at %s", root.Tag, docURL)
	}
}

// processSitemapIndex processes a <sitemapindex> element recursively.
func (s *URLSource) processSitemapIndex(ctx context.Context, root *etree.Element, seen map[string]bool) ([]string, error) {
	var allURLs []string

	for _, sitemap := range root.SelectElements("sitemap") {
		loc := sitemap.SelectElement("loc")
		if loc == nil {
			continue
		}
		sitemapURL := strings.TrimSpace(loc.Text())
		if sitemapURL == "" {
			continue
		}

		urls, err := s.processDocument(ctx, sitemapURL, seen)
		if err != nil {
			return nil, err
		}
		allURLs = append(allURLs, urls...)
	}

	return allURLs, nil
}

// parseURLSet extracts URLs from a <urlset> element.
func parseURLSet(root *etree.Element) []string {
	var urls []string
	for _, urlEl := range root.SelectElements("url") {
		if loc := urlEl.SelectElement("loc"); loc != nil {
			if u := strings.TrimSpace(loc.Text()); u != "" {
				urls = append(urls, u)
			}
		}
	}
	return urls
}

// parseRSS extracts item links from an RSS 2.0 <rss> element.
func parseRSS(root *etree.Element) []string {
	var urls []string
	for _, item := range root.FindElements("./channel/item") {
		if link := item.SelectElement("link"); link != nil {
			if u := strings.TrimSpace(link.Text()); u != "" {
				urls = append(urls, u)
			}
		}
	}
	return urls
}

// parseAtom extracts entry links from an Atom <feed> element, preferring
// rel="alternate" links.
func parseAtom(root *etree.Element) []string {
	var urls []string
	for _, entry := range root.SelectElements("entry") {
		var href string
		for _, link := range entry.SelectElements("link") {
			rel := link.SelectAttrValue("rel", "alternate")
			if rel != "alternate" {
				continue
			}
			href = strings.TrimSpace(link.SelectAttrValue("href", ""))
			break
		}
		if href != "" {
			urls = append(urls, href)
		}
	}
	return urls
}

// fetchURL fetches a URL and returns the response body.
func (s *URLSource) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, skim.Errorf(skim.EINVALID, "HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}

// looksLikeHTML reports whether data starts like an HTML document.
func looksLikeHTML(data []byte) bool {
	head := strings.ToLower(strings.TrimSpace(string(data[:min(len(data), 512)])))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html") || strings.Contains(head, "<head")
}

// urlExists checks if a URL returns 200 OK.
func (s *URLSource) urlExists(ctx context.Context, targetURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
