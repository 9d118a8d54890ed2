package outline

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoNav is returned when a document holds no nav element to parse.
var ErrNoNav = errors.New("no nav element found")

// ParseNav reads an HTML navigation document back into an Outline. It
// understands the shape the HTML export format writes (nav with nested
// ordered lists, li classes carrying levels, "#page-N" anchors) as well as
// plain EPUB-style nav documents, where levels fall back to nesting depth
// and pages default to 1.
func ParseNav(r io.Reader) (*Outline, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing nav document: %w", err)
	}

	// Find a <nav> element, preferring one typed as a table of contents.
	var findNav func(n *html.Node, requireTOC bool) *html.Node
	findNav = func(n *html.Node, requireTOC bool) *html.Node {
		if n.Type == html.ElementNode && n.Data == "nav" {
			if !requireTOC {
				return n
			}
			for _, attr := range n.Attr {
				if (attr.Key == "epub:type" || attr.Key == "type") && strings.Contains(attr.Val, "toc") {
					return n
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := findNav(c, requireTOC); found != nil {
				return found
			}
		}
		return nil
	}

	nav := findNav(doc, true)
	if nav == nil {
		nav = findNav(doc, false)
	}
	if nav == nil {
		return nil, ErrNoNav
	}

	// The title lives in the nav's heading element, if any.
	var findTitle func(*html.Node) string
	findTitle = func(n *html.Node) string {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				return navText(n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if title := findTitle(c); title != "" {
				return title
			}
		}
		return ""
	}

	var findOL func(*html.Node) *html.Node
	findOL = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "ol" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := findOL(c); found != nil {
				return found
			}
		}
		return nil
	}

	o := &Outline{Title: findTitle(nav)}
	if ol := findOL(nav); ol != nil {
		o.Headings = parseNavList(ol, 1, nil)
	}
	return o, nil
}

// parseNavList walks an <ol> element, appending one heading per <li> and
// recursing into nested lists with increasing depth.
func parseNavList(ol *html.Node, depth int, headings []Heading) []Heading {
	for c := ol.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		headings = parseNavItem(c, depth, headings)
	}
	return headings
}

// parseNavItem parses one <li> into a heading, then any nested <ol> into its
// sub-headings.
func parseNavItem(li *html.Node, depth int, headings []Heading) []Heading {
	heading := Heading{
		Level: levelFromClass(li, depth),
		Page:  1,
	}

	var nested []*html.Node
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "a":
			heading.Text = navText(c)
			for _, attr := range c.Attr {
				if attr.Key == "href" {
					if page := pageFromHref(attr.Val); page > 0 {
						heading.Page = page
					}
				}
			}
		case "span":
			if heading.Text == "" {
				heading.Text = navText(c)
			}
		case "ol":
			nested = append(nested, c)
		}
	}

	if heading.Text != "" {
		headings = append(headings, heading)
	}
	for _, ol := range nested {
		headings = parseNavList(ol, depth+1, headings)
	}
	return headings
}

// levelFromClass reads the heading level from an li's class tokens
// ("h1".."h6"), falling back to the nesting depth.
func levelFromClass(li *html.Node, depth int) HeadingLevel {
	for _, attr := range li.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, token := range strings.Fields(attr.Val) {
			if level, ok := ParseHeadingLevel(token); ok {
				return level
			}
		}
	}
	if depth > int(HeadingLevel6) {
		return HeadingLevel6
	}
	return HeadingLevel(depth)
}

// pageFromHref extracts the page number from a "#page-N" style anchor.
// Returns 0 when the href carries no page.
func pageFromHref(href string) int {
	frag := href
	if idx := strings.LastIndexByte(href, '#'); idx >= 0 {
		frag = href[idx+1:]
	}
	numeric, ok := strings.CutPrefix(frag, "page-")
	if !ok {
		return 0
	}
	page, err := strconv.Atoi(numeric)
	if err != nil || page < 1 {
		return 0
	}
	return page
}

// navText extracts all text content from an HTML node.
func navText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text.WriteString(navText(c))
	}
	return strings.TrimSpace(text.String())
}
