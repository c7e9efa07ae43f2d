package textract

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/recruitkit/cvparse/internal/schema"
)

// HTMLExtractor handles HTML files.
type HTMLExtractor struct{}

func (e *HTMLExtractor) Extract(r io.Reader, filename string) (schema.RawDocument, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return schema.RawDocument{}, fmt.Errorf("parse html: %w", err)
	}

	var buf strings.Builder
	var urls []string

	appendBlock := func(t string) {
		t = strings.TrimSpace(t)
		if t == "" {
			return
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(t)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "a":
				if href := attrVal(n, "href"); strings.HasPrefix(href, "http") {
					urls = append(urls, href)
				}
			case "h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "td", "blockquote":
				appendBlock(textContent(n))
				collectLinks(n, &urls)
				return
			case "br":
				buf.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return schema.RawDocument{Text: buf.String(), URLs: urls}, nil
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// collectLinks gathers anchor hrefs inside a block element whose text has
// already been flattened.
func collectLinks(n *html.Node, urls *[]string) {
	if n.Type == html.ElementNode && n.Data == "a" {
		if href := attrVal(n, "href"); strings.HasPrefix(href, "http") {
			*urls = append(*urls, href)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLinks(c, urls)
	}
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
