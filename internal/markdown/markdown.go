// Package markdown reads the image link returned by the upload endpoint.
package markdown

import (
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ErrNoImage is returned when the text holds no image link.
var ErrNoImage = errors.New("no image link found")

// ImageURLs parses Markdown and returns every image destination in document order.
func ImageURLs(md string) []string {
	body := []byte(md)
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	urls := make([]string, 0, 1)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if image, ok := n.(*gmast.Image); ok {
			urls = append(urls, string(image.Destination))
		}
		return gmast.WalkContinue, nil
	})

	if len(urls) == 0 {
		// CommonMark rejects destinations with spaces; hosts sometimes return them anyway.
		if url, ok := permissiveImageURL(md); ok {
			urls = append(urls, url)
		}
	}
	return urls
}

// ImageURL returns the destination of the first image link, e.g. https://x/y.png for ![](https://x/y.png).
func ImageURL(md string) (string, error) {
	urls := ImageURLs(md)
	if len(urls) == 0 {
		return "", ErrNoImage
	}
	return urls[0], nil
}

func permissiveImageURL(md string) (string, bool) {
	start := strings.Index(md, "![")
	if start < 0 {
		return "", false
	}
	rest := md[start:]

	open := strings.Index(rest, "](")
	if open < 0 {
		return "", false
	}
	rest = rest[open+2:]

	end := strings.LastIndex(rest, ")")
	if end < 0 {
		return "", false
	}

	url := strings.TrimSpace(rest[:end])
	url = strings.TrimPrefix(url, "<")
	url = strings.TrimSuffix(url, ">")
	return url, url != ""
}
