package checker

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractTitle pulls the <title> text from the homepage body. Returns the
// empty string when the body is missing, unparsable, or has no title.
func ExtractTitle(body []byte) string {
	doc := parseHTML(body)
	if doc == nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// FindErrorKeywords returns the subset of keywords present in the body,
// matched case-insensitively. A nil body matches nothing.
func FindErrorKeywords(body []byte, keywords []string) []string {
	if len(body) == 0 {
		return nil
	}
	text := strings.ToLower(string(body))
	var found []string
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			found = append(found, kw)
		}
	}
	return found
}

// HasMetaRefresh reports whether the page declares a meta refresh redirect.
func HasMetaRefresh(body []byte) bool {
	doc := parseHTML(body)
	if doc == nil {
		return false
	}
	refresh := false
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, ok := s.Attr("http-equiv"); ok && strings.EqualFold(v, "refresh") {
			refresh = true
			return false
		}
		return true
	})
	return refresh
}

func parseHTML(body []byte) *goquery.Document {
	if len(body) == 0 {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}
	return doc
}
