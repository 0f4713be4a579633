package utils

import (
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LazyLoadImages adds loading and referrer attributes to every image in the
// rendered HTML so hot-linked pictures load lazily and do not leak the
// referrer.
func LazyLoadImages(htmlStr string) template.HTML {
	if htmlStr == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return template.HTML(htmlStr)
	}

	doc.Find("img").Each(func(i int, s *goquery.Selection) {
		s.SetAttr("loading", "lazy")
		s.SetAttr("referrerpolicy", "no-referrer")
	})

	// goquery wraps the fragment in a full document; unwrap the body again
	out, _ := doc.Find("body").Html()
	if out == "" {
		out, _ = doc.Html()
	}
	return template.HTML(out)
}
