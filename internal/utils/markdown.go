package utils

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
	sanitizer = bluemonday.UGCPolicy()
)

func init() {
	sanitizer.AllowImages()
	sanitizer.AddTargetBlankToFullyQualifiedLinks(true)
	sanitizer.RequireNoReferrerOnLinks(true)
}

// RenderMarkdown converts news or comment text to sanitized HTML. User input
// goes through bluemonday, so script tags and event handlers never reach the
// page.
func RenderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	sanitized := sanitizer.SanitizeBytes(buf.Bytes())
	return LazyLoadImages(string(sanitized))
}
