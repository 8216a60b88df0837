package renderer

import (
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// htmlHeader is the document shell around a converted report. The styling
// stays minimal on purpose: the HTML form is meant for mail clients, which
// strip most CSS anyway.
const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 2em; color: #222; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
th { background: #1f4e79; color: white; }
tr:nth-child(even) { background: #f2f2f2; }
h1 { color: #1f4e79; }
h2 { color: #1f4e79; border-bottom: 1px solid #ccc; }
</style>
</head>
<body>
`

const htmlFooter = "</body>\n</html>\n"

// WriteHTML converts a markdown report to a standalone HTML document.
// Tables require the GFM extension, plain goldmark would render them as
// paragraphs.
func WriteHTML(w io.Writer, title, markdown string) error {
	if _, err := fmt.Fprintf(w, htmlHeader, title); err != nil {
		return err
	}
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := converter.Convert([]byte(markdown), w); err != nil {
		return fmt.Errorf("cannot convert report to HTML: %w", err)
	}
	_, err := io.WriteString(w, htmlFooter)
	return err
}
