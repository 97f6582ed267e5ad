// Package render serializes a lore forest as a static HTML document with
// collapsible sections.
package render

import (
	"fmt"
	"strings"

	"github.com/fleetinglore/lore-cli/internal/lore"
)

// DefaultStylesheet is the stylesheet linked from the document head when no
// override is configured.
const DefaultStylesheet = "https://fleetinglore.github.io/collection/collection.css"

// topLevel is the nesting depth of forest roots: the document title wraps
// the whole forest in one outer disclosure block, so roots render at depth 2.
const topLevel = 2

// Option adjusts document generation.
type Option func(*options)

type options struct {
	stylesheet string
}

// WithStylesheet overrides the stylesheet URL linked from the document head.
// Blank values are ignored.
func WithStylesheet(url string) Option {
	return func(o *options) {
		if strings.TrimSpace(url) != "" {
			o.stylesheet = strings.TrimSpace(url)
		}
	}
}

// Document renders the forest as a complete HTML document. The title is the
// header of the outermost disclosure block, which renders pre-opened; every
// deeper container renders collapsed. Text content passes through verbatim,
// with no escaping.
func Document(forest []*lore.Node, title string, opts ...Option) string {
	o := options{stylesheet: DefaultStylesheet}
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
  <link rel="stylesheet" href="%s">
</head>
<body>
  <details open>
      <summary>%s</summary>
      <div style="margin-left:17px">
`, title, o.stylesheet, title)

	for _, node := range forest {
		writeNode(&b, node, topLevel)
	}

	b.WriteString(`    </div>
  </details>
</body>
</html>`)

	return b.String()
}

// writeNode appends one node and its rails, pre-order. The two-space source
// indentation per level is cosmetic; nesting is carried by the markup.
func writeNode(b *strings.Builder, node *lore.Node, level int) {
	indent := strings.Repeat("  ", level)
	switch node.Kind {
	case lore.NodeComment, lore.NodePlaceHolder:
		// No visual output; siblings render as if these were absent.
	case lore.NodeDomain, lore.NodeReference:
		open := ""
		if level == topLevel {
			open = " open"
		}
		fmt.Fprintf(b, "%s<details%s>\n", indent, open)
		fmt.Fprintf(b, "%s  <summary>%s</summary>\n", indent, summaryText(node))
		if len(node.Rails) > 0 {
			fmt.Fprintf(b, "%s  <div style=\"margin-left:20px\">\n", indent)
			for _, child := range node.Rails {
				writeNode(b, child, level+1)
			}
			fmt.Fprintf(b, "%s  </div>\n", indent)
		}
		fmt.Fprintf(b, "%s</details>\n", indent)
	case lore.NodeRail:
		fmt.Fprintf(b, "%s<a href=\"%s\" target=\"_blank\">%s</a>\n", indent, node.Value, node.Name)
	default:
		fmt.Fprintf(b, "%s<p>%s</p>\n", indent, node.Name)
	}
}

// summaryText is the header text of a collapsible domain container.
func summaryText(node *lore.Node) string {
	if node.Kind == lore.NodeReference {
		return fmt.Sprintf("%s = %s", node.Name, node.Value)
	}
	return node.Name
}
