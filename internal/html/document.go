package html

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexbrand/livingdoc/internal/model"
)

// XHTMLNamespace is declared on the root element of generated documents.
const XHTMLNamespace = "http://www.w3.org/1999/xhtml"

// Document assembles features into a complete page.
type Document struct {
	Title    string
	Features []*model.Feature
}

// Build returns the document node of the page.
func (d *Document) Build(features *FeatureFormatter) *html.Node {
	features.Prepare(d.Features...)

	toc := element(atom.Ul, "toc")
	content := element(atom.Main, "main")
	for i, feature := range d.Features {
		id := fmt.Sprintf("feature-%d", i+1)

		a := withText(atom.A, "", feature.Name)
		setAttr(a, "href", "#"+id)
		toc.AppendChild(element(atom.Li, "", a))

		content.AppendChild(features.Format(feature, id))
	}

	style := withText(atom.Style, "", stylesheet)
	meta := element(atom.Meta, "")
	setAttr(meta, "charset", "utf-8")
	head := element(atom.Head, "", meta, withText(atom.Title, "", d.Title), style)

	sidebar := element(atom.Nav, "sidebar",
		withText(atom.H1, "", d.Title),
		withText(atom.P, "sidebar-meta", d.summary()),
		toc,
	)
	body := element(atom.Body, "", element(atom.Div, "container", sidebar, content))

	root := element(atom.Html, "", head, body)
	setAttr(root, "xmlns", XHTMLNamespace)
	setAttr(root, "lang", "en")

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)
	return doc
}

// Write renders the page to w.
func (d *Document) Write(w io.Writer, features *FeatureFormatter) error {
	if err := html.Render(w, d.Build(features)); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	return nil
}

func (d *Document) summary() string {
	scenarios := 0
	for _, f := range d.Features {
		scenarios += len(f.Elements)
	}
	return fmt.Sprintf("Features: %d, Scenarios: %d", len(d.Features), scenarios)
}

const stylesheet = `
:root {
  --color-bg: #0f172a;
  --color-surface: #1e293b;
  --color-border: #334155;
  --color-text: #e2e8f0;
  --color-text-muted: #94a3b8;
  --color-keyword: #818cf8;
  --color-tag: #a78bfa;
  --color-passed: #22c55e;
  --color-failed: #ef4444;
  --color-inconclusive: #f59e0b;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: var(--color-bg); color: var(--color-text); line-height: 1.6; }
.container { display: flex; min-height: 100vh; }
.sidebar { width: 280px; background: var(--color-surface); border-right: 1px solid var(--color-border); padding: 1.5rem; position: fixed; height: 100vh; overflow-y: auto; }
.sidebar-meta { color: var(--color-text-muted); font-size: 0.75rem; margin-bottom: 1rem; }
.toc { list-style: none; }
.toc a { color: var(--color-text); text-decoration: none; font-size: 0.875rem; }
.main { flex: 1; margin-left: 280px; padding: 2rem; }
.feature { background: var(--color-surface); border-radius: 0.5rem; margin-bottom: 1.5rem; padding: 1.25rem 1.5rem; }
.scenarios { list-style: none; }
.scenario { border: 1px solid var(--color-border); border-radius: 0.375rem; margin-top: 0.75rem; padding: 0.75rem; }
.scenario-heading h2 { font-size: 1rem; }
.tags { color: var(--color-tag); font-size: 0.75rem; }
.description { color: var(--color-text-muted); font-size: 0.875rem; }
.steps ul { list-style: none; font-family: 'SF Mono', Monaco, Consolas, monospace; font-size: 0.8125rem; }
.keyword { color: var(--color-keyword); font-weight: 600; }
.table { border-collapse: collapse; margin: 0.5rem 0; }
.table th, .table td { border: 1px solid var(--color-border); padding: 0.25rem 0.5rem; }
.float-right { float: right; }
.result.passed { color: var(--color-passed); }
.result.failed { color: var(--color-failed); }
.result.inconclusive { color: var(--color-inconclusive); }
`
