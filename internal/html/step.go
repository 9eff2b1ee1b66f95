package html

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexbrand/livingdoc/internal/model"
)

// StepListFormatter renders steps as li.step with the keyword emphasised and
// any data table or doc string below the text.
type StepListFormatter struct{}

// Format implements StepFormatter.
func (StepListFormatter) Format(step *model.Step) *html.Node {
	li := element(atom.Li, "step",
		withText(atom.Span, "keyword", step.Keyword),
		text(" "+step.Text),
	)
	appendChildren(li, dataTable(step.DataTable), docString(step.DocString))
	return li
}

// dataTable renders the first row as the table header.
func dataTable(rows [][]string) *html.Node {
	if len(rows) == 0 {
		return nil
	}
	return element(atom.Table, "table",
		element(atom.Thead, "", tableRow(atom.Th, rows[0])),
		tableBody(rows[1:]),
	)
}

func tableBody(rows [][]string) *html.Node {
	tbody := element(atom.Tbody, "")
	for _, row := range rows {
		tbody.AppendChild(tableRow(atom.Td, row))
	}
	return tbody
}

func tableRow(cell atom.Atom, values []string) *html.Node {
	tr := element(atom.Tr, "")
	for _, v := range values {
		tr.AppendChild(withText(cell, "", v))
	}
	return tr
}

func docString(ds *model.DocString) *html.Node {
	if ds == nil {
		return nil
	}
	pre := withText(atom.Pre, "docstring", ds.Content)
	if ds.MediaType != "" {
		setAttr(pre, "data-media-type", ds.MediaType)
	}
	return pre
}
