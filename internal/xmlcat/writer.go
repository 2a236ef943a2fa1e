// Package xmlcat serializes NetworkPipe entries into the simulation
// tool's pipe database format and merges new entries into an existing
// database file.
//
// Serialization is hand-rolled on strings.Builder: the database format
// uses the unbound "IBK:" element prefix and a fixed attribute order
// (id, color, categoryName, productName, manufacturerName), neither of
// which encoding/xml can reproduce.
package xmlcat

import (
	"strconv"
	"strings"

	"github.com/couchcryptid/pipe-catalog-etl/internal/domain"
)

const (
	docHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n<NetworkPipes>\n"
	docFooter = "</NetworkPipes>\n"
)

// WritePipe serializes one entry at nesting level 1, tab-indented, the
// way the established database is formatted.
func WritePipe(pipe domain.NetworkPipe) string {
	var b strings.Builder

	b.WriteString("\t<NetworkPipe")
	writeAttr(&b, "id", strconv.Itoa(pipe.ID))
	writeAttr(&b, "color", pipe.Color)
	writeAttr(&b, "categoryName", pipe.CategoryName)
	writeAttr(&b, "productName", pipe.ProductName)
	writeAttr(&b, "manufacturerName", pipe.ManufacturerName)
	b.WriteString(">\n")

	for _, p := range pipe.Parameters {
		b.WriteString("\t\t<IBK:Parameter name=\"")
		b.WriteString(escape(p.Name))
		b.WriteString("\" unit=\"")
		b.WriteString(escape(p.Unit))
		b.WriteString("\">")
		b.WriteString(escape(p.Value))
		b.WriteString("</IBK:Parameter>\n")
	}

	if pipe.NominalPressure != "" {
		writeElem(&b, "NominalPressure", pipe.NominalPressure)
	}
	if pipe.FixedUValueGiven {
		writeElem(&b, "FixedUValueGiven", "true")
	}
	writeElem(&b, "PipeLayout", pipe.PipeLayout)
	writeElem(&b, "PipeMaterialStandard", pipe.MaterialStandard)

	b.WriteString("\t</NetworkPipe>\n")
	return b.String()
}

// WritePipes concatenates the serialized form of all entries.
func WritePipes(pipes []domain.NetworkPipe) string {
	var b strings.Builder
	for _, pipe := range pipes {
		b.WriteString(WritePipe(pipe))
	}
	return b.String()
}

// WriteDocument wraps a serialized entry chunk in a standalone database
// document.
func WriteDocument(chunk string) string {
	return docHeader + chunk + docFooter
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString("=\"")
	b.WriteString(escape(value))
	b.WriteString("\"")
}

func writeElem(b *strings.Builder, tag, text string) {
	b.WriteString("\t\t<")
	b.WriteString(tag)
	b.WriteString(">")
	b.WriteString(escape(text))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">\n")
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
