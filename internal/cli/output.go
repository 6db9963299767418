package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/websearch"
)

// Recognized output formats.
const (
	FormatTable  = "table"
	FormatSimple = "simple"
	FormatJSON   = "json"
	FormatPDF    = "pdf"
)

const tableSnippetLimit = 200

// RenderSimple writes a plain numbered list.
func RenderSimple(w io.Writer, results []websearch.Result) {
	for i, r := range results {
		fmt.Fprintf(w, "%d. %s\n", i+1, r.Title)
		fmt.Fprintf(w, "   %s\n", r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(w, "   %s\n", r.Snippet)
		}
		fmt.Fprintln(w)
	}
}

// RenderJSON writes the result list as pretty-printed JSON using the
// normalized field names, so the output round-trips losslessly.
func RenderJSON(w io.Writer, results []websearch.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// RenderTable writes a styled human-readable listing.
func RenderTable(w io.Writer, results []websearch.Result, providerName string, showRaw bool) {
	bold := color.New(color.Bold)
	blue := color.New(color.FgBlue)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	fmt.Fprintf(w, "%s %s\n", bold.Sprint("Search results from"), bold.Sprint(blue.Sprint(providerName)))
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for i, r := range results {
		fmt.Fprintf(w, "%s %s\n", bold.Sprintf("%d.", i+1), bold.Sprint(r.Title))
		fmt.Fprintf(w, "   %s\n", blue.Sprint(r.URL))
		if r.Domain != "" {
			fmt.Fprintf(w, "   %s\n", green.Sprint(r.Domain))
		}
		if r.Snippet != "" {
			snippet := r.Snippet
			if len(snippet) > tableSnippetLimit {
				snippet = snippet[:tableSnippetLimit] + "..."
			}
			fmt.Fprintf(w, "   %s\n", snippet)
		}
		if r.PublishedDate != "" {
			fmt.Fprintf(w, "   %s\n", yellow.Sprint(r.PublishedDate))
		}
		if showRaw && r.Raw != nil {
			if b, err := json.MarshalIndent(r.Raw, "   ", "  "); err == nil {
				fmt.Fprintf(w, "   raw: %s\n", b)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s %s\n", bold.Sprint("Total results:"), bold.Sprintf("%d", len(results)))
}

// WritePDF renders the result list to a minimal PDF, one block per
// result with a clickable title link.
func WritePDF(results []websearch.Result, providerName, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Search results from %s", providerName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(3)

	for i, r := range results {
		pdf.SetFont("Helvetica", "B", 12)
		title := fmt.Sprintf("%d. %s", i+1, r.Title)
		if r.URL != "" {
			pdf.WriteLinkString(6, title, r.URL)
			pdf.Ln(6)
		} else {
			pdf.MultiCell(0, 6, title, "", "L", false)
		}
		pdf.SetFont("Helvetica", "", 10)
		if r.URL != "" {
			pdf.MultiCell(0, 5, r.URL, "", "L", false)
		}
		if r.Snippet != "" {
			pdf.MultiCell(0, 5, r.Snippet, "", "L", false)
		}
		if r.PublishedDate != "" {
			pdf.MultiCell(0, 5, r.PublishedDate, "", "L", false)
		}
		pdf.SetFont("Helvetica", "", 11)
		pdf.Ln(3)
	}

	return pdf.OutputFileAndClose(outPath)
}
