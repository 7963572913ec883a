package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mikey/avana-extractor/internal/core"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Render writes result to w in the given format.
// shortlistSize limits the rows per domain in the csv and text shortlist.
func Render(w io.Writer, format string, result *core.Result, shortlistSize int) error {
	if result == nil {
		result = &core.Result{Domains: []core.ProcessedDomain{}}
	}

	switch strings.ToLower(format) {
	case FormatText, "":
		return renderText(w, result, shortlistSize)
	case FormatJSON:
		return renderJSON(w, result)
	case FormatCSV:
		return renderCSV(w, result, shortlistSize)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderJSON(w io.Writer, result *core.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

func renderCSV(w io.Writer, result *core.Result, shortlistSize int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Domain", "Email", "Status"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, e := range core.BuildShortlist(result, shortlistSize) {
		if err := cw.Write([]string{e.Domain, e.Email, string(e.Status)}); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func renderText(w io.Writer, result *core.Result, shortlistSize int) error {
	stats := result.Stats
	fmt.Fprintf(w, "=== Summary ===\n")
	fmt.Fprintf(w, "Total unique emails: %d\n", stats.TotalEmailsFound)
	fmt.Fprintf(w, "Unique domains: %d\n", stats.TotalDomains)
	fmt.Fprintf(w, "Selected for export: %d\n", stats.TotalSelected)

	if len(result.Domains) == 0 {
		_, err := fmt.Fprintf(w, "\nNo valid emails found in the input text.\n")
		return err
	}

	fmt.Fprintf(w, "\n=== Domains ===\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "DOMAIN\tEMAILS\tMATCHES\tSELECTED\n")
	for _, d := range result.Domains {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", d.Domain, len(d.Emails), d.MatchCount, strings.Join(d.SelectedEmails, ", "))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write domain table: %w", err)
	}

	fmt.Fprintf(w, "\n=== Shortlist ===\n")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "DOMAIN\tEMAIL\tSTATUS\n")
	for _, e := range core.BuildShortlist(result, shortlistSize) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Domain, e.Email, e.Status)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write shortlist: %w", err)
	}
	return nil
}
