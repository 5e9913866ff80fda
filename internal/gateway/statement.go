package gateway

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"mini-bank/internal/domain"
	"mini-bank/internal/usecase"
)

// Supported statement formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// TimestampLayout is how record timestamps are printed in text and CSV statements.
const TimestampLayout = "02-01-2006 15:04:05"

// NewStatementRenderer returns the renderer for format.
func NewStatementRenderer(format string) (usecase.StatementRenderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return TextStatementRenderer{}, nil
	case FormatCSV:
		return CSVStatementRenderer{}, nil
	case FormatJSON:
		return JSONStatementRenderer{}, nil
	case FormatYAML:
		return YAMLStatementRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown statement format %q", format)
	}
}

// TextStatementRenderer prints the statement the way the console shows it.
type TextStatementRenderer struct{}

func (TextStatementRenderer) Render(w io.Writer, st domain.Statement) error {
	var b strings.Builder
	b.WriteString("\n================ STATEMENT ================\n")
	fmt.Fprintf(&b, "Branch: %s  Account: %d  Holder: %s\n", st.Branch, st.AccountNumber, st.Holder)
	if len(st.Records) == 0 {
		b.WriteString("\nNo transactions recorded.\n")
	}
	for _, r := range st.Records {
		fmt.Fprintf(&b, "\n%s:\n\t$ %s\t%s\n", r.Kind, r.Amount.StringFixed(2), r.Timestamp.Format(TimestampLayout))
	}
	fmt.Fprintf(&b, "\nBalance:\n\t$ %s\n", st.Balance.StringFixed(2))
	b.WriteString("===========================================\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// CSVStatementRenderer writes one row per record followed by a balance row.
type CSVStatementRenderer struct{}

func (CSVStatementRenderer) Render(w io.Writer, st domain.Statement) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "kind", "amount", "timestamp"}); err != nil {
		return fmt.Errorf("failed to write statement header: %w", err)
	}
	for _, r := range st.Records {
		record := []string{
			r.ID.String(),
			r.Kind.String(),
			r.Amount.StringFixed(2),
			r.Timestamp.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %s: %w", r.ID, err)
		}
	}
	balance := []string{"", "balance", st.Balance.StringFixed(2), ""}
	if err := writer.Write(balance); err != nil {
		return fmt.Errorf("failed to write balance row: %w", err)
	}
	writer.Flush()
	return writer.Error()
}

// JSONStatementRenderer writes the statement as indented JSON.
type JSONStatementRenderer struct{}

func (JSONStatementRenderer) Render(w io.Writer, st domain.Statement) error {
	output, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode statement: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// YAMLStatementRenderer writes the statement as a YAML document.
type YAMLStatementRenderer struct{}

func (YAMLStatementRenderer) Render(w io.Writer, st domain.Statement) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("failed to encode statement: %w", err)
	}
	return enc.Close()
}
