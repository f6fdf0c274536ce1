package main

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/byte4ever/mdinject/inject"
)

// blockReport describes one located region for --list.
type blockReport struct {
	Line         int      `json:"line"`
	Directive    string   `json:"directive"`
	Placeholders []string `json:"placeholders"`
}

// writeReport prints the regions of doc as a JSON array.
// Placeholder files are not read.
func writeReport(w io.Writer, doc string) error {
	const errCtx = "writing report"

	blocks := inject.Locate(doc)
	reports := make([]blockReport, 0, len(blocks))

	for _, bl := range blocks {
		placeholders := inject.Placeholders(bl.Directive)
		if placeholders == nil {
			placeholders = []string{}
		}

		reports = append(reports, blockReport{
			Line:         bl.Line,
			Directive:    bl.Directive,
			Placeholders: placeholders,
		})
	}

	payload, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if _, err := w.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
