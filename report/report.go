// Package report renders the run artifacts of the cleaner: the change log,
// the validation report, and the combined full report, in the plain-text
// layout downstream tooling already parses.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
	"github.com/janschachtschabel/skohub-ttl-cleaner/validate"
)

const (
	rule     = "============================================================"
	thinRule = "----------------------------------------"
	timeFmt  = "2006-01-02 15:04:05"
)

func header(b *strings.Builder, title string, state *model.RunState) {
	fmt.Fprintf(b, "%s\n", title)
	fmt.Fprintf(b, "Generated: %s\n", time.Now().Format(timeFmt))
	fmt.Fprintf(b, "Run: %s\n", state.RunID)
	fmt.Fprintf(b, "%s\n\n", rule)
}

func numbered(b *strings.Builder, entries []string) {
	for i, entry := range entries {
		fmt.Fprintf(b, "%4d. %s\n", i+1, entry)
	}
}

func findingMessages(findings []model.Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Message
	}
	return out
}

func byCheck(b *strings.Builder, summary map[model.Category]int, indent string) {
	for _, cat := range model.SummaryCategories {
		fmt.Fprintf(b, "%s- %s: %d\n", indent, cat, summary[cat])
	}
}

// ChangeLog renders the detailed change log with its summary block.
func ChangeLog(state *model.RunState) string {
	var b strings.Builder
	header(&b, "TTL CLEANER CHANGE LOG", state)

	s := &state.Stats
	b.WriteString("SUMMARY:\n")
	fmt.Fprintf(&b, "- Total concepts processed: %d\n", s.TotalConcepts)
	fmt.Fprintf(&b, "- Duplicates removed: %d\n", s.DuplicatesRemoved)
	fmt.Fprintf(&b, "- Malformed URIs fixed: %d\n", s.MalformedURIsFixed)
	fmt.Fprintf(&b, "- URI normalizations (e.g., @base, <...>): %d\n", s.URINormalizations)
	fmt.Fprintf(&b, "- Labels checked: %d\n", s.LabelsProcessed)
	fmt.Fprintf(&b, "- Comma spacing fixes: %d\n", s.CommaFixes)
	b.WriteString("\n")

	b.WriteString("DETAILED CHANGES:\n")
	b.WriteString(thinRule + "\n")
	numbered(&b, state.ChangeLog)
	if len(state.ChangeLog) == 0 {
		b.WriteString("(No detailed change entries)\n")
	}
	return b.String()
}

// Validation renders the validation report file, by-check summary included.
func Validation(state *model.RunState, res *validate.Result) string {
	var b strings.Builder
	header(&b, "SKOS VALIDATION REPORT", state)

	b.WriteString("SUMMARY:\n")
	fmt.Fprintf(&b, "- Integrity violations: %d\n", len(res.Violations))
	fmt.Fprintf(&b, "- Warnings: %d\n", len(res.Warnings))
	fmt.Fprintf(&b, "- Infos: %d\n", len(res.Infos))
	b.WriteString("- By check (including zeros):\n")
	byCheck(&b, validate.Summarize(res.All()), "  ")
	b.WriteString("\n")

	writeFindings(&b, res)
	if len(res.Violations)+len(res.Warnings)+len(res.Infos) == 0 {
		b.WriteString("SUCCESS: All SKOS integrity conditions satisfied!\n")
	}
	return b.String()
}

// Full renders the combined report: files, statistics, change log and
// validation results in one document.
func Full(state *model.RunState, res *validate.Result, inputPath, outputPath string) string {
	var b strings.Builder
	header(&b, "TTL CLEANER FULL REPORT", state)

	b.WriteString("FILES:\n")
	fmt.Fprintf(&b, "- Input:  %s\n", inputPath)
	fmt.Fprintf(&b, "- Output: %s\n\n", outputPath)

	s := &state.Stats
	b.WriteString("STATISTICS:\n")
	fmt.Fprintf(&b, "- Total concepts processed: %d\n", s.TotalConcepts)
	fmt.Fprintf(&b, "- Duplicates removed: %d\n", s.DuplicatesRemoved)
	fmt.Fprintf(&b, "- Concepts without prefLabel: %d\n", s.ConceptsWithoutPrefLabel)
	fmt.Fprintf(&b, "- Malformed URIs fixed: %d\n", s.MalformedURIsFixed)
	fmt.Fprintf(&b, "- URI normalizations (e.g., @base, <...>): %d\n", s.URINormalizations)
	fmt.Fprintf(&b, "- Labels checked: %d\n", s.LabelsProcessed)
	fmt.Fprintf(&b, "- Comma spacing fixes: %d\n", s.CommaFixes)
	fmt.Fprintf(&b, "- Text fields cleaned: %d\n\n", s.TextFieldsCleaned)

	fmt.Fprintf(&b, "CHANGE LOG (%d entries):\n", len(state.ChangeLog))
	b.WriteString(thinRule + "\n")
	numbered(&b, state.ChangeLog)
	if len(state.ChangeLog) == 0 {
		b.WriteString("(No detailed change entries)\n")
	}
	b.WriteString("\n")

	if res != nil {
		b.WriteString("VALIDATION RESULTS:\n")
		fmt.Fprintf(&b, "- Violations: %d\n", len(res.Violations))
		fmt.Fprintf(&b, "- Warnings:   %d\n", len(res.Warnings))
		fmt.Fprintf(&b, "- Infos:      %d\n\n", len(res.Infos))
		b.WriteString("- By check (including zeros):\n")
		byCheck(&b, validate.Summarize(res.All()), "  ")
		b.WriteString("\n")

		writeFindings(&b, res)
		if len(res.Violations)+len(res.Warnings)+len(res.Infos) == 0 {
			b.WriteString("SUCCESS: All SKOS integrity conditions satisfied!\n")
		}
	}
	return b.String()
}

// Console renders the validation banner printed after a run.
func Console(res *validate.Result) string {
	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString("SKOS VALIDATION REPORT\n")
	b.WriteString(rule + "\n")

	b.WriteString("\nSUMMARY BY CHECK:\n")
	byCheck(&b, validate.Summarize(res.All()), "")

	if len(res.Violations) > 0 {
		fmt.Fprintf(&b, "\nINTEGRITY VIOLATIONS (%d):\n", len(res.Violations))
		numberedIndent(&b, findingMessages(res.Violations))
	}
	if len(res.Warnings) > 0 {
		fmt.Fprintf(&b, "\nWARNINGS (%d):\n", len(res.Warnings))
		numberedIndent(&b, findingMessages(res.Warnings))
	}
	if len(res.Infos) > 0 {
		fmt.Fprintf(&b, "\nINFOS (%d):\n", len(res.Infos))
		numberedIndent(&b, findingMessages(res.Infos))
	}
	if len(res.Violations)+len(res.Warnings)+len(res.Infos) == 0 {
		b.WriteString("\nAll SKOS integrity conditions satisfied!\n")
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// CleaningReport renders the console statistics banner.
func CleaningReport(state *model.RunState, inputPath, outputPath string) string {
	var b strings.Builder
	s := &state.Stats

	b.WriteString("\n" + rule + "\n")
	b.WriteString("TTL CLEANING REPORT\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Input file:  %s\n", inputPath)
	fmt.Fprintf(&b, "Output file: %s\n\n", outputPath)

	b.WriteString("STATISTICS:\n")
	fmt.Fprintf(&b, "   Total concepts processed: %d\n", s.TotalConcepts)
	fmt.Fprintf(&b, "   Duplicates removed: %d\n", s.DuplicatesRemoved)
	fmt.Fprintf(&b, "   Malformed URIs fixed: %d\n", s.MalformedURIsFixed)
	fmt.Fprintf(&b, "   Concepts without prefLabel: %d\n", s.ConceptsWithoutPrefLabel)
	fmt.Fprintf(&b, "   Encoding issues fixed: %d\n", s.EncodingIssuesFixed)
	fmt.Fprintf(&b, "   Empty labels removed: %d\n", s.EmptyLabelsRemoved)
	fmt.Fprintf(&b, "   Text fields cleaned: %d\n", s.TextFieldsCleaned)
	fmt.Fprintf(&b, "   Comma spacing fixes: %d\n", s.CommaFixes)
	fmt.Fprintf(&b, "   Labels checked: %d\n", s.LabelsProcessed)
	fmt.Fprintf(&b, "   Definitions processed: %d\n", s.DefinitionsProcessed)
	fmt.Fprintf(&b, "   Notes processed: %d\n", s.NotesProcessed)
	fmt.Fprintf(&b, "   Final concepts in output: %d\n", s.FinalConcepts)
	return b.String()
}

func writeFindings(b *strings.Builder, res *validate.Result) {
	if len(res.Violations) > 0 {
		fmt.Fprintf(b, "INTEGRITY VIOLATIONS (%d):\n%s\n", len(res.Violations), thinRule)
		numbered(b, findingMessages(res.Violations))
		b.WriteString("\n")
	}
	if len(res.Warnings) > 0 {
		fmt.Fprintf(b, "WARNINGS (%d):\n%s\n", len(res.Warnings), thinRule)
		numbered(b, findingMessages(res.Warnings))
		b.WriteString("\n")
	}
	if len(res.Infos) > 0 {
		fmt.Fprintf(b, "INFOS (%d):\n%s\n", len(res.Infos), thinRule)
		numbered(b, findingMessages(res.Infos))
		b.WriteString("\n")
	}
}

func numberedIndent(b *strings.Builder, entries []string) {
	for i, entry := range entries {
		fmt.Fprintf(b, "  %3d. %s\n", i+1, entry)
	}
}

// WriteFile writes a rendered report to disk.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
