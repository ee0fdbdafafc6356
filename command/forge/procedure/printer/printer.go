package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.scnd.dev/open/forge/package/validation"
	"go.scnd.dev/open/forge/procedure/tree"
)

var (
	StyleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	StyleFailure = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	StyleCode    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	StylePath    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func Json(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// Issues prints OK for a valid result, otherwise one line per issue.
func Issues(w io.Writer, result *validation.Result) error {
	if result.Valid() {
		_, err := fmt.Fprintln(w, StyleSuccess.Render("OK"))
		return err
	}

	for _, issue := range result.Issues {
		if _, err := fmt.Fprintf(w, "%s %s %s\n", StyleFailure.Render("✗"), issue.Message, StyleCode.Render("("+string(issue.Code)+")")); err != nil {
			return err
		}
	}
	return nil
}

func Paths(w io.Writer, paths []string) error {
	for _, path := range paths {
		if _, err := fmt.Fprintln(w, StylePath.Render(path)); err != nil {
			return err
		}
	}
	return nil
}

// Report prints OK for a complete tree, otherwise one line per drifted entry.
func Report(w io.Writer, report *tree.Report) error {
	if report.Complete() {
		_, err := fmt.Fprintln(w, StyleSuccess.Render("OK"))
		return err
	}

	for _, entry := range report.Drift() {
		path := report.ModuleName
		if entry.Path != "" {
			path = report.ModuleName + "/" + entry.Path
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", StyleFailure.Render(string(entry.Status)), StyleCode.Render(string(entry.Kind)), StylePath.Render(path)); err != nil {
			return err
		}
	}
	return nil
}
