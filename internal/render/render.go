// Package render formats split and rebuild results for the terminal or for
// machine consumption.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-ports/seedsplit/internal/config"
	"github.com/go-ports/seedsplit/internal/models"
)

const separator = "---------------------------------------------------------------------"

// Split writes res to w in the given format.
func Split(w io.Writer, format string, res *models.SplitResult) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, res)
	case config.OutputYAML:
		return writeYAML(w, res)
	case config.OutputText:
		// handled below
	default:
		return fmt.Errorf("render: unknown format %q", format)
	}

	var sb strings.Builder
	writeWarnings(&sb, res.Warnings)
	sb.WriteString("\n" + separator + "\n")
	for i, p := range res.Pairs {
		fmt.Fprintf(&sb, "A%d: %s\n", i+1, models.Join(p.A))
		fmt.Fprintf(&sb, "B%d: %s\n", i+1, models.Join(p.B))
		sb.WriteString(separator + "\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Rebuild writes res to w in the given format.
func Rebuild(w io.Writer, format string, res *models.RebuildResult) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, res)
	case config.OutputYAML:
		return writeYAML(w, res)
	case config.OutputText:
	default:
		return fmt.Errorf("render: unknown format %q", format)
	}

	var sb strings.Builder
	writeWarnings(&sb, res.Warnings)
	sb.WriteString("\n" + separator + "\n")
	fmt.Fprintf(&sb, "Seedphrase: %s\n", models.Join(res.Phrase))
	sb.WriteString(separator + "\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// Suggest writes res to w in the given format.
func Suggest(w io.Writer, format string, res *models.SuggestResult) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, res)
	case config.OutputYAML:
		return writeYAML(w, res)
	case config.OutputText:
	default:
		return fmt.Errorf("render: unknown format %q", format)
	}

	var err error
	if res.Valid {
		_, err = fmt.Fprintf(w, "%q is in the wordlist (index %d)\n", res.Word, res.Index)
	} else {
		_, err = fmt.Fprintf(w, "%q is not in the wordlist. Did you mean %q?\n", res.Word, res.Suggestion)
	}
	return err
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func writeWarnings(sb *strings.Builder, warnings []models.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(sb, "Warning: %s\n", w.Message)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
