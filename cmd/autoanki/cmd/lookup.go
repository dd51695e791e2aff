package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/f3rmion/autoanki/internal/anki"
	"github.com/f3rmion/autoanki/internal/clipboard"
	"github.com/f3rmion/autoanki/internal/entry"
	"github.com/f3rmion/autoanki/internal/job"
	"github.com/f3rmion/autoanki/internal/tui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>...",
	Short: "Show the dictionary entry for words without saving notes",
	Long: `Look up words in LDOCE and display what was extracted:
  - Phonetic and part of speech of every entry
  - Definitions, signposts and example sentences
  - Grammar and collocation phrases

Nothing is sent to AnkiWeb. Use --payload to print the note data that
would be saved.

Example:
  autoanki lookup abandon
  autoanki lookup "give up" --format yaml
  autoanki lookup happy --payload --copy`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
	lookupCmd.Flags().Bool("payload", false, "print the encoded note payload instead of the entry")
	lookupCmd.Flags().Bool("copy", false, "also copy the output to the clipboard")
}

func runLookup(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	payload, _ := cmd.Flags().GetBool("payload")
	copyOut, _ := cmd.Flags().GetBool("copy")

	write, err := entryWriter(format, payload)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(false)
	if err != nil {
		return err
	}

	logger := newLogger(false)
	defer func() { _ = logger.Sync() }()
	dict := newDictionary(cfg, logger)

	var buf bytes.Buffer
	for _, arg := range args {
		word := job.NormalizeWord(arg)
		if word == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), tui.FormatOutcome(job.Outcome{Word: arg, Err: job.ErrEmptyWord}, 0))
			continue
		}

		e, err := dict.Lookup(cmd.Context(), word)
		if err == nil {
			err = write(&buf, e)
		}
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), tui.FormatOutcome(job.Outcome{Word: word, Err: err}, 0))
		}
	}

	if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return err
	}

	if copyOut && buf.Len() > 0 {
		if err := clipboard.Write(strings.TrimSpace(buf.String())); err != nil {
			return err
		}
	}
	return nil
}

type writeFunc func(io.Writer, entry.Entry) error

func entryWriter(format string, payload bool) (writeFunc, error) {
	if payload {
		return writePayload, nil
	}
	switch format {
	case "text", "":
		return writeText, nil
	case "json":
		return writeJSON, nil
	case "yaml":
		return writeYAML, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func writePayload(w io.Writer, e entry.Entry) error {
	data, err := anki.Encode(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, data)
	return err
}

func writeJSON(w io.Writer, e entry.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

func writeYAML(w io.Writer, e entry.Entry) error {
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(e); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, e entry.Entry) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Word: %s\n", e.Word)
	if len(e.Details) == 0 {
		b.WriteString("  (no entries found)\n")
	}

	for i, d := range e.Details {
		fmt.Fprintf(&b, "  %d. %s", i+1, d.PartOfSpeech)
		if d.Phonetic != "" {
			fmt.Fprintf(&b, "  %s", d.Phonetic)
		}
		b.WriteString("\n")

		for _, ex := range d.Explanations {
			fmt.Fprintf(&b, "     - %s\n", ex.Text)
			for _, s := range ex.Examples {
				fmt.Fprintf(&b, "         e.g. %s\n", s)
			}
			for _, p := range ex.Phrases {
				fmt.Fprintf(&b, "       %s\n", p.Phrase)
				for _, s := range p.Examples {
					fmt.Fprintf(&b, "         e.g. %s\n", s)
				}
			}
		}
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
