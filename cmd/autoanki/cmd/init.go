package cmd

import (
	"fmt"

	"github.com/f3rmion/autoanki/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize autoanki configuration",
	Long: `Initialize the autoanki configuration file.

This writes a commented template to $HOME/.config/autoanki/config.yaml (or the
file given with --config). Fill in the AnkiWeb session values before saving
notes:
  - csrf_token  (form field of the note editor)
  - mid         (note type ID)
  - deck        (deck ID)
  - cookies     (at least the "ankiweb" session cookie)`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := cfgFile
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	if err := config.WriteTemplate(path, force); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Copy csrf_token, mid, deck and cookies from a logged-in AnkiWeb session")
	fmt.Fprintln(out, "  2. Run 'autoanki lookup <word>' to check a dictionary lookup")
	fmt.Fprintln(out, "  3. Run 'autoanki <word>' to save a note")

	return nil
}
