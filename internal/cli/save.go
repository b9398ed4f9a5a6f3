package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the active layout",
	Long: `Save the active layout.

A saved layout is overwritten in place. An unchanged default layout is left
alone; a changed one is forked into a custom layout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			before := s.mgr.CurrentLayout().ID
			if err := s.mgr.Save(); err != nil {
				return err
			}
			current := s.mgr.CurrentLayout()

			if jsonOutput {
				return outputJSON(map[string]any{
					"layout": current.ID,
					"name":   current.Name,
					"forked": current.ID != before,
				})
			}
			if current.ID != before {
				PrintSuccess(fmt.Sprintf("Forked into '%s' (%s)", current.Name, current.ID))
				return nil
			}
			PrintSuccess(fmt.Sprintf("Saved layout '%s'", current.Name))
			return nil
		})
	},
}
