package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var tabCmd = &cobra.Command{
	Use:   "tab",
	Short: "Manage the tabs of the active layout",
}

var tabCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Append a tab and select it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			tab, err := s.mgr.CreateTab(args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(tab)
			}
			PrintSuccess(fmt.Sprintf("Created tab '%s' in layout '%s'", tab.Name, s.mgr.CurrentLayout().Name))
			return nil
		})
	},
}

var tabUseCmd = &cobra.Command{
	Use:   "use <index>",
	Short: "Select a tab by index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid tab index %q: %w", args[0], err)
		}
		return withSession(func(s *session) error {
			if err := s.mgr.SelectTab(index); err != nil {
				return err
			}
			tab := s.mgr.CurrentLayout().Tabs[index]
			if jsonOutput {
				return outputJSON(tab)
			}
			PrintSuccess(fmt.Sprintf("Selected tab %d '%s'", index, tab.Name))
			return nil
		})
	},
}

func init() {
	tabCmd.AddCommand(tabCreateCmd)
	tabCmd.AddCommand(tabUseCmd)
}
