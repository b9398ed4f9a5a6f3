package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gridboard/internal/layout"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Manage the layouts of the current page",
	Long: `Manage the layouts of the current page.

Default layouts are read-only templates. Editing one and saving forks it into
a custom layout named "Custom - <name>".`,
}

var layoutLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List layouts of the current page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			names := s.mgr.ListLayoutNames()

			if jsonOutput {
				return outputJSON(names)
			}

			PrintSection(fmt.Sprintf("Layouts of page '%s'", s.mgr.CurrentPage()))
			if len(names) == 0 {
				PrintEmptyState("No layouts found")
				return nil
			}

			currentID := s.mgr.CurrentLayout().ID
			rows := make([][]string, 0, len(names))
			for _, n := range names {
				marker := ""
				if n.ID == currentID {
					marker = "*"
				}
				rows = append(rows, []string{marker, n.Name, n.ID})
			}
			PrintTable([]string{"", "Name", "ID"}, rows)
			return nil
		})
	},
}

var layoutUseCmd = &cobra.Command{
	Use:   "use <layout-id>",
	Short: "Activate a layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			if err := s.mgr.SetLayout(args[0]); err != nil {
				return err
			}
			current := s.mgr.CurrentLayout()
			if jsonOutput {
				return outputJSON(current)
			}
			PrintSuccess(fmt.Sprintf("Using layout '%s'", current.Name))
			return nil
		})
	},
}

var layoutCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an empty saved layout and activate it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			created, err := s.mgr.CreateLayout(args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(created)
			}
			PrintSuccess(fmt.Sprintf("Created layout '%s'", created.Name))
			PrintLabelValue("ID", created.ID)
			return nil
		})
	},
}

var layoutRmCmd = &cobra.Command{
	Use:   "rm <layout-id>",
	Short: "Delete a saved layout",
	Long: `Delete a saved layout. Default layouts cannot be deleted.

Deleting the active layout activates the first remaining layout of the page.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			if err := s.mgr.DeleteLayout(args[0]); err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(map[string]string{"deleted": args[0]})
			}
			PrintSuccess(fmt.Sprintf("Deleted layout %s", args[0]))
			return nil
		})
	},
}

var layoutRenameCmd = &cobra.Command{
	Use:   "rename <name>",
	Short: "Rename the active layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			if err := s.mgr.RenameLayout(args[0]); err != nil {
				return err
			}
			current := s.mgr.CurrentLayout()
			if jsonOutput {
				return outputJSON(current)
			}
			PrintSuccess(fmt.Sprintf("Renamed layout to '%s'", current.Name))
			return nil
		})
	},
}

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active layout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			current := s.mgr.CurrentLayout()
			if jsonOutput {
				return outputJSON(current)
			}

			PrintSection("Layout")
			PrintLabelValue("Name", current.Name)
			PrintLabelValue("ID", current.ID)
			PrintLabelValue("Page", current.Page)
			PrintLabelValue("Default", strconv.FormatBool(current.Default))

			PrintSubsection("Grid")
			printGrid(current.Grid)

			if current.HasTabs || len(current.Tabs) > 0 {
				for i, tab := range current.Tabs {
					title := fmt.Sprintf("Tab %d: %s", i, tab.Name)
					if i == s.mgr.CurrentTab() {
						title += " (selected)"
					}
					PrintSubsection(title)
					printGrid(tab.Grid)
				}
			}
			return nil
		})
	},
}

// printGrid prints one row per widget followed by the grid map.
func printGrid(grid layout.Grid) {
	if len(grid) == 0 {
		PrintEmptyState("No widgets")
		return
	}
	rows := make([][]string, 0, len(grid))
	for i, w := range grid {
		label := "*"
		if i < len(cellLabels) {
			label = cellLabels[i : i+1]
		}
		rows = append(rows, []string{
			label,
			w.ID,
			w.Name,
			fmt.Sprintf("%d,%d", w.X, w.Y),
			fmt.Sprintf("%dx%d", w.W, w.H),
		})
	}
	PrintTable([]string{"", "ID", "Name", "Pos", "Size"}, rows)
	fmt.Println()
	PrintGridMap(grid)
}

func init() {
	layoutCmd.AddCommand(layoutLsCmd)
	layoutCmd.AddCommand(layoutUseCmd)
	layoutCmd.AddCommand(layoutCreateCmd)
	layoutCmd.AddCommand(layoutRmCmd)
	layoutCmd.AddCommand(layoutRenameCmd)
	layoutCmd.AddCommand(layoutShowCmd)
}
