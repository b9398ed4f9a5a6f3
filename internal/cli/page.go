package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Select and list dashboard pages",
	Long:  `Manage which dashboard page subsequent layout commands apply to.`,
}

var pageUseCmd = &cobra.Command{
	Use:   "use <page>",
	Short: "Switch to a page",
	Long: `Switch to a page and activate its first layout.

Saved layouts of the page are listed before the page's default layouts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			if err := s.usePage(args[0]); err != nil {
				return err
			}

			current := s.mgr.CurrentLayout()
			if jsonOutput {
				return outputJSON(map[string]string{
					"page":   s.mgr.CurrentPage(),
					"layout": current.ID,
					"name":   current.Name,
				})
			}

			PrintSuccess(fmt.Sprintf("Switched to page '%s'", s.mgr.CurrentPage()))
			if len(s.mgr.ListLayoutNames()) == 0 {
				PrintWarning("No layouts available for this page")
				return nil
			}
			PrintLabelValue("Layout", fmt.Sprintf("%s (%s)", current.Name, current.ID))
			return nil
		})
	},
}

var pageLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List known pages",
	Long:  `List pages that have default layouts or saved layouts.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			pages := knownPages(s)

			if jsonOutput {
				return outputJSON(pages)
			}

			PrintSection("Pages")
			rows := make([][]string, 0, len(pages))
			for _, p := range pages {
				marker := ""
				if p == s.mgr.CurrentPage() {
					marker = "*"
				}
				rows = append(rows, []string{marker, p})
			}
			PrintTable([]string{"", "Page"}, rows)
			return nil
		})
	},
}

// knownPages returns the sorted union of template pages, saved layout
// pages and the current page.
func knownPages(s *session) []string {
	seen := map[string]bool{s.mgr.CurrentPage(): true}
	for _, p := range s.templates.Pages() {
		seen[p] = true
	}
	for _, l := range s.mgr.SavedLayouts() {
		seen[l.Page] = true
	}

	pages := make([]string, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Strings(pages)
	return pages
}

func init() {
	pageCmd.AddCommand(pageUseCmd)
	pageCmd.AddCommand(pageLsCmd)
}
