package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gridboard/internal/layout"
	"github.com/danieljhkim/gridboard/internal/manager"
)

var (
	widgetAddName     string
	widgetAddX        int
	widgetAddY        int
	widgetAddW        int
	widgetAddH        int
	widgetAddTab      bool
	widgetAddSettings string
)

var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Add, remove and configure widgets",
}

var widgetAddCmd = &cobra.Command{
	Use:   "add <widget-kind>",
	Short: "Place a widget on the active layout and save",
	Long: `Place a widget on the active layout's grid, or on the selected tab with --tab.

The widget is moved right, then down, until it overlaps nothing. Saving an
edited default layout forks it into a custom layout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := layout.Widget{
			Kind: args[0],
			Name: widgetAddName,
			X:    widgetAddX,
			Y:    widgetAddY,
			W:    widgetAddW,
			H:    widgetAddH,
		}
		if widgetAddSettings != "" {
			if !json.Valid([]byte(widgetAddSettings)) {
				return fmt.Errorf("%w: %s", manager.ErrInvalidSettings, widgetAddSettings)
			}
			w.Settings = json.RawMessage(widgetAddSettings)
		}

		return withSession(func(s *session) error {
			var placed layout.Widget
			if widgetAddTab {
				var err error
				if placed, err = s.mgr.AddWidgetToTab(w); err != nil {
					return err
				}
			} else {
				placed = s.mgr.AddWidgetToGrid(w)
			}

			if err := s.mgr.Save(); err != nil {
				return err
			}

			if jsonOutput {
				return outputJSON(placed)
			}
			PrintSuccess(fmt.Sprintf("Placed widget %s at %d,%d (%dx%d)", placed.ID, placed.X, placed.Y, placed.W, placed.H))
			PrintLabelValue("Layout", s.mgr.CurrentLayout().Name)
			return nil
		})
	},
}

var widgetRmCmd = &cobra.Command{
	Use:   "rm <widget-id>",
	Short: "Remove a widget from the active layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			if err := s.mgr.RemoveWidget(args[0]); err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(map[string]string{"removed": args[0]})
			}
			PrintSuccess(fmt.Sprintf("Removed widget %s", args[0]))
			return nil
		})
	},
}

var widgetSettingsCmd = &cobra.Command{
	Use:   "settings <widget-id> <json>",
	Short: "Replace a widget's settings",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			if err := s.mgr.UpdateWidgetSettings(args[0], json.RawMessage(args[1])); err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(map[string]string{"widget": args[0]})
			}
			PrintSuccess(fmt.Sprintf("Updated settings of widget %s", args[0]))
			return nil
		})
	},
}

func init() {
	widgetAddCmd.Flags().StringVar(&widgetAddName, "name", "", "Display name")
	widgetAddCmd.Flags().IntVar(&widgetAddX, "x", 0, "Preferred column")
	widgetAddCmd.Flags().IntVar(&widgetAddY, "y", 0, "Preferred row")
	widgetAddCmd.Flags().IntVar(&widgetAddW, "w", 1, "Width in columns")
	widgetAddCmd.Flags().IntVar(&widgetAddH, "h", 1, "Height in rows")
	widgetAddCmd.Flags().BoolVar(&widgetAddTab, "tab", false, "Place on the selected tab instead of the grid")
	widgetAddCmd.Flags().StringVar(&widgetAddSettings, "settings", "", "Widget settings as JSON")

	widgetCmd.AddCommand(widgetAddCmd)
	widgetCmd.AddCommand(widgetRmCmd)
	widgetCmd.AddCommand(widgetSettingsCmd)
}
