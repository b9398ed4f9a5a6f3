package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
	dsnFlag    string

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for gridboard.
var rootCmd = &cobra.Command{
	Use:     "gridboard",
	Version: "dev",
	Short:   "Dashboard widget layout manager",
	Long: `gridboard manages per-page dashboard layouts of widgets on a three-column grid.

Bundled default layouts are never modified: saving an edited default forks it
into a custom layout that is stored alongside your other saved layouts.`,
	Example: `  gridboard page use dashboard
  gridboard widget add clock --w 2 --h 1
  gridboard snapshot export backup.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// helpEnv lists the environment variables shown in root help.
var helpEnv = [][2]string{
	{"GRIDBOARD_ROOT", "Root directory for data, config, templates and snapshots"},
	{"GRIDBOARD_CONFIG", "Alternate config file"},
	{"GRIDBOARD_STORAGE_DSN", "Storage DSN (file://, sqlite://, postgres://, memory://)"},
	{"GRIDBOARD_NO_COLOR", "Disable colored output"},
}

// customHelpFunc renders help with colored group titles. Root help adds the
// environment variables; every command shows its aliases and examples.
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	} else if cmd.Short != "" {
		help.WriteString(cmd.Short)
		help.WriteString("\n\n")
	}

	writeSection(&help, "Usage:")
	fmt.Fprintf(&help, "  %s\n", cmd.UseLine())
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&help, "  %s [command]\n", cmd.CommandPath())
	}
	help.WriteString("\n")

	if len(cmd.Aliases) > 0 {
		writeSection(&help, "Aliases:")
		fmt.Fprintf(&help, "  %s, %s\n\n", cmd.Name(), strings.Join(cmd.Aliases, ", "))
	}

	if cmd.Example != "" {
		writeSection(&help, "Examples:")
		help.WriteString(cmd.Example)
		help.WriteString("\n\n")
	}

	width := commandNameWidth(cmd)
	for _, group := range cmd.Groups() {
		help.WriteString(groupTitleColor.Sprint(group.Title))
		help.WriteString("\n")
		for _, c := range cmd.Commands() {
			// cobra reports its help command as unavailable
			if c.GroupID == group.ID && (c.IsAvailableCommand() || c.Name() == "help") {
				fmt.Fprintf(&help, "  %-*s %s\n", width, c.Name(), c.Short)
			}
		}
		help.WriteString("\n")
	}

	var ungrouped []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.GroupID == "" && c.IsAvailableCommand() {
			ungrouped = append(ungrouped, c)
		}
	}
	if len(ungrouped) > 0 {
		title := "Additional Commands:"
		if len(cmd.Groups()) == 0 {
			title = "Commands:"
		}
		writeSection(&help, title)
		for _, c := range ungrouped {
			fmt.Fprintf(&help, "  %-*s %s\n", width, c.Name(), c.Short)
		}
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailableInheritedFlags() {
		writeSection(&help, "Flags:")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	if !cmd.HasParent() {
		writeSection(&help, "Environment:")
		for _, e := range helpEnv {
			fmt.Fprintf(&help, "  %-22s %s\n", e[0], e[1])
		}
		help.WriteString("\n")
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func writeSection(b *strings.Builder, title string) {
	b.WriteString(sectionTitleColor.Sprint(title))
	b.WriteString("\n")
}

// commandNameWidth is the padding needed to align the subcommand list.
func commandNameWidth(cmd *cobra.Command) int {
	width := 11
	for _, c := range cmd.Commands() {
		width = max(width, len(c.Name()))
	}
	return width
}

func init() {
	// Set custom help function to color group titles
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "Storage DSN (overrides storage.dsn)")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "layout-editing",
		Title: "Layout Editing:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "storage",
		Title: "Storage:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the gridboard CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	// Add help command to CLI & Tooling group
	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	// Add completion command to CLI & Tooling group
	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for gridboard for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "powershell",
		Short:                 "Generate the autocompletion script for powershell",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		},
	})
	rootCmd.AddCommand(completionCmd)

	// Layout Editing commands
	pageCmd.GroupID = "layout-editing"
	layoutCmd.GroupID = "layout-editing"
	tabCmd.GroupID = "layout-editing"
	widgetCmd.GroupID = "layout-editing"
	saveCmd.GroupID = "layout-editing"
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(tabCmd)
	rootCmd.AddCommand(widgetCmd)
	rootCmd.AddCommand(saveCmd)

	// Storage commands
	snapshotCmd.GroupID = "storage"
	watchCmd.GroupID = "storage"
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(watchCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
