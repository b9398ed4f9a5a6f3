package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/danieljhkim/gridboard/internal/layout"
)

var (
	// Color functions - will be nil if output is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
	dimColor     = color.New(color.FgHiBlack)
	cellColor    = color.New(color.FgMagenta, color.Bold)
)

// cellLabels names widgets in grid maps, in grid order.
const cellLabels = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// initColors honors NO_COLOR-style opt outs beyond fatih/color's own TTY check.
func initColors() {
	if os.Getenv("GRIDBOARD_NO_COLOR") != "" {
		color.NoColor = true
	}
}

// PrintSection prints a section header
func PrintSection(title string) {
	initColors()
	fmt.Println()
	_, _ = headerColor.Printf("▸ %s\n", title)
	fmt.Println()
}

// PrintSubsection prints a subsection header
func PrintSubsection(title string) {
	initColors()
	_, _ = infoColor.Printf("  %s\n", title)
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(msg string) {
	initColors()
	_, _ = successColor.Printf("✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func PrintWarning(msg string) {
	initColors()
	_, _ = warningColor.Printf("⚠ %s\n", msg)
}

// PrintError prints an error message to stderr
func PrintError(msg string) {
	initColors()
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// PrintInfo prints an informational message
func PrintInfo(msg string) {
	initColors()
	fmt.Println(msg)
}

// PrintLabelValue prints a label-value pair with proper formatting
func PrintLabelValue(label, value string) {
	initColors()
	_, _ = labelColor.Printf("  %s: ", label)
	_, _ = valueColor.Println(value)
}

// PrintList prints a list of items with bullet points
func PrintList(items []string, indent int) {
	initColors()
	indentStr := strings.Repeat("  ", indent)
	for _, item := range items {
		_, _ = infoColor.Printf("%s• %s\n", indentStr, item)
	}
}

// PrintTable prints a simple column table
func PrintTable(headers []string, rows [][]string) {
	initColors()
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	// Calculate column widths
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	// Print header
	_, _ = headerColor.Print("  ")
	for i, header := range headers {
		if i > 0 {
			fmt.Print("  ")
		}
		_, _ = headerColor.Printf("%-*s", colWidths[i], header)
	}
	fmt.Println()

	// Print separator
	fmt.Print("  ")
	for i, width := range colWidths {
		if i > 0 {
			fmt.Print("  ")
		}
		fmt.Print(strings.Repeat("-", width))
	}
	fmt.Println()

	// Print rows
	for _, row := range rows {
		fmt.Print("  ")
		for i, cell := range row {
			if i >= len(colWidths) {
				break
			}
			if i > 0 {
				fmt.Print("  ")
			}
			_, _ = valueColor.Printf("%-*s", colWidths[i], cell)
		}
		fmt.Println()
	}
}

// PrintEmptyState prints a message when there's no data to show
func PrintEmptyState(msg string) {
	initColors()
	_, _ = dimColor.Printf("  %s\n", msg)
}

// PrintCount prints a count with proper formatting
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// PrintGridMap prints the occupancy map of a grid, one line per row.
func PrintGridMap(grid layout.Grid) {
	initColors()
	for _, line := range renderGrid(grid) {
		_, _ = cellColor.Printf("  %s\n", line)
	}
}

// renderGrid draws grid as rows of Columns cells. Each widget is drawn with
// the label of its position in the grid; free cells are dots and cells
// claimed by more than one widget are '#'. Widgets beyond the label set
// are drawn as '*'.
func renderGrid(grid layout.Grid) []string {
	rows := 0
	for _, w := range grid {
		if w.Y+w.H > rows {
			rows = w.Y + w.H
		}
	}

	cells := make([][]byte, rows)
	for y := range cells {
		cells[y] = []byte(strings.Repeat(".", layout.Columns))
	}
	for i, w := range grid {
		label := byte('*')
		if i < len(cellLabels) {
			label = cellLabels[i]
		}
		for y := max(w.Y, 0); y < w.Y+w.H; y++ {
			for x := max(w.X, 0); x < w.X+w.W && x < layout.Columns; x++ {
				if cells[y][x] != '.' {
					cells[y][x] = '#'
					continue
				}
				cells[y][x] = label
			}
		}
	}

	lines := make([]string, rows)
	for y, row := range cells {
		lines[y] = "|" + strings.Join(strings.Split(string(row), ""), "|") + "|"
	}
	return lines
}
