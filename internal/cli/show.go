package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/seamusw/scramblesearch/internal/cube"
)

var showLine int

var showCmd = &cobra.Command{
	Use:   "show <solution|file>",
	Short: "Render a solution as a colored cube net",
	Long: `Render a 54-integer solution line as a colored terminal cube net.

The argument is either a solution line itself (54 comma-separated sticker
values) or the path of a solution file, in which case --line selects which
line to render.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVar(&showLine, "line", 1, "Line to render when the argument is a file")
}

func runShow(cmd *cobra.Command, args []string) error {
	line := args[0]
	if _, err := os.Stat(line); err == nil {
		line, err = readLine(args[0], showLine)
		if err != nil {
			return err
		}
	}

	c, err := cube.ParseLine(line)
	if err != nil {
		return err
	}

	fmt.Print(renderNet(c))
	fmt.Printf("Connectedness: %s\n", cube.ColorConnectedness(c))
	return nil
}

func readLine(path string, n int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open solution file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 1; scanner.Scan(); i++ {
		if i == n {
			return scanner.Text(), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read solution file: %w", err)
	}
	return "", fmt.Errorf("%s has fewer than %d lines", path, n)
}

// stickerStyles maps each color to a styled cell.
var stickerStyles = [cube.Colors]lipgloss.Style{
	cube.Back:  lipgloss.NewStyle().Background(lipgloss.Color("21")).Foreground(lipgloss.Color("255")),
	cube.Left:  lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("232")),
	cube.Up:    lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("232")),
	cube.Right: lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	cube.Front: lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("232")),
	cube.Down:  lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("232")),
}

func renderCell(s uint8) string {
	color := cube.ColorOf(s)
	return stickerStyles[color].Render(" " + color.String() + " ")
}

// renderNet draws the cube as the unfolded net the slot layout uses: Back
// on top, then Left/Up/Right, then Front and Down.
func renderNet(c *cube.Cube) string {
	var b strings.Builder
	indent := strings.Repeat(" ", 9)

	face := func(f int, row int) string {
		start := 9*f + 3*row
		return renderCell(c[start]) + renderCell(c[start+1]) + renderCell(c[start+2])
	}

	for row := 0; row < 3; row++ {
		b.WriteString(indent + face(0, row) + "\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(face(1, row) + face(2, row) + face(3, row) + "\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent + face(4, row) + "\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent + face(5, row) + "\n")
	}
	return b.String()
}
