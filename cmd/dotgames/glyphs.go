package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dotgames/internal/core"
)

var (
	flagGlyphIndex  int
	flagGlyphNumber int
)

var glyphsCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "Print the glyph table",
	Long: `Prints every glyph the console can draw, with the column bytes sent to
the MAX7219 digit registers.

Examples:
  dotgames glyphs
  dotgames glyphs --index 11
  dotgames glyphs --number 42`,
	Args: cobra.NoArgs,
	RunE: runGlyphs,
}

var glyphNames = map[int]string{
	core.GlyphIndexSnake: "snake",
	core.GlyphIndexSkull: "skull",
	core.GlyphIndexCup:   "cup",
}

var glyphHeader = lipgloss.NewStyle().Bold(true)

func init() {
	glyphsCmd.Flags().IntVar(&flagGlyphIndex, "index", -1, "Print only this table index")
	glyphsCmd.Flags().IntVar(&flagGlyphNumber, "number", -1, "Print a score from 0 to 99")
}

func runGlyphs(cmd *cobra.Command, args []string) error {
	if flagGlyphNumber >= 0 {
		printGlyph(fmt.Sprintf("score %d", flagGlyphNumber), core.NumberGlyph(flagGlyphNumber))
		return nil
	}

	if flagGlyphIndex >= 0 {
		g, ok := core.GlyphAt(flagGlyphIndex)
		if !ok {
			return fmt.Errorf("no glyph at index %d", flagGlyphIndex)
		}
		printGlyph(glyphName(flagGlyphIndex), g)
		return nil
	}

	for i := 0; ; i++ {
		g, ok := core.GlyphAt(i)
		if !ok {
			break
		}
		printGlyph(glyphName(i), g)
	}
	return nil
}

func glyphName(index int) string {
	if name, ok := glyphNames[index]; ok {
		return fmt.Sprintf("%d %s", index, name)
	}
	return fmt.Sprintf("%d digit", index)
}

func printGlyph(name string, g core.Glyph) {
	var f core.FrameBuffer
	f.DrawGlyph(g)

	cols := f.Columns()
	hex := make([]string, len(cols))
	for i, c := range cols {
		hex[i] = fmt.Sprintf("%02X", c)
	}

	fmt.Println(glyphHeader.Render(name))
	fmt.Println(f.String())
	fmt.Printf("columns: %s\n\n", strings.Join(hex, " "))
}
