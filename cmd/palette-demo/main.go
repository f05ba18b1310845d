// Command palette-demo prints every holiday palette as color swatches,
// without the interactive preview. Useful for checking terminal rendering
// and for eyeballing palette changes in a plain shell.
package main

import (
	"fmt"

	"github.com/diverger/gh-holiday/internal/themes"
	"github.com/diverger/gh-holiday/internal/ui"
)

func main() {
	fmt.Println(ui.TitleStyle.Render("gh-holiday palettes"))
	fmt.Println()

	for _, def := range themes.All() {
		fmt.Printf("%-15s %s\n", def.Key, ui.SubtitleStyle.Render(def.Description))
		fmt.Printf("  light  %s %s\n", ui.SwatchRow(themes.SortByLuminance(def.LightDots)), def.LightColor)
		fmt.Printf("  dark   %s %s\n", ui.SwatchRow(themes.SortByLuminance(def.DarkDots)), def.DarkColor)
		fmt.Println()
	}
}
