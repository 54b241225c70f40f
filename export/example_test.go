package export_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/cistrune/export"
)

// ExampleWriteSVG exports the glyph for 1993 to standard output.
func ExampleWriteSVG() {
	if err := export.WriteSVG(os.Stdout, 1993); err != nil {
		fmt.Println("error:", err)
	}
}

// ExampleFilename shows the export naming convention.
func ExampleFilename() {
	fmt.Println(export.Filename(1993))
	// Output: rune-1993.svg
}
