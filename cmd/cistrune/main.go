// Command cistrune exports a Cistercian numeral glyph for an integer value.
//
// Usage:
//
//	cistrune [-o DIR] [-png] VALUE
//
// VALUE is clamped to [1, 9999] before composition; with no VALUE the
// smallest representable number is used. The glyph is written to
// rune-{value}.svg, or rune-{value}.png with -png.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/cistrune/export"
	"github.com/katalvlaran/cistrune/glyph"
	"github.com/katalvlaran/cistrune/raster"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "USAGE: %s [-o DIR] [-png] VALUE\n", os.Args[0])
		flag.PrintDefaults()
	}
	outDir := flag.String("o", ".", "directory to write the exported glyph into")
	asPNG := flag.Bool("png", false, "export a PNG raster instead of SVG")
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	// Empty input is never forwarded: fall back to the smallest glyph.
	value := glyph.MinValue
	if flag.NArg() == 1 {
		v, err := strconv.Atoi(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: VALUE must be an integer, got %q\n", flag.Arg(0))
			flag.Usage()
			os.Exit(1)
		}
		value = clamp(v)
	}

	if err := run(value, *outDir, *asPNG); err != nil {
		log.Fatalf("cistrune: %v", err)
	}
}

// clamp forces v into the representable domain. Clamping is this input
// layer's job; the core itself rejects out-of-domain values instead.
func clamp(v int) int {
	if v < glyph.MinValue {
		return glyph.MinValue
	}
	if v > glyph.MaxValue {
		return glyph.MaxValue
	}

	return v
}

func run(value int, dir string, asPNG bool) error {
	name := export.Filename(value)
	if asPNG {
		name = fmt.Sprintf("rune-%d.png", value)
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}

	if err := write(f, value, asPNG); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

func write(f *os.File, value int, asPNG bool) error {
	if !asPNG {
		return export.WriteSVG(f, value)
	}

	img, err := raster.Render(value)
	if err != nil {
		return err
	}

	return png.Encode(f, img)
}
