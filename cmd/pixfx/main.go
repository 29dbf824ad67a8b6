// Command pixfx applies per-pixel color filters to image files.
//
// Usage:
//
//	pixfx list
//	pixfx next <filter>
//	pixfx apply -f sepia in.jpg out.png
//	pixfx cycle -n 6 in.png frames/
//	pixfx all in.png out/
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/pixfx/internal/cli"
)

func main() {
	if err := cli.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}
