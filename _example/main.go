package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jkbrsn/colorterm"
)

func main() {
	args := os.Args
	if len(args) < 2 {
		log.Fatalf("Usage: go run main.go COLOR")
	}

	// Parse with the convenience function, which accepts both hex and decimal text
	base, err := colorterm.Parse(args[1])
	if err != nil {
		log.Fatalf("Failed to parse color: %v", err)
	}
	fmt.Printf("Basic example\n%s  %s  HSL(%s)  HSV(%s)\n\n",
		base.PaintHex(), base.Decimal(","), base.HSL(), base.HSV())

	// Derive harmony sets with more control by working in HSL directly
	hsl := base.HSL()
	fmt.Println("More involved example")
	for _, h := range colorterm.Harmonies {
		fmt.Printf("%-20s", h)
		for _, c := range base.Harmony(h) {
			fmt.Print(" ", c.PaintHex())
		}
		fmt.Println()
	}

	warm := hsl.RotateHue(-60).RGB()
	style := colorterm.NewANSI(&colorterm.Black, &warm).Bold(true)
	fmt.Println(style.Paint(" rotated by -60° "))
}
