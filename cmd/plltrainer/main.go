// PLL Trainer - CLI application for learning to recognize and solve PLL cases.
package main

import (
	"github.com/SeamusWaldron/pll_trainer/internal/cli"
)

func main() {
	cli.Execute()
}
