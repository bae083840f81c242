package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pll_trainer/internal/pll"
)

var canonicalCmd = &cobra.Command{
	Use:   "canonical <preAUF> <pll> <postAUF>",
	Short: "Show the simplest way to write a case",
	Long: `Cases of symmetric PLLs can be written with different AUFs. Show the one
with the fewest AUF turns, and every other way to write it.

AUFs are written none, U, U2 or U'.

Examples:
  plltrainer canonical U H none
  plltrainer canonical "U'" Z U`,
	Args: cobra.ExactArgs(3),
	RunE: runCanonical,
}

var identifyCmd = &cobra.Command{
	Use:   "identify <algorithm>",
	Short: "Find the PLL an algorithm solves",
	Long: `Find which PLL an algorithm solves, and the AUFs that line it up with the
case as the trainer shows it.

Examples:
  plltrainer identify "R U R' U' R' F R2 U' R' U' R U R' F'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIdentify,
}

func init() {
	rootCmd.AddCommand(canonicalCmd)
	rootCmd.AddCommand(identifyCmd)
}

// parseCase parses a case given as three arguments.
func parseCase(pre, p, post string) (pll.Case, error) {
	preAUF, err := pll.ParseAUF(pre)
	if err != nil {
		return pll.Case{}, err
	}
	perm, err := pll.ParsePLL(p)
	if err != nil {
		return pll.Case{}, err
	}
	postAUF, err := pll.ParseAUF(post)
	if err != nil {
		return pll.Case{}, err
	}
	return pll.NewCase(preAUF, perm, postAUF), nil
}

func runCanonical(cmd *cobra.Command, args []string) error {
	c, err := parseCase(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	canonical := c.Canonical()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, label("Canonical", caseStyle.Render(canonical.String())))
	fmt.Fprintln(out, label("AUF turns", fmt.Sprint(canonical.Cost())))
	if pll.HasFullSymmetry(c.PLL) {
		fmt.Fprintln(out, label("Angle", "same from every side"))
	} else {
		fmt.Fprintln(out, label("Angle", pll.RecognitionAngle(c.PLL, canonical.PreAUF).String()))
	}

	var same []string
	for _, shift := range pll.SymmetryGroup(c.PLL) {
		other := pll.NewCase(canonical.PreAUF.Add(shift.Pre), c.PLL, canonical.PostAUF.Add(shift.Post))
		if other != canonical {
			same = append(same, other.String())
		}
	}
	if len(same) > 0 {
		fmt.Fprintln(out, label("Same as", strings.Join(same, ", ")))
	}
	return nil
}

func runIdentify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	alg, err := parseArgs(out, args)
	if err != nil {
		return err
	}

	p, m, err := pll.Identify(alg)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, label("PLL", caseStyle.Render(p.Letters()+"-perm")))
	fmt.Fprintln(out, label("preAUF", m.Pre.String()))
	fmt.Fprintln(out, label("postAUF", m.Post.String()))
	return nil
}
