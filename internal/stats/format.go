package stats

import "fmt"

// FormatTime formats milliseconds as seconds with two decimals, e.g. "1.50s".
func FormatTime(ms float64) string {
	return fmt.Sprintf("%.2fs", ms/1000)
}

// FormatTPS formats turns per second with two decimals, e.g. "7.33 TPS".
func FormatTPS(tps float64) string {
	return fmt.Sprintf("%.2f TPS", tps)
}

// CaseLine formats a case for the worst cases list.
func CaseLine(c CaseSummary) string {
	if c.DNF {
		return c.PLL.Letters() + "-perm: DNF"
	}
	return fmt.Sprintf("%s-perm: %s %s", c.PLL.Letters(), FormatTime(c.AverageTimeMs), FormatTPS(c.AverageTPS))
}
