package quiz

import (
	"fmt"
	"io"
)

// Tier selects the closing message for a result.
type Tier int

const (
	TierRetry Tier = iota
	TierClose
	TierPerfect
)

// closeRatio is the share of the total at which a result counts as close.
const closeRatio = 0.7

var tierMessages = map[Tier]string{
	TierPerfect: "Perfect score! Well done.",
	TierClose:   "Nice work! You're almost at a perfect score.",
	TierRetry:   "Review the basics and give it another try.",
}

// TierFor classifies a score. The close tier compares against the unrounded
// 0.7 * total, so 2 of 3 lands in TierRetry.
func TierFor(score, total int) Tier {
	switch {
	case score == total:
		return TierPerfect
	case float64(score) >= closeRatio*float64(total):
		return TierClose
	default:
		return TierRetry
	}
}

// Message returns the closing message for a tier.
func (t Tier) Message() string {
	return tierMessages[t]
}

// Report prints the score line and the tiered closing message.
func Report(out io.Writer, result Result, noColor bool) {
	fmt.Fprintln(out, stylizeBold(fmt.Sprintf("Result: %d / %d", result.Score, result.Total), noColor, colorResult))
	fmt.Fprintln(out, TierFor(result.Score, result.Total).Message())
}
