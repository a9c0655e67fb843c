package generate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	verbosePrefix = "[verbose]"
	// maxVerboseContent caps how much model output is echoed per response.
	maxVerboseContent = 500
	truncatedMarker   = "... [truncated]"
)

func (c *ChatClient) logVerbose(format string, args ...any) {
	if c.Verbose == nil {
		return
	}
	for _, line := range strings.Split(fmt.Sprintf(format, args...), "\n") {
		fmt.Fprintf(c.Verbose, "%s %s\n", verbosePrefix, line)
	}
}

// truncateContent shortens s to maxVerboseContent bytes on a rune boundary.
func truncateContent(s string) string {
	if len(s) <= maxVerboseContent {
		return s
	}
	cut := maxVerboseContent
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + truncatedMarker
}
