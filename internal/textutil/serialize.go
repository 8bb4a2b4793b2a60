package textutil

import "strings"

// JoinBlocks joins text blocks with one blank line of separation and ends
// the result with a trailing newline.
func JoinBlocks(blocks []string) string {
	joined := strings.Join(blocks, "\n\n")
	if !strings.HasSuffix(joined, "\n") {
		joined += "\n"
	}
	return joined
}
