package site

import (
	"strings"

	"pkt.systems/mdsite"
)

// ExtractTitle returns the text of the first line starting with "# ".
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:]), nil
		}
	}
	return "", mdsite.ErrNoTitleFound
}
