// Package sequence continues prefixed numeric ids such as m30 or s412.
package sequence

import (
	"strconv"
	"strings"
)

// Next returns prefix followed by one more than the highest number found in ids.
// Ids that do not carry the prefix or a number are ignored.
func Next(prefix string, ids []string) string {
	highest := 0
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if n, err := strconv.Atoi(id[len(prefix):]); err == nil && n > highest {
			highest = n
		}
	}
	return prefix + strconv.Itoa(highest+1)
}
