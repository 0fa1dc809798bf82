package vocab

import (
	"bufio"
	"bytes"
	"strings"
)

// keyOrder lists keys in order of first appearance.
func keyOrder(data []byte) []string {
	seen := map[string]bool{}
	var keys []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || seen[fields[0]] {
			continue
		}
		seen[fields[0]] = true
		keys = append(keys, fields[0])
	}
	return keys
}
