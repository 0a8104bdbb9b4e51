package reminder

import (
	"regexp"
	"strings"
)

// orderPattern matches order identifiers: the C# prefix followed by 4-5 digits
var orderPattern = regexp.MustCompile(`(?i)c#\d{4,5}`)

// ExtractOrders scans the corpus for order identifiers and returns the
// deduplicated, uppercased set in first-seen order
func ExtractOrders(corpus string) []string {
	matches := orderPattern.FindAllString(corpus, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var orders []string
	for _, match := range matches {
		normalized := strings.ToUpper(match)
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		orders = append(orders, normalized)
	}
	return orders
}
