package concessions

import "strings"

// Filter returns available items in category (All passes through) whose
// name or description contains query, case-insensitively.
func Filter(items []Item, category, query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []Item{}
	for _, item := range items {
		if !item.IsAvailable {
			continue
		}
		if category != "" && category != string(CategoryAll) && !strings.EqualFold(string(item.Category), category) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Categories lists All followed by each distinct category in catalogue order
func Categories(items []Item) []Category {
	out := []Category{CategoryAll}
	seen := map[Category]bool{}
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}
