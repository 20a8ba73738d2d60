package model

import "strings"

// Filter selects elements of a flattened tree. The zero value keeps all.
type Filter struct {
	// Roles keeps elements whose fixture role is listed.
	Roles []string
	// Text keeps elements whose name, value or description contains it,
	// case-insensitively.
	Text string
}

// Empty reports whether f keeps every element.
func (f Filter) Empty() bool {
	return len(f.Roles) == 0 && f.Text == ""
}

// FilterFlat applies f to a flat element list, preserving order. Paths are
// kept, so matches still show where they sit in the tree.
func FilterFlat(elements []FlatElement, f Filter) []FlatElement {
	if f.Empty() {
		return elements
	}

	roleSet := make(map[string]bool, len(f.Roles))
	for _, r := range f.Roles {
		roleSet[strings.ToLower(r)] = true
	}
	textLower := strings.ToLower(f.Text)

	var result []FlatElement
	for _, fe := range elements {
		roleMatch := len(roleSet) == 0 || roleSet[strings.ToLower(fe.Element.Role)]
		textMatch := textLower == "" || textMatchesElement(fe.Element, textLower)
		if roleMatch && textMatch {
			result = append(result, fe)
		}
	}
	return result
}

func textMatchesElement(el Element, textLower string) bool {
	return strings.Contains(strings.ToLower(el.Name), textLower) ||
		strings.Contains(strings.ToLower(el.Value), textLower) ||
		strings.Contains(strings.ToLower(el.Description), textLower)
}
