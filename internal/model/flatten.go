package model

// FlatElement is an element with a path breadcrumb instead of children.
type FlatElement struct {
	Element Element
	Path    string
	Depth   int
}

// FlattenElements converts a tree of elements into a flat list.
// Each element gets a path string showing its location in the tree
// using role names joined with " > ".
func FlattenElements(elements []Element) []FlatElement {
	var result []FlatElement
	for _, el := range elements {
		flattenRecursive(el, "", 1, &result)
	}
	return result
}

func flattenRecursive(el Element, parentPath string, depth int, result *[]FlatElement) {
	currentPath := el.Role
	if parentPath != "" {
		currentPath = parentPath + " > " + el.Role
	}

	flat := el
	flat.Children = nil
	*result = append(*result, FlatElement{Element: flat, Path: currentPath, Depth: depth})

	for _, child := range el.Children {
		flattenRecursive(child, currentPath, depth+1, result)
	}
}
