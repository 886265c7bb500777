package domain

// TreeNode is a navigable view of the inheritance forest for interactive
// browsing: categories at the top, root profiles beneath them, children
// below their parents.
type TreeNode struct {
	Name       string
	Category   Category
	Profile    *Profile // nil for the synthetic root and category nodes
	Broken     bool
	Children   []*TreeNode
	Parent     *TreeNode
	IsExpanded bool
}

// BuildTree materializes the forest of a linked set. Category nodes start
// expanded; profile subtrees start collapsed.
func (ls *LinkedSet) BuildTree() *TreeNode {
	root := &TreeNode{Name: "Profiles", IsExpanded: true}

	for _, category := range Categories {
		catNode := &TreeNode{
			Name:       category.String(),
			Category:   category,
			Parent:     root,
			IsExpanded: true,
		}
		for _, p := range ls.Roots(category) {
			catNode.Children = append(catNode.Children, ls.subtree(p, catNode))
		}
		if len(catNode.Children) > 0 {
			root.Children = append(root.Children, catNode)
		}
	}

	return root
}

func (ls *LinkedSet) subtree(p *Profile, parent *TreeNode) *TreeNode {
	node := &TreeNode{
		Name:     p.Name,
		Category: p.Category,
		Profile:  p,
		Broken:   ls.IsBroken(p),
		Parent:   parent,
	}
	for _, child := range ls.Children(p) {
		node.Children = append(node.Children, ls.subtree(child, node))
	}
	return node
}

// Flatten returns all visible nodes in the tree (for list rendering).
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	n.flattenRecursive(&result)
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// Depth returns the depth of this node in the tree.
func (n *TreeNode) Depth() int {
	depth := 0
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		depth++
	}
	return depth
}

// Toggle expands or collapses the node.
func (n *TreeNode) Toggle() {
	n.IsExpanded = !n.IsExpanded
}

// Expand sets the node as expanded.
func (n *TreeNode) Expand() {
	n.IsExpanded = true
}

// Collapse sets the node as collapsed.
func (n *TreeNode) Collapse() {
	n.IsExpanded = false
}
