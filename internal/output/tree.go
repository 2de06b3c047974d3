package output

import (
	"path"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "
)

// treeNode is a directory or file in a rendered tree.
type treeNode struct {
	name     string
	isDir    bool
	children []*treeNode
}

// RenderFileTree renders slash-separated relative paths as a tree rooted at
// rootName. Directories sort before files, then alphabetically.
func RenderFileTree(rootName string, files []string) string {
	if len(files) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, isDir: true}
	for _, file := range files {
		parts := strings.Split(path.Clean(file), "/")
		current := root
		for i, part := range parts {
			current = current.child(part, i < len(parts)-1)
		}
	}
	root.sort()

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(rootName + "/"))
	sb.WriteString("\n")
	for i, child := range root.children {
		child.render(&sb, "", i == len(root.children)-1)
	}
	return sb.String()
}

func (n *treeNode) child(name string, isDir bool) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	c := &treeNode{name: name, isDir: isDir}
	n.children = append(n.children, c)
	return c
}

func (n *treeNode) sort() {
	sort.Slice(n.children, func(i, j int) bool {
		a, b := n.children[i], n.children[j]
		if a.isDir != b.isDir {
			return a.isDir
		}
		return a.name < b.name
	})
	for _, c := range n.children {
		c.sort()
	}
}

func (n *treeNode) render(sb *strings.Builder, prefix string, last bool) {
	connector, childPrefix := treeEdge, prefix+treeVert
	if last {
		connector, childPrefix = treeLast, prefix+treeSpace
	}

	name := n.name
	if n.isDir {
		name += "/"
	}
	sb.WriteString(prefix + connector + name + "\n")

	for i, c := range n.children {
		c.render(sb, childPrefix, i == len(n.children)-1)
	}
}
