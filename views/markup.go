package views

import (
	"slices"
	"strings"
)

// Node is one element of the markup tree produced by Project. Text is
// rendered before the children. nodeView knows the div, form and button tags.
type Node struct {
	Tag      string
	Classes  []string
	ID       string
	Text     string
	Action   string // event a form posts to, see EventPath
	Children []Node
}

func div(classes ...string) Node {
	return Node{Tag: "div", Classes: classes}
}

func (n Node) With(children ...Node) Node {
	n.Children = append(n.Children, children...)
	return n
}

func (n Node) HasClass(class string) bool {
	return slices.Contains(n.Classes, class)
}

// FindAll walks the tree depth first and returns every node carrying class.
func (n Node) FindAll(class string) []Node {
	var out []Node
	var walk func(Node)
	walk = func(cur Node) {
		if cur.HasClass(class) {
			out = append(out, cur)
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

// TextContent concatenates the text of the node and its descendants.
func (n Node) TextContent() string {
	var sb strings.Builder
	var walk func(Node)
	walk = func(cur Node) {
		sb.WriteString(cur.Text)
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func (n Node) ClassList() string {
	return strings.Join(n.Classes, " ")
}

func EventPath(event string) string {
	return "/events/" + event
}
