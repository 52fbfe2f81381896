package kdl

import (
	"strings"
)

// Node is a single KDL node: a name, ordered scalar arguments and ordered
// child nodes. rawArgs keeps each argument exactly as it was written (bare
// keyword or quoted string) so untouched arguments survive re-serialization.
type Node struct {
	Name     string
	Args     []string
	Children []Node

	rawArgs  []string
	startOff int
	endOff   int
}

// Document is an ordered sequence of segments over the original source bytes.
// A segment either owns a node (spanning exactly the node's bytes, name
// through last argument or closing brace) or is verbatim text: comments,
// whitespace, separators and anything else between nodes. String re-emits
// every byte the caller did not touch exactly as it was read, including text
// sharing a line with a mutated node.
type Document struct {
	src             string
	segments        []*segment
	hadFinalNewline bool
}

type segment struct {
	node     *Node // nil for verbatim text
	startOff int   // byte offsets into src; -1 for appended nodes
	endOff   int
	dirty    bool
}

// ChildNames returns the names of the direct children of the first top-level
// node with the given name, in document order. A missing node, or a node
// without children, yields an empty slice.
func (d *Document) ChildNames(name string) []string {
	node := d.topLevel(name)
	if node == nil {
		return []string{}
	}
	names := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		names = append(names, child.Name)
	}
	return names
}

// SetScalar replaces the arguments of the first top-level node with the given
// name by the single value, leaving its children alone. When no such node
// exists, a new one is appended at the end of the document. Setting the value
// a node already carries is a no-op, so the operation is idempotent both
// structurally and textually.
func (d *Document) SetScalar(name, value string) {
	for _, seg := range d.segments {
		if seg.node == nil || seg.node.Name != name {
			continue
		}
		if len(seg.node.Args) == 1 && seg.node.Args[0] == value {
			return
		}
		seg.node.Args = []string{value}
		seg.node.rawArgs = []string{quote(value)}
		seg.dirty = true
		return
	}

	d.segments = append(d.segments, &segment{
		node:     &Node{Name: name, Args: []string{value}, rawArgs: []string{quote(value)}},
		startOff: -1,
		endOff:   -1,
		dirty:    true,
	})
}

// String renders the document back to its textual form. Only mutated or
// appended nodes are regenerated; everything else, the bytes in and around
// untouched nodes included, comes straight from the original source.
func (d *Document) String() string {
	var b strings.Builder
	for _, seg := range d.segments {
		if !seg.dirty {
			b.WriteString(d.src[seg.startOff:seg.endOff])
			continue
		}
		if seg.startOff < 0 && b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteString("\n")
		}
		b.WriteString(renderNode(seg.node, 0))
	}

	out := b.String()
	if d.hadFinalNewline && out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

func (d *Document) topLevel(name string) *Node {
	for _, seg := range d.segments {
		if seg.node != nil && seg.node.Name == name {
			return seg.node
		}
	}
	return nil
}

func renderNode(n *Node, depth int) string {
	var b strings.Builder
	indent := strings.Repeat("    ", depth)
	b.WriteString(indent)
	b.WriteString(n.Name)
	for i := range n.Args {
		b.WriteString(" ")
		b.WriteString(argText(n, i))
	}
	if len(n.Children) > 0 {
		b.WriteString(" {\n")
		for i := range n.Children {
			b.WriteString(renderNode(&n.Children[i], depth+1))
			b.WriteString("\n")
		}
		b.WriteString(indent)
		b.WriteString("}")
	}
	return b.String()
}

// argText emits an argument in its original spelling when known, falling back
// to quoting for arguments created programmatically.
func argText(n *Node, i int) string {
	if i < len(n.rawArgs) {
		return n.rawArgs[i]
	}
	return quote(n.Args[i])
}

func quote(arg string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range arg {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
