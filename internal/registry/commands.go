package registry

import "github.com/StoreStation/VibeShitCraft/internal/proto"

// CommandNodeKind is the closed variant set of spec.md §3's CommandNode.
type CommandNodeKind byte

const (
	NodeRoot CommandNodeKind = iota
	NodeLiteral
	NodeArgument
)

// CommandNode is one node in the command DAG, referenced by index.
type CommandNode struct {
	Kind       CommandNodeKind
	Name       string // Literal/Argument name
	Parser     string // Argument only: brigadier parser identifier
	Suggestion string // Argument only: optional suggestion type, "" if none

	Executable bool
	Children   []int32
	Redirect   int32 // -1 if none
}

func (n CommandNode) flags() byte {
	var f byte
	switch n.Kind {
	case NodeLiteral:
		f |= 0x01
	case NodeArgument:
		f |= 0x02
	}
	if n.Executable {
		f |= 0x04
	}
	if n.Redirect >= 0 {
		f |= 0x08
	}
	if n.Kind == NodeArgument && n.Suggestion != "" {
		f |= 0x10
	}
	return f
}

func (n CommandNode) writeTo(w *proto.Writer) {
	w.Byte(n.flags())
	w.VarInt(int32(len(n.Children)))
	for _, c := range n.Children {
		w.VarInt(c)
	}
	if n.Redirect >= 0 {
		w.VarInt(n.Redirect)
	}
	if n.Kind == NodeLiteral || n.Kind == NodeArgument {
		w.String(n.Name)
	}
	if n.Kind == NodeArgument {
		w.String(n.Parser)
		if n.Suggestion != "" {
			w.String(n.Suggestion)
		}
	}
}

// CommandGraph is the full node table plus the root's index.
type CommandGraph struct {
	Nodes []CommandNode
	Root  int32
}

// WriteTo encodes the Commands packet body: varint node count, each node,
// then the root index.
func (g CommandGraph) WriteTo(w *proto.Writer) {
	w.VarInt(int32(len(g.Nodes)))
	for _, n := range g.Nodes {
		n.writeTo(w)
	}
	w.VarInt(g.Root)
}

// DefaultCommandGraph declares the minimal "/help" and "/list" literals,
// folded in from original_source's client_handler/play.rs which sends a
// Commands packet with exactly this shape on join — a feature spec.md's
// distillation dropped but its Non-goals do not exclude (command
// *execution* semantics are out of scope; declaring the tree is not).
func DefaultCommandGraph() CommandGraph {
	help := CommandNode{Kind: NodeLiteral, Name: "help", Executable: true, Redirect: -1}
	list := CommandNode{Kind: NodeLiteral, Name: "list", Executable: true, Redirect: -1}
	root := CommandNode{Kind: NodeRoot, Children: []int32{1, 2}, Redirect: -1}
	return CommandGraph{Nodes: []CommandNode{root, help, list}, Root: 0}
}
