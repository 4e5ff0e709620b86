package threadtree

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[*Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a comment tree in Graphviz DOT
// format (for debugging purposes).
func Tree2Dot(tree Tree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	root := tree.Root()
	if root == nil {
		io.WriteString(w, "}\n")
		return
	}
	ids := newtable()
	nodelist, edgelist := "", ""
	rootID := ids.alloc(root)
	nodelist += fmt.Sprintf("\"%d\" [label=\"root\"%s];\n", rootID, nodeDotStyles(root))
	tree.EachNode(func(node *Node) bool {
		ID := ids.alloc(node)
		label := node.ID()
		if node.Collapsed {
			label += " [collapsed]"
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", ID, label, nodeDotStyles(node))
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ids.find(node.Parent()), ID)
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(node *Node) string {
	s := ",style=filled"
	if node.IsRoot() {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	} else {
		s += ",shape=box"
	}
	return s
}
