package aggregations

import "strings"

const (
	treeEdge = "├── "
	treeLast = "└── "
	treePipe = "│   "
	treeGap  = "    "
)

// Sprint renders the aggregation tree rooted at b into an indented
// tree structure for visualization and debugging purposes.
func Sprint(b Builder) string {
	var sb strings.Builder
	sb.WriteString(b.String())
	sb.WriteString("\n")
	printSubtree(&sb, b, "")
	return sb.String()
}

func printSubtree(sb *strings.Builder, b Builder, prefix string) {
	subs := b.SubAggregations()
	for i, sub := range subs {
		edge, indent := treeEdge, treePipe
		if i == len(subs)-1 {
			edge, indent = treeLast, treeGap
		}
		sb.WriteString(prefix)
		sb.WriteString(edge)
		sb.WriteString(sub.String())
		sb.WriteString("\n")
		printSubtree(sb, sub, prefix+indent)
	}
}
