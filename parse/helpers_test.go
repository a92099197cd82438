package parse

// types returns the NodeType of each node in nodes, for compact assertions
// against a wanted shape without comparing full node contents.
func types(nodes []Node) []NodeType {
	out := make([]NodeType, len(nodes))
	for i, n := range nodes {
		out[i] = n.Type()
	}
	return out
}

// messages returns the WarningMessage of each warning, for compact
// assertions against a wanted set of anomalies.
func messages(warnings []Warning) []WarningMessage {
	out := make([]WarningMessage, len(warnings))
	for i, w := range warnings {
		out[i] = w.Message
	}
	return out
}

func textValue(t Node) string {
	tn, ok := t.(*TextNode)
	if !ok {
		return ""
	}
	return string(tn.Value)
}
