package storage

// SetNodeProperty sets a property on a node
func (g *Graph) SetNodeProperty(id uint64, key string, value Value) error {
	node, exists := g.nodes[id]
	if !exists {
		return NodeNotFoundError("SetNodeProperty", id)
	}
	node.Properties[key] = value
	return nil
}

// NodeProperty reads a property from a node. A missing property is a
// lookup failure, not a zero value.
func (g *Graph) NodeProperty(id uint64, key string) (Value, error) {
	node, exists := g.nodes[id]
	if !exists {
		return Value{}, NodeNotFoundError("NodeProperty", id)
	}
	value, ok := node.Properties[key]
	if !ok {
		return Value{}, PropertyNotFoundError("NodeProperty", "node", id, key)
	}
	return value, nil
}

// SetEdgeProperty sets a property on the edge between from and to
func (g *Graph) SetEdgeProperty(from, to uint64, key string, value Value) error {
	edge := g.findEdge(from, to)
	if edge == nil {
		return EdgeNotFoundError("SetEdgeProperty", from, to)
	}
	edge.Properties[key] = value
	return nil
}

// EdgeProperty reads a property from the edge between from and to
func (g *Graph) EdgeProperty(from, to uint64, key string) (Value, error) {
	edge := g.findEdge(from, to)
	if edge == nil {
		return Value{}, EdgeNotFoundError("EdgeProperty", from, to)
	}
	value, ok := edge.Properties[key]
	if !ok {
		return Value{}, PropertyNotFoundError("EdgeProperty", "edge", edge.ID, key)
	}
	return value, nil
}

// ClearNodeProperties removes every property from every node
func (g *Graph) ClearNodeProperties() {
	for _, node := range g.nodes {
		node.Properties = make(map[string]Value)
	}
}

// ClearEdgeProperties removes every property from every edge
func (g *Graph) ClearEdgeProperties() {
	for _, edge := range g.edges {
		edge.Properties = make(map[string]Value)
	}
}
