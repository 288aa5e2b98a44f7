package main

// EffectNode transforms the framebuffer in place for one frame, reading
// whatever audio features it needs from af.
type EffectNode interface {
	Name() string
	Render(fb *Framebuffer, af *AudioFrame)
}

// EffectChain runs nodes in order. Disabled entries are kept in place so
// toggling an effect does not reorder the stack.
type EffectChain struct {
	nodes   []EffectNode
	enabled []bool
}

func CreateEffectChain(nodes ...EffectNode) *EffectChain {
	chain := &EffectChain{nodes: nodes}
	chain.enabled = make([]bool, len(nodes))
	for i := range chain.enabled {
		chain.enabled[i] = true
	}
	return chain
}

func (c *EffectChain) Append(node EffectNode) {
	c.nodes = append(c.nodes, node)
	c.enabled = append(c.enabled, true)
}

func (c *EffectChain) Render(fb *Framebuffer, af *AudioFrame) {
	for i, node := range c.nodes {
		if c.enabled[i] {
			node.Render(fb, af)
		}
	}
}

func (c *EffectChain) Toggle(name string) bool {
	for i, node := range c.nodes {
		if node.Name() == name {
			c.enabled[i] = !c.enabled[i]
			return c.enabled[i]
		}
	}
	return false
}

func (c *EffectChain) IsEnabled(name string) bool {
	for i, node := range c.nodes {
		if node.Name() == name {
			return c.enabled[i]
		}
	}
	return false
}

func (c *EffectChain) Find(name string) EffectNode {
	for _, node := range c.nodes {
		if node.Name() == name {
			return node
		}
	}
	return nil
}
