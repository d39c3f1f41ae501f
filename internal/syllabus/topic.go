package syllabus

import "slices"

// Topic is a node in the syllabus tree. Completed is only meaningful for
// leaves; an internal node's completion is derived from its children.
type Topic struct {
	ID        string
	Title     string
	Completed bool

	children []*Topic
	parent   *Topic // non-owning back-pointer
}

// NewTopic creates a detached, incomplete topic.
func NewTopic(id, title string) *Topic {
	return &Topic{ID: id, Title: title}
}

// Children returns the topic's children in order.
func (t *Topic) Children() []*Topic {
	return slices.Clone(t.children)
}

// Parent returns the parent topic, or nil for the root or a detached topic.
func (t *Topic) Parent() *Topic {
	return t.parent
}

// IsLeaf reports whether the topic has no children.
func (t *Topic) IsLeaf() bool {
	return len(t.children) == 0
}

// Depth returns the number of ancestors above t.
func (t *Topic) Depth() int {
	d := 0
	for p := t.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// CompletionPercentage returns 100 or 0 for a leaf. For an internal node it
// returns the unweighted mean of its children's percentages.
func (t *Topic) CompletionPercentage() float64 {
	if len(t.children) == 0 {
		if t.Completed {
			return 100.0
		}
		return 0.0
	}
	var sum float64
	for _, c := range t.children {
		sum += c.CompletionPercentage()
	}
	return sum / float64(len(t.children))
}

// find returns the first topic with the given ID in pre-order.
func (t *Topic) find(id string) *Topic {
	if t.ID == id {
		return t
	}
	for _, c := range t.children {
		if found := c.find(id); found != nil {
			return found
		}
	}
	return nil
}

func (t *Topic) addChild(child *Topic) {
	child.parent = t
	t.children = append(t.children, child)
}

func (t *Topic) detach() {
	if t.parent == nil {
		return
	}
	p := t.parent
	p.children = slices.DeleteFunc(p.children, func(c *Topic) bool { return c == t })
	t.parent = nil
}

// isAncestorOf reports whether t is n or one of n's ancestors.
func (t *Topic) isAncestorOf(n *Topic) bool {
	for p := n; p != nil; p = p.parent {
		if p == t {
			return true
		}
	}
	return false
}
