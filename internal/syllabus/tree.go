// Package syllabus models a course syllabus as a rooted tree of topics and
// aggregates completion from the leaves up.
package syllabus

import "iter"

// RootID is the reserved identifier of the synthesized root topic.
const RootID = "root"

// Tree owns a rooted hierarchy of topics. Ownership runs from parent to
// child; parent pointers are only used for upward navigation and removal.
//
// Tree is not safe for concurrent use.
type Tree struct {
	root *Topic
}

// NewTree creates a tree whose root carries rootTitle.
func NewTree(rootTitle string) *Tree {
	return &Tree{root: NewTopic(RootID, rootTitle)}
}

// Root returns the root topic.
func (tr *Tree) Root() *Topic {
	return tr.root
}

// AddTopic appends t to the children of the topic identified by parentID.
// Unknown parents, a nil topic, the root itself, and attempts to attach a
// topic beneath its own subtree are ignored. A topic that is already
// attached elsewhere is moved.
func (tr *Tree) AddTopic(parentID string, t *Topic) {
	if t == nil || t == tr.root {
		return
	}
	parent := tr.FindTopic(parentID)
	if parent == nil || t.isAncestorOf(parent) {
		return
	}
	t.detach()
	parent.addChild(t)
}

// FindTopic returns the first topic with the given ID in pre-order, or nil.
func (tr *Tree) FindTopic(id string) *Topic {
	return tr.root.find(id)
}

// RemoveTopic detaches the topic and its whole subtree. The root cannot be
// removed; unknown IDs are ignored.
func (tr *Tree) RemoveTopic(id string) {
	target := tr.FindTopic(id)
	if target == nil || target.parent == nil {
		return
	}
	target.detach()
}

// PreOrder returns every topic, root first, each parent before its children.
func (tr *Tree) PreOrder() []*Topic {
	var result []*Topic
	for t := range tr.All() {
		result = append(result, t)
	}
	return result
}

// All yields the same sequence as PreOrder lazily. It may be ranged over
// any number of times.
func (tr *Tree) All() iter.Seq[*Topic] {
	return func(yield func(*Topic) bool) {
		walk(tr.root, yield)
	}
}

func walk(t *Topic, yield func(*Topic) bool) bool {
	if !yield(t) {
		return false
	}
	for _, c := range t.children {
		if !walk(c, yield) {
			return false
		}
	}
	return true
}

// Len returns the number of topics including the root.
func (tr *Tree) Len() int {
	n := 0
	for range tr.All() {
		n++
	}
	return n
}

// OverallProgress returns the root's completion percentage.
func (tr *Tree) OverallProgress() float64 {
	return tr.root.CompletionPercentage()
}
