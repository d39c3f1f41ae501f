// Package weakness ranks study topics by how weak the learner is at them.
package weakness

import (
	"cmp"
	"container/heap"
	"slices"

	"github.com/abhisek/studyplan/internal/subjectgraph"
)

// Entry is a topic queued for review. Score is a snapshot of the weakness
// at insertion time; later changes to Subject are not reflected.
type Entry struct {
	TopicID   string
	TopicName string
	Score     float64
	SubjectID string
	Subject   *subjectgraph.Subject // observed, not owned; may be nil
}

// NewEntry builds an entry scored by the subject's current weakness.
// subject must not be nil.
func NewEntry(topicID, topicName string, subject *subjectgraph.Subject) Entry {
	return Entry{
		TopicID:   topicID,
		TopicName: topicName,
		Score:     subject.Weakness(),
		SubjectID: subject.ID,
		Subject:   subject,
	}
}

// Queue is a binary max-heap of entries keyed by Score.
//
// Queue is not safe for concurrent use.
type Queue struct {
	h entryHeap
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Insert adds e, sifting it up past parents with a strictly lower score.
func (q *Queue) Insert(e Entry) {
	heap.Push(&q.h, e)
}

// ExtractMax removes and returns the weakest entry. ok is false when the
// queue is empty.
func (q *Queue) ExtractMax() (e Entry, ok bool) {
	if len(q.h) == 0 {
		return Entry{}, false
	}
	return heap.Pop(&q.h).(Entry), true
}

// PeekMax returns the weakest entry without removing it.
func (q *Queue) PeekMax() (e Entry, ok bool) {
	if len(q.h) == 0 {
		return Entry{}, false
	}
	return q.h[0], true
}

// Sorted returns a copy of every entry ordered by descending score. The
// relative order of equal scores is unspecified.
func (q *Queue) Sorted() []Entry {
	sorted := slices.Clone(q.h)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return sorted
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	return len(q.h)
}

// IsEmpty reports whether the queue has no entries.
func (q *Queue) IsEmpty() bool {
	return len(q.h) == 0
}

// entryHeap adapts a dense slice to container/heap. Parent of i is
// (i-1)/2, children are 2i+1 and 2i+2. container/heap only swaps when Less
// holds strictly and prefers the left child on ties.
type entryHeap []Entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return h[i].Score > h[j].Score }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(Entry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = Entry{}
	*h = old[:n-1]
	return e
}
