// Package planner coordinates the subject graph, the syllabus tree and the
// weakness queue on behalf of a front end.
package planner

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/abhisek/studyplan/internal/config"
	"github.com/abhisek/studyplan/internal/subjectgraph"
	"github.com/abhisek/studyplan/internal/syllabus"
	"github.com/abhisek/studyplan/internal/weakness"
)

// Position is a subject's location on a visual canvas. The planner stores
// it for front ends but never interprets it.
type Position struct {
	X, Y int
}

// TopicView is a read-only row of the syllabus in pre-order.
type TopicView struct {
	ID        string
	Title     string
	Depth     int
	Leaf      bool
	Completed bool
	Percent   float64
}

// Stats is the dashboard summary.
type Stats struct {
	TotalSubjects   int
	StudyPathLength int
	WeakTopics      int
	Completion      float64
}

// Service owns one graph, one tree and one queue and serializes every call
// behind a single mutex. It is safe for concurrent use.
type Service struct {
	mu        sync.Mutex
	cfg       config.PlannerConfig
	logger    *slog.Logger
	graph     *subjectgraph.Graph
	tree      *syllabus.Tree
	queue     *weakness.Queue
	positions map[string]Position
}

// New creates an empty planner. A nil logger falls back to slog.Default().
func New(cfg config.PlannerConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:       cfg,
		logger:    logger,
		graph:     subjectgraph.NewGraph(),
		tree:      syllabus.NewTree(cfg.RootTitle),
		queue:     weakness.NewQueue(),
		positions: make(map[string]Position),
	}
}

// AddSubject registers or updates a subject. Subjects scoring below the
// configured threshold are queued as a general weakness.
func (s *Service) AddSubject(id, name string, score float64) error {
	if id == "" {
		return ErrEmptyID
	}
	if !subjectgraph.ValidScore(score) {
		return fmt.Errorf("subject %q: %w, got %.2f", id, ErrInvalidScore, score)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subj := subjectgraph.NewSubject(id, name, score)
	s.graph.AddSubject(subj)
	if _, ok := s.positions[id]; !ok {
		s.positions[id] = Position{X: rand.IntN(400) + 50, Y: rand.IntN(300) + 50}
	}
	s.logger.Debug("subject added", "id", id, "name", name, "score", score)

	if score < s.cfg.WeakThreshold {
		s.queue.Insert(weakness.NewEntry(id, name+" (General)", subj))
		s.logger.Debug("weakness queued", "topic_id", id, "weakness", subj.Weakness())
	}
	return nil
}

// AddPrerequisite records that prereqID must be studied before subjectID.
// The cycle check and the insertion run in one critical section.
func (s *Service) AddPrerequisite(subjectID, prereqID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range []string{subjectID, prereqID} {
		if _, ok := s.graph.Subject(id); !ok {
			return fmt.Errorf("add prerequisite %q -> %q: %w: %q", prereqID, subjectID, ErrUnknownSubject, id)
		}
	}
	if !s.graph.CanAddDependency(subjectID, prereqID) {
		s.logger.Warn("prerequisite refused", "subject", subjectID, "prerequisite", prereqID)
		return fmt.Errorf("add prerequisite %q -> %q: %w", prereqID, subjectID, ErrCycle)
	}
	s.graph.AddPrerequisite(subjectID, prereqID)
	s.logger.Debug("prerequisite added", "subject", subjectID, "prerequisite", prereqID)
	return nil
}

// CanAddPrerequisite reports whether AddPrerequisite would currently accept
// the edge on cycle grounds.
func (s *Service) CanAddPrerequisite(subjectID, prereqID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.CanAddDependency(subjectID, prereqID)
}

// RemoveSubject deletes a subject, its edges and its position. Queued
// weaknesses for it are point-in-time snapshots and stay queued.
func (s *Service) RemoveSubject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.graph.RemoveSubject(id)
	delete(s.positions, id)
	s.logger.Debug("subject removed", "id", id)
}

// Subject returns a copy of the subject registered under id.
func (s *Service) Subject(id string) (subjectgraph.Subject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subj, ok := s.graph.Subject(id)
	if !ok {
		return subjectgraph.Subject{}, false
	}
	return *subj, true
}

// Subjects returns copies of every subject in insertion order.
func (s *Service) Subjects() []subjectgraph.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySubjects(s.graph.Subjects())
}

// Prerequisites returns copies of the direct prerequisites of id.
func (s *Service) Prerequisites(id string) []subjectgraph.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySubjects(s.graph.Prerequisites(id))
}

// StudyPath returns subjects in a valid study order, or an empty slice if
// the graph somehow contains a cycle.
func (s *Service) StudyPath() []subjectgraph.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySubjects(s.graph.TopologicalOrder())
}

// SetPosition stores a canvas position for a registered subject.
func (s *Service) SetPosition(id string, p Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.graph.Subject(id); !ok {
		return
	}
	s.positions[id] = p
}

// Position returns the canvas position of a subject.
func (s *Service) Position(id string) (Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.positions[id]
	return p, ok
}

// AddSyllabusTopic creates a topic under parentID. It reports false when
// the parent does not exist.
func (s *Service) AddSyllabusTopic(parentID, topicID, title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tree.FindTopic(parentID) == nil {
		return false
	}
	s.tree.AddTopic(parentID, syllabus.NewTopic(topicID, title))
	s.logger.Debug("topic added", "parent", parentID, "id", topicID)
	return true
}

// RemoveSyllabusTopic detaches a topic and its subtree.
func (s *Service) RemoveSyllabusTopic(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.RemoveTopic(id)
	s.logger.Debug("topic removed", "id", id)
}

// SetTopicCompleted sets a topic's completion flag. It reports false when
// the topic does not exist.
func (s *Service) SetTopicCompleted(id string, completed bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tree.FindTopic(id)
	if t == nil {
		return false
	}
	t.Completed = completed
	return true
}

// ToggleTopic flips a topic's completion flag. It reports false when the
// topic does not exist.
func (s *Service) ToggleTopic(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tree.FindTopic(id)
	if t == nil {
		return false
	}
	t.Completed = !t.Completed
	s.logger.Debug("topic toggled", "id", id, "completed", t.Completed)
	return true
}

// Syllabus returns the tree in pre-order.
func (s *Service) Syllabus() []TopicView {
	s.mu.Lock()
	defer s.mu.Unlock()

	var views []TopicView
	for t := range s.tree.All() {
		views = append(views, TopicView{
			ID:        t.ID,
			Title:     t.Title,
			Depth:     t.Depth(),
			Leaf:      t.IsLeaf(),
			Completed: t.Completed,
			Percent:   t.CompletionPercentage(),
		})
	}
	return views
}

// Progress returns the overall syllabus completion percentage.
func (s *Service) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.OverallProgress()
}

// AddWeakness queues a topic with an explicit weakness score. The subject
// is resolved by ID; an unknown subject leaves Entry.Subject nil.
func (s *Service) AddWeakness(topicID, topicName string, score float64, subjectID string) error {
	if topicID == "" {
		return ErrEmptyID
	}
	if !subjectgraph.ValidScore(score) {
		return fmt.Errorf("weakness %q: %w, got %.2f", topicID, ErrInvalidScore, score)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subj, _ := s.graph.Subject(subjectID)
	s.queue.Insert(weakness.Entry{
		TopicID:   topicID,
		TopicName: topicName,
		Score:     score,
		SubjectID: subjectID,
		Subject:   subj,
	})
	s.logger.Debug("weakness queued", "topic_id", topicID, "subject", subjectID, "weakness", score)
	return nil
}

// NextWeakTopic removes and returns the highest-priority weakness.
func (s *Service) NextWeakTopic() (weakness.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.queue.ExtractMax()
	return copyEntry(e), ok
}

// PeekWeakTopic returns the highest-priority weakness without removing it.
func (s *Service) PeekWeakTopic() (weakness.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.queue.PeekMax()
	return copyEntry(e), ok
}

// Weaknesses returns every queued weakness, weakest first.
func (s *Service) Weaknesses() []weakness.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.queue.Sorted()
	for i := range entries {
		entries[i] = copyEntry(entries[i])
	}
	return entries
}

// Stats returns the dashboard summary.
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		TotalSubjects:   s.graph.Len(),
		StudyPathLength: len(s.graph.TopologicalOrder()),
		WeakTopics:      s.queue.Len(),
		Completion:      s.tree.OverallProgress(),
	}
}

// Validate checks the underlying graph invariants.
func (s *Service) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.Validate()
}

func copySubjects(in []*subjectgraph.Subject) []subjectgraph.Subject {
	out := make([]subjectgraph.Subject, len(in))
	for i, subj := range in {
		out[i] = *subj
	}
	return out
}

// copyEntry gives the caller its own Subject so the graph record cannot be
// changed outside the lock.
func copyEntry(e weakness.Entry) weakness.Entry {
	if e.Subject != nil {
		subj := *e.Subject
		e.Subject = &subj
	}
	return e
}
