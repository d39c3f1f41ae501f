// Package curriculum reads study plans from YAML documents and applies them
// to a planner.
package curriculum

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/syllabus"
)

// ErrInvalidDocument indicates a curriculum document that could not be
// decoded or does not satisfy the document schema.
type ErrInvalidDocument struct {
	Path string
	Err  error
}

func (e *ErrInvalidDocument) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid curriculum %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid curriculum: %v", e.Err)
}

func (e *ErrInvalidDocument) Unwrap() error { return e.Err }

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load reads and parses the curriculum file at path. A nil logger falls
// back to slog.Default().
func Load(path string, logger *slog.Logger) (*Document, error) {
	if logger == nil {
		logger = slog.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curriculum: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		var invalid *ErrInvalidDocument
		if errors.As(err, &invalid) {
			invalid.Path = path
		}
		return nil, err
	}
	logger.Info("curriculum loaded", "path", path,
		"subjects", len(doc.Subjects), "topics", doc.TopicCount(), "weaknesses", len(doc.Weaknesses))
	return doc, nil
}

// Parse decodes a YAML document, validates it against the document schema
// and checks cross-references.
func Parse(data []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ErrInvalidDocument{Err: fmt.Errorf("invalid YAML: %w", err)}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	if err := validateSchema(raw); err != nil {
		return nil, &ErrInvalidDocument{Err: err}
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ErrInvalidDocument{Err: fmt.Errorf("decode document: %w", err)}
	}
	if err := doc.check(); err != nil {
		return nil, &ErrInvalidDocument{Err: err}
	}
	return &doc, nil
}

// validateSchema round-trips the YAML value through JSON so the validator
// sees plain JSON types.
func validateSchema(raw any) error {
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("convert document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("convert document: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://curriculum.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// check reports duplicate IDs and references to undeclared subjects.
func (d *Document) check() error {
	subjects := make(map[string]bool, len(d.Subjects))
	for _, s := range d.Subjects {
		if subjects[s.ID] {
			return fmt.Errorf("duplicate subject ID: %q", s.ID)
		}
		subjects[s.ID] = true
	}
	for _, s := range d.Subjects {
		for _, p := range s.Prerequisites {
			if !subjects[p] {
				return fmt.Errorf("subject %q references nonexistent prerequisite %q", s.ID, p)
			}
		}
	}

	topics := map[string]bool{syllabus.RootID: true}
	var walk func([]Topic) error
	walk = func(ts []Topic) error {
		for _, t := range ts {
			if t.ID != "" {
				if topics[t.ID] {
					return fmt.Errorf("duplicate topic ID: %q", t.ID)
				}
				topics[t.ID] = true
			}
			if err := walk(t.Topics); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(d.Syllabus.Topics); err != nil {
		return err
	}

	for _, w := range d.Weaknesses {
		if w.Weakness == nil && !subjects[w.SubjectID] {
			return fmt.Errorf("weakness %q has no score and references unknown subject %q", w.TopicID, w.SubjectID)
		}
	}
	return nil
}

// TopicCount returns the number of syllabus topics, excluding the root.
func (d *Document) TopicCount() int {
	var count func([]Topic) int
	count = func(ts []Topic) int {
		n := len(ts)
		for _, t := range ts {
			n += count(t.Topics)
		}
		return n
	}
	return count(d.Syllabus.Topics)
}

// Apply loads the document into svc: subjects first, then prerequisites,
// then the syllabus depth-first, then explicit weaknesses. A prerequisite
// that would close a cycle aborts with planner.ErrCycle.
func (d *Document) Apply(svc *planner.Service) error {
	for _, s := range d.Subjects {
		if err := svc.AddSubject(s.ID, s.Name, s.Score); err != nil {
			return fmt.Errorf("apply curriculum: %w", err)
		}
	}
	for _, s := range d.Subjects {
		for _, p := range s.Prerequisites {
			if err := svc.AddPrerequisite(s.ID, p); err != nil {
				return fmt.Errorf("apply curriculum: %w", err)
			}
		}
	}

	var addTopics func(parentID string, ts []Topic) error
	addTopics = func(parentID string, ts []Topic) error {
		for _, t := range ts {
			id := t.ID
			if id == "" {
				id = uuid.NewString()
			}
			if !svc.AddSyllabusTopic(parentID, id, t.Title) {
				return fmt.Errorf("apply curriculum: parent topic %q not found for %q", parentID, id)
			}
			if t.Completed {
				svc.SetTopicCompleted(id, true)
			}
			if err := addTopics(id, t.Topics); err != nil {
				return err
			}
		}
		return nil
	}
	if err := addTopics(syllabus.RootID, d.Syllabus.Topics); err != nil {
		return err
	}

	for _, w := range d.Weaknesses {
		name := w.TopicName
		if name == "" {
			name = w.TopicID
		}
		var score float64
		if w.Weakness != nil {
			score = *w.Weakness
		} else {
			subj, ok := svc.Subject(w.SubjectID)
			if !ok {
				return fmt.Errorf("apply curriculum: weakness %q: %w: %q", w.TopicID, planner.ErrUnknownSubject, w.SubjectID)
			}
			score = subj.Weakness()
		}
		if err := svc.AddWeakness(w.TopicID, name, score, w.SubjectID); err != nil {
			return fmt.Errorf("apply curriculum: %w", err)
		}
	}
	return nil
}
