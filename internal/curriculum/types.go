package curriculum

// Document is a complete study plan loaded from YAML.
type Document struct {
	Subjects   []Subject  `yaml:"subjects"`
	Syllabus   Syllabus   `yaml:"syllabus"`
	Weaknesses []Weakness `yaml:"weaknesses"`
}

// Subject is one node of the prerequisite graph.
type Subject struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Score         float64  `yaml:"score"`
	Prerequisites []string `yaml:"prerequisites"`
}

// Syllabus holds the root title and the top-level topics.
type Syllabus struct {
	Title  string  `yaml:"title"`
	Topics []Topic `yaml:"topics"`
}

// Topic is a syllabus entry. An empty ID is replaced by a generated one.
type Topic struct {
	ID        string  `yaml:"id"`
	Title     string  `yaml:"title"`
	Completed bool    `yaml:"completed"`
	Topics    []Topic `yaml:"topics"`
}

// Weakness is an explicitly queued weak topic. When Weakness is omitted it
// is derived from the subject's score.
type Weakness struct {
	TopicID   string   `yaml:"topic_id"`
	TopicName string   `yaml:"topic_name"`
	SubjectID string   `yaml:"subject_id"`
	Weakness  *float64 `yaml:"weakness"`
}
