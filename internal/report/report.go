// Package report renders planner views for the terminal.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/subjectgraph"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/theme"
	"github.com/abhisek/studyplan/internal/weakness"
)

const barWidth = 40

// StudyPath renders subjects as a numbered study order.
func StudyPath(path []subjectgraph.Subject) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Study Path"))
	b.WriteString("\n")
	if len(path) == 0 {
		b.WriteString(theme.Hint.Render("No subjects, or the prerequisites contain a cycle."))
		b.WriteString("\n")
		return b.String()
	}
	for i, s := range path {
		fmt.Fprintf(&b, "%2d. %s %s\n", i+1,
			theme.Body.Render(s.Name),
			theme.ScoreStyle(s.Score).Render(fmt.Sprintf("[Score: %.0f%%]", s.Score)))
	}
	return b.String()
}

// Weaknesses renders the ranked weakness list.
func Weaknesses(entries []weakness.Entry) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Weak Topics"))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(theme.Hint.Render("Nothing queued."))
		b.WriteString("\n")
		return b.String()
	}
	for i, e := range entries {
		fmt.Fprintf(&b, "#%d %s %s %s\n", i+1,
			theme.Body.Render(e.TopicName),
			theme.Weak.Render(fmt.Sprintf("(Weakness: %.1f)", e.Score)),
			theme.Hint.Render(e.SubjectID))
	}
	return b.String()
}

// NextTopic renders a single study recommendation.
func NextTopic(e weakness.Entry) string {
	lines := []string{
		theme.Title.Render("Next topic to study"),
		theme.Body.Render(e.TopicName),
		theme.Hint.Render("Subject: " + subjectLabel(e)),
		theme.Weak.Render(fmt.Sprintf("Priority: %.1f", e.Score)),
	}
	return theme.Card.Render(strings.Join(lines, "\n")) + "\n"
}

func subjectLabel(e weakness.Entry) string {
	if e.Subject != nil {
		return fmt.Sprintf("%s (%s)", e.Subject.Name, e.SubjectID)
	}
	return e.SubjectID
}

// Syllabus renders the pre-order topic list as an indented outline.
func Syllabus(views []planner.TopicView) string {
	var b strings.Builder
	for _, v := range views {
		indent := strings.Repeat("  ", v.Depth)
		switch {
		case v.Depth == 0:
			fmt.Fprintf(&b, "%s %s\n", theme.Title.Render(v.Title), theme.Hint.Render(fmt.Sprintf("%.1f%%", v.Percent)))
		case v.Leaf && v.Completed:
			fmt.Fprintf(&b, "%s%s %s %s\n", indent, theme.Done.Render("[x]"), theme.Body.Render(v.Title), theme.Hint.Render(v.ID))
		case v.Leaf:
			fmt.Fprintf(&b, "%s%s %s %s\n", indent, theme.Pending.Render("[ ]"), theme.Body.Render(v.Title), theme.Hint.Render(v.ID))
		default:
			fmt.Fprintf(&b, "%s%s %s %s\n", indent, theme.Body.Bold(true).Render(v.Title),
				theme.Hint.Render(v.ID), theme.ScoreStyle(v.Percent).Render(fmt.Sprintf("%.1f%%", v.Percent)))
		}
	}
	return b.String()
}

// Stats renders the dashboard summary card.
func Stats(st planner.Stats) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(18)
	rows := []string{
		theme.Title.Render("Dashboard"),
		label.Render("Total subjects") + theme.Body.Render(fmt.Sprint(st.TotalSubjects)),
		label.Render("Study path length") + theme.Body.Render(fmt.Sprint(st.StudyPathLength)),
		label.Render("Weak topics") + theme.Body.Render(fmt.Sprint(st.WeakTopics)),
		label.Render("Completion") + theme.Body.Render(fmt.Sprintf("%.1f%%", st.Completion)),
		components.NewProgressBar("", st.Completion, false, barWidth).View(),
	}
	return theme.Card.Render(strings.Join(rows, "\n")) + "\n"
}

// Check renders the verdict of a prerequisite safety check.
func Check(subjectID, prereqID string, ok bool) string {
	edge := fmt.Sprintf("%s -> %s", prereqID, subjectID)
	if ok {
		return theme.Done.Render("safe") + " " + theme.Body.Render(edge) + "\n"
	}
	return theme.Weak.Render("cycle") + " " + theme.Body.Render(edge) + " " +
		theme.Hint.Render("would create a dependency loop") + "\n"
}
