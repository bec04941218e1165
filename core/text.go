package core

import "strings"

// CourseText flattens a course into the single string used for indexing.
// Empty prerequisite lists are rendered as "none".
func CourseText(c Course) string {
	prereqs := "none"
	if len(c.Prereqs) > 0 {
		prereqs = strings.Join(c.Prereqs, ", ")
	}

	var b strings.Builder
	b.WriteString(c.Code)
	b.WriteString(" ")
	b.WriteString(c.Name)
	b.WriteString(". ")
	b.WriteString(c.Description)
	b.WriteString(" Category: ")
	b.WriteString(string(c.Category))
	b.WriteString(". Prerequisites: ")
	b.WriteString(prereqs)
	b.WriteString(".")
	return b.String()
}

// CourseTexts applies CourseText to each course, preserving order.
func CourseTexts(courses []Course) []string {
	texts := make([]string, len(courses))
	for i, c := range courses {
		texts[i] = CourseText(c)
	}
	return texts
}
