package core

import (
	"fmt"
	"slices"
)

// Catalog is an immutable, ordered set of courses with unique codes.
// Accessors return copies so callers cannot mutate the catalog.
type Catalog struct {
	courses []Course
	index   map[string]int
}

// NewCatalog validates the courses and builds a catalog in the given order.
func NewCatalog(courses ...Course) (*Catalog, error) {
	if len(courses) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		courses: make([]Course, 0, len(courses)),
		index:   make(map[string]int, len(courses)),
	}
	for _, course := range courses {
		if err := ValidateCourse(course); err != nil {
			return nil, err
		}
		if _, exists := c.index[course.Code]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, course.Code)
		}
		course.Prereqs = slices.Clone(course.Prereqs)
		c.index[course.Code] = len(c.courses)
		c.courses = append(c.courses, course)
	}
	return c, nil
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Courses returns a copy of the courses in catalog order.
func (c *Catalog) Courses() []Course {
	out := make([]Course, len(c.courses))
	for i, course := range c.courses {
		course.Prereqs = slices.Clone(course.Prereqs)
		out[i] = course
	}
	return out
}

// Lookup returns the course with the given code.
func (c *Catalog) Lookup(code string) (Course, bool) {
	i, ok := c.index[code]
	if !ok {
		return Course{}, false
	}
	course := c.courses[i]
	course.Prereqs = slices.Clone(course.Prereqs)
	return course, true
}

// Texts returns the assembled course texts in catalog order.
func (c *Catalog) Texts() []string {
	return CourseTexts(c.courses)
}

// Digest identifies the catalog content.
func (c *Catalog) Digest() ID {
	return Digest(c.Texts()...)
}

// DanglingPrerequisites reports prerequisite codes missing from the catalog.
func (c *Catalog) DanglingPrerequisites() []DanglingPrerequisite {
	return DanglingPrerequisites(c.courses)
}
