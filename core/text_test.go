package core_test

import (
	"strings"
	"testing"

	"github.com/poiesic/coursematch/core"
	"github.com/poiesic/coursematch/corpus"
	"github.com/stretchr/testify/assert"
)

func TestCourseText_ContainsCodeAndName(t *testing.T) {
	for _, c := range corpus.Courses() {
		text := core.CourseText(c)
		assert.Contains(t, text, c.Code)
		assert.Contains(t, text, c.Name)
		assert.Contains(t, text, c.Description)
		assert.Contains(t, text, "Category: "+string(c.Category))
	}
}

func TestCourseText_Format(t *testing.T) {
	c := core.Course{
		Code:        "CSI-340",
		Name:        "Operating Systems",
		Prereqs:     []string{"CSI-260", "CSI-240"},
		Category:    core.CategoryCSCore,
		Description: "Process management.",
	}

	assert.Equal(t,
		"CSI-340 Operating Systems. Process management. Category: CS Core. Prerequisites: CSI-260, CSI-240.",
		core.CourseText(c))
}

func TestCourseText_NoPrerequisites(t *testing.T) {
	c := core.Course{Code: "MAT-210", Name: "Calculus I", Category: core.CategoryMath}
	assert.True(t, strings.HasSuffix(core.CourseText(c), "Prerequisites: none."))
}

func TestCourseTexts_PreservesOrder(t *testing.T) {
	courses := corpus.Courses()
	texts := core.CourseTexts(courses)
	assert.Len(t, texts, len(courses))
	for i, c := range courses {
		assert.True(t, strings.HasPrefix(texts[i], c.Code+" "), "text %d should start with %s", i, c.Code)
	}
}
