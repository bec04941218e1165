package core

// Semester identifies when a course is offered.
type Semester string

const (
	SemesterFall       Semester = "Fall"
	SemesterSpring     Semester = "Spring"
	SemesterFallSpring Semester = "Fall/Spring"
)

// Category groups courses by program area.
type Category string

const (
	CategoryCSCore            Category = "CS Core"
	CategoryCSElective        Category = "CS Elective"
	CategoryCybersecurityCore Category = "Cybersecurity Core"
	CategoryMath              Category = "Math"
)

// Categories lists the known categories in display order.
var Categories = []Category{
	CategoryCSCore,
	CategoryCSElective,
	CategoryCybersecurityCore,
	CategoryMath,
}

// Course is a single catalog entry.
// Prereqs are course codes and are not checked against the catalog.
type Course struct {
	Code        string
	Name        string
	Credits     int
	Semester    Semester
	Prereqs     []string
	Category    Category
	Description string
}

// ScoredCourse pairs a course with a ranking score.
// Keyword scores are whole-number match counts; embedding scores are cosine similarities.
type ScoredCourse struct {
	Course Course
	Score  float64
}

// Ranking is an ordered list of scored courses, best first.
type Ranking []ScoredCourse

// Codes returns the course codes in ranking order.
func (r Ranking) Codes() []string {
	codes := make([]string, len(r))
	for i, sc := range r {
		codes[i] = sc.Course.Code
	}
	return codes
}

// Top returns at most n leading entries.
func (r Ranking) Top(n int) Ranking {
	if n < 0 || n > len(r) {
		n = len(r)
	}
	return r[:n]
}

// Position returns the zero-based rank of code, or -1 when absent.
func (r Ranking) Position(code string) int {
	for i, sc := range r {
		if sc.Course.Code == code {
			return i
		}
	}
	return -1
}
