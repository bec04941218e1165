// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import "fmt"

// ValidateCourse validates a Course according to catalog rules.
//
// Validation rules:
//   - Code and Name must not be empty
//   - Credits must be positive
//   - Semester and Category must be known values
//
// NOT validated:
//   - Prereqs (codes may reference courses outside the catalog)
func ValidateCourse(c Course) error {
	if c.Code == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCourse, ErrEmptyCode)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: %s: %w", ErrInvalidCourse, c.Code, ErrEmptyName)
	}
	if c.Credits <= 0 {
		return fmt.Errorf("%w: %s: %w", ErrInvalidCourse, c.Code, ErrInvalidCredits)
	}
	if err := ValidateSemester(c.Semester); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidCourse, c.Code, err)
	}
	if err := ValidateCategory(c.Category); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidCourse, c.Code, err)
	}
	return nil
}

// ValidateSemester validates that a Semester has a known value.
func ValidateSemester(s Semester) error {
	switch s {
	case SemesterFall, SemesterSpring, SemesterFallSpring:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidSemester, s)
}

// ValidateCategory validates that a Category has a known value.
func ValidateCategory(c Category) error {
	for _, known := range Categories {
		if c == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidCategory, c)
}

// DanglingPrerequisite records a prerequisite code with no matching course.
type DanglingPrerequisite struct {
	Course  string
	Missing string
}

// DanglingPrerequisites reports prerequisite codes that name no course in the list.
// Results follow course order, then prerequisite order. Nothing is repaired.
func DanglingPrerequisites(courses []Course) []DanglingPrerequisite {
	known := make(map[string]bool, len(courses))
	for _, c := range courses {
		known[c.Code] = true
	}

	var dangling []DanglingPrerequisite
	for _, c := range courses {
		for _, p := range c.Prereqs {
			if !known[p] {
				dangling = append(dangling, DanglingPrerequisite{Course: c.Code, Missing: p})
			}
		}
	}
	return dangling
}
