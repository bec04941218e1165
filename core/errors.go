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

import "errors"

// Catalog validation errors
var (
	// ErrInvalidCourse indicates a Course failed validation.
	ErrInvalidCourse = errors.New("invalid course")

	// ErrEmptyCode indicates the Code field is empty.
	ErrEmptyCode = errors.New("course code cannot be empty")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("course name cannot be empty")

	// ErrInvalidCredits indicates a non-positive credit count.
	ErrInvalidCredits = errors.New("credits must be positive")

	// ErrInvalidSemester indicates an unknown Semester value.
	ErrInvalidSemester = errors.New("invalid semester")

	// ErrInvalidCategory indicates an unknown Category value.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrDuplicateCode indicates two courses share a code.
	ErrDuplicateCode = errors.New("duplicate course code")

	// ErrEmptyCatalog indicates a catalog with no courses.
	ErrEmptyCatalog = errors.New("catalog cannot be empty")
)
