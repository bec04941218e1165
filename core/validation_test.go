package core

import (
	"errors"
	"testing"
)

func validCourse() Course {
	return Course{
		Code:        "CSI-100",
		Name:        "Test Course",
		Credits:     3,
		Semester:    SemesterFall,
		Category:    CategoryCSCore,
		Description: "A course used in tests.",
	}
}

func TestValidateCourse(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Course)
		wantErr error
	}{
		{
			name:    "valid course",
			mutate:  func(c *Course) {},
			wantErr: nil,
		},
		{
			name:    "dangling prerequisite is allowed",
			mutate:  func(c *Course) { c.Prereqs = []string{"XYZ-999"} },
			wantErr: nil,
		},
		{
			name:    "empty description is allowed",
			mutate:  func(c *Course) { c.Description = "" },
			wantErr: nil,
		},
		{
			name:    "empty code",
			mutate:  func(c *Course) { c.Code = "" },
			wantErr: ErrEmptyCode,
		},
		{
			name:    "empty name",
			mutate:  func(c *Course) { c.Name = "" },
			wantErr: ErrEmptyName,
		},
		{
			name:    "zero credits",
			mutate:  func(c *Course) { c.Credits = 0 },
			wantErr: ErrInvalidCredits,
		},
		{
			name:    "negative credits",
			mutate:  func(c *Course) { c.Credits = -3 },
			wantErr: ErrInvalidCredits,
		},
		{
			name:    "unknown semester",
			mutate:  func(c *Course) { c.Semester = "Summer" },
			wantErr: ErrInvalidSemester,
		},
		{
			name:    "unknown category",
			mutate:  func(c *Course) { c.Category = "Art" },
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCourse()
			tt.mutate(&c)
			err := ValidateCourse(c)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateCourse() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidCourse) {
				t.Errorf("ValidateCourse() error should wrap ErrInvalidCourse, got %v", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCourse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSemester(t *testing.T) {
	for _, s := range []Semester{SemesterFall, SemesterSpring, SemesterFallSpring} {
		if err := ValidateSemester(s); err != nil {
			t.Errorf("ValidateSemester(%q) = %v", s, err)
		}
	}
	if err := ValidateSemester(""); !errors.Is(err, ErrInvalidSemester) {
		t.Errorf("ValidateSemester(\"\") = %v, want ErrInvalidSemester", err)
	}
}

func TestDanglingPrerequisites(t *testing.T) {
	courses := []Course{
		{Code: "A-1"},
		{Code: "A-2", Prereqs: []string{"A-1", "Z-9"}},
		{Code: "A-3", Prereqs: []string{"Y-8"}},
	}

	got := DanglingPrerequisites(courses)
	want := []DanglingPrerequisite{
		{Course: "A-2", Missing: "Z-9"},
		{Course: "A-3", Missing: "Y-8"},
	}
	if len(got) != len(want) {
		t.Fatalf("DanglingPrerequisites() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DanglingPrerequisites()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := DanglingPrerequisites(courses[:1]); len(got) != 0 {
		t.Errorf("expected no dangling prerequisites, got %v", got)
	}
}
