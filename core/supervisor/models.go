// Package supervisor holds the records a supervisor is assigned to.
package supervisor

import (
	"github.com/pathshala/admin/core"
	"github.com/pathshala/admin/core/teacher"
)

type (
	AssignedSchool struct {
		ID         string `json:"id"`
		SchoolName string `json:"schoolName"`
		Address    string `json:"address"`
		Udise      string `json:"udise"`
	}

	AssignedStudent struct {
		ID           string       `json:"id"`
		Name         string       `json:"name"`
		School       string       `json:"school"`
		Grade        string       `json:"grade"`
		Age          core.FlexInt `json:"age"`
		GuardianName string       `json:"guardianName"`
	}

	// AssignedTeacher has the same shape as a regular teacher record.
	AssignedTeacher = teacher.Teacher
)

func SearchSchools(schools []AssignedSchool, query string) []AssignedSchool {
	filtered := make([]AssignedSchool, 0, len(schools))
	for _, s := range schools {
		if core.MatchAny(query, s.SchoolName, s.Address, s.Udise, s.ID) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func SearchStudents(students []AssignedStudent, query string) []AssignedStudent {
	filtered := make([]AssignedStudent, 0, len(students))
	for _, s := range students {
		if core.MatchAny(query, s.Name, s.School, s.Grade, s.ID) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func SearchTeachers(teachers []AssignedTeacher, query string) []AssignedTeacher {
	return teacher.Search(teachers, query)
}
