package teacher

import "github.com/pathshala/admin/core"

type Teacher struct {
	Name         string       `json:"name"`
	Mobile       string       `json:"mobile"`
	Username     string       `json:"username"`
	Password     string       `json:"password,omitempty"`
	SchoolName   string       `json:"school_name"`
	UdiseCode    string       `json:"udise_code"`
	DateTime     string       `json:"date_time"`
	StudentCount core.FlexInt `json:"student_count"`
	EmployeeID   string       `json:"employee_id"`
}

// Search returns the teachers whose Name, SchoolName, Mobile or Username contains query.
// An empty query returns the whole list.
func Search(teachers []Teacher, query string) []Teacher {
	filtered := make([]Teacher, 0, len(teachers))
	for _, t := range teachers {
		if core.MatchAny(query, t.Name, t.SchoolName, t.Mobile, t.Username) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// TotalStudents sums the student counts of `teachers`.
func TotalStudents(teachers []Teacher) int {
	var total int
	for _, t := range teachers {
		total += t.StudentCount.Int()
	}
	return total
}
