package student

import "github.com/pathshala/admin/core"

// Verification states, as sent and received by the backend.
const (
	Verified   = "true"
	Unverified = "false"
)

type Student struct {
	Name             string       `json:"name"`
	EmployeeID       string       `json:"employee_id"`
	SchoolName       string       `json:"school_name"`
	Class            string       `json:"class"`
	NameOfTree       string       `json:"name_of_tree"`
	PlantImage       string       `json:"plant_image"`
	Certificate      string       `json:"certificate"`
	DateTime         string       `json:"date_time"`
	UdiseCode        string       `json:"udise_code"`
	Verified         string       `json:"verified"`
	ReuploadCount    core.FlexInt `json:"reupload_count"`
	LastReuploadDate string       `json:"last_reupload_date,omitempty"`
}

func (s Student) IsVerified() bool {
	return s.Verified == Verified
}

// SameAs reports whether `s` is the record `other` targets: the same employee id
// when `other` has one, otherwise the same name and UDISE code.
func (s Student) SameAs(other Student) bool {
	if other.EmployeeID != "" {
		return s.EmployeeID == other.EmployeeID
	}
	return s.Name == other.Name && s.UdiseCode == other.UdiseCode
}

// QueryFilter narrows a list of students.
// Search matches any of Name, SchoolName, Class, UdiseCode or NameOfTree.
// UdiseCode is a case-insensitive containment check, Class an exact match.
type QueryFilter struct {
	Search    string
	UdiseCode string
	Class     string
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.UdiseCode = core.CleanString(qf.UdiseCode)
	qf.Class = core.CleanString(qf.Class)
}

func (qf *QueryFilter) IsEmpty() bool {
	return *qf == QueryFilter{}
}
