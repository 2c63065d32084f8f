package backendsvc

import (
	"context"
	"net/http"

	"github.com/pathshala/admin/core"
	"github.com/pathshala/admin/core/dashboard"
	"github.com/pathshala/admin/core/school"
	"github.com/pathshala/admin/core/student"
	"github.com/pathshala/admin/core/teacher"
)

type udiseRequest struct {
	UdiseCode string `json:"udise_code"`
}

// VerificationUpdate identifies a student by EmployeeID, or by Name and UdiseCode
// when it has none, and carries its new state.
type VerificationUpdate struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Name       string `json:"name,omitempty"`
	UdiseCode  string `json:"udise_code,omitempty"`
	Verified   string `json:"verified"`
}

// NewVerificationUpdate targets `s` with the given state.
func NewVerificationUpdate(s student.Student, verified string) VerificationUpdate {
	return VerificationUpdate{
		EmployeeID: s.EmployeeID,
		Name:       s.Name,
		UdiseCode:  s.UdiseCode,
		Verified:   verified,
	}
}

func (vu *VerificationUpdate) Clean() {
	vu.EmployeeID = core.CleanString(vu.EmployeeID)
	vu.Name = core.CleanString(vu.Name)
	vu.UdiseCode = core.CleanString(vu.UdiseCode)
	vu.Verified = core.CleanString(vu.Verified, true /* lower */)
}

// Target is the student an update applies to, for student.ApplyVerification.
func (vu VerificationUpdate) Target() student.Student {
	return student.Student{EmployeeID: vu.EmployeeID, Name: vu.Name, UdiseCode: vu.UdiseCode}
}

// ValidateUdiseCode reports whether code is usable as a UDISE code.
func ValidateUdiseCode(code string) bool {
	return core.CleanString(code) != ""
}

func (c *Client) list(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	env, err := c.call(ctx, method, endpoint, payload, http.StatusBadRequest)
	if err != nil {
		return err
	}
	return env.decodeData(out, http.StatusBadRequest)
}

func (c *Client) Schools(ctx context.Context) ([]school.School, error) {
	var schools []school.School
	if err := c.list(ctx, http.MethodGet, "/fetch_school", nil, &schools); err != nil {
		return nil, err
	}
	return schools, nil
}

func (c *Client) Students(ctx context.Context) ([]student.Student, error) {
	var students []student.Student
	if err := c.list(ctx, http.MethodGet, "/fetch_student", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// StudentsByUdise returns the students of one school. A blank code fails before any request.
func (c *Client) StudentsByUdise(ctx context.Context, code string) ([]student.Student, error) {
	code = core.CleanString(code)
	if !ValidateUdiseCode(code) {
		return nil, validationError("Please enter a valid UDISE code")
	}
	var students []student.Student
	if err := c.list(ctx, http.MethodPost, "/fetch_student", udiseRequest{code}, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (c *Client) Teachers(ctx context.Context) ([]teacher.Teacher, error) {
	var teachers []teacher.Teacher
	if err := c.list(ctx, http.MethodGet, "/fetch_teacher", nil, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// TeacherDashboard returns the student count of a school.
// The fields are read from data, or from the root object when data is absent.
func (c *Client) TeacherDashboard(ctx context.Context, code string) (dashboard.TeacherDashboard, error) {
	code = core.CleanString(code)
	if !ValidateUdiseCode(code) {
		return dashboard.TeacherDashboard{}, validationError("Please enter a valid UDISE code")
	}
	env, err := c.call(ctx, http.MethodPost, "/teacher_dashboard", udiseRequest{code}, http.StatusBadRequest)
	if err != nil {
		return dashboard.TeacherDashboard{}, err
	}

	var td dashboard.TeacherDashboard
	if len(env.Data) > 0 && string(env.Data) != "null" {
		err = env.decodeData(&td, http.StatusBadRequest)
	} else {
		err = env.decodeRoot(&td, http.StatusBadRequest)
	}
	if err != nil {
		return dashboard.TeacherDashboard{}, err
	}
	return td, nil
}

// UpdateStudentVerification persists a verification state.
// Mirror it locally with student.ApplyVerification only once this returns nil.
func (c *Client) UpdateStudentVerification(ctx context.Context, vu VerificationUpdate) error {
	vu.Clean()
	if vu.Verified != student.Verified && vu.Verified != student.Unverified {
		return validationError(`verified must be "true" or "false"`)
	}
	if vu.EmployeeID == "" && (vu.Name == "" || vu.UdiseCode == "") {
		return validationError("employee_id or name and udise_code are required")
	}

	_, err := c.call(ctx, http.MethodPost, "/update_student_verification", vu, http.StatusBadRequest)
	if err != nil {
		return err
	}
	c.logger.Info("student verification updated", map[string]interface{}{
		"employee_id": vu.EmployeeID, "name": vu.Name, "udise_code": vu.UdiseCode, "verified": vu.Verified,
	})
	return nil
}
