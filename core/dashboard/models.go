// Package dashboard holds the aggregate counters shown on the dashboards.
package dashboard

import "github.com/pathshala/admin/core"

type (
	Stats struct {
		TotalStudents core.FlexInt `json:"total_students"`
		TotalSchools  core.FlexInt `json:"total_schools"`
		TotalBlocks   core.FlexInt `json:"total_blocks"`
		TotalClusters core.FlexInt `json:"total_clusters"`
		TotalTeachers core.FlexInt `json:"total_teachers"`
	}

	ReuploadStats struct {
		NeverReuploaded core.FlexInt `json:"never_reuploaded_count"`
		PendingReupload core.FlexInt `json:"pending_reupload_count"`
		ReuploadDue     core.FlexInt `json:"reupload_due_count"`
	}

	TeacherDashboard struct {
		Count      core.FlexInt `json:"COUNT"`
		SchoolName string       `json:"school_name"`
	}

	SupervisorStats struct {
		AssignedTeachers core.FlexInt `json:"assigned_teachers"`
		AssignedStudents core.FlexInt `json:"assigned_students"`
		AssignedSchools  core.FlexInt `json:"assigned_schools"`
	}
)

func (s SupervisorStats) TotalRecords() int {
	return s.AssignedTeachers.Int() + s.AssignedStudents.Int() + s.AssignedSchools.Int()
}
