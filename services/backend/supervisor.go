package backendsvc

import (
	"context"
	"net/http"

	"github.com/pathshala/admin/core/dashboard"
	"github.com/pathshala/admin/core/supervisor"
)

// The supervisor endpoints return their payload next to status instead of under data.

func (c *Client) SupervisorDashboard(ctx context.Context) (dashboard.SupervisorStats, error) {
	var stats dashboard.SupervisorStats
	if err := c.supervisorRoot(ctx, "/supervisor/dashboard", &stats); err != nil {
		return dashboard.SupervisorStats{}, err
	}
	return stats, nil
}

func (c *Client) SupervisorSchools(ctx context.Context) ([]supervisor.AssignedSchool, error) {
	var body struct {
		Schools []supervisor.AssignedSchool `json:"schools"`
	}
	if err := c.supervisorRoot(ctx, "/supervisor/schools", &body); err != nil {
		return nil, err
	}
	return nonNil(body.Schools), nil
}

func (c *Client) SupervisorStudents(ctx context.Context) ([]supervisor.AssignedStudent, error) {
	var body struct {
		Students []supervisor.AssignedStudent `json:"students"`
	}
	if err := c.supervisorRoot(ctx, "/supervisor/students", &body); err != nil {
		return nil, err
	}
	return nonNil(body.Students), nil
}

func (c *Client) SupervisorTeachers(ctx context.Context) ([]supervisor.AssignedTeacher, error) {
	var body struct {
		Teachers []supervisor.AssignedTeacher `json:"teachers"`
	}
	if err := c.supervisorRoot(ctx, "/supervisor/teachers", &body); err != nil {
		return nil, err
	}
	return nonNil(body.Teachers), nil
}

func (c *Client) supervisorRoot(ctx context.Context, endpoint string, out interface{}) error {
	env, err := c.call(ctx, http.MethodGet, endpoint, nil, http.StatusBadRequest)
	if err != nil {
		return err
	}
	return env.decodeRoot(out, http.StatusBadRequest)
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
