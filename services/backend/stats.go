package backendsvc

import (
	"context"
	"net/http"

	"github.com/pathshala/admin/core/dashboard"
)

// DashboardStats reads the counters of /web_dashboard, which sit next to status.
// Any failure yields zero counters and a status 500 error.
func (c *Client) DashboardStats(ctx context.Context) (dashboard.Stats, error) {
	env, err := c.call(ctx, http.MethodGet, "/web_dashboard", nil, http.StatusBadRequest)
	if err != nil {
		return dashboard.Stats{}, statsError(msgDashboard, err)
	}
	var stats dashboard.Stats
	if err := env.decodeRoot(&stats, http.StatusBadRequest); err != nil {
		return dashboard.Stats{}, statsError(msgDashboard, err)
	}
	return stats, nil
}

// ReuploadStats reads the counters of /reupload_stats, with the same failure policy as DashboardStats.
func (c *Client) ReuploadStats(ctx context.Context) (dashboard.ReuploadStats, error) {
	env, err := c.call(ctx, http.MethodGet, "/reupload_stats", nil, http.StatusBadRequest)
	if err != nil {
		return dashboard.ReuploadStats{}, statsError(msgReupload, err)
	}
	var stats dashboard.ReuploadStats
	if err := env.decodeRoot(&stats, http.StatusBadRequest); err != nil {
		return dashboard.ReuploadStats{}, statsError(msgReupload, err)
	}
	return stats, nil
}
