package student

import (
	"strings"
	"time"
)

const (
	ReuploadDueAfter = 4 * 24 * time.Hour
	MaxReuploads     = 6
)

var (
	NowFunc = time.Now // mockable

	// layouts accepted for Student.LastReuploadDate
	dateLayouts = []string{
		time.RFC1123,
		time.RFC1123Z,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
)

// ReuploadCounts totals the re-upload categories of a list.
// A record may fall in more than one category.
type ReuploadCounts struct {
	Never   int `json:"never_reuploaded_count"`
	Pending int `json:"pending_reupload_count"`
	Due     int `json:"reupload_due_count"`
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NeverReuploaded holds when the re-upload counter is zero.
func (s Student) NeverReuploaded() bool {
	return s.ReuploadCount == 0
}

// PendingReupload holds when no certificate has been uploaded.
func (s Student) PendingReupload() bool {
	return strings.TrimSpace(s.Certificate) == ""
}

// ReuploadDue holds when the record is pending, its last re-upload is absent or
// older than ReuploadDueAfter, and it has been re-uploaded fewer than MaxReuploads times.
// A date that cannot be parsed is neither absent nor old.
func (s Student) ReuploadDue(now time.Time) bool {
	if !s.PendingReupload() || s.ReuploadCount >= MaxReuploads {
		return false
	}
	if strings.TrimSpace(s.LastReuploadDate) == "" {
		return true
	}
	last, ok := parseDate(s.LastReuploadDate)
	if !ok {
		return false
	}
	return now.Sub(last) > ReuploadDueAfter
}

// CountReuploads classifies every student at `now`.
func CountReuploads(students []Student, now time.Time) ReuploadCounts {
	var counts ReuploadCounts
	for _, s := range students {
		if s.NeverReuploaded() {
			counts.Never++
		}
		if s.PendingReupload() {
			counts.Pending++
		}
		if s.ReuploadDue(now) {
			counts.Due++
		}
	}
	return counts
}
