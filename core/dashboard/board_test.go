package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoard_Apply(t *testing.T) {
	var b Board
	b.Apply(Stats{TotalStudents: 120, TotalSchools: 4, TotalBlocks: 2, TotalClusters: 3, TotalTeachers: 9}, nil, nil)
	assert.Equal(t, Board{Students: 120, Schools: 4, Blocks: 2, Clusters: 3}, b)
	assert.False(t, b.Failed())

	// a failed refresh zeroes everything instead of keeping the previous values
	b.Apply(Stats{TotalStudents: 99}, errors.New("network down"), nil)
	assert.Equal(t, Board{Err: "network down"}, b)
	assert.True(t, b.Failed())

	b.Apply(Stats{}, errors.New("raw"), func(error) string { return "friendly" })
	assert.Equal(t, "friendly", b.Err)

	b.Apply(Stats{TotalSchools: 1}, nil, nil)
	assert.Equal(t, Board{Schools: 1}, b)
}

func TestSupervisorStats_TotalRecords(t *testing.T) {
	s := SupervisorStats{AssignedTeachers: 2, AssignedStudents: 30, AssignedSchools: 1}
	assert.Equal(t, 33, s.TotalRecords())
	assert.Equal(t, 0, SupervisorStats{}.TotalRecords())
}
