package school

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var schools = []School{
	{Sno: 1, DistrictCode: "D01", DistrictName: "Raipur", BlockCode: "B1", BlockName: "Abhanpur", ClusterCode: "C1", ClusterName: "Gobra", UdiseCode: "22010100101", SchoolName: "Govt Primary School Gobra"},
	{Sno: 2, DistrictCode: "D01", DistrictName: "Raipur", BlockCode: "B1", BlockName: "Abhanpur", ClusterCode: "C2", ClusterName: "Kendri", UdiseCode: "22010100202", SchoolName: "Govt Middle School Kendri"},
	{Sno: 3, DistrictCode: "D02", DistrictName: "Durg", BlockCode: "B2", BlockName: "Patan", ClusterCode: "C3", ClusterName: "Selud", UdiseCode: "22020300303", SchoolName: "Saraswati Shishu Mandir"},
}

func snos(list []School) []int {
	ids := make([]int, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.Sno.Int())
	}
	return ids
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "empty query", query: "", want: []int{1, 2, 3}},
		{name: "blank query", query: "   ", want: []int{1, 2, 3}},
		{name: "school name", query: "govt", want: []int{1, 2}},
		{name: "district name", query: "DURG", want: []int{3}},
		{name: "udise code", query: "0202", want: []int{2}},
		{name: "block name", query: "abhan", want: []int{1, 2}},
		{name: "cluster name", query: "selud", want: []int{3}},
		{name: "block code is not searched", query: "B2", want: []int{}},
		{name: "no match", query: "xyz", want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(schools, tt.query)
			assert.Equal(t, tt.want, snos(got))

			// filtering again with the same query is stable
			assert.Equal(t, got, Search(got, tt.query))
		})
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter QueryFilter
		want   []int
	}{
		{name: "no constraint", want: []int{1, 2, 3}},
		{name: "district code", filter: QueryFilter{DistrictCode: "d01"}, want: []int{1, 2}},
		{name: "district name", filter: QueryFilter{DistrictName: "rai"}, want: []int{1, 2}},
		{name: "block code", filter: QueryFilter{BlockCode: "b2"}, want: []int{3}},
		{name: "block name", filter: QueryFilter{BlockName: "Patan"}, want: []int{3}},
		{name: "cluster code", filter: QueryFilter{ClusterCode: "c2"}, want: []int{2}},
		{name: "cluster name", filter: QueryFilter{ClusterName: "gob"}, want: []int{1}},
		{name: "udise code", filter: QueryFilter{UdiseCode: " 22010100101 "}, want: []int{1}},
		{name: "fields are ANDed", filter: QueryFilter{DistrictCode: "D01", ClusterCode: "C3"}, want: []int{}},
		{name: "search and fields are ANDed", filter: QueryFilter{Search: "govt", ClusterName: "kendri"}, want: []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, snos(Filter(schools, tt.filter)))
		})
	}
}

func TestFilter_doesNotMutate(t *testing.T) {
	list := append([]School(nil), schools...)
	_ = Filter(list, QueryFilter{Search: "durg"})
	assert.Equal(t, schools, list)
}

func TestQueryFilter_IsEmpty(t *testing.T) {
	qf := QueryFilter{Search: "  "}
	assert.False(t, qf.IsEmpty())
	qf.Clean()
	assert.True(t, qf.IsEmpty())
}

func TestSummarize(t *testing.T) {
	list := []School{
		{BlockCode: "B1", ClusterCode: "C1", UdiseCode: "U1"},
		{BlockCode: "B1", ClusterCode: "C2", UdiseCode: "U2"},
		{BlockCode: "B2", ClusterCode: "C2", UdiseCode: "U3"},
	}
	students := []string{"U1", "U1", "U3", "U9", ""}

	got := Summarize(list, students)
	assert.Equal(t, Summary{Schools: 3, Blocks: 2, Clusters: 2, Students: 3}, got)

	// aggregates follow the filtered subset
	got = Summarize(Filter(list, QueryFilter{BlockCode: "B1"}), students)
	assert.Equal(t, Summary{Schools: 2, Blocks: 1, Clusters: 2, Students: 2}, got)

	assert.Equal(t, Summary{}, Summarize(nil, students))
}
