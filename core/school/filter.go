package school

import "github.com/pathshala/admin/core"

func (s School) matchesSearch(query string) bool {
	return core.MatchAny(query, s.SchoolName, s.DistrictName, s.UdiseCode, s.BlockName, s.ClusterName)
}

// Search returns the schools matching query. An empty query returns the whole list.
func Search(schools []School, query string) []School {
	return Filter(schools, QueryFilter{Search: query})
}

// Filter applies AND operation on the non-empty QueryFilter fields.
// The result is a new slice; `schools` is left untouched.
func Filter(schools []School, filter QueryFilter) []School {
	filter.Clean()

	filtered := make([]School, 0, len(schools))
	for _, s := range schools {
		if !s.matchesSearch(filter.Search) {
			continue
		}
		if !containsFold(s.DistrictCode, filter.DistrictCode) ||
			!containsFold(s.DistrictName, filter.DistrictName) ||
			!containsFold(s.BlockCode, filter.BlockCode) ||
			!containsFold(s.BlockName, filter.BlockName) ||
			!containsFold(s.ClusterCode, filter.ClusterCode) ||
			!containsFold(s.ClusterName, filter.ClusterName) ||
			!containsFold(s.UdiseCode, filter.UdiseCode) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// containsFold treats an empty constraint as no constraint.
func containsFold(field, constraint string) bool {
	return constraint == "" || core.ContainsFold(field, constraint)
}

// Summarize counts the distinct block and cluster codes of `schools` and the
// students whose UDISE code belongs to one of them.
func Summarize(schools []School, studentUdiseCodes []string) Summary {
	blocks := make(map[string]struct{})
	clusters := make(map[string]struct{})
	codes := make(map[string]struct{}, len(schools))
	for _, s := range schools {
		blocks[s.BlockCode] = struct{}{}
		clusters[s.ClusterCode] = struct{}{}
		codes[s.UdiseCode] = struct{}{}
	}

	var students int
	for _, code := range studentUdiseCodes {
		if _, ok := codes[code]; ok {
			students++
		}
	}

	return Summary{
		Schools:  len(schools),
		Blocks:   len(blocks),
		Clusters: len(clusters),
		Students: students,
	}
}
