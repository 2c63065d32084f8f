package student

import "github.com/pathshala/admin/core"

func (s Student) matchesSearch(query string) bool {
	return core.MatchAny(query, s.Name, s.SchoolName, s.Class, s.UdiseCode, s.NameOfTree)
}

// Search returns the students matching query. An empty query returns the whole list.
func Search(students []Student, query string) []Student {
	return Filter(students, QueryFilter{Search: query})
}

// Filter applies AND operation on the non-empty QueryFilter fields.
func Filter(students []Student, filter QueryFilter) []Student {
	filter.Clean()

	filtered := make([]Student, 0, len(students))
	for _, s := range students {
		if !s.matchesSearch(filter.Search) {
			continue
		}
		if filter.UdiseCode != "" && !core.ContainsFold(s.UdiseCode, filter.UdiseCode) {
			continue
		}
		if filter.Class != "" && s.Class != filter.Class {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// UdiseCodes returns the UDISE code of every student, duplicates included.
func UdiseCodes(students []Student) []string {
	codes := make([]string, 0, len(students))
	for _, s := range students {
		codes = append(codes, s.UdiseCode)
	}
	return codes
}

// Classes returns the distinct classes of `students`, in first-seen order.
func Classes(students []Student) []string {
	seen := make(map[string]struct{})
	var classes []string
	for _, s := range students {
		if s.Class == "" {
			continue
		}
		if _, ok := seen[s.Class]; ok {
			continue
		}
		seen[s.Class] = struct{}{}
		classes = append(classes, s.Class)
	}
	return classes
}
