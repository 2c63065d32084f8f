package school

import "github.com/pathshala/admin/core"

type School struct {
	Sno          core.FlexInt `json:"sno"`
	DistrictCode string       `json:"district_code"`
	DistrictName string       `json:"district_name"`
	BlockName    string       `json:"block_name"`
	BlockCode    string       `json:"block_code"`
	ClusterCode  string       `json:"cluster_code"`
	ClusterName  string       `json:"cluster_name"`
	UdiseCode    string       `json:"udise_code"`
	SchoolName   string       `json:"school_name"`
	Password     string       `json:"password,omitempty"`
}

// QueryFilter narrows a list of schools.
// Search matches any of SchoolName, DistrictName, UdiseCode, BlockName or ClusterName.
// Every other non-empty field must be contained (case-insensitively) in the matching School field.
type QueryFilter struct {
	Search       string
	DistrictCode string
	DistrictName string
	BlockCode    string
	BlockName    string
	ClusterCode  string
	ClusterName  string
	UdiseCode    string
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.DistrictCode = core.CleanString(qf.DistrictCode)
	qf.DistrictName = core.CleanString(qf.DistrictName)
	qf.BlockCode = core.CleanString(qf.BlockCode)
	qf.BlockName = core.CleanString(qf.BlockName)
	qf.ClusterCode = core.CleanString(qf.ClusterCode)
	qf.ClusterName = core.CleanString(qf.ClusterName)
	qf.UdiseCode = core.CleanString(qf.UdiseCode)
}

func (qf *QueryFilter) IsEmpty() bool {
	return *qf == QueryFilter{}
}

// Summary is derived from a (filtered) list of schools.
type Summary struct {
	Schools  int `json:"total_schools"`
	Blocks   int `json:"total_blocks"`
	Clusters int `json:"total_clusters"`
	Students int `json:"total_students"`
}
