package dashboard

// Board is what the admin dashboard displays.
// Every fetch replaces all of it; a failed fetch never leaves stale counters.
type Board struct {
	Students int
	Schools  int
	Blocks   int
	Clusters int
	Err      string
}

// Apply replaces the board with the outcome of a stats fetch.
// On error every counter is reset to 0 and the message is kept.
func (b *Board) Apply(stats Stats, err error, message func(error) string) {
	if err != nil {
		msg := err.Error()
		if message != nil {
			msg = message(err)
		}
		*b = Board{Err: msg}
		return
	}
	*b = Board{
		Students: stats.TotalStudents.Int(),
		Schools:  stats.TotalSchools.Int(),
		Blocks:   stats.TotalBlocks.Int(),
		Clusters: stats.TotalClusters.Int(),
	}
}

func (b Board) Failed() bool {
	return b.Err != ""
}
