package libdiff

// Summary tallies a change set by kind.
type Summary struct {
	Additions     int `json:"additions"`
	Deletions     int `json:"deletions"`
	Modifications int `json:"modifications"`
}

// Summarize is a pure reduction over changes; the counts always equal
// the number of records of each kind.
func Summarize(changes []Change) Summary {
	var s Summary
	for i := range changes {
		switch changes[i].Kind {
		case Addition:
			s.Additions++
		case Deletion:
			s.Deletions++
		case Modification:
			s.Modifications++
		}
	}
	return s
}

// Total returns the number of changes counted.
func (s Summary) Total() int {
	return s.Additions + s.Deletions + s.Modifications
}
