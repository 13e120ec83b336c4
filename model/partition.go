package model

// Partition is the result of one engine run.
type Partition struct {
	Engine string `json:"engine"`

	// Notes is the input after preprocessing (validated, sorted by onset then
	// pitch). Labels[i] is the hand holding Notes[i].
	Notes  Notes  `json:"notes"`
	Labels []Hand `json:"labels"`

	Left  Notes `json:"left"`
	Right Notes `json:"right"`

	// Cost is the cumulative cost the engine reports for its assignment.
	Cost float64 `json:"cost"`
}

func (p *Partition) Len() int {
	return len(p.Left) + len(p.Right)
}

func (p *Partition) Hand(h Hand) Notes {
	if h == Left {
		return p.Left
	}
	return p.Right
}
