package hands

import (
	"fmt"

	"github.com/jsphweid/handsplit/model"
)

// Evaluate prices a complete assignment of sorted notes, with every note
// charged against the notes its own hand holds at its onset. It lets
// partitions from different engines be compared on the same footing.
func Evaluate(sorted model.Notes, labels []model.Hand, cost CostFunc) (float64, error) {
	if len(sorted) != len(labels) {
		return 0, fmt.Errorf("%w: %d notes, %d labels", ErrLabelCount, len(sorted), len(labels))
	}

	tr := newTracker()
	var total float64
	for i, n := range sorted {
		tr.advance(n.Onset)
		c := cost(n, labels[i], tr.state(labels[i]))
		if err := checkCost(c, i, labels[i]); err != nil {
			return 0, err
		}
		total += c
		tr.assign(labels[i], n)
	}
	return total, nil
}

// Disagreements counts the notes two partitions of the same input put in
// different hands.
func Disagreements(a, b *model.Partition) (int, error) {
	if len(a.Labels) != len(b.Labels) {
		return 0, fmt.Errorf("%w: %d and %d labels", ErrLabelCount, len(a.Labels), len(b.Labels))
	}
	var n int
	for i := range a.Labels {
		if a.Labels[i] != b.Labels[i] {
			n++
		}
	}
	return n, nil
}
