package hands

import "github.com/jsphweid/handsplit/model"

// Summarize reports per-hand playability figures for a partition.
func Summarize(p *model.Partition) []model.HandStats {
	res := make([]model.HandStats, 0, len(model.Hands))
	for _, h := range model.Hands {
		stats := model.HandStats{Engine: p.Engine, Hand: h}
		var played held
		for _, n := range p.Hand(h) {
			played.release(n.Onset)
			played.add(n)
			s := stateOf(played.notes)
			if s.Active > stats.MaxSimultaneous {
				stats.MaxSimultaneous = s.Active
			}
			if s.Spread > stats.MaxSpread {
				stats.MaxSpread = s.Spread
			}
			if wrongRegister(n, h) {
				stats.RegisterViolations++
			}
		}
		stats.Count = played.total
		res = append(res, stats)
	}
	return res
}
