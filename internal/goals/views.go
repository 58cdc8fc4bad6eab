package goals

import "github.com/theirongolddev/goalchaser/internal/model"

// Active returns the goals with days left, in store order.
func Active(all []model.Goal) []model.Goal {
	out := make([]model.Goal, 0, len(all))
	for _, g := range all {
		if g.Active() {
			out = append(out, g)
		}
	}
	return out
}

// Completed returns the goals with no days left, in store order.
func Completed(all []model.Goal) []model.Goal {
	out := make([]model.Goal, 0, len(all))
	for _, g := range all {
		if g.Completed() {
			out = append(out, g)
		}
	}
	return out
}

// Summarize counts active and completed goals.
func Summarize(all []model.Goal) model.Summary {
	s := model.Summary{Total: len(all)}
	for _, g := range all {
		if g.Completed() {
			s.Completed++
		} else {
			s.Active++
		}
	}
	s.Remaining = MaxActive - s.Active
	if s.Remaining < 0 {
		s.Remaining = 0
	}
	return s
}
