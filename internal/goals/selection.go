package goals

// Reconcile clamps a selected index into [0, activeCount-1].
// It returns 0 when there is nothing to select.
func Reconcile(selected, activeCount int) int {
	if activeCount <= 0 || selected < 0 {
		return 0
	}
	if selected >= activeCount {
		return activeCount - 1
	}
	return selected
}
