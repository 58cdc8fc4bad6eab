package model

// Summary holds the counts shown on the rewards screen and in `list`.
type Summary struct {
	Total     int
	Active    int
	Completed int
	Remaining int // how many more goals can be added before the cap
}

// CompletedEvent is emitted once when a tap brings a goal to zero days.
type CompletedEvent struct {
	ID    string
	Title string
}
