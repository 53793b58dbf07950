package planner

// Package planner implements greedy study-time allocation over a multi-day
// horizon. Tasks are ranked by urgency, fitted into the free slots left by
// classes and work shifts, and separated by fixed-length breaks. The engine
// performs no I/O; all inputs are supplied up front and treated as immutable
// for the duration of one run.
