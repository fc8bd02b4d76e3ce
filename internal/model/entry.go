package model

// PersonInfoWithID pairs a person snapshot with its stable id, the unit the
// collector sort-merges traces by.
type PersonInfoWithID struct {
	Info PersonInfo
	ID   int
}

// OutputEntry is what a patch worker emits once per tick: the tick index,
// the per-query statistics for queries overlapping this patch's padded
// area, and (when tracing is enabled) this patch's slice of the global
// trace.
type OutputEntry struct {
	Tick       int
	Statistics map[string]Statistics
	Trace      []PersonInfoWithID
}
