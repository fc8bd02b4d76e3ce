package model

// Output is everything a run produces: the scenario it was run with, the
// per-tick trace (one entry per tick, whose population is nil unless the
// scenario requested tracing), and the per-query statistics time series.
type Output struct {
	Scenario   Scenario                `json:"scenario"`
	Trace      []TraceEntry            `json:"trace"`
	Statistics map[string][]Statistics `json:"stats"`
}
