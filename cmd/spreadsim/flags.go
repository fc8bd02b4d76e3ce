package main

import "flag"

// Config represents the command-line parameters for a spreadsim run.
type Config struct {
	ScenarioPath string
	OutputPath   string
	StorePath    string
	Padding      int
	Trace        bool
	Timeout      int
	Starship     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		ScenarioPath: "scenario.json",
		OutputPath:   "output.json",
		Padding:      8,
		Timeout:      300,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ScenarioPath, "scenario", c.ScenarioPath, "path to the scenario JSON file")
	fs.StringVar(&c.OutputPath, "output", c.OutputPath, "path to write the run's Output JSON to")
	fs.StringVar(&c.StorePath, "store", c.StorePath, "optional SQLite path to archive statistics to")
	fs.IntVar(&c.Padding, "padding", c.Padding, "padding width in cells for patch boundary exchange")
	fs.BoolVar(&c.Trace, "trace", c.Trace, "override the scenario's trace flag (force tracing on)")
	fs.IntVar(&c.Timeout, "timeout", c.Timeout, "run timeout in seconds")
	fs.BoolVar(&c.Starship, "starship", c.Starship,
		"select the starship collector variant instead of rocket (both produce identical output; "+
			"kept for scenario-file compatibility)")
}
