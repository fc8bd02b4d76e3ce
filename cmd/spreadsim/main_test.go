package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"spreadsim/internal/model"
)

func Test_LoadScenario_RoundTripsJSON(t *testing.T) {
	scenario := model.Scenario{
		Name:     "smoke",
		Ticks:    3,
		GridSize: model.XY{X: 10, Y: 10},
	}
	data, err := json.Marshal(scenario)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	path := filepath.Join(t.TempDir(), "scenario.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := loadScenario(path)
	if err != nil {
		t.Fatalf("loadScenario: %v", err)
	}
	if got.Name != scenario.Name || got.Ticks != scenario.Ticks || got.GridSize != scenario.GridSize {
		t.Errorf("loadScenario() = %+v, want %+v", got, scenario)
	}
}

func Test_LoadScenario_MissingFile(t *testing.T) {
	if _, err := loadScenario(filepath.Join(t.TempDir(), "does-not-exist.json")); err == nil {
		t.Error("expected an error loading a missing scenario file")
	}
}

func Test_WriteOutput_ProducesReadableJSON(t *testing.T) {
	output := model.Output{Scenario: model.Scenario{Name: "written"}}
	path := filepath.Join(t.TempDir(), "output.json")

	if err := writeOutput(path, output); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var got model.Output
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Scenario.Name != output.Scenario.Name {
		t.Errorf("round-tripped scenario name = %q, want %q", got.Scenario.Name, output.Scenario.Name)
	}
}
