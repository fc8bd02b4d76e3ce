// Command schemagen emits a JSON Schema document describing the scenario
// file format, so scenario authors can validate files before a run.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/invopop/jsonschema"

	"spreadsim/internal/model"
)

func main() {
	outputPath := flag.String("output", "", "path to write the schema to (stdout if empty)")
	flag.Parse()

	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: false,
	}
	schema := reflector.Reflect(&model.Scenario{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		slog.Error("failed to marshal schema", "error", err)
		os.Exit(1)
	}

	if *outputPath == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*outputPath, data, 0o644); err != nil {
		slog.Error("failed to write schema", "path", *outputPath, "error", err)
		os.Exit(1)
	}
	slog.Info("schema written", "path", *outputPath)
}
