package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/grovetools/zelp/internal/config"
	"github.com/invopop/jsonschema"
)

func main() {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		FieldNameTag:   "yaml",
	}

	schema := r.Reflect(&config.SessionConfig{})
	schema.Title = "zelp Session Configuration"
	schema.Description = "Schema for .zelp.yml session files."

	// Only the session name is mandatory; tabs may be omitted.
	schema.Required = []string{"session_name"}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}

	if err := os.WriteFile("zelp.schema.json", data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated session schema at zelp.schema.json")
}
