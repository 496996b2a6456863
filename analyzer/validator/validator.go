// Package validator checks structured JSON benchmark payloads against the
// shapes the JSON parser understands. Validation is advisory: the parsers
// tolerate anything, so warnings exist to surface likely authoring mistakes
// before results silently go missing.
package validator

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// benchmarkSchema describes the two accepted payload shapes: an array of
// named result objects, or an object keyed by result name.
const benchmarkSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "oneOf": [
    {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"}
        },
        "additionalProperties": {
          "type": ["number", "string", "boolean", "null"]
        }
      }
    },
    {
      "type": "object",
      "additionalProperties": {
        "oneOf": [
          {"type": "number"},
          {
            "type": "object",
            "additionalProperties": {"type": ["number", "string", "boolean", "null"]}
          }
        ]
      }
    }
  ]
}`

var schema = gojsonschema.NewStringLoader(benchmarkSchema)

// ValidateJSON validates a JSON benchmark payload and returns a warning per
// violation. An empty slice means the payload matches a supported shape.
// Malformed JSON yields a single warning rather than an error; the parser
// degrades it to an empty suite regardless.
func ValidateJSON(text string) []string {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewStringLoader(text))
	if err != nil {
		return []string{fmt.Sprintf("payload is not valid JSON: %v", err)}
	}

	if result.Valid() {
		return nil
	}

	warnings := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		warnings = append(warnings, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return warnings
}
