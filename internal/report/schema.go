package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SummarySchemaID is the $id of JSONSchema.
const SummarySchemaID = "https://github.com/andyballingall/lintwalk/summary.schema.json"

// JSONSchema describes the document written by JSONReporter.
const JSONSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "` + SummarySchemaID + `",
  "title": "lintwalk run summary",
  "type": "object",
  "required": ["root", "startTime", "endTime", "duration", "stats", "results"],
  "additionalProperties": false,
  "properties": {
    "root": {"type": "string"},
    "startTime": {"type": "string", "format": "date-time"},
    "endTime": {"type": "string", "format": "date-time"},
    "duration": {"type": "string"},
    "stats": {
      "type": "object",
      "required": ["total", "formatted", "styleClean", "styleIssues", "formatFailed"],
      "additionalProperties": false,
      "properties": {
        "total": {"type": "integer", "minimum": 0},
        "formatted": {"type": "integer", "minimum": 0},
        "styleClean": {"type": "integer", "minimum": 0},
        "styleIssues": {"type": "integer", "minimum": 0},
        "formatFailed": {"type": "integer", "minimum": 0}
      }
    },
    "results": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["path", "outcome"],
        "additionalProperties": false,
        "properties": {
          "path": {"type": "string", "minLength": 1},
          "outcome": {"enum": ["formatted", "format-failed", "style-clean", "style-issues"]},
          "detail": {"type": "string"}
        }
      }
    }
  }
}
`

var (
	summarySchema     *jsonschema.Schema
	summarySchemaErr  error
	summarySchemaOnce sync.Once
)

func compiledSchema() (*jsonschema.Schema, error) {
	summarySchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(JSONSchema))
		if err != nil {
			summarySchemaErr = err
			return
		}
		c := jsonschema.NewCompiler()
		c.AssertFormat()
		if err := c.AddResource(SummarySchemaID, doc); err != nil {
			summarySchemaErr = err
			return
		}
		summarySchema, summarySchemaErr = c.Compile(SummarySchemaID)
	})
	return summarySchema, summarySchemaErr
}

// ValidateSummary checks that r holds a JSON run summary as written by JSONReporter.
func ValidateSummary(r io.Reader) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("summary schema does not compile: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(r)
	if err != nil {
		return &InvalidSummaryError{Wrapped: err}
	}
	if err := sch.Validate(inst); err != nil {
		return &InvalidSummaryError{Wrapped: err}
	}
	return nil
}

// InvalidSummaryError is returned when a document is not a valid run summary.
type InvalidSummaryError struct {
	Wrapped error
}

func (e *InvalidSummaryError) Error() string {
	return fmt.Sprintf("not a valid lintwalk summary: %v", e.Wrapped)
}

func (e *InvalidSummaryError) Unwrap() error {
	return e.Wrapped
}
