package jsonfile

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// collectionSchemaJSON describes the persisted collection. Unknown fields are
// tolerated; the five known ones must be present and well-formed. Id syntax is
// left to the uuid decoder, which also accepts upper case hex.
const collectionSchemaJSON = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "question", "answer", "created_at", "updated_at"],
    "properties": {
      "id":         {"type": "string"},
      "question":   {"type": "string", "pattern": "\\S"},
      "answer":     {"type": "string", "pattern": "\\S"},
      "created_at": {"type": "string", "format": "date-time"},
      "updated_at": {"type": "string", "format": "date-time"}
    }
  }
}`

// maxReportedSchemaErrors caps how many schema violations end up in an error message.
const maxReportedSchemaErrors = 3

var collectionSchema = mustCompileSchema(collectionSchemaJSON)

func mustCompileSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid collection schema: %v", err))
	}
	return schema
}

// validateCollection checks raw file contents against the collection schema.
// It returns a descriptive error for malformed JSON or schema violations.
func validateCollection(data []byte) error {
	result, err := collectionSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}

	if result.Valid() {
		return nil
	}

	errs := result.Errors()
	msgs := make([]string, 0, maxReportedSchemaErrors)
	for i, desc := range errs {
		if i == maxReportedSchemaErrors {
			break
		}
		msgs = append(msgs, desc.String())
	}

	msg := strings.Join(msgs, "; ")
	if extra := len(errs) - len(msgs); extra > 0 {
		msg = fmt.Sprintf("%s ... and %d more", msg, extra)
	}
	return fmt.Errorf("schema validation failed: %s", msg)
}
