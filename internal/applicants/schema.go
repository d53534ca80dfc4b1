package applicants

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema checks the shape of an applicants document. Presence and
// format of identity fields are left to Validate.
const documentSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "name": {"type": "string"},
      "email": {"type": "string"},
      "work_availability": {"type": ["array", "null"], "items": {"type": "string"}},
      "annual_salary_expectation": {"type": ["object", "null"]},
      "work_experiences": {
        "type": ["array", "null"],
        "items": {
          "type": "object",
          "properties": {
            "company": {"type": "string"},
            "roleName": {"type": "string"}
          }
        }
      },
      "education": {
        "type": ["object", "null"],
        "properties": {
          "highest_level": {"type": "string"},
          "degrees": {"type": ["array", "null"], "items": {"type": "object"}}
        }
      },
      "skills": {"type": ["array", "null"], "items": {"type": "string"}}
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

func checkShape(items []map[string]any) error {
	if len(items) == 0 {
		return nil
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(items))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("document does not match the applicants schema: %s", strings.Join(errs, "; "))
}
