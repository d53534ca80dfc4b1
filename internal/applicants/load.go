package applicants

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

// Load reads a JSON document with applicant records from path. The document is
// either an array of records or an object holding them under "applicants".
func Load(path string) (*Applicants, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("applicants file is not configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading applicants from file %q: %w", path, err)
	}

	items, err := parseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing applicants file %q: %w", path, err)
	}

	if err := checkShape(items); err != nil {
		return nil, fmt.Errorf("parsing applicants file %q: %w", path, err)
	}

	return Decode(items)
}

// Decode converts raw records into applicants and validates them.
// Missing optional fields are left at their zero values.
func Decode(items []map[string]any) (*Applicants, error) {
	result := make([]*Applicant, 0, len(items))
	for idx, item := range items {
		applicant := &Applicant{}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           applicant,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, err
		}

		if err := decoder.Decode(item); err != nil {
			return nil, fmt.Errorf("decoding applicant #%d: %w", idx, err)
		}

		if err := Validate(applicant); err != nil {
			return nil, fmt.Errorf("applicant #%d: %w", idx, err)
		}

		result = append(result, applicant)
	}

	return &Applicants{Items: result}, nil
}

// Validate checks the fields required to identify an applicant.
func Validate(applicant *Applicant) error {
	if applicant == nil {
		return errors.New("applicant is nil")
	}

	err := validate.Struct(applicant)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Namespace(), fieldErr.Tag()))
	}

	return fmt.Errorf("invalid fields: %s", strings.Join(fields, ", "))
}

func parseDocument(data []byte) ([]map[string]any, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, nil
	}

	if strings.HasPrefix(trimmed, "{") {
		var wrapped struct {
			Applicants []map[string]any `json:"applicants"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, err
		}
		return wrapped.Applicants, nil
	}

	var items []map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
