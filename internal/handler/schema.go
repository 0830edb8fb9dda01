package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/jsonschema-go/jsonschema"
)

const maxBodyBytes = 1 << 20

// requestSchema infers a schema from T, resolved once at startup.
// Objects stay open to unknown keys so richer clients keep working;
// required string fields must be non-empty.
func requestSchema[T any](nonEmpty ...string) *jsonschema.Resolved {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		panic(fmt.Sprintf("failed to infer request schema: %v", err))
	}
	openObjects(s)
	for _, name := range nonEmpty {
		if prop, ok := s.Properties[name]; ok {
			prop.MinLength = jsonschema.Ptr(1)
		}
	}
	resolved, err := s.Resolve(nil)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve request schema: %v", err))
	}
	return resolved
}

func openObjects(s *jsonschema.Schema) {
	if s == nil {
		return
	}
	s.AdditionalProperties = nil
	for _, prop := range s.Properties {
		openObjects(prop)
	}
	openObjects(s.Items)
}

// decodeValid reads a JSON body, validates it against schema and decodes it
// into out.
func decodeValid(w http.ResponseWriter, r *http.Request, schema *jsonschema.Resolved, out any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}
	var instance any
	if err := json.Unmarshal(body, &instance); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("invalid body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode body: %w", err)
	}
	return nil
}
