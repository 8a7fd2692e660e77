package gateway

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// param describes one tool parameter. Aliases are accepted in place of the
// name, e.g. order_id for order_number.
type param struct {
	name     string
	aliases  []string
	required bool
	enum     []string
}

func (p param) names() []string {
	return append([]string{p.name}, p.aliases...)
}

// arguments holds the string parameters keyed by canonical name.
type arguments map[string]string

func (a arguments) get(name string) string {
	return a[name]
}

// generateJSONSchema builds the object schema for a tool. Presence and types
// are checked by the schema; emptiness is checked by extract.
func generateJSONSchema(params []param) (*gojsonschema.Schema, error) {
	properties := make(map[string]any)
	required := []string{}
	allOf := []any{}

	for _, p := range params {
		for _, name := range p.names() {
			prop := map[string]any{"type": "string"}
			if len(p.enum) > 0 {
				prop["enum"] = p.enum
			}
			properties[name] = prop
		}

		if !p.required {
			continue
		}

		if len(p.aliases) == 0 {
			required = append(required, p.name)
			continue
		}

		alternatives := []any{}
		for _, name := range p.names() {
			alternatives = append(alternatives, map[string]any{"required": []string{name}})
		}
		allOf = append(allOf, map[string]any{"anyOf": alternatives})
	}

	schemaMap := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schemaMap["required"] = required
	}
	if len(allOf) > 0 {
		schemaMap["allOf"] = allOf
	}

	return gojsonschema.NewSchema(gojsonschema.NewGoLoader(schemaMap))
}

func validateParameters(schema *gojsonschema.Schema, params map[string]any) error {
	result, err := schema.Validate(gojsonschema.NewGoLoader(params))
	if err != nil {
		return err
	}

	if !result.Valid() {
		errs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			errs = append(errs, e.String())
		}
		return fmt.Errorf("validation errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// extract resolves aliases and returns the canonical string arguments with the
// names of required parameters that are absent or empty.
func extract(params []param, values map[string]any) (arguments, []string) {
	args := make(arguments, len(params))
	var missing []string

	for _, p := range params {
		present := false
		for _, name := range p.names() {
			v, ok := values[name]
			if !ok || v == nil {
				continue
			}
			s, isString := v.(string)
			if isString && strings.TrimSpace(s) == "" {
				continue
			}
			present = true
			if isString {
				args[p.name] = strings.TrimSpace(s)
			}
			break
		}

		if p.required && !present {
			missing = append(missing, p.name)
		}
	}

	return args, missing
}
