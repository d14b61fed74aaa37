package catalog

import (
	"cloudops-workers/internal/common/validation"
)

// InputJSONSchema renders the universal fields plus the operation inputs.
// Unknown top-level keys are rejected so typos surface during validation.
func (d *Descriptor) InputJSONSchema() validation.JSONSchema {
	fields := append(UniversalFields(), d.InputFields...)
	props, required := properties(fields)
	return validation.JSONSchema{
		Schema:               validation.DraftURI,
		Title:                d.DisplayName,
		Type:                 string(TypeObject),
		Properties:           props,
		Required:             required,
		AdditionalProperties: false,
	}
}

// OutputJSONSchema tolerates provider schema drift at the top level.
func (d *Descriptor) OutputJSONSchema() validation.JSONSchema {
	props, required := properties(d.OutputSchema)
	return validation.JSONSchema{
		Schema:               validation.DraftURI,
		Title:                d.DisplayName + " result",
		Type:                 string(TypeObject),
		Properties:           props,
		Required:             required,
		AdditionalProperties: true,
	}
}

// ValidateInput checks a configuration mapping against the input schema.
// Invocations never call this; it backs tooling.
func ValidateInput(d *Descriptor, config map[string]any) (*validation.ValidationResult, error) {
	return validation.ValidateInput(config, d.InputJSONSchema())
}

func properties(fields []Field) (map[string]validation.Property, []string) {
	props := make(map[string]validation.Property, len(fields))
	var required []string
	for _, f := range fields {
		props[f.Key] = propertyOf(f)
		if f.Required {
			required = append(required, f.Key)
		}
	}
	return props, required
}

func propertyOf(f Field) validation.Property {
	p := validation.Property{
		Type:        string(f.Type),
		Title:       f.Label,
		Description: f.Description,
	}
	switch f.Type {
	case TypeArray:
		if f.Items != nil {
			items := propertyOf(*f.Items)
			p.Items = &items
		}
	case TypeObject:
		if len(f.Fields) > 0 {
			p.Properties, p.Required = properties(f.Fields)
		}
	}
	return p
}
