// Package schema declares the insertable shape of every content entity and
// validates payloads before any writer touches the store.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"ms-content/internal/models"

	"github.com/go-playground/validator/v10"
)

// Insert is a validated-before-write payload for one entity.
type Insert interface {
	Entity() models.Entity
	// Validate checks required fields and value ranges.
	Validate() error
	// Model returns the read type with declared defaults applied.
	Model() models.Identified
	// Key is the natural key used to compare records across seed runs.
	Key() NaturalKey
}

// Ordered is implemented by inserts of entities displayed by orderIndex.
type Ordered interface {
	HasOrderIndex() bool
}

// NaturalKey identifies a content record independently of its row id.
type NaturalKey struct {
	Label string
	Group string
}

func (k NaturalKey) String() string {
	if k.Group == "" {
		return k.Label
	}
	return k.Label + " / " + k.Group
}

type FieldError struct {
	Field string
	Rule  string
}

// ValidationError reports every field of a payload that failed validation.
type ValidationError struct {
	Entity models.Entity
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Rule))
	}
	return fmt.Sprintf("invalid %s payload: %s", e.Entity, strings.Join(parts, ", "))
}

// HasField reports whether the named JSON field is among the failures.
func (e *ValidationError) HasField(name string) bool {
	for _, f := range e.Fields {
		if f.Field == name {
			return true
		}
	}
	return false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names so errors match the payload the caller sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func check(entity models.Entity, payload any, extra ...FieldError) error {
	var fields []FieldError
	if err := validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate %s payload: %w", entity, err)
		}
		for _, fe := range verrs {
			rule := fe.Tag()
			if fe.Param() != "" {
				rule += "=" + fe.Param()
			}
			fields = append(fields, FieldError{Field: fe.Field(), Rule: rule})
		}
	}
	fields = append(fields, extra...)
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Entity: entity, Fields: fields}
}

// Decode parses a JSON payload into the insert type T and validates it.
// Values of the wrong primitive type and unknown fields are reported as a
// *ValidationError naming the field. Writers that receive content as JSON go
// through Decode before Store.Create; Go literals can call Validate directly.
func Decode[T any, P interface {
	*T
	Insert
}](data []byte) (P, error) {
	p := P(new(T))

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(p); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ValidationError{
				Entity: p.Entity(),
				Fields: []FieldError{{Field: typeErr.Field, Rule: "type=" + typeErr.Type.String()}},
			}
		}
		if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			return nil, &ValidationError{
				Entity: p.Entity(),
				Fields: []FieldError{{Field: strings.Trim(field, `"`), Rule: "unknown"}},
			}
		}
		return nil, fmt.Errorf("decode %s payload: %w", p.Entity(), err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
