// Package catalog holds the static, read-only table of operation descriptors.
// Each descriptor declares one remote control-plane call and binds it to the
// SDK client method that performs it.
package catalog

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"cloudops-workers/internal/common/aws"
)

// ValueType is the documented shape of a field value.
type ValueType string

const (
	TypeString  ValueType = "string"
	TypeNumber  ValueType = "number"
	TypeInteger ValueType = "integer"
	TypeBoolean ValueType = "boolean"
	TypeArray   ValueType = "array"
	TypeObject  ValueType = "object"
)

// Field documents one input or output member. Items describes array
// elements and Fields describes object members, so types nest freely.
// An object without Fields is a free-form string map.
type Field struct {
	Key         string
	Label       string
	Description string
	Type        ValueType
	Required    bool
	Items       *Field
	Fields      []Field
}

// Call performs the bound remote call with an already constructed client.
type Call func(ctx context.Context, client any, payload map[string]any) (map[string]any, error)

var (
	// ErrInvalidPayload means the payload could not be decoded into the
	// operation's input shape. No request was sent.
	ErrInvalidPayload = errors.New("payload does not match operation input")
	// ErrClientMismatch means the client handle is not the one the
	// descriptor's service requires.
	ErrClientMismatch = errors.New("client does not serve this operation")
)

// Descriptor is immutable after registration; the engine only reads it.
type Descriptor struct {
	Name         string
	Service      aws.Service
	Action       string
	DisplayName  string
	Description  string
	Category     string
	InputFields  []Field
	OutputSchema []Field

	call Call
}

// Invoke issues exactly one call through the bound SDK method.
func (d *Descriptor) Invoke(ctx context.Context, client any, payload map[string]any) (map[string]any, error) {
	if d.call == nil {
		return nil, errors.New("operation " + d.Name + " has no bound call")
	}
	return d.call(ctx, client, payload)
}

// RequiredInputs lists the required input keys, universal ones included.
func (d *Descriptor) RequiredInputs() []string {
	var keys []string
	for _, f := range append(UniversalFields(), d.InputFields...) {
		if f.Required {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

func newField(key string, t ValueType, description string) Field {
	return Field{Key: key, Label: labelFor(key), Type: t, Description: description}
}

func str(key, description string) Field     { return newField(key, TypeString, description) }
func num(key, description string) Field     { return newField(key, TypeNumber, description) }
func integer(key, description string) Field { return newField(key, TypeInteger, description) }
func boolean(key, description string) Field { return newField(key, TypeBoolean, description) }

func list(key, description string, items Field) Field {
	f := newField(key, TypeArray, description)
	f.Items = &items
	return f
}

func strList(key, description string) Field {
	return list(key, description, Field{Type: TypeString})
}

func obj(key, description string, members ...Field) Field {
	f := newField(key, TypeObject, description)
	f.Fields = members
	return f
}

func strMap(key, description string) Field {
	return obj(key, description)
}

// element describes the members of an array item.
func element(members ...Field) Field {
	return Field{Type: TypeObject, Fields: members}
}

func (f Field) req() Field {
	f.Required = true
	return f
}

// labelFor splits a provider member name into words:
// "DBInstanceIdentifier" becomes "DB Instance Identifier".
func labelFor(key string) string {
	runes := []rune(key)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	if len(runes) > 0 && unicode.IsLower(runes[0]) {
		s := b.String()
		return strings.ToUpper(s[:1]) + s[1:]
	}
	return b.String()
}
