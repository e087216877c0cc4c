package domain

import (
	"math"

	"github.com/forumapi-dev/forumapi/internal/errors"
)

// Payload is the raw field set an entity is built from. A key mapped to nil
// is treated the same as an absent key.
type Payload map[string]any

type FieldType int

const (
	String FieldType = iota
	NonNegativeInt
	CommentDetailList
	ReplyDetailList
)

func (t FieldType) String() string {
	switch t {
	case String:
		return "string"
	case NonNegativeInt:
		return "non-negative integer"
	case CommentDetailList:
		return "list of comment details"
	case ReplyDetailList:
		return "list of reply details"
	default:
		return "unknown"
	}
}

type Field struct {
	Name     string
	Type     FieldType
	Required bool
}

// Schema describes the fields of one entity kind. Entity is the prefix of
// the error codes it produces, e.g. COMMENT_DETAIL.
type Schema struct {
	Entity string
	Fields []Field
}

// Validate checks presence of every required field first, then the type of
// every present field. The first failure is returned.
func (s Schema) Validate(p Payload) error {
	for _, f := range s.Fields {
		if !f.Required {
			continue
		}
		if v, ok := p[f.Name]; !ok || v == nil {
			return &errors.MissingFieldError{Entity: s.Entity, Field: f.Name}
		}
	}
	for _, f := range s.Fields {
		v, ok := p[f.Name]
		if !ok || v == nil {
			continue
		}
		if !f.Type.matches(v) {
			return &errors.TypeMismatchError{Entity: s.Entity, Field: f.Name, Expected: f.Type.String()}
		}
	}
	return nil
}

func (t FieldType) matches(v any) bool {
	switch t {
	case String:
		_, ok := v.(string)
		return ok
	case NonNegativeInt:
		n, ok := toInt(v)
		return ok && n >= 0
	case CommentDetailList:
		_, ok := v.([]CommentDetail)
		return ok
	case ReplyDetailList:
		_, ok := v.([]ReplyDetail)
		return ok
	}
	return false
}

// toInt accepts Go integers and whole float64 values, which is how
// encoding/json decodes numbers into a Payload.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// accessors below are only called after Validate succeeded

func (p Payload) str(name string) string {
	s, _ := p[name].(string)
	return s
}

func (p Payload) intOr(name string, def int) int {
	if n, ok := toInt(p[name]); ok {
		return n
	}
	return def
}

func requiredStrings(entity string, names ...string) Schema {
	s := Schema{Entity: entity}
	for _, n := range names {
		s.Fields = append(s.Fields, Field{Name: n, Type: String, Required: true})
	}
	return s
}
