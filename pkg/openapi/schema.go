package openapi

import (
	"reflect"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-paraminfo/pkg/signature"
)

var timeType = reflect.TypeOf(time.Time{})

// SchemaFor maps a Go type onto an OpenAPI schema. A nil type yields an
// empty schema that accepts any value.
func SchemaFor(t reflect.Type) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("", convert(t, make(map[reflect.Type]struct{})))
}

// RequestSchema returns an object schema whose properties are the
// signature's parameters keyed by name. Every parameter is required.
func RequestSchema(sig signature.Signature) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Title = sig.Name
	schema.Required = make([]string, 0, len(sig.Params))
	for _, p := range sig.Params {
		if _, exists := schema.Properties[p.Name]; exists {
			continue
		}
		schema.WithProperty(p.Name, convert(p.Type, make(map[reflect.Type]struct{})))
		schema.Required = append(schema.Required, p.Name)
	}
	return schema
}

// ResultSchema describes the signature's results. A single non-error
// result maps to its own schema; several results become a fixed-length
// array schema whose items match any of the result schemas. A trailing error
// is dropped and nil is returned when nothing remains.
func ResultSchema(sig signature.Signature) *openapi3.Schema {
	results := sig.Results
	if n := len(results); n > 0 && results[n-1] == errorType {
		results = results[:n-1]
	}
	switch len(results) {
	case 0:
		return nil
	case 1:
		return convert(results[0], make(map[reflect.Type]struct{}))
	}
	items := openapi3.NewSchema()
	items.AnyOf = make(openapi3.SchemaRefs, len(results))
	for i, r := range results {
		items.AnyOf[i] = SchemaFor(r)
	}
	schema := openapi3.NewArraySchema().WithItems(items)
	count := uint64(len(results))
	schema.MinItems = count
	schema.MaxItems = &count
	return schema
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func convert(t reflect.Type, seen map[reflect.Type]struct{}) *openapi3.Schema {
	if t == nil {
		return openapi3.NewSchema()
	}
	if t == timeType {
		return openapi3.NewDateTimeSchema()
	}

	switch t.Kind() {
	case reflect.Bool:
		return openapi3.NewBoolSchema()
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return openapi3.NewInt32Schema()
	case reflect.Int, reflect.Int64:
		return openapi3.NewInt64Schema()
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return openapi3.NewInt32Schema().WithMin(0)
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return openapi3.NewInt64Schema().WithMin(0)
	case reflect.Float32:
		schema := openapi3.NewFloat64Schema()
		schema.Format = "float"
		return schema
	case reflect.Float64:
		schema := openapi3.NewFloat64Schema()
		schema.Format = "double"
		return schema
	case reflect.String:
		return openapi3.NewStringSchema()
	case reflect.Pointer:
		return convert(t.Elem(), seen).WithNullable()
	case reflect.Slice:
		// encoding/json base64-encodes byte slices but not byte arrays
		if t.Elem().Kind() == reflect.Uint8 {
			return openapi3.NewBytesSchema()
		}
		return openapi3.NewArraySchema().WithItems(convert(t.Elem(), seen))
	case reflect.Array:
		schema := openapi3.NewArraySchema().WithItems(convert(t.Elem(), seen))
		size := uint64(t.Len())
		schema.MinItems = size
		schema.MaxItems = &size
		return schema
	case reflect.Map:
		return openapi3.NewObjectSchema().WithAdditionalProperties(convert(t.Elem(), seen))
	case reflect.Struct:
		return structSchema(t, seen)
	default:
		// interfaces, funcs, channels and unsafe pointers carry no JSON shape
		return openapi3.NewSchema()
	}
}

func structSchema(t reflect.Type, seen map[reflect.Type]struct{}) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	if _, ok := seen[t]; ok {
		return schema
	}
	seen[t] = struct{}{}
	defer delete(seen, t)

	addFields(schema, t, seen)
	return schema
}

func addFields(schema *openapi3.Schema, t reflect.Type, seen map[reflect.Type]struct{}) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, omitEmpty, skip := jsonName(field)
		if skip {
			continue
		}
		if field.Anonymous && name == "" {
			embedded := field.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				if _, ok := seen[embedded]; !ok {
					seen[embedded] = struct{}{}
					addFields(schema, embedded, seen)
					delete(seen, embedded)
				}
				continue
			}
		}
		if !field.IsExported() {
			continue
		}
		if name == "" {
			name = field.Name
		}
		schema.WithProperty(name, convert(field.Type, seen))
		if !omitEmpty {
			schema.Required = append(schema.Required, name)
		}
	}
}

func jsonName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return "", false, false
	}
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	for _, opt := range parts[1:] {
		if opt == "omitempty" || opt == "omitzero" {
			omitEmpty = true
		}
	}
	return parts[0], omitEmpty, false
}
