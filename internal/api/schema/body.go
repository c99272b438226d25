package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
)

// Error represents a request validation failure
type Error struct {
	Parameter string
	Message   string
}

var (
	errRequestBodyInvalidJSON = &Error{
		Message: "No input data provided.",
	}
	errRequestBodyParameterInvalidType = func(name, expectedType string) *Error {
		return &Error{
			Parameter: name,
			Message:   fmt.Sprintf("The request body parameter '%s' could not be assigned to the required type (%s).", name, expectedType),
		}
	}
	errRequestBodyParameterMissing = func(name string) *Error {
		return &Error{
			Parameter: name,
			Message:   fmt.Sprintf("The request body parameter '%s' is required but was not present in the request.", name),
		}
	}
)

// UnmarshalBody parses and decodes a JSON request body and performs validations on it.
// Fields tagged with 'required' have to be declared as pointers; a required field that is absent
// or empty yields the first validation failure encountered, in field declaration order.
func UnmarshalBody[T any](request *http.Request) (*T, *Error, error) {
	body, err := io.ReadAll(request.Body)
	if err != nil {
		return nil, nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errRequestBodyInvalidJSON, nil
	}

	target := new(T)
	if err := json.Unmarshal(body, target); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
			return nil, errRequestBodyParameterInvalidType(typeErr.Field, typeErr.Type.String()), nil
		}
		return nil, errRequestBodyInvalidJSON, nil
	}

	return target, validateRequired(target), nil
}

func validateRequired(val any) *Error {
	typ := reflect.TypeOf(val).Elem()
	ref := reflect.ValueOf(val).Elem()

	for i := 0; i < typ.NumField(); i++ {
		fieldDef := typ.Field(i)
		if !strings.EqualFold(fieldDef.Tag.Get("required"), "true") {
			continue
		}

		name := getFieldName(fieldDef)
		field := ref.Field(i)
		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				return errRequestBodyParameterMissing(name)
			}
			field = field.Elem()
		}
		if field.Kind() == reflect.String && strings.TrimSpace(field.String()) == "" {
			return errRequestBodyParameterMissing(name)
		}
	}

	return nil
}

func getFieldName(def reflect.StructField) string {
	jsonVal, ok := def.Tag.Lookup("json")
	if !ok || jsonVal == "-" {
		return def.Name
	}
	name, _, _ := strings.Cut(jsonVal, ",")
	return name
}
