// Package validate provides struct-tag field validation.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required        field must not be zero/empty
//	nullable        if empty, skip all remaining rules for this field
//	email           valid email address
//	numeric         any number
//	json            valid JSON string
//	min=N           string: min char length | number: min value
//	max=N           string: max char length | number: max value
//	in=a|b|c        value must be one of the listed items
//
// Example:
//
//	type Input struct {
//	    Email string `json:"email" validate:"required,email"`
//	    Price string `json:"price" validate:"required,numeric"`
//	    Size  string `json:"size"  validate:"nullable,json"`
//	}
package validate

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"reflect"
	"strconv"
	"strings"
)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; an empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := strings.Split(tag, ",")

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			rule = strings.TrimSpace(rule)
			if rule == "" || rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors reports whether the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}

	case "email":
		if _, err := mail.ParseAddress(raw); err != nil {
			return fmt.Sprintf("The %s field must be a valid email address.", field)
		}

	case "numeric":
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Sprintf("The %s field must be a number.", field)
		}

	case "json":
		if !json.Valid([]byte(raw)) {
			return fmt.Sprintf("The %s field must be valid JSON.", field)
		}

	case "min":
		if msg := boundCheck(field, raw, v, param, true); msg != "" {
			return msg
		}

	case "max":
		if msg := boundCheck(field, raw, v, param, false); msg != "" {
			return msg
		}

	case "in":
		allowed := strings.Split(param, "|")
		for _, a := range allowed {
			if raw == a {
				return ""
			}
		}
		return fmt.Sprintf("The %s field must be one of: %s.", field, strings.Join(allowed, ", "))
	}

	return ""
}

// boundCheck applies min/max to string length or numeric value.
func boundCheck(field, raw string, v reflect.Value, param string, isMin bool) string {
	limit, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return ""
	}

	var actual float64
	switch v.Kind() {
	case reflect.String:
		actual = float64(len([]rune(raw)))
	default:
		actual, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Sprintf("The %s field must be a number.", field)
		}
	}

	if isMin && actual < limit {
		return fmt.Sprintf("The %s field must be at least %s.", field, param)
	}
	if !isMin && actual > limit {
		return fmt.Sprintf("The %s field may not be greater than %s.", field, param)
	}
	return ""
}

func hasRule(rules []string, name string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == name {
			return true
		}
	}
	return false
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
