package handler

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields by their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// checkRequest validates a decoded body and returns the message for the
// first failing field, empty when the body is fine.
func checkRequest(req any) string {
	err := validate.Struct(req)
	if err == nil {
		return ""
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "invalid request"
	}
	return fieldMessage(errs[0])
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "movie_id":
		return "movie_id is required"
	case "rating":
		return "rating must be between 1 and 5"
	}
	return fe.Field() + " is invalid"
}
