package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names ("amountInStock"), not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateProductCreate checks a create payload: every product field is
// required. The manufacturer reference itself is checked by the workflow.
func ValidateProductCreate(in *ProductInput) error {
	if in == nil {
		verr := domain.NewValidationError()
		verr.Add(domain.GlobalField, "request body is required")
		return verr
	}

	verr := domain.NewValidationError()
	requirePresent(verr, "name", in.Name == nil)
	requirePresent(verr, "sku", in.SKU == nil)
	requirePresent(verr, "description", in.Description == nil)
	requirePresent(verr, "price", in.Price == nil)
	requirePresent(verr, "category", in.Category == nil)
	requirePresent(verr, "amountInStock", in.AmountInStock == nil)

	collect(verr, validate.Struct(in))
	mergeManufacturer(verr, in.Manufacturer)
	return verr.OrNil()
}

// ValidateProductUpdate checks an update payload: the create shape with every
// field optional.
func ValidateProductUpdate(in *ProductInput) error {
	if in == nil {
		return nil
	}
	verr := domain.NewValidationError()
	collect(verr, validate.Struct(in))
	mergeManufacturer(verr, in.Manufacturer)
	return verr.OrNil()
}

// ValidateManufacturerCreate checks a manufacturer with its contact. Field
// paths are relative to the manufacturer ("contact.email").
func ValidateManufacturerCreate(in *ManufacturerInput) error {
	return manufacturerErrors(in).OrNil()
}

func manufacturerErrors(in *ManufacturerInput) *domain.ValidationError {
	verr := domain.NewValidationError()
	if in == nil {
		verr.Add(domain.GlobalField, "manufacturer is required")
		return verr
	}
	collect(verr, validate.Struct(in))
	return verr
}

// mergeManufacturer adds the failures of an inline manufacturer under
// "manufacturer.". An absent manufacturer is the workflow's concern.
func mergeManufacturer(verr *domain.ValidationError, in *ManufacturerInput) {
	if in == nil {
		return
	}
	verr.Merge("manufacturer", manufacturerErrors(in))
}

func requirePresent(verr *domain.ValidationError, field string, missing bool) {
	if missing {
		verr.Add(field, field+" is required")
	}
}

func collect(verr *domain.ValidationError, err error) {
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add(domain.GlobalField, err.Error())
		return
	}

	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe), message(fe))
	}
}

// fieldPath drops the root struct name from the namespace:
// "ProductInput.manufacturer.contact.email" becomes "manufacturer.contact.email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Param() == "1" {
			return field + " cannot be empty"
		}
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return field + " must be positive"
		}
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		if fe.Param() == "0" {
			return field + " must not be negative"
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
