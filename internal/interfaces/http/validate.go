package http

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
)

var validate = newValidator()

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Reporta los campos por su tag json, no por el nombre Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	return v
}

// validateStruct valida el DTO y traduce las fallas al formato del sobre.
func validateStruct(in any) []dto.FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []dto.FieldError{{Msg: "Datos de entrada inválidos"}}
	}
	out := make([]dto.FieldError, 0, len(ves))
	for _, fe := range ves {
		out = append(out, dto.FieldError{
			Msg:   validationMessage(fe),
			Param: fe.Field(),
			Value: fe.Value(),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es requerido", fe.Field())
	case "email":
		return "Debe ser un email válido"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("El campo %s debe tener al menos %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("El campo %s debe ser mayor o igual a %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("El campo %s debe tener máximo %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("El campo %s debe ser menor o igual a %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("El campo %s debe ser uno de: %s", fe.Field(), fe.Param())
	case "username":
		return "El nombre de usuario solo puede contener letras, números y guiones bajos"
	}
	return fmt.Sprintf("El campo %s es inválido", fe.Field())
}
