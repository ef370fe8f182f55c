package handlers

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ali-320/EduTrack-CC-Assignment-2/apperrors"
	"github.com/ali-320/EduTrack-CC-Assignment-2/utils"
)

var validate = newValidator()

// newValidator reports fields by their JSON names so messages read "Missing title", not "Missing Title".
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseBody decodes and validates req. Nothing here touches the database.
func parseBody(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return apperrors.Validation("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.Validation(err.Error())
	}

	var missing []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return apperrors.Validation("Missing " + strings.Join(missing, ", "))
	}
	return apperrors.Validation("Invalid " + fieldErrs[0].Field())
}

// parseID rejects only non-integers; zero and negative ids reach the query and come back as not found.
func parseID(c *fiber.Ctx, param, resource string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil {
		return 0, apperrors.Validation("Invalid " + resource + " ID")
	}
	return id, nil
}

func parseDate(value *string, field string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse(utils.DateLayout, *value)
	if err != nil {
		return nil, apperrors.Validation("Invalid " + field)
	}
	return &t, nil
}
