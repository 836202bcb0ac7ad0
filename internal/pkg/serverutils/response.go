package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

type ErrorBody struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{
		Success: false,
		Code:    code,
		Message: message,
	}
}

var validate = validator.New()

// ValidateRequest runs struct tag validation and returns a BadRequestError
// with a readable field list on failure.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := ""
			for i, fe := range verrs {
				if i > 0 {
					fields += ", "
				}
				fields += fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
			}
			return NewBadRequestError("Validation failed: " + fields)
		}
		return NewBadRequestError(err.Error())
	}
	return nil
}
