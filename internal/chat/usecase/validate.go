package usecase

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"rag-intent-chat/internal/chat"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

func (uc *implUseCase) validateInput(input chat.HandleInput) error {
	err := uc.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		reason := "is required"
		if fe.Tag() == "notblank" {
			reason = "must not be blank"
		}
		return &chat.ValidationError{Field: fe.Field(), Reason: reason}
	}
	return &chat.ValidationError{Field: "request", Reason: err.Error()}
}
