package api

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Rhymond/go-money"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrBodyParseFailed is returned when the request body is not valid JSON.
var ErrBodyParseFailed = errors.New("failed to parse request body")

// ErrValidatorInit is returned when custom validator registration fails.
var ErrValidatorInit = errors.New("validator initialization failed")

// minInstructionLength is the shortest instruction the engine will look at.
const minInstructionLength = 5

// AccountInput is one candidate account record from the request body.
type AccountInput struct {
	ID       string          `json:"id" validate:"required,min=1,max=120"`
	Balance  decimal.Decimal `json:"balance" validate:"nonnegative_decimal"`
	Currency string          `json:"currency" validate:"required,currency_code"`
}

// EvaluateRequest is the POST /v1/payment-instructions body.
type EvaluateRequest struct {
	Accounts    []AccountInput `json:"accounts" validate:"required,min=1,dive"`
	Instruction string         `json:"instruction" validate:"required,min=5"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

// initValidators creates the validator with the custom rules account records
// need. Returns an error if any registration fails.
func initValidators() (*validator.Validate, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	// Custom validators access decimal fields directly; registering a custom
	// type function that returns the same type loops inside the validator.
	if err := vld.RegisterValidation("nonnegative_decimal", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}

		return !value.IsNegative()
	}); err != nil {
		return nil, fmt.Errorf("%w: failed to register 'nonnegative_decimal': %w", ErrValidatorInit, err)
	}

	// currency_code requires three uppercase letters naming a real ISO 4217
	// currency. Whether the engine settles in it is the parser's concern; this
	// only rejects records that could never describe an account.
	if err := vld.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		if len(code) != 3 || code != strings.ToUpper(code) {
			return false
		}

		return money.GetCurrency(code) != nil
	}); err != nil {
		return nil, fmt.Errorf("%w: failed to register 'currency_code': %w", ErrValidatorInit, err)
	}

	return vld, nil
}

func getValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate, errValidate = initValidators()
	})

	return validate, errValidate
}

// ValidateRequest normalizes and structurally validates an evaluate request,
// returning one message per violated field.
func ValidateRequest(req *EvaluateRequest) ([]string, error) {
	req.Instruction = strings.TrimSpace(req.Instruction)

	vld, err := getValidator()
	if err != nil {
		return nil, err
	}

	err = vld.Struct(req)
	if err == nil {
		return nil, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}

	return messages, nil
}

func fieldMessage(fieldErr validator.FieldError) string {
	field := strings.ToLower(fieldErr.Field())

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if field == "instruction" {
			return fmt.Sprintf("instruction must be at least %d characters", minInstructionLength)
		}

		return field + " is below the minimum length"
	case "max":
		return field + " exceeds the maximum length"
	case "nonnegative_decimal":
		return field + " must be a non-negative amount"
	case "currency_code":
		return field + " must be a 3-letter uppercase ISO currency code"
	default:
		return field + " is invalid"
	}
}
