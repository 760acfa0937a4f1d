package utils

import (
	"sync"

	"github.com/creasty/defaults"
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/providers"
	"gopkg.in/go-playground/validator.v9"
)

// Validator implementation.
type validatorProvider struct {
	sync.Mutex
	validator *validator.Validate
	logger    common.ILoggerProvider
}

// NewValidator constructs a new validator.
func NewValidator(logger common.ILoggerProvider) providers.IValidatorProvider {
	val := &validatorProvider{
		logger: logger,
	}
	v := validator.New()
	loadNewValidator(v, logger, "port", port)
	loadNewValidator(v, logger, "latitude", latitude)
	loadNewValidator(v, logger, "longitude", longitude)

	val.validator = v
	return val
}

// SetLogger updates the logger.
// Since logger is loaded after first init, we need to re-assign it.
func (v *validatorProvider) SetLogger(logger common.ILoggerProvider) {
	v.logger = logger
}

// Validate sets default values and performs validation of a structure.
func (v *validatorProvider) Validate(object interface{}) bool {
	v.Lock()
	defer v.Unlock()

	err := defaults.Set(object)

	if err != nil {
		v.logger.Error("Failed to set default field values", err)
		return false
	}

	err = v.validator.Struct(object)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			v.logger.Error("Failed to validate object", err)
			return false
		}

		for _, e := range validationErrors {
			v.logger.Warn("Validation error", common.LogFieldToken, e.Field())
		}

		return false
	}
	return true
}

// Port type validation.
func port(fl validator.FieldLevel) bool {
	val := fl.Field().Int()
	return val > 0 && val <= 65535
}

// Latitude validation.
func latitude(fl validator.FieldLevel) bool {
	val := fl.Field().Float()
	return val >= -90 && val <= 90
}

// Longitude validation.
func longitude(fl validator.FieldLevel) bool {
	val := fl.Field().Float()
	return val >= -180 && val <= 180
}

// Attempt to register a new validator
func loadNewValidator(validator *validator.Validate, logger common.ILoggerProvider,
	name string, function validator.Func) {
	if err := validator.RegisterValidation(name, function); err != nil {
		logger.Error("Failed to register validator type", err, "type", name)
	}
}
