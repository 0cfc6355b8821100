package audit

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	invalidOptionsTemplateConstant       = "invalid audit options: %s"
	requiredRuleMessageTemplateConstant  = "%s is required"
	oneOfRuleMessageTemplateConstant     = "%s must be one of [%s], got %q"
	genericRuleMessageTemplateConstant   = "%s failed rule %q"
	validationMessageSeparatorConstant   = "; "
	sourceFileFieldDescriptionConstant   = "source file path"
	resourcesFieldDescriptionConstant    = "resources directory path"
	outputFormatFieldDescriptionConstant = "output format"
	requiredRuleTagConstant              = "required"
	oneOfRuleTagConstant                 = "oneof"
)

var (
	optionsValidatorOnce sync.Once
	optionsValidator     *validator.Validate
)

var fieldDescriptions = map[string]string{
	"SourceFile":         sourceFileFieldDescriptionConstant,
	"ResourcesDirectory": resourcesFieldDescriptionConstant,
	"OutputFormat":       outputFormatFieldDescriptionConstant,
}

// Validate checks that both paths are present and the output format is supported.
func (options CommandOptions) Validate() error {
	optionsValidatorOnce.Do(func() {
		optionsValidator = validator.New(validator.WithRequiredStructEnabled())
	})

	validationError := optionsValidator.Struct(options)
	if validationError == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(validationError, &fieldErrors) {
		return fmt.Errorf(invalidOptionsTemplateConstant, validationError.Error())
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, describeFieldError(fieldError))
	}

	return fmt.Errorf(invalidOptionsTemplateConstant, strings.Join(messages, validationMessageSeparatorConstant))
}

func describeFieldError(fieldError validator.FieldError) string {
	fieldDescription, known := fieldDescriptions[fieldError.Field()]
	if !known {
		fieldDescription = fieldError.Field()
	}

	switch fieldError.Tag() {
	case requiredRuleTagConstant:
		return fmt.Sprintf(requiredRuleMessageTemplateConstant, fieldDescription)
	case oneOfRuleTagConstant:
		return fmt.Sprintf(oneOfRuleMessageTemplateConstant, fieldDescription, fieldError.Param(), fmt.Sprint(fieldError.Value()))
	default:
		return fmt.Sprintf(genericRuleMessageTemplateConstant, fieldDescription, fieldError.Tag())
	}
}
