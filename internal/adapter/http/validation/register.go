package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
	registerOnce    sync.Once
)

// RegisterValidators reports field errors by form name and adds the custom
// "username" rule to gin's validator. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			zap.L().Error("unexpected validator engine, custom rules not registered")
			return
		}

		engine.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		if err := engine.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		}); err != nil {
			zap.L().Error("failed to register username validation", zap.Error(err))
		}
	})
}
