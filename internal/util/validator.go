package util

import (
	"fmt"
	"reflect"
	"strings"

	"contactbook-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validate 是全局共享的校验器实例
var Validate = newValidator()

// newValidator 创建校验器，错误信息中的字段名取自 json 标签，与请求体中的字段一致
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// ValidateStruct 根据结构体上的 validate 标签校验请求数据
// 校验失败时返回包含逐字段信息的 ErrValidation 错误
func ValidateStruct(s interface{}) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(errors.ErrValidation, "invalid request data", err)
	}

	issues := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		issues = append(issues, fmt.Sprintf("%s: failed on '%s'", fieldError.Field(), fieldError.Tag()))
	}

	return errors.New(errors.ErrValidation, strings.Join(issues, "; "))
}
