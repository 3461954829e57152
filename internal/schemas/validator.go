package schemas

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const htmlTagNames = "a|abbr|article|aside|b|blockquote|body|br|button|code|div|em|footer|form|h[1-6]|head|header|hr|html|i|iframe|img|input|li|link|main|meta|nav|ol|p|pre|script|section|small|span|strong|style|sub|sup|table|tbody|td|th|thead|tr|u|ul"

var (
	validateOnce sync.Once
	validate     *validator.Validate

	// HTML-теги известных элементов и комментарии, markdown-заголовки,
	// выделение, ссылки и блоки кода. После имени тега - пробел, / или >,
	// поэтому <hello@rescue.org> и <3 разметкой не считаются.
	markupPattern = regexp.MustCompile(
		"(?s)(?i:</?(?:" + htmlTagNames + ")(?:\\s[^>]*)?/?>)|<!--" +
			"|(^|\\n)\\s{0,3}#{1,6}\\s|\\*\\*[^*]+\\*\\*|__[^_]+__|\\[[^\\]]+\\]\\([^)]+\\)|```",
	)
)

// Validator возвращает общий экземпляр validator с пользовательскими тегами.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// В нарушениях используем имена полей из json-тегов, как их видит модель
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		mustRegister(v, "nomarkup", func(fl validator.FieldLevel) bool {
			return !markupPattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "href", func(fl validator.FieldLevel) bool {
			return isHref(v, fl.Field().String())
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %s validation: %v", tag, err))
	}
}

// isHref принимает корневые пути, якоря, mailto:, tel: и абсолютные http(s) URL.
func isHref(v *validator.Validate, value string) bool {
	switch {
	case strings.HasPrefix(value, "//"):
		return false
	case strings.HasPrefix(value, "/"), strings.HasPrefix(value, "#"):
		return !strings.ContainsAny(value, " \t\n")
	case strings.HasPrefix(value, "mailto:"):
		return v.Var(strings.TrimPrefix(value, "mailto:"), "required,email") == nil
	case strings.HasPrefix(value, "tel:"):
		return len(value) > len("tel:") && !strings.ContainsAny(value, "<>")
	default:
		return v.Var(value, "http_url") == nil
	}
}

// describe переводит ошибку validator в короткое пояснение для модели.
func describe(fe validator.FieldError) string {
	path := fieldPath(fe.Namespace())
	isCollection := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array || fe.Kind() == reflect.Map
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", path)
	case "max":
		if isCollection {
			return fmt.Sprintf("%s must contain at most %s items", path, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", path, fe.Param())
	case "min":
		if isCollection {
			return fmt.Sprintf("%s must contain at least %s items", path, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", path, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", path, strings.ReplaceAll(fe.Param(), " ", ", "), fmt.Sprint(fe.Value()))
	case "startswith":
		return fmt.Sprintf("%s must start with %q", path, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", path)
	case "nomarkup":
		return fmt.Sprintf("%s must be plain text without HTML or markdown", path)
	case "href":
		return fmt.Sprintf("%s must be a root-relative path, an absolute http(s) URL, a mailto: or a tel: link", path)
	default:
		return fmt.Sprintf("%s failed the %q constraint", path, fe.Tag())
	}
}

// fieldPath отрезает имя корневой структуры: "HeroContent.primary_cta.label" -> "primary_cta.label".
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}
