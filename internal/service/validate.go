package service

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/contract"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator

	// custom validation tags
	notBlankTag  = "notblank"
	dateOrderTag = "date_order"
	oneChangeTag = "one_change"
)

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Report JSON names instead of Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	validate.RegisterStructValidation(activityDraftStructValidation, contract.ActivityDraft{})
	validate.RegisterStructValidation(achievementUpdateStructValidation, contract.AchievementGroupUpdate{})

	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{notBlankTag, dateOrderTag, oneChangeTag} {
		_ = validate.RegisterTranslation(tag, translator, registerFn, translateCustomValidationErrs)
	}
}

func translateCustomValidationErrs(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return fe.Field() + " cannot be blank"
	case dateOrderTag:
		return "endDate cannot be before startDate"
	case oneChangeTag:
		return "one of achievement or subjectKnowledgeId is required"
	default:
		return fe.Error()
	}
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func activityDraftStructValidation(sl validator.StructLevel) {
	d, ok := sl.Current().Interface().(contract.ActivityDraft)
	if !ok {
		return
	}
	if d.StartDate != nil && d.EndDate != nil && d.EndDate.Before(*d.StartDate) {
		sl.ReportError(d.EndDate, "endDate", "EndDate", dateOrderTag, "")
	}
}

func achievementUpdateStructValidation(sl validator.StructLevel) {
	u, ok := sl.Current().Interface().(contract.AchievementGroupUpdate)
	if !ok {
		return
	}
	if u.Achievement == nil && u.KnowledgeID == nil {
		sl.ReportError(u.Achievement, "achievement", "Achievement", oneChangeTag, "")
	}
}

// ValidationError lists the offending fields of a rejected input, keyed by
// their JSON path (e.g. "edits[1].score").
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// validateStruct runs the tag validations of v.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fe.Translate(translator)
	}
	return &ValidationError{Fields: fields}
}

// validateVar runs a single tag validation against a named value.
func validateVar(name string, v any, tag string) error {
	err := validate.Var(v, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		// Var errors carry no field name, so the message starts with the rule.
		msg := strings.TrimSpace(verrs[0].Translate(translator))
		return &ValidationError{Fields: map[string]string{name: name + " " + msg}}
	}
	return fmt.Errorf("%w: %s: %v", ErrValidation, name, err)
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
