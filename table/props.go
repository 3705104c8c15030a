package table

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	e "github.com/datastax/action-table/errors"
)

var (
	propsValidator *validator.Validate
	trans          ut.Translator
)

func init() {
	propsValidator = validator.New()

	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	_ = enTranslations.RegisterDefaultTranslations(propsValidator, trans)

	propsValidator.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	_ = propsValidator.RegisterTranslation("required", trans, func(ut ut.Translator) error {
		return ut.Add("required", "{0} is a required field", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		translator, _ := ut.T("required", fe.Field())
		return translator
	})
}

// Props is the table configuration supplied by the host.
type Props struct {
	Caption       string   `json:"caption"`
	Rows          []Row    `json:"rows" validate:"required"`
	Actions       []Action `json:"actions" validate:"dive"`
	ActionsHeader string   `json:"actionsHeader"`
	TableClasses  []string `json:"tableClasses"`
}

// Validate checks that rows were supplied (an empty, non-nil slice is fine) and that every action has a name.
// Conditions and table classes are taken as given.
func (p Props) Validate() error {
	if err := propsValidator.Struct(p); err != nil {
		return e.TranslateValidatorError(err, trans)
	}
	return nil
}

// malformedClasses returns the table classes that are empty or hold whitespace. They are still applied verbatim.
func (p Props) malformedClasses() []string {
	var malformed []string
	for _, class := range p.TableClasses {
		if class == "" || strings.IndexFunc(class, unicode.IsSpace) >= 0 {
			malformed = append(malformed, class)
		}
	}
	return malformed
}
