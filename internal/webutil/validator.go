package webutil

import (
	"log"
	"reflect"
	"strings"

	ptBR "github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ptbr_translations "github.com/go-playground/validator/v10/translations/pt_BR"
)

// Validator is the shared validator instance for request DTOs.
var Validator *validator.Validate

// Trans translates validation errors into Brazilian Portuguese.
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"email":    "e-mail",
	"password": "senha",
}

func init() {
	Validator = validator.New()

	// Report field names by their JSON tag, not the Go identifier.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	brazilian := ptBR.New()
	uni := ut.New(brazilian, brazilian)
	var found bool
	Trans, found = uni.GetTranslator("pt_BR")
	if !found {
		log.Fatal("pt_BR translator not found")
	}

	if err := ptbr_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			if translated, ok := fieldNameTranslations[fieldName]; ok {
				fieldName = translated
			}
			t, _ := ut.T(tag, fieldName)
			return t
		})
	}

	registerTranslation("required", "{0} é obrigatório.")
	registerTranslation("email", "{0} não é um endereço válido.")
}
