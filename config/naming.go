package config

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// NamingConvention turns row keys into the labels displayed in headers and data-label attributes.
type NamingConvention interface {
	ToLabel(key string) string
}

const (
	NamingDefault = "default"
	NamingWords   = "words"
)

var lowerUpper = regexp.MustCompile(`([a-z])([A-Z])`)

// Humanize inserts a space before each uppercase letter that follows a lowercase letter and uppercases the first
// letter: "dateCreated" becomes "Date Created". Separators such as '_' and '-' are left untouched.
func Humanize(key string) string {
	spaced := lowerUpper.ReplaceAllString(key, "$1 $2")
	if spaced == "" {
		return spaced
	}

	first, size := utf8.DecodeRuneInString(spaced)
	return string(unicode.ToUpper(first)) + spaced[size:]
}

type defaultNaming struct {
}

func NewDefaultNaming() NamingConvention {
	return &defaultNaming{}
}

func (n *defaultNaming) ToLabel(key string) string {
	return Humanize(key)
}

// wordsNaming also splits on separators and digits: "user_id" becomes "User Id".
type wordsNaming struct {
}

func NewWordsNaming() NamingConvention {
	return &wordsNaming{}
}

func (n *wordsNaming) ToLabel(key string) string {
	words := make([]string, 0)
	for _, word := range strings.Split(strcase.ToSnake(key), "_") {
		if word != "" {
			words = append(words, strcase.ToCamel(word))
		}
	}
	return strings.Join(words, " ")
}

// Naming returns the naming convention registered under name.
func Naming(name string) (NamingConvention, error) {
	switch name {
	case "", NamingDefault:
		return NewDefaultNaming(), nil
	case NamingWords:
		return NewWordsNaming(), nil
	default:
		return nil, fmt.Errorf("invalid naming convention: %s", name)
	}
}
