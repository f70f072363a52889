package dto

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var walletIDRe = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("wallet_id", validateWalletID)
		_ = v.RegisterValidation("iso_date", validateISODate)
	}
}

// validateWalletID accepts 20 bytes of hex in either case.
func validateWalletID(fl validator.FieldLevel) bool {
	return walletIDRe.MatchString(fl.Field().String())
}

// validateISODate accepts a YYYY-MM-DD calendar date.
func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

// SanitizeStruct trims whitespace from every exported string and []string
// field of a struct pointer. Empty slice entries are dropped.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Slice:
			if f.Type().Elem().Kind() != reflect.String {
				continue
			}
			out := reflect.MakeSlice(f.Type(), 0, f.Len())
			for j := 0; j < f.Len(); j++ {
				s := strings.TrimSpace(f.Index(j).String())
				if s == "" {
					continue
				}
				out = reflect.Append(out, reflect.ValueOf(s).Convert(f.Type().Elem()))
			}
			f.Set(out)
		}
	}
}
