// Package bind decodes and validates submitted HTML forms into structs.
package bind

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/vanik/config"
	"github.com/shashiranjanraj/vanik/pkg/validate"
)

// maxBodyBytes returns the configured request body size limit (default 4 MB).
func maxBodyBytes() int64 {
	n, err := strconv.ParseInt(config.Get("MAX_BODY_BYTES", "4194304"), 10, 64)
	if err != nil || n <= 0 {
		return 4 << 20 // 4 MB
	}
	return n
}

// Form fills dest's string fields from the submitted form by `form` tag and
// runs validation. Form values stay strings; callers convert validated
// values to their storage types themselves.
//
// The body is capped at MAX_BODY_BYTES (default 4 MB).
// Returns (errs, nil) when there are validation failures.
// Returns (nil, err) when the body cannot be parsed or dest is not a
// struct pointer.
func Form(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes())

	if err = r.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid form body: %w", err)
	}

	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("bind: dest must be a pointer to a struct, got %T", dest)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name := formFieldName(field)
		if name == "" {
			continue
		}

		value := rv.Field(i)
		if value.Kind() != reflect.String || !value.CanSet() {
			continue
		}

		value.SetString(strings.TrimSpace(r.PostForm.Get(name)))
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}

	return nil, nil
}

func formFieldName(f reflect.StructField) string {
	name := f.Tag.Get("form")
	if name == "" || name == "-" {
		return ""
	}
	if idx := strings.Index(name, ","); idx != -1 {
		name = name[:idx]
	}
	return name
}
