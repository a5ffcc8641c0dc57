package helpers

import (
	"errors"
	"net/http"
	"strings"
)

// MaxMultipartMemory is how much of a multipart body is kept in memory;
// larger file parts spill to temporary files.
const MaxMultipartMemory = 32 << 20

// Validator is implemented by form DTOs that support validation.
// Validate returns a slice of user-facing messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// FormBinder is implemented by form DTOs that read their fields from a parsed request.
type FormBinder interface {
	Bind(r *http.Request)
}

// ParseForm parses url-encoded and multipart bodies alike.
func ParseForm(r *http.Request) error {
	err := r.ParseMultipartForm(MaxMultipartMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return nil
}

// BindAndValidate parses the request form into dest and, if dest implements
// Validator, runs Validate(). It returns the validation messages joined into
// one flash-ready string, or "" when the form is valid.
func BindAndValidate(r *http.Request, dest FormBinder) (string, error) {
	if err := ParseForm(r); err != nil {
		return "", err
	}
	dest.Bind(r)
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			return strings.Join(errs, " "), nil
		}
	}
	return "", nil
}
