// Package validate checks submitted sign-up and sign-in forms.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/dtroode/storefront/internal/model"
)

// Bounds is an inclusive rune-length range.
type Bounds struct {
	Min int
	Max int
}

// Rules holds the configurable field bounds.
type Rules struct {
	Name     Bounds
	Password Bounds
}

// DefaultRules are the bounds the storefront ships with.
var DefaultRules = Rules{
	Name:     Bounds{Min: 1, Max: 20},
	Password: Bounds{Min: 8, Max: 20},
}

const msgRequired = "this field is required"

// SignUp validates a registration form.
func (r Rules) SignUp(form model.SignUpForm) error {
	fields := map[string]string{}

	checkLength(fields, "name", form.Name, r.Name)
	checkEmail(fields, form.Email)
	checkLength(fields, "password", form.Password, r.Password)

	if len(fields) > 0 {
		return model.NewErrValidation(fields)
	}
	return nil
}

// SignIn validates a login form.
func (r Rules) SignIn(form model.SignInForm) error {
	fields := map[string]string{}

	checkEmail(fields, form.Email)
	checkLength(fields, "password", form.Password, r.Password)

	if len(fields) > 0 {
		return model.NewErrValidation(fields)
	}
	return nil
}

func checkLength(fields map[string]string, name, value string, b Bounds) {
	if strings.TrimSpace(value) == "" {
		fields[name] = msgRequired
		return
	}

	n := utf8.RuneCountInString(value)
	if n < b.Min || n > b.Max {
		fields[name] = fmt.Sprintf("must be between %d and %d characters long", b.Min, b.Max)
	}
}

func checkEmail(fields map[string]string, value string) {
	if strings.TrimSpace(value) == "" {
		fields["email"] = msgRequired
		return
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".") {
		fields["email"] = "invalid email address"
	}
}
