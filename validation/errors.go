package validation

import (
	"fmt"
	"strings"
)

// Errors is a ready-made error carrier for V: an ordered, immutable list of
// Go errors whose combination is concatenation. It implements both
// semigroup.Semigroup and the error interface, so it slots directly into the
// E slot of a validation and still interoperates with errors.Is and
// errors.As through Unwrap.
type Errors []error

// NewErrors creates an Errors carrier from the given errors.
// Nil errors are ignored.
func NewErrors(errs ...error) Errors {
	collected := make(Errors, 0, len(errs))

	for _, err := range errs {
		if err != nil {
			collected = append(collected, err)
		}
	}

	return collected
}

// Fail creates a failed validation carrying a single formatted error.
func Fail[A any](format string, args ...any) V[Errors, A] {
	return Invalid[Errors, A](NewErrors(fmt.Errorf(format, args...)))
}

// Combine concatenates two error lists, preserving order: the receiver's
// errors come first. Neither operand's backing array is aliased.
func (e Errors) Combine(other Errors) Errors {
	combined := make(Errors, 0, len(e)+len(other))
	combined = append(combined, e...)
	combined = append(combined, other...)

	return combined
}

// Empty returns the identity for Combine: no errors.
func (Errors) Empty() Errors {
	return nil
}

// Error renders all collected errors separated by "; ".
func (e Errors) Error() string {
	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}

	return strings.Join(messages, "; ")
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e Errors) Unwrap() []error {
	return e
}

// Joined returns the collected errors as a single plain error: nil when
// empty, the sole error when there is one, or the whole carrier otherwise.
func (e Errors) Joined() error {
	switch len(e) {
	case 0:
		return nil
	case 1:
		return e[0]
	default:
		return e
	}
}

var _ error = Errors{}
