// Package validation holds the business rules every write path runs before
// touching storage. A rule either passes or yields a *Rejection naming the
// first rule that failed.
package validation

import (
	"errors"
	"fmt"
)

// Code identifies a business-rule rejection.
type Code string

const (
	CodeNotFound           Code = "NotFound"
	CodeIDMismatch         Code = "IdMismatch"
	CodeEmptyName          Code = "EmptyName"
	CodeDuplicateName      Code = "DuplicateName"
	CodeInvalidPrice       Code = "InvalidPrice"
	CodeNegativeStock      Code = "NegativeStock"
	CodeCategoryNotFound   Code = "CategoryNotFound"
	CodeEmptyFirstName     Code = "EmptyFirstName"
	CodeFirstNameHasDigits Code = "FirstNameHasDigits"
	CodeEmptyLastName      Code = "EmptyLastName"
	CodeLastNameHasDigits  Code = "LastNameHasDigits"
	CodeEmptyEmail         Code = "EmptyEmail"
	CodeInvalidEmail       Code = "InvalidEmail"
	CodeInvalidPhone       Code = "InvalidPhone"
	CodeDuplicateEmail     Code = "DuplicateEmail"
	CodeInvalidQuantity    Code = "InvalidQuantity"
	CodeInvalidTotal       Code = "InvalidTotal"
	CodeMissingProduct     Code = "MissingProduct"
	CodeMissingClient      Code = "MissingClient"
	CodeProductNotFound    Code = "ProductNotFound"
	CodeClientNotFound     Code = "ClientNotFound"
	CodeMissingSaleDate    Code = "MissingSaleDate"
)

// Rejection is a failed business rule. It is an expected outcome, not a fault.
type Rejection struct {
	Code    Code
	Message string
}

// Error implements the error interface for Rejection
func (r *Rejection) Error() string {
	return r.Message
}

// Is matches any *Rejection with the same code. A target without a code
// matches every rejection.
func (r *Rejection) Is(target error) bool {
	t, ok := target.(*Rejection)
	if !ok {
		return false
	}
	return t.Code == "" || t.Code == r.Code
}

// NotFound reports whether the rejection is about a missing row addressed
// by the request itself.
func (r *Rejection) NotFound() bool {
	return r.Code == CodeNotFound
}

// Reject builds a Rejection.
func Reject(code Code, message string) *Rejection {
	return &Rejection{Code: code, Message: message}
}

// AsRejection extracts a rejection from err's chain.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// Resource names the entity a rejection talks about, with its grammatical
// gender so the shared messages read naturally.
type Resource struct {
	Label    string
	Feminine bool
}

var (
	CategoryResource = Resource{Label: "categoría", Feminine: true}
	ProductResource  = Resource{Label: "producto"}
	ClientResource   = Resource{Label: "cliente"}
	SaleResource     = Resource{Label: "venta", Feminine: true}
)

func (r Resource) article() string {
	if r.Feminine {
		return "La"
	}
	return "El"
}

func (r Resource) of() string {
	if r.Feminine {
		return "de la"
	}
	return "del"
}

// Title is the label with an upper-case first letter.
func (r Resource) Title() string {
	rs := []rune(r.Label)
	if len(rs) == 0 {
		return ""
	}
	if rs[0] >= 'a' && rs[0] <= 'z' {
		rs[0] -= 'a' - 'A'
	}
	return string(rs)
}

// NotFoundFor is the rejection for a path id with no row behind it.
func NotFoundFor(res Resource) *Rejection {
	return Reject(CodeNotFound, fmt.Sprintf("%s %s no existe", res.article(), res.Label))
}

// IDMismatchFor is the rejection for an update whose path and body ids differ.
func IDMismatchFor(res Resource) *Rejection {
	return Reject(CodeIDMismatch, fmt.Sprintf("El ID %s %s no coincide", res.of(), res.Label))
}

// DeletedMessage confirms a physical delete.
func DeletedMessage(res Resource, id uint) string {
	verb := "eliminado"
	if res.Feminine {
		verb = "eliminada"
	}
	return fmt.Sprintf("%s con ID %d ha sido %s correctamente", res.Title(), id, verb)
}
