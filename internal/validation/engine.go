package validation

import (
	"unicode"

	"tienda/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Engine runs the per-resource rule chains. Field rules are validator tags;
// uniqueness and existence go to the repositories.
type Engine struct {
	validate   *validator.Validate
	categories repositories.CategoryRepository
	products   repositories.ProductRepository
	clients    repositories.ClientRepository
}

// NewEngine creates an Engine. It is safe for concurrent use.
func NewEngine(categories repositories.CategoryRepository, products repositories.ProductRepository, clients repositories.ClientRepository) *Engine {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("nodigits", noDigits)

	return &Engine{
		validate:   v,
		categories: categories,
		products:   products,
		clients:    clients,
	}
}

// passes reports whether value satisfies every rule in tag.
func (e *Engine) passes(value interface{}, tag string) bool {
	return e.validate.Var(value, tag) == nil
}

func noDigits(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
