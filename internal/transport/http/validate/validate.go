package validate

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/filmgrid/movie-service/internal/domain"
)

var v = validator.New(validator.WithRequiredStructEnabled())

func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.ErrValidation("Invalid request body")
	}
	return nil
}

// Struct runs the validator tags on dst and flattens failures into a
// field -> rule map the client can show against its form.
func Struct(dst any) error {
	err := v.Struct(dst)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ErrValidation("Invalid request body")
	}

	meta := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		meta[field] = rule
	}
	return domain.ErrValidationMeta("Validation failed", meta)
}
