package response

import (
	"sala-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SuggestionResponse struct {
	CustomerID   *uuid.UUID `json:"customer_id,omitempty"`
	Source       string     `json:"source"`
	FirstName    string     `json:"nombre"`
	LastName     string     `json:"apellidos"`
	Phone        string     `json:"telefono"`
	Email        string     `json:"email"`
	DietaryNotes string     `json:"restricciones_dieteticas,omitempty"`
	Notes        string     `json:"notas,omitempty"`
}

func FromSuggestionViews(views []queries.SuggestionView) []SuggestionResponse {
	resp := make([]SuggestionResponse, 0, len(views))
	_ = copier.Copy(&resp, views)
	return resp
}
