package profile

import (
	"github.com/LucasManfrin/Orcamentos/internal/platform/timeutil"
)

// Profile represents a professional profile response.
type Profile struct {
	ID         string        `json:"id"                 doc:"Unique identifier"       example:"user-123"`
	Name       string        `json:"name"               doc:"Full name"               example:"Maria Silva"`
	Email      string        `json:"email"              doc:"Email address"           example:"maria@example.com"`
	Profession string        `json:"profession"         doc:"Trade or profession"     example:"Eletricista"`
	WhatsApp   string        `json:"whatsapp,omitempty" doc:"WhatsApp phone number"   example:"11999998888"`
	CreatedAt  timeutil.Time `json:"createdAt"          doc:"Creation timestamp"      example:"2026-01-15T10:30:00.000Z"`
	UpdatedAt  timeutil.Time `json:"updatedAt"          doc:"Last update timestamp"   example:"2026-01-15T10:30:00.000Z"`
}
