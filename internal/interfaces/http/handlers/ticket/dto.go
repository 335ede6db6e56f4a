package ticket

import (
	"github.com/garagehq/shopapi/internal/interfaces/http/handlers/common"
)

type CreateTicketRequest struct {
	Description       string  `json:"description" validate:"required,max=255"`
	Status            *string `json:"status" validate:"omitempty"`
	PrimaryMechanicID *uint   `json:"primary_mechanic_id" validate:"omitempty,gt=0"`
}

// UpdateTicketRequest is the allow-list for ticket updates. An explicit
// null primary_mechanic_id clears the primary mechanic.
type UpdateTicketRequest struct {
	Description       *string             `json:"description" validate:"omitempty,max=255"`
	Status            *string             `json:"status"`
	PrimaryMechanicID common.NullableUint `json:"primary_mechanic_id"`
}

// EditMechanicsRequest carries membership changes. Ids are signed so that
// non-positive values reach validation instead of failing to decode.
type EditMechanicsRequest struct {
	AddIDs    []int64 `json:"add_ids"`
	RemoveIDs []int64 `json:"remove_ids"`
}
