package mechanic

type CreateMechanicRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	Specialty string `json:"specialty" validate:"max=120"`
}

type UpdateMechanicRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=120"`
	Specialty *string `json:"specialty" validate:"omitempty,max=120"`
}
