package handler

import (
	"time"

	"school_manager/internal/model"
)

// userResponse is the only shape a user is ever written in. It has no
// password field.
type userResponse struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DNI         string     `json:"dni"`
	Email       string     `json:"email"`
	RoleID      model.Role `json:"role_id"`
	Status      string     `json:"status"`
	SpecialtyID *int64     `json:"specialty_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

func newUserResponse(u *model.User) userResponse {
	return userResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DNI:         u.DNI,
		Email:       u.Email,
		RoleID:      u.RoleID,
		Status:      u.Status,
		SpecialtyID: u.SpecialtyID,
		CreatedAt:   u.CreatedAt,
	}
}

func newUserResponses(users []model.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, newUserResponse(&users[i]))
	}
	return out
}
