package model

import "school_manager/internal/validation"

// Role is the numeric role identifier carried in tokens and stored on users.
type Role int

const (
	RoleAdmin   Role = 1
	RoleTeacher Role = 2
	RoleStudent Role = 3
	RoleOther   Role = 4
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleTeacher:
		return "teacher"
	case RoleStudent:
		return "student"
	case RoleOther:
		return "other"
	default:
		return "unknown"
	}
}

// UnmarshalJSON accepts the role as a number or a numeric string.
func (r *Role) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var id validation.ID
	if err := id.UnmarshalJSON(b); err != nil {
		return err
	}
	*r = Role(id)
	return nil
}

// RoleSet is the allow-list a route declares.
type RoleSet []Role

func (s RoleSet) Contains(r Role) bool {
	for _, allowed := range s {
		if allowed == r {
			return true
		}
	}
	return false
}

var (
	AdminOnly = RoleSet{RoleAdmin}
	Staff     = RoleSet{RoleAdmin, RoleTeacher}
	Members   = RoleSet{RoleAdmin, RoleTeacher, RoleStudent}
)
