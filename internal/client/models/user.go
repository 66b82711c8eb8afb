// Package models defines the marketplace types exchanged with the backend
// and held in the local session.
package models

import "encoding/json"

// Role classifies an account.
type Role string

const (
	RoleUser   Role = "user"
	RoleAdmin  Role = "admin"
	RoleAgency Role = "agency"
)

// ParseRole validates a raw role string. An empty string maps to RoleUser,
// matching the backend's registration default.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case "":
		return RoleUser, true
	case RoleUser, RoleAdmin, RoleAgency:
		return Role(s), true
	default:
		return "", false
	}
}

// User is the backend account record. The JSON field names follow the
// backend contract; "type" carries the role.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      Role   `json:"type"`
	PlanID    string `json:"plan_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// EncodeUser serializes a user for the local session store.
func EncodeUser(u *User) ([]byte, error) {
	return json.Marshal(u)
}

// DecodeUser parses a user previously stored by EncodeUser.
func DecodeUser(data []byte) (*User, error) {
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
