package models

type User struct {
	UID          string `json:"uid"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}
