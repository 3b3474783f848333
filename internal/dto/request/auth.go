package request

import (
	"net/url"
	"strings"
)

type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

func (r *SignupRequest) BindForm(form url.Values) error {
	r.FirstName = strings.TrimSpace(form.Get("firstName"))
	r.LastName = strings.TrimSpace(form.Get("lastName"))
	r.Email = strings.TrimSpace(form.Get("email"))
	r.Password = form.Get("password")
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) BindForm(form url.Values) error {
	r.Email = strings.TrimSpace(form.Get("email"))
	r.Password = form.Get("password")
	return nil
}
