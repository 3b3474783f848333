package request

import (
	"net/url"
	"strings"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func (r *ContactRequest) BindForm(form url.Values) error {
	r.Name = strings.TrimSpace(form.Get("name"))
	r.Email = strings.TrimSpace(form.Get("email"))
	r.Message = strings.TrimSpace(form.Get("message"))
	return nil
}
