package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const maxFormMemory = 1 << 20

// FormBinder fills a request DTO from urlencoded or multipart form values
type FormBinder interface {
	BindForm(form url.Values) error
}

// Bind decodes a JSON body or form fields into dst, depending on Content-Type
func Bind(r *http.Request, dst FormBinder) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return fmt.Errorf("decode json body: %w", err)
		}
		return nil
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return fmt.Errorf("parse form: %w", err)
	}
	return dst.BindForm(r.Form)
}

// optionalString returns nil for absent or blank form values
func optionalString(form url.Values, key string) *string {
	value := strings.TrimSpace(form.Get(key))
	if value == "" {
		return nil
	}
	return &value
}

func optionalInt(form url.Values, key string) (*int, error) {
	value := optionalString(form, key)
	if value == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(*value)
	if err != nil {
		return nil, fmt.Errorf("%s must be a whole number", key)
	}
	return &n, nil
}

// FlexibleID accepts a booking id sent as a JSON string or number
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("booking id must be a string or number")
	}
	*id = FlexibleID(n.String())
	return nil
}
