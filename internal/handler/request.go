package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type createForumRequest struct {
	Name   *string `json:"name" validate:"required"`
	UserID *string `json:"userId"`
}

type joinForumRequest struct {
	UserID *string `json:"userId"`
}

type postMessageRequest struct {
	Text   *string `json:"text" validate:"required"`
	UserID *string `json:"userId"`
}

// decodeRequest reads a JSON body into dst and checks required arguments.
// An empty body decodes as an empty object.
func decodeRequest(r *http.Request, dst any) error {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errors.New("invalid request format")
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("Field %q is required.", verrs[0].Field())
		}
		return err
	}

	return nil
}
