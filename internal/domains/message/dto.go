package message

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SubmitRequest is a contact-form submission. The client disables its
// submit button until the fields look valid, but that is advisory; this
// validation is the authoritative gate.
type SubmitRequest struct {
	FullName string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName,
			validation.Required.Error("full name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
			validation.Length(1, 5000),
		),
	)
}

// SubmitResponse acknowledges a stored submission.
type SubmitResponse struct {
	Key       string `json:"key"`
	Timestamp int64  `json:"timestamp"`
}
