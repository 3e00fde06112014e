package validators

import (
	"context"
	"mime"

	"github.com/MKhiriev/go-dispatch/models"
)

// Field name constants used to restrict validation to a subset of a
// message.
const (
	// FieldRequest requires an in-flight request value.
	FieldRequest = "request"

	// FieldMethod requires a method the router can dispatch.
	FieldMethod = "method"

	// FieldBody requires a non-empty body.
	FieldBody = "body"

	// FieldContentType requires a well-formed Content-Type header.
	FieldContentType = "content_type"
)

// MessageValidator implements Validator for models.Message.
type MessageValidator struct {
}

// NewMessageValidator constructs a new MessageValidator and returns it as the
// Validator interface.
func NewMessageValidator() Validator {
	return &MessageValidator{}
}

// Validate accepts models.Message and *models.Message. Without fields every
// rule is checked in the order request, method, body, content type, and the
// first failure is returned.
func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Message:
		return v.validateMessage(ctx, value, fields...)
	case *models.Message:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateMessage(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *MessageValidator) validateMessage(ctx context.Context, msg models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequest, FieldMethod, FieldBody, FieldContentType}
	}

	for _, f := range fields {
		switch f {
		case FieldRequest:
			if !msg.IsRequest {
				return ErrNotARequest
			}
		case FieldMethod:
			if !msg.Method.IsSupported() {
				return ErrUnsupportedMethod
			}
		case FieldBody:
			if len(msg.Body) == 0 {
				return ErrEmptyBody
			}
		case FieldContentType:
			contentType, ok := msg.Header["Content-Type"]
			if !ok || contentType == "" {
				return ErrMissingContentType
			}
			if _, _, err := mime.ParseMediaType(contentType); err != nil {
				return ErrInvalidContentType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
