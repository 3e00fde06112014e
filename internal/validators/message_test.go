// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-dispatch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMessage() models.Message {
	msg := models.NewRequest(models.MethodPost)
	msg.Header["Content-Type"] = "application/json; charset=utf-8"
	msg.Body = []byte(`{"ping":true}`)
	return msg
}

func TestNewMessageValidator(t *testing.T) {
	v := NewMessageValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewMessageValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var msg *models.Message
		require.ErrorIs(t, v.Validate(ctx, msg), ErrUnsupportedType)
	})

	t.Run("Message value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validMessage()))
	})

	t.Run("Message pointer", func(t *testing.T) {
		msg := validMessage()
		require.NoError(t, v.Validate(ctx, &msg))
	})
}

func TestValidate_Message(t *testing.T) {
	v := NewMessageValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		modify  func(m *models.Message)
		fields  []string
		wantErr error
	}{
		{
			name:   "valid",
			modify: func(m *models.Message) {},
		},
		{
			name:    "terminal value",
			modify:  func(m *models.Message) { *m = models.NewResponse(http.StatusOK) },
			wantErr: ErrNotARequest,
		},
		{
			name:    "unsupported method",
			modify:  func(m *models.Message) { m.Method = models.MethodUnsupported },
			wantErr: ErrUnsupportedMethod,
		},
		{
			name:    "empty body",
			modify:  func(m *models.Message) { m.Body = nil },
			wantErr: ErrEmptyBody,
		},
		{
			name:    "missing content type",
			modify:  func(m *models.Message) { delete(m.Header, "Content-Type") },
			wantErr: ErrMissingContentType,
		},
		{
			name:    "malformed content type",
			modify:  func(m *models.Message) { m.Header["Content-Type"] = "text/plain; charset" },
			wantErr: ErrInvalidContentType,
		},
		{
			name:    "unknown field",
			modify:  func(m *models.Message) {},
			fields:  []string{"nope"},
			wantErr: ErrUnknownField,
		},
		{
			name:   "scoped to body ignores content type",
			modify: func(m *models.Message) { delete(m.Header, "Content-Type") },
			fields: []string{FieldBody},
		},
		{
			name:    "scoped to content type ignores body",
			modify:  func(m *models.Message) { m.Body = nil; m.Header["Content-Type"] = "" },
			fields:  []string{FieldContentType},
			wantErr: ErrMissingContentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validMessage()
			tt.modify(&msg)

			err := v.Validate(ctx, msg, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestValidate_FirstFailureWins verifies the default field order.
func TestValidate_FirstFailureWins(t *testing.T) {
	msg := models.NewRequest(models.MethodPost)

	err := NewMessageValidator().Validate(context.Background(), msg)

	assert.ErrorIs(t, err, ErrEmptyBody)
}
