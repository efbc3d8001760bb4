package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/scholarship-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructValidator_Validate(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
		wantMsg string
	}{
		{
			name: "valid user",
			obj:  models.User{Email: "a@x.com", Name: "A"},
		},
		{
			name:    "user without email",
			obj:     &models.User{Name: "A"},
			wantErr: ErrInvalidData,
			wantMsg: "email is required",
		},
		{
			name:    "user with malformed email",
			obj:     models.User{Email: "not-an-email"},
			wantErr: ErrInvalidData,
			wantMsg: "email must be a valid email",
		},
		{
			name:    "review rating above five",
			obj:     models.Review{UserEmail: "a@x.com", Rating: 6},
			wantErr: ErrInvalidData,
			wantMsg: "rating must be less than or equal to 5",
		},
		{
			name: "review rating boundary",
			obj:  models.Review{UserEmail: "a@x.com", Rating: 5},
		},
		{
			name:    "scholarship negative fee",
			obj:     models.Scholarship{UniversityName: "MIT", ApplicationFees: -1},
			wantErr: ErrInvalidData,
			wantMsg: "application_fees must be greater than or equal to 0",
		},
		{
			name:    "scholarship missing university and bad poster email",
			obj:     models.Scholarship{PostedUserEmail: "nope"},
			wantErr: ErrInvalidData,
		},
		{
			name:   "partial check ignores other fields",
			obj:    models.Scholarship{ApplicationFees: 10},
			fields: []string{"ApplicationFees"},
		},
		{
			name:    "partial check on failing field",
			obj:     models.Scholarship{},
			fields:  []string{"UniversityName"},
			wantErr: ErrInvalidData,
		},
		{
			name:    "unknown field",
			obj:     models.User{Email: "a@x.com"},
			fields:  []string{"Password"},
			wantErr: ErrUnknownField,
		},
		{
			name:    "unsupported type",
			obj:     "a@x.com",
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "nil pointer",
			obj:     (*models.User)(nil),
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
