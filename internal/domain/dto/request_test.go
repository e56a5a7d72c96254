package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestAddItemRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     AddItemRequest
		wantErr error
	}{
		{"valid", AddItemRequest{ProductID: "bolo-red", Quantity: 1}, nil},
		{"valid with option", AddItemRequest{ProductID: "banoffe", OptionIndex: intPtr(1), Quantity: 2}, nil},
		{"zero quantity", AddItemRequest{ProductID: "bolo-red", Quantity: 0}, ErrInvalidQuantity},
		{"negative quantity", AddItemRequest{ProductID: "bolo-red", Quantity: -2}, ErrInvalidQuantity},
		{"negative option index", AddItemRequest{ProductID: "banoffe", OptionIndex: intPtr(-1), Quantity: 1}, ErrInvalidOptionIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(t, "quantity: must be at least 1", ErrInvalidQuantity.Error())
}
