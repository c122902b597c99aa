package validation_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	domainerrors "github.com/dramaseed/dramaseed-server/internal/errors"
	"github.com/dramaseed/dramaseed-server/internal/validation"
)

type TestRequest struct {
	URL      string `json:"url" validate:"required,url"`
	RowValue string `json:"row_value" validate:"required,min=1,max=500"`
	Position int    `json:"position" validate:"omitempty,min=1"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	req := TestRequest{
		URL:      "https://hoerspielforscher.de/kartei/europa/115545",
		RowValue: "Die drei ???",
		Position: 1,
	}

	err := v.Validate(req)
	assert.NoError(t, err)
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	//nolint:govet // fieldalignment: Minor memory optimization not worth the complexity in test code
	tests := []struct {
		name       string
		req        TestRequest
		wantErrMsg string
	}{
		{
			name: "missing required field",
			req: TestRequest{
				URL:      "https://hoerspielforscher.de/kartei/europa/115545",
				RowValue: "", // Missing
			},
			wantErrMsg: "row_value",
		},
		{
			name: "invalid url",
			req: TestRequest{
				URL:      "not-a-url",
				RowValue: "Die drei ???",
			},
			wantErrMsg: "url",
		},
		{
			name: "value too long",
			req: TestRequest{
				URL:      "https://hoerspielforscher.de/kartei/europa/115545",
				RowValue: string(make([]byte, 501)),
			},
			wantErrMsg: "row_value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			assert.Error(t, err)

			var domainErr *domainerrors.Error
			if assert.True(t, errors.As(err, &domainErr)) {
				assert.Equal(t, http.StatusUnprocessableEntity, domainErr.HTTPStatus())
				details, ok := domainErr.Details.(map[string]string)
				if assert.True(t, ok) {
					assert.Contains(t, details, tt.wantErrMsg)
				}
			}
		})
	}
}

func TestValidator_JSONFieldNames(t *testing.T) {
	v := validation.New()

	req := TestRequest{
		URL:      "",
		RowValue: "Die drei ???",
	}

	err := v.Validate(req)
	assert.Error(t, err)

	var domainErr *domainerrors.Error
	if assert.True(t, errors.As(err, &domainErr)) {
		details, ok := domainErr.Details.(map[string]string)
		if assert.True(t, ok) {
			// Should use JSON tag name "url", not struct field name "URL"
			assert.Contains(t, details, "url")
			assert.NotContains(t, details, "URL")
		}
	}
}
