package validation

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viglianco/go-sales-ledger/internal/models"
)

func TestValidateStruct(t *testing.T) {
	batchID := int64(0)

	tests := []struct {
		name       string
		toValidate any
		wantErrs   []ErrorValidateResponse
	}{
		{
			name: "success UpsertManualEntryRequest",
			toValidate: models.UpsertManualEntryRequest{
				BatchID: 3,
				Date:    "2024-01-02",
			},
		},
		{
			name:       "missing fields UpsertManualEntryRequest",
			toValidate: models.UpsertManualEntryRequest{},
			wantErrs: []ErrorValidateResponse{
				{Code: "MISSING_FIELD", Field: "batchId", Message: "field is missing"},
				{Code: "MISSING_FIELD", Field: "date", Message: "field is missing"},
			},
		},
		{
			name: "invalid date UpsertManualEntryRequest",
			toValidate: models.UpsertManualEntryRequest{
				BatchID: 3,
				Date:    "02/01/2024",
			},
			wantErrs: []ErrorValidateResponse{
				{Code: "INVALID_DATE", Field: "date", Message: "field must be a date formatted as YYYY-MM-DD"},
			},
		},
		{
			name:       "success empty DailySalesRequest",
			toValidate: models.DailySalesRequest{},
		},
		{
			name: "out of range DailySalesRequest",
			toValidate: models.DailySalesRequest{
				BatchID:  &batchID,
				Month:    13,
				DateFrom: "2024-02-30",
			},
			wantErrs: []ErrorValidateResponse{
				{Code: "OUT_OF_RANGE", Field: "batch_id", Message: "field is out of range"},
				{Code: "OUT_OF_RANGE", Field: "month", Message: "field is out of range"},
				{Code: "INVALID_DATE", Field: "date_from", Message: "field must be a date formatted as YYYY-MM-DD"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.toValidate)
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}

			var merr *multierror.Error
			require.ErrorAs(t, err, &merr)
			got := make([]ErrorValidateResponse, 0, len(merr.Errors))
			for _, e := range merr.Errors {
				got = append(got, e.(ErrorValidateResponse))
			}
			assert.Equal(t, tt.wantErrs, got)
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	assert.Error(t, ValidateStruct(nil))
}
