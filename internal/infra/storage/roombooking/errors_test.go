package roombooking

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StaffPortal/pkg/txmanager"
)

func TestExecError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
		notErr  error
	}{
		{
			name:    "serialization failure",
			err:     &pq.Error{Code: "40001"},
			wantErr: txmanager.ErrSerialization,
			notErr:  ErrExecQuery,
		},
		{
			name:    "other postgres error",
			err:     &pq.Error{Code: "42P01"},
			wantErr: ErrExecQuery,
			notErr:  txmanager.ErrSerialization,
		},
		{
			name:    "driver error",
			err:     errors.New("connection reset"),
			wantErr: ErrExecQuery,
			notErr:  txmanager.ErrSerialization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execError("GetByFilter - execute query", tt.err)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, tt.notErr)
			assert.Contains(t, err.Error(), "GetByFilter - execute query")
		})
	}
}
