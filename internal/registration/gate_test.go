package registration

import (
	"testing"

	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		maxCapacity int
		count       int
		emailTaken  bool
		expectedErr error
	}{
		{
			name:        "allows when seats remain",
			maxCapacity: 5,
			count:       4,
			expectedErr: nil,
		},
		{
			name:        "allows first registration",
			maxCapacity: 1,
			count:       0,
			expectedErr: nil,
		},
		{
			name:        "rejects when full",
			maxCapacity: 5,
			count:       5,
			expectedErr: storage.ErrCapacityReached,
		},
		{
			name:        "rejects when over capacity",
			maxCapacity: 5,
			count:       6,
			expectedErr: storage.ErrCapacityReached,
		},
		{
			name:        "rejects duplicate email",
			maxCapacity: 5,
			count:       2,
			emailTaken:  true,
			expectedErr: storage.ErrDuplicateEmail,
		},
		{
			name:        "duplicate email wins over full event",
			maxCapacity: 2,
			count:       2,
			emailTaken:  true,
			expectedErr: storage.ErrDuplicateEmail,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			event := &models.Event{MaxCapacity: tc.maxCapacity}

			err := Decide(event, tc.count, tc.emailTaken)

			if tc.expectedErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "gopher@example.com", NormalizeEmail("  Gopher@Example.COM "))
	assert.Equal(t, "a@b.c", NormalizeEmail("a@b.c"))
}
