package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/garagehq/shopapi/internal/domain/ticket/valueobjects"
	"github.com/garagehq/shopapi/internal/shared/errors"
)

func TestNewTicket(t *testing.T) {
	tk, err := NewTicket("  Brakes squeal  ", 7)
	require.NoError(t, err)

	assert.Equal(t, "Brakes squeal", tk.Description())
	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Equal(t, uint(7), tk.UserID())
	assert.Nil(t, tk.PrimaryMechanicID())
	assert.True(t, tk.IsOwnedBy(7))
}

func TestNewTicket_Validation(t *testing.T) {
	_, err := NewTicket("", 1)
	assert.True(t, errors.IsValidationError(err))

	_, err = NewTicket("oil change", 0)
	assert.True(t, errors.IsValidationError(err))

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	_, err = NewTicket(string(long), 1)
	assert.Error(t, err)
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk, err := ReconstructTicket(1, "x", vo.StatusOpen, 2, nil, time.Now(), time.Now())
	require.NoError(t, err)

	changed, err := tk.ChangeStatus(vo.StatusOpen)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = tk.ChangeStatus(vo.StatusWaitingParts)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, vo.StatusWaitingParts, tk.Status())

	_, err = tk.ChangeStatus("done")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, vo.StatusWaitingParts, tk.Status())
}

func TestTicket_AssignPrimaryMechanic(t *testing.T) {
	tk, err := NewTicket("noise", 1)
	require.NoError(t, err)

	id := uint(5)
	tk.AssignPrimaryMechanic(&id)
	require.NotNil(t, tk.PrimaryMechanicID())
	assert.Equal(t, uint(5), *tk.PrimaryMechanicID())

	tk.AssignPrimaryMechanic(nil)
	assert.Nil(t, tk.PrimaryMechanicID())
}

func TestReconstructTicket_RejectsInvalid(t *testing.T) {
	_, err := ReconstructTicket(0, "x", vo.StatusOpen, 1, nil, time.Now(), time.Now())
	assert.Error(t, err)
	_, err = ReconstructTicket(1, "x", vo.StatusOpen, 0, nil, time.Now(), time.Now())
	assert.Error(t, err)
	_, err = ReconstructTicket(1, "x", "bogus", 1, nil, time.Now(), time.Now())
	assert.Error(t, err)
}
