package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTicketStatus(t *testing.T) {
	for _, s := range AllowedStatuses() {
		got, err := ParseTicketStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseTicketStatus("resolved")
	assert.Error(t, err)
	_, err = ParseTicketStatus("")
	assert.Error(t, err)
}
