package pagination

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageSizeClampsLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, Params{}.PageSize())
	assert.Equal(t, DefaultLimit, Params{Limit: -3}.PageSize())
	assert.Equal(t, 10, Params{Limit: 10}.PageSize())
	assert.Equal(t, MaxLimit, Params{Limit: 5000}.PageSize())
}

func TestFetchLimitAddsSentinelRow(t *testing.T) {
	assert.Equal(t, 11, Params{Limit: 10}.FetchLimit())
	assert.Equal(t, DefaultLimit+1, Params{}.FetchLimit())
}

func TestCursorRoundTrip(t *testing.T) {
	cursor := Cursor{
		CreatedAt: time.Date(2026, 2, 14, 8, 30, 0, 123456789, time.UTC),
		ID:        uuid.New(),
	}

	decoded, err := DecodeCursor(cursor.Encode())
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.True(t, decoded.CreatedAt.Equal(cursor.CreatedAt))
	assert.Equal(t, cursor.ID, decoded.ID)
}

func TestDecodeCursorEmptyMeansFirstPage(t *testing.T) {
	decoded, err := DecodeCursor("  ")
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	_, err := DecodeCursor("not-base64!!")
	assert.Error(t, err)

	_, err = DecodeCursor(Cursor{CreatedAt: time.Now()}.Encode()[:8])
	assert.Error(t, err)
}
