package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := Cursor{
		TransactionDate: time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:       time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC),
		ID:              "txn-42",
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, decoded)

	now := time.Now().UTC()
	decodedNow, err := DecodeToken(EncodeToken(Cursor{TransactionDate: now, CreatedAt: now, ID: "x"}))
	require.NoError(t, err)
	assert.True(t, now.Equal(decodedNow.TransactionDate))
	assert.True(t, now.Equal(decodedNow.CreatedAt))
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	assert.ErrorContains(t, err, "base64 decode")

	_, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z")))
	assert.ErrorContains(t, err, "split")

	_, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("notadate|2023-05-15T14:30:45Z|id")))
	assert.ErrorContains(t, err, "transaction date parse")

	_, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|2023-05-15T14:30:45Z|")))
	assert.ErrorContains(t, err, "empty id")
}

func TestCursorBefore(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	created := day.Add(time.Hour)
	c := Cursor{TransactionDate: day, CreatedAt: created, ID: "m"}

	assert.True(t, c.Before(day.AddDate(0, 0, -1), created, "z"))
	assert.False(t, c.Before(day.AddDate(0, 0, 1), created, "a"))
	assert.True(t, c.Before(day, created.Add(-time.Minute), "z"))
	assert.True(t, c.Before(day, created, "a"))
	assert.False(t, c.Before(day, created, "m"))
}
