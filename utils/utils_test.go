package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{
		"0912345678",
		"912345678",
		"+886912345678",
		"+8860912345678",
		" 0912345678 ",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhoneNumber(phone), phone)
	}

	invalid := []string{
		"",
		"0812345678",
		"091234567",
		"09123456789",
		"02-12345678",
		"abc",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhoneNumber(phone), phone)
	}
}

func TestParseEventDate(t *testing.T) {
	got, err := ParseEventDate("2026-04-18")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseEventDate("2026-04-18T18:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 18, 18, 30, 0, 0, time.UTC), got)

	got, err = ParseEventDate("2026-04-18T18:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 18, 18, 30, 0, 0, time.UTC), got)

	_, err = ParseEventDate("18/04/2026")
	assert.Error(t, err)
}

func TestIsLikelyBase64(t *testing.T) {
	assert.False(t, isLikelyBase64("short"))
	assert.True(t, isLikelyBase64(strings.Repeat("iVBORw0KGgoAAAANSUhEUg", 10)))
	assert.False(t, isLikelyBase64(strings.Repeat("普通的中文訂單描述內容 ", 20)))
}
