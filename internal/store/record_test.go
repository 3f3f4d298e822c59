package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type platformName string

func TestRecord_SetNormalizesValues(t *testing.T) {
	rec := NewRecord("Brand", "b1")
	at := time.Date(2025, 6, 1, 12, 0, 0, 5, time.FixedZone("x", 3600))

	var missing *string
	rec.Set("when", at)
	rec.Set("count", 3)
	rec.Set("platform", platformName("Instagram"))
	rec.Set("note", missing)

	assert.Equal(t, "2025-06-01T11:00:00.000000005Z", rec.Fields["when"])
	assert.Equal(t, 3.0, rec.Fields["count"])
	assert.Equal(t, "Instagram", rec.Fields["platform"])
	_, ok := rec.Fields["note"]
	assert.False(t, ok)
}

func TestRecord_BoolAcceptsNumericFlags(t *testing.T) {
	rec := NewRecord("Template", "t1")
	rec.Fields["isPremium"] = float64(1)
	rec.Fields["isAgencyOnly"] = false

	v, ok := rec.Bool("isPremium")
	require.True(t, ok)
	assert.True(t, v)

	v, ok = rec.Bool("isAgencyOnly")
	require.True(t, ok)
	assert.False(t, v)
}

func TestDecoder_ReportsFirstMissingField(t *testing.T) {
	rec := NewRecord("Brand", "b1")
	rec.Set("userId", "u1")

	d := NewDecoder(rec)
	assert.Equal(t, "u1", d.String("userId"))
	d.String("name")
	d.String("industry")

	var decErr *DecodeError
	require.True(t, errors.As(d.Err(), &decErr))
	assert.Equal(t, "name", decErr.Field)
	assert.Equal(t, "Brand", decErr.RecordType)
	assert.ErrorIs(t, d.Err(), ErrMissingData)
}

func TestDecoder_OptionalFieldsDoNotFail(t *testing.T) {
	d := NewDecoder(NewRecord("ScheduledPost", "p1"))
	assert.Nil(t, d.OptString("accountId"))
	assert.Nil(t, d.OptTime("postedAt"))
	assert.Equal(t, 0.0, d.FloatOr("budget", 0))
	assert.Equal(t, "free", d.StringOr("plan", "free"))
	assert.NoError(t, d.Err())
}
