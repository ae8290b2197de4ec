//go:build unit

package pgconv_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"grocery-pool/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDConversions(t *testing.T) {
	id := uuid.New()

	pu := pgconv.UUIDToPgtype(id)
	require.True(t, pu.Valid)
	got := pgconv.UUIDPtrFromPgtype(pu)
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	assert.False(t, pgconv.UUIDPtrToPgtype(nil).Valid)
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))
}

func TestInt64PtrConversions(t *testing.T) {
	fee := int64(500)
	assert.Equal(t, &fee, pgconv.Int64PtrFromPgtype(pgconv.Int64PtrToPgtype(&fee)))
	assert.Nil(t, pgconv.Int64PtrFromPgtype(pgconv.Int64PtrToPgtype(nil)))
}

func TestTimeToPgtype(t *testing.T) {
	now := time.Date(2025, 1, 2, 6, 0, 0, 0, time.UTC)
	pt := pgconv.TimeToPgtype(now)
	assert.True(t, pt.Valid)
	assert.True(t, now.Equal(pgconv.TimeFromPgtype(pt)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("lookup: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(errors.New("boom")))
	assert.False(t, pgconv.IsNoRows(nil))
}
