//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grocery-pool/internal/infra"
	"grocery-pool/internal/infra/repository"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/errs"
	"grocery-pool/internal/pkg/pgconv"
	"grocery-pool/internal/usecase/shared"
	repositorymock "grocery-pool/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyRepository_Claim(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	claim := shared.IdempotencyClaim{
		Key:         uuid.New(),
		UserID:      uuid.New(),
		Endpoint:    "wallet.top_up",
		RequestHash: "abc",
		ExpiresAt:   now.Add(24 * time.Hour),
	}

	testCases := []struct {
		name        string
		ret         error
		wantClaimed bool
		wantErr     bool
	}{
		{name: "success: fresh key claimed", wantClaimed: true},
		{name: "success: live key left alone", ret: pgx.ErrNoRows},
		{name: "error: database failure", ret: errors.New("connection reset"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockIdempotencyQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

			mockQueries.EXPECT().ClaimIdempotencyKey(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ClaimIdempotencyKeyParams) (uuid.UUID, error) {
					assert.Equal(t, claim.Key, arg.Key)
					assert.Equal(t, claim.RequestHash, arg.RequestHash)
					assert.True(t, arg.Now.Time.Equal(now))
					assert.True(t, arg.ExpiresAt.Time.Equal(claim.ExpiresAt))
					return arg.Key, tc.ret
				})

			claimed, err := repo.Claim(ctx, mockDB, claim, now)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantClaimed, claimed)
		})
	}
}

func TestIdempotencyRepository_Get(t *testing.T) {
	ctx := context.Background()
	key, userID, resultID := uuid.New(), uuid.New(), uuid.New()

	t.Run("success: completed key carries its result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetIdempotencyKey(ctx, mockDB, sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID}).
			Return(sqlc.IdempotencyKeys{
				Key:         key,
				UserID:      userID,
				Endpoint:    "wallet.top_up",
				RequestHash: "abc",
				ResultID:    pgconv.UUIDToPgtype(resultID),
			}, nil)

		rec, err := repo.Get(ctx, mockDB, key, userID)
		require.NoError(t, err)
		require.NotNil(t, rec.ResultID)
		assert.Equal(t, resultID, *rec.ResultID)
		assert.Equal(t, "abc", rec.RequestHash)
	})

	t.Run("error: missing key maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetIdempotencyKey(ctx, mockDB, gomock.Any()).Return(sqlc.IdempotencyKeys{}, pgx.ErrNoRows)

		_, err := repo.Get(ctx, mockDB, key, userID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, repository.ErrIdempotencyKeyNotFound))
	})
}
