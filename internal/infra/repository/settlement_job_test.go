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
	"grocery-pool/internal/pkg/pgconv"
	"grocery-pool/internal/usecase/shared"
	repositorymock "grocery-pool/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettlementJobRepository_Enqueue(t *testing.T) {
	ctx := context.Background()
	sharedCartID := uuid.New()
	runAt := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockSettlementJobWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewSettlementJobRepository(mockQueries, mockDB)

	mockQueries.EXPECT().CreateSettlementJob(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateSettlementJobParams) (sqlc.SettlementJobs, error) {
			assert.Equal(t, sharedCartID, arg.SharedCartID)
			assert.True(t, pgconv.TimeFromPgtype(arg.RunAt).Equal(runAt))
			return sqlc.SettlementJobs{ID: arg.ID, SharedCartID: arg.SharedCartID, RunAt: arg.RunAt, Status: "queued"}, nil
		})

	id, err := repo.Enqueue(ctx, mockDB, sharedCartID, runAt)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestSettlementJobRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 6, 0, 1, 0, time.UTC)
	first := sqlc.SettlementJobs{ID: uuid.New(), SharedCartID: uuid.New(), RunAt: pgconv.TimeToPgtype(now.Add(-time.Minute)), Attempts: 1}
	second := sqlc.SettlementJobs{ID: uuid.New(), SharedCartID: uuid.New(), RunAt: pgconv.TimeToPgtype(now), Attempts: 1}

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockSettlementJobWriteQueries, sqlc.DBTX)
		expected      []shared.SettlementJob
		expectedError bool
	}{
		{
			name: "success: due jobs mapped in order",
			setupMock: func(mock *repositorymock.MockSettlementJobWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ClaimDueSettlementJobs(ctx, tx, sqlc.ClaimDueSettlementJobsParams{RunAt: pgconv.TimeToPgtype(now), Limit: 5}).
					Return([]sqlc.SettlementJobs{first, second}, nil)
			},
			expected: []shared.SettlementJob{
				{ID: first.ID, SharedCartID: first.SharedCartID, RunAt: now.Add(-time.Minute), Attempts: 1},
				{ID: second.ID, SharedCartID: second.SharedCartID, RunAt: now, Attempts: 1},
			},
		},
		{
			name: "success: nothing due",
			setupMock: func(mock *repositorymock.MockSettlementJobWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ClaimDueSettlementJobs(ctx, tx, gomock.Any()).Return(nil, nil)
			},
			expected: []shared.SettlementJob{},
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockSettlementJobWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().ClaimDueSettlementJobs(ctx, tx, gomock.Any()).Return(nil, errors.New("deadlock"))
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSettlementJobWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSettlementJobRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			jobs, err := repo.ClaimDue(ctx, mockDB, now, 5)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, jobs); diff != "" {
				t.Errorf("jobs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSettlementJobRepository_StatusTransitions(t *testing.T) {
	ctx := context.Background()
	jobID := uuid.New()

	t.Run("done clears last error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSettlementJobWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSettlementJobRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateSettlementJobStatus(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateSettlementJobStatusParams) (int64, error) {
				assert.Equal(t, "done", arg.Status)
				assert.False(t, arg.LastError.Valid)
				return 1, nil
			})

		assert.NoError(t, repo.MarkDone(ctx, mockDB, jobID))
	})

	t.Run("skipped records reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSettlementJobWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSettlementJobRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateSettlementJobStatus(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateSettlementJobStatusParams) (int64, error) {
				assert.Equal(t, "skipped", arg.Status)
				assert.Equal(t, "cart closed", arg.LastError.String)
				return 1, nil
			})

		assert.NoError(t, repo.MarkSkipped(ctx, mockDB, jobID, "cart closed"))
	})

	t.Run("failed on unknown job is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSettlementJobWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSettlementJobRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateSettlementJobStatus(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err := repo.MarkFailed(ctx, mockDB, jobID, "boom")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestSettlementJobRepository_Requeue(t *testing.T) {
	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("success: running jobs go back to queued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSettlementJobWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSettlementJobRepository(mockQueries, mockDB)

		mockQueries.EXPECT().RequeueSettlementJobs(ctx, mockDB, ids).Return(int64(1), nil)

		n, err := repo.Requeue(ctx, mockDB, ids)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("success: nothing to requeue skips the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSettlementJobWriteQueries(ctrl)
		repo := repository.NewSettlementJobRepository(mockQueries, &mockDBTX{})

		n, err := repo.Requeue(ctx, &mockDBTX{}, nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSettlementJobWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSettlementJobRepository(mockQueries, mockDB)

		mockQueries.EXPECT().RequeueSettlementJobs(ctx, mockDB, ids).Return(int64(0), errors.New("connection reset"))

		_, err := repo.Requeue(ctx, mockDB, ids)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
