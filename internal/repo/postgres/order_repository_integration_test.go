//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/intershop/internal/domain"
	pgrepo "github.com/Gunvolt24/intershop/internal/repo/postgres"
	"github.com/Gunvolt24/intershop/internal/testutil"
)

func newOrderStack(t *testing.T) (context.Context, *pgxpool.Pool, *pgrepo.OrderRepository) {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return ctx, pool, pgrepo.NewOrderRepository(pool)
}

func TestOrderRepo_SaveAndGet_TC(t *testing.T) {
	t.Parallel()
	ctx, _, repo := newOrderStack(t)

	ord := &domain.Order{
		UserID:    7,
		Status:    domain.StatusProcessing,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.SaveOrder(ctx, ord))
	require.NotZero(t, ord.ID)

	got, err := repo.FindByID(ctx, ord.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.EqualValues(t, 7, got.UserID)
	require.Equal(t, domain.StatusProcessing, got.Status)

	// отсутствующий — (nil, nil)
	missing, err := repo.FindByID(ctx, ord.ID+1000)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestOrderRepo_FindByUserID_NewestFirst_TC(t *testing.T) {
	t.Parallel()
	ctx, _, repo := newOrderStack(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		ord := &domain.Order{
			UserID:    42,
			Status:    domain.StatusProcessing,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.SaveOrder(ctx, ord))
	}
	// чужой заказ в выдачу не попадает
	other := &domain.Order{UserID: 43, Status: domain.StatusProcessing, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.SaveOrder(ctx, other))

	got, err := repo.FindByUserID(ctx, 42)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
	require.True(t, got[1].CreatedAt.After(got[2].CreatedAt))
}

func TestOrderRepo_OrderItems_TC(t *testing.T) {
	t.Parallel()
	ctx, pool, repo := newOrderStack(t)

	seeded, err := testutil.SeedItem(ctx, pool, testutil.MakeItem(testutil.WithPrice(99.90)))
	require.NoError(t, err)

	ord := &domain.Order{UserID: 7, Status: domain.StatusProcessing, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.SaveOrder(ctx, ord))

	line := &domain.OrderItem{
		OrderID:  ord.ID,
		ItemID:   seeded.ID,
		Quantity: 2,
		Price:    seeded.Price,
	}
	require.NoError(t, repo.SaveOrderItem(ctx, line))
	require.NotZero(t, line.ID)

	lines, err := repo.FindItemsByOrderID(ctx, ord.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Quantity)
	require.Equal(t, 99.90, lines[0].Price)

	// у чужого заказа строк нет
	empty, err := repo.FindItemsByOrderID(ctx, ord.ID+1000)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestOrderRepo_SaveOrderItem_Validation_TC(t *testing.T) {
	t.Parallel()
	ctx, _, repo := newOrderStack(t)

	require.Error(t, repo.SaveOrderItem(ctx, nil))
	require.Error(t, repo.SaveOrderItem(ctx, &domain.OrderItem{OrderID: 0, ItemID: 1, Quantity: 1}))
	require.Error(t, repo.SaveOrderItem(ctx, &domain.OrderItem{OrderID: 1, ItemID: 1, Quantity: 0}))
}
