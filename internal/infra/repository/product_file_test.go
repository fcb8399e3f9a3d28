package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct(id int64, stock int64) model.Product {
	return model.Product{
		ID:          id,
		SellerID:    "S1",
		SellerName:  "Acme",
		Name:        "Widget",
		Description: "a widget",
		Category:    "tools",
		Brand:       "AcmeCo",
		Price:       model.Money(1000),
		Stock:       stock,
		Status:      model.ProductStatusActive,
		Rating:      0,
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local),
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestProductFileRepository_AppendRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := NewProductFileRepository(t.TempDir())

	want := sampleProduct(1, 5)
	require.NoError(t, r.Append(ctx, want))

	got, err := r.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProductFileRepository_NextID(t *testing.T) {
	ctx := context.Background()
	r := NewProductFileRepository(t.TempDir())

	id, err := r.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.NoError(t, r.Append(ctx, sampleProduct(4, 5)))

	id, err = r.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestProductFileRepository_ListBySeller(t *testing.T) {
	ctx := context.Background()
	r := NewProductFileRepository(t.TempDir())

	p1 := sampleProduct(1, 5)
	p2 := sampleProduct(2, 0)
	p2.Status = "suspended"
	p3 := sampleProduct(3, 9)
	p3.SellerID = "S2"
	for _, p := range []model.Product{p1, p2, p3} {
		require.NoError(t, r.Append(ctx, p))
	}

	// statusや在庫は見ない。ファイル順。
	got, err := r.ListBySeller(ctx, "S1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestProductFileRepository_DecrementStock(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	r := NewProductFileRepository(dir)

	require.NoError(t, r.Append(ctx, sampleProduct(1, 5)))
	require.NoError(t, r.Append(ctx, sampleProduct(2, 7)))

	require.NoError(t, r.DecrementStock(ctx, map[int64]int64{1: 3, 2: 7}))

	p1, err := r.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p1.Stock)

	p2, err := r.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), p2.Stock)

	// 在庫以外のフィールドと行順は変わらない
	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	want1 := sampleProduct(1, 2)
	assert.Equal(t, want1, all[0])
}

func TestProductFileRepository_DecrementStock_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	r := NewProductFileRepository(dir)
	require.NoError(t, r.Append(ctx, sampleProduct(1, 5)))

	before := readFile(t, filepath.Join(dir, productFile))

	err := r.DecrementStock(ctx, map[int64]int64{9: 1})
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.Equal(t, before, readFile(t, filepath.Join(dir, productFile)))
}

func TestProductFileRepository_DecrementStock_Short(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	r := NewProductFileRepository(dir)
	require.NoError(t, r.Append(ctx, sampleProduct(1, 5)))

	before := readFile(t, filepath.Join(dir, productFile))

	err := r.DecrementStock(ctx, map[int64]int64{1: 6})
	assert.ErrorIs(t, err, repo.ErrStockShort)
	assert.Equal(t, before, readFile(t, filepath.Join(dir, productFile)))
}

func TestOrderFileRepository_AppendRecomputesTotal(t *testing.T) {
	ctx := context.Background()
	r := NewOrderFileRepository(t.TempDir())

	line := model.OrderLine{
		OrderID:      1,
		OrderedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local),
		CustomerID:   "C1",
		CustomerName: "Carol",
		SellerID:     "S1",
		SellerName:   "Acme",
		ProductID:    1,
		ProductName:  "Widget",
		UnitPrice:    model.Money(1000),
		Quantity:     5,
		TotalPrice:   model.Money(1), // 呼び出し側の値は信用されない
	}
	require.NoError(t, r.Append(ctx, line))

	got, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.Money(5000), got[0].TotalPrice)
	assert.Equal(t, model.Money(1000), got[0].UnitPrice)
}

func TestOrderFileRepository_NextOrderID(t *testing.T) {
	ctx := context.Background()
	r := NewOrderFileRepository(t.TempDir())

	id, err := r.NextOrderID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}
