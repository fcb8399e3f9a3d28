package usecase_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	infraRepo "app/internal/infra/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLedger(t *testing.T) (*usecase.AnalyticsUsecase, *infraRepo.OrderFileRepository) {
	t.Helper()
	ctx := context.Background()
	orders := infraRepo.NewOrderFileRepository(t.TempDir())

	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	lines := []model.OrderLine{
		{OrderID: 1, OrderedAt: ts, CustomerID: "C1", CustomerName: "Carol",
			SellerID: "S1", SellerName: "Acme", ProductID: 1, ProductName: "Widget",
			UnitPrice: model.Money(1000), Quantity: 5}, // 50.00
		{OrderID: 2, OrderedAt: ts, CustomerID: "C2", CustomerName: "Dave",
			SellerID: "S2", SellerName: "Globex", ProductID: 3, ProductName: "Gizmo",
			UnitPrice: model.Money(1500), Quantity: 2}, // 30.00
		{OrderID: 3, OrderedAt: ts, CustomerID: "C1", CustomerName: "Carol",
			SellerID: "S1", SellerName: "Acme", ProductID: 2, ProductName: "Gadget",
			UnitPrice: model.Money(500), Quantity: 4}, // 20.00
	}
	for _, l := range lines {
		require.NoError(t, orders.Append(ctx, l))
	}

	return usecase.NewAnalyticsUsecase(orders), orders
}

func TestAnalyticsUsecase_AdminReport(t *testing.T) {
	ctx := context.Background()
	uc, _ := seedLedger(t)

	rep, err := uc.AdminReport(ctx)
	require.NoError(t, err)

	assert.Equal(t, "S1", rep.BestSeller.SellerID)
	assert.Equal(t, model.Money(7000), rep.BestSeller.Revenue)
	assert.Equal(t, "S2", rep.LowestSeller.SellerID)
	assert.Equal(t, model.Money(3000), rep.LowestSeller.Revenue)

	assert.Equal(t, int64(1), rep.BestProduct.ProductID)
	assert.Equal(t, model.Money(5000), rep.BestProduct.Revenue)
	assert.Equal(t, int64(2), rep.LowestProduct.ProductID)
	assert.Equal(t, model.Money(2000), rep.LowestProduct.Revenue)

	// ランキングは売上降順
	require.Len(t, rep.SellerRanking, 2)
	assert.Equal(t, "S1", rep.SellerRanking[0].SellerID)
	assert.Equal(t, "S2", rep.SellerRanking[1].SellerID)

	require.Len(t, rep.ProductRanking, 3)
	assert.Equal(t, int64(1), rep.ProductRanking[0].ProductID)
	assert.Equal(t, int64(3), rep.ProductRanking[1].ProductID)
	assert.Equal(t, int64(2), rep.ProductRanking[2].ProductID)
}

// 出品者別売上の合計は台帳のtotal_priceの総和と一致する。
func TestAnalyticsUsecase_TotalsMatchLedger(t *testing.T) {
	ctx := context.Background()
	uc, orders := seedLedger(t)

	rep, err := uc.AdminReport(ctx)
	require.NoError(t, err)

	var bySellers model.Money
	for _, s := range rep.SellerRanking {
		bySellers += s.Revenue
	}

	lines, err := orders.ListAll(ctx)
	require.NoError(t, err)
	var ledgerTotal model.Money
	for _, l := range lines {
		ledgerTotal += l.TotalPrice
	}

	assert.Equal(t, ledgerTotal, bySellers)
}

func TestAnalyticsUsecase_SellerReport(t *testing.T) {
	ctx := context.Background()
	uc, _ := seedLedger(t)

	rep, err := uc.SellerReport(ctx, "S1")
	require.NoError(t, err)

	assert.Equal(t, model.Money(7000), rep.TotalRevenue)
	assert.Equal(t, int64(1), rep.BestProduct.ProductID)
	assert.Equal(t, int64(2), rep.LowestProduct.ProductID)
	require.Len(t, rep.ProductRanking, 2)
}

// 台帳が空（またはフィルタ結果が空）でもエラーにせず番兵を返す。
func TestAnalyticsUsecase_EmptyLedger(t *testing.T) {
	ctx := context.Background()
	orders := infraRepo.NewOrderFileRepository(t.TempDir())
	uc := usecase.NewAnalyticsUsecase(orders)

	rep, err := uc.AdminReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.NoDataLabel, rep.BestSeller.SellerName)
	assert.Equal(t, model.Money(0), rep.BestSeller.Revenue)
	assert.Equal(t, usecase.NoDataLabel, rep.LowestProduct.ProductName)
	assert.Empty(t, rep.SellerRanking)

	srep, err := uc.SellerReport(ctx, "S9")
	require.NoError(t, err)
	assert.Equal(t, model.Money(0), srep.TotalRevenue)
	assert.Equal(t, usecase.NoDataLabel, srep.BestProduct.ProductName)
}

// 同額のときは先に台帳に現れたグループが先頭（安定ソート）。
func TestAnalyticsUsecase_StableTies(t *testing.T) {
	ctx := context.Background()
	orders := infraRepo.NewOrderFileRepository(t.TempDir())
	uc := usecase.NewAnalyticsUsecase(orders)

	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	for _, l := range []model.OrderLine{
		{OrderID: 1, OrderedAt: ts, SellerID: "S1", SellerName: "Acme",
			ProductID: 1, ProductName: "Widget", UnitPrice: model.Money(1000), Quantity: 1},
		{OrderID: 2, OrderedAt: ts, SellerID: "S2", SellerName: "Globex",
			ProductID: 2, ProductName: "Gadget", UnitPrice: model.Money(1000), Quantity: 1},
	} {
		require.NoError(t, orders.Append(ctx, l))
	}

	rep, err := uc.AdminReport(ctx)
	require.NoError(t, err)
	require.Len(t, rep.SellerRanking, 2)
	assert.Equal(t, "S1", rep.SellerRanking[0].SellerID)
	assert.Equal(t, "S2", rep.SellerRanking[1].SellerID)
}
