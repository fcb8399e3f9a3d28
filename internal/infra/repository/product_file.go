package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/store"
)

const (
	colProductID = 0
	colStock     = 8
)

type ProductFileRepository struct {
	tbl *store.Table
}

// DI
func NewProductFileRepository(dataDir string) *ProductFileRepository {
	return &ProductFileRepository{
		tbl: store.New(filepath.Join(dataDir, productFile), productHeader),
	}
}

func encodeProduct(p model.Product) []string {
	return []string{
		strconv.FormatInt(p.ID, 10),
		p.SellerID,
		p.SellerName,
		p.Name,
		p.Description,
		p.Category,
		p.Brand,
		p.Price.String(),
		strconv.FormatInt(p.Stock, 10),
		p.Status,
		strconv.FormatInt(p.Rating, 10),
		p.CreatedAt.Format(model.TimeLayout),
	}
}

// 数値として読めないprice/stock/ratingは0として扱う（行ごと落とさない）。
func decodeProduct(row []string) (model.Product, bool) {
	if len(row) < len(productHeader) {
		return model.Product{}, false
	}
	id, err := strconv.ParseInt(row[colProductID], 10, 64)
	if err != nil {
		return model.Product{}, false
	}

	price, _ := model.ParseMoney(row[7])
	stock, _ := strconv.ParseInt(row[colStock], 10, 64)
	rating, _ := strconv.ParseInt(row[10], 10, 64)
	createdAt, _ := time.ParseInLocation(model.TimeLayout, row[11], time.Local)

	return model.Product{
		ID:          id,
		SellerID:    row[1],
		SellerName:  row[2],
		Name:        row[3],
		Description: row[4],
		Category:    row[5],
		Brand:       row[6],
		Price:       price,
		Stock:       stock,
		Status:      row[9],
		Rating:      rating,
		CreatedAt:   createdAt,
	}, true
}

func (r *ProductFileRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	rows, err := r.tbl.ReadAll()
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		if p, ok := decodeProduct(row); ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// 指定の出品者が持つ商品を、statusや在庫に関係なくファイル順で返す。
func (r *ProductFileRepository) ListBySeller(ctx context.Context, sellerID string) ([]model.Product, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(all))
	for _, p := range all {
		if p.SellerID == sellerID {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *ProductFileRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return model.Product{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (r *ProductFileRepository) Append(ctx context.Context, p model.Product) error {
	return r.tbl.Append(encodeProduct(p))
}

func (r *ProductFileRepository) NextID(ctx context.Context) (int64, error) {
	return r.tbl.NextID(colProductID)
}

// DecrementStock は生の行のstock列だけを書き換える。
// 他のフィールドは読んだバイト列のまま書き戻すので、表現の揺れが出ない。
func (r *ProductFileRepository) DecrementStock(ctx context.Context, deltas map[int64]int64) error {
	rows, err := r.tbl.ReadAll()
	if err != nil {
		return err
	}

	remaining := make(map[int64]int64, len(deltas))
	for id, qty := range deltas {
		remaining[id] = qty
	}

	for _, row := range rows {
		if len(row) < len(productHeader) {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(row[colProductID]), 10, 64)
		if err != nil {
			continue
		}
		qty, ok := remaining[id]
		if !ok {
			continue
		}

		stock, _ := strconv.ParseInt(strings.TrimSpace(row[colStock]), 10, 64)
		if stock-qty < 0 {
			return fmt.Errorf("product %d: %w", id, repo.ErrStockShort)
		}
		row[colStock] = strconv.FormatInt(stock-qty, 10)
		delete(remaining, id)
	}

	if len(remaining) > 0 {
		for id := range remaining {
			return fmt.Errorf("product %d: %w", id, repo.ErrNotFound)
		}
	}

	return r.tbl.Rewrite(rows)
}
