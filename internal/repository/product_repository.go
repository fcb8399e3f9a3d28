package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// 在庫が足りずに減算できなかった。
var ErrStockShort = errors.New("stock short")

// 商品の永続化（保存・取得・在庫減算）だけを約束。
type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Append(ctx context.Context, p model.Product) error
	NextID(ctx context.Context) (int64, error)

	// DecrementStock は全件読み→メモリ上で全減算→1回の全書き換え。
	// 対象が無ければ ErrNotFound、負になるなら ErrStockShort を返し、
	// その場合ファイルには一切書かない。行順と他フィールドは保存される。
	DecrementStock(ctx context.Context, deltas map[int64]int64) error
}
