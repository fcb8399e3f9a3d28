package repository

import (
	"app/internal/domain/model"
	"context"
)

// 注文台帳。追記のみ。更新・削除のメソッドは意図的に存在しない。
type OrderRepository interface {
	ListAll(ctx context.Context) ([]model.OrderLine, error)
	NextOrderID(ctx context.Context) (int64, error)
	Append(ctx context.Context, line model.OrderLine) error
}
