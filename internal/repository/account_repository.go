package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 出品者の永続化だけを約束。更新・削除は存在しない。
type SellerRepository interface {
	ListAll(ctx context.Context) ([]model.Seller, error)
	Append(ctx context.Context, s model.Seller) error

	// ヘッダー込みの行位置 = 次のsequence_no
	NextSequenceNo(ctx context.Context) (int64, error)
}

// 購入者の永続化だけを約束。
type CustomerRepository interface {
	ListAll(ctx context.Context) ([]model.Customer, error)
	Append(ctx context.Context, c model.Customer) error
	NextSequenceNo(ctx context.Context) (int64, error)
}

// 管理者の永続化。通常フローで追加されることはない。
type AdminRepository interface {
	ListAll(ctx context.Context) ([]model.Admin, error)
	Append(ctx context.Context, a model.Admin) error
}
