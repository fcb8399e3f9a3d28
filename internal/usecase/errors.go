package usecase

import (
	"errors"
	"fmt"
)

var (
	// 認証失敗。名前違いとパスワード違いを区別しない
	// （アカウントの存在を探られないため）。
	ErrInvalidCredentials = errors.New("invalid credentials")

	// 価格・在庫・数量が数値として不正。
	ErrInvalidQuantity = errors.New("invalid quantity")

	// 空のカートはチェックアウトできない。
	ErrEmptyCart = errors.New("cart is empty")
)

// サインアップ時の一意制約違反。どのフィールドが衝突したかを持つ。
type DuplicateFieldError struct {
	Field string
	Value string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Field, e.Value)
}

// カタログに存在しない商品を参照した。
type UnknownProductError struct {
	ProductID int64
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// 要求数量がスナップショット上の在庫を超えた。
type InsufficientStockError struct {
	ProductID int64
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("product %d: requested %d but only %d in stock",
		e.ProductID, e.Requested, e.Available)
}
