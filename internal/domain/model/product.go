package model

import (
	"strings"
	"time"
)

// 購入可能とみなすstatus値（大文字小文字は区別しない）。
const ProductStatusActive = "active"

// テーブル上の日時表現（ローカル時刻）。
const TimeLayout = "2006-01-02 15:04:05"

// 商品。在庫減算（購入確定）以外では変更されない。
type Product struct {
	ID          int64
	SellerID    string
	SellerName  string
	Name        string
	Description string
	Category    string
	Brand       string
	Price       Money
	Stock       int64
	Status      string
	Rating      int64
	CreatedAt   time.Time
}

// Purchasable はstatusがactiveで在庫が残っているか。
func (p Product) Purchasable() bool {
	return strings.EqualFold(p.Status, ProductStatusActive) && p.Stock > 0
}
