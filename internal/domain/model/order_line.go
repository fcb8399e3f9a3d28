package model

import "time"

// 注文明細（台帳の1行）。追記のみで、更新も削除もされない。
// 1回のチェックアウトでN商品ならN行が同じOrderIDを共有する。
type OrderLine struct {
	OrderID      int64
	OrderedAt    time.Time
	CustomerID   string
	CustomerName string
	SellerID     string
	SellerName   string
	ProductID    int64
	ProductName  string
	UnitPrice    Money
	Quantity     int64
	TotalPrice   Money
}
