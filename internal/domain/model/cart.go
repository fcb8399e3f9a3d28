package model

// カート明細。永続化せず、セッション上にだけ存在する。
// 単価はカート追加時点のカタログのスナップショット。
type CartItem struct {
	ProductID   int64
	ProductName string
	UnitPrice   Money
	Quantity    int64
	TotalPrice  Money
	SellerID    string
	SellerName  string
}
