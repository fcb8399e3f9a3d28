package model

// 購入者アカウント。作成後は不変。
type Customer struct {
	SequenceNo int64
	Name       string
	Password   string
	CustomerID string
	Email      string
	Address    string
	Phone      string
}
