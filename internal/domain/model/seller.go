package model

// 出品者アカウント。作成後は変更も削除もしない。
// IDはサインアップ時に本人が入力した文字列。
type Seller struct {
	SequenceNo int64
	Name       string
	Password   string
	SellerID   string
	Email      string
	Address    string
	Phone      string
	CNIC       string
}
