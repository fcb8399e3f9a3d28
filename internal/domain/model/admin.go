package model

// 管理者アカウント。
// 空のテーブルには初期管理者が1行だけシードされる。
type Admin struct {
	SequenceNo int64
	Username   string
	Password   string
}
