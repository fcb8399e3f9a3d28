package session

import (
	"app/internal/domain/model"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSeller   Role = "seller"
	RoleCustomer Role = "customer"
)

// Session は「いまこのプロセスで誰が操作しているか」を持つ。
// プロセス全体のグローバル変数にはせず、UI側が1つ持って引き回す前提。
// 同時に有効なセッションは1つ（このシステムはマルチセッションではない）。
type Session struct {
	ID   string
	Role Role

	Admin    *model.Admin
	Seller   *model.Seller
	Customer *model.Customer

	// カートはログイン中の購入者だけが持つ。永続化しない。
	Cart []model.CartItem
}

func New() *Session {
	return &Session{ID: uuid.NewString()}
}

func (s *Session) LoginAdmin(a model.Admin) {
	s.reset()
	s.Role = RoleAdmin
	s.Admin = &a
}

func (s *Session) LoginSeller(sl model.Seller) {
	s.reset()
	s.Role = RoleSeller
	s.Seller = &sl
}

func (s *Session) LoginCustomer(c model.Customer) {
	s.reset()
	s.Role = RoleCustomer
	s.Customer = &c
}

func (s *Session) Logout() {
	s.reset()
}

func (s *Session) ClearCart() {
	s.Cart = nil
}

func (s *Session) reset() {
	s.Role = ""
	s.Admin = nil
	s.Seller = nil
	s.Customer = nil
	s.Cart = nil
}
