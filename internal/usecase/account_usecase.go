package usecase

import (
	"context"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// AccountUsecase はサインアップ・ログイン・管理者シードの業務ロジック。
// パスワードは平文比較（元システムの挙動をそのまま保つ。推奨ではない）。
type AccountUsecase struct {
	sellers   repo.SellerRepository
	customers repo.CustomerRepository
	admins    repo.AdminRepository
}

// DI
func NewAccountUsecase(
	sellers repo.SellerRepository,
	customers repo.CustomerRepository,
	admins repo.AdminRepository,
) *AccountUsecase {
	return &AccountUsecase{
		sellers:   sellers,
		customers: customers,
		admins:    admins,
	}
}

type RegisterSellerInput struct {
	Name     string
	Password string
	SellerID string
	Email    string
	Address  string
	Phone    string
	CNIC     string
}

type RegisterCustomerInput struct {
	Name       string
	Password   string
	CustomerID string
	Email      string
	Address    string
	Phone      string
}

// RegisterSeller は一意制約を確認してから追記する。
// 衝突の優先順位は id > email > phone > cnic で固定。
func (u *AccountUsecase) RegisterSeller(ctx context.Context, in RegisterSellerInput) (model.Seller, error) {
	s := model.Seller{
		Name:     strings.TrimSpace(in.Name),
		Password: strings.TrimSpace(in.Password),
		SellerID: strings.TrimSpace(in.SellerID),
		Email:    strings.TrimSpace(in.Email),
		Address:  strings.TrimSpace(in.Address),
		Phone:    strings.TrimSpace(in.Phone),
		CNIC:     strings.TrimSpace(in.CNIC),
	}

	existing, err := u.sellers.ListAll(ctx)
	if err != nil {
		return model.Seller{}, err
	}
	for _, e := range existing {
		if e.SellerID == s.SellerID {
			return model.Seller{}, &DuplicateFieldError{Field: "id", Value: s.SellerID}
		}
		if e.Email == s.Email {
			return model.Seller{}, &DuplicateFieldError{Field: "email", Value: s.Email}
		}
		if e.Phone == s.Phone {
			return model.Seller{}, &DuplicateFieldError{Field: "phone", Value: s.Phone}
		}
		if e.CNIC == s.CNIC {
			return model.Seller{}, &DuplicateFieldError{Field: "cnic", Value: s.CNIC}
		}
	}

	no, err := u.sellers.NextSequenceNo(ctx)
	if err != nil {
		return model.Seller{}, err
	}
	s.SequenceNo = no

	if err := u.sellers.Append(ctx, s); err != nil {
		return model.Seller{}, err
	}
	return s, nil
}

// RegisterCustomer はRegisterSellerと同じ流れ（cnicが無いだけ）。
func (u *AccountUsecase) RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (model.Customer, error) {
	c := model.Customer{
		Name:       strings.TrimSpace(in.Name),
		Password:   strings.TrimSpace(in.Password),
		CustomerID: strings.TrimSpace(in.CustomerID),
		Email:      strings.TrimSpace(in.Email),
		Address:    strings.TrimSpace(in.Address),
		Phone:      strings.TrimSpace(in.Phone),
	}

	existing, err := u.customers.ListAll(ctx)
	if err != nil {
		return model.Customer{}, err
	}
	for _, e := range existing {
		if e.CustomerID == c.CustomerID {
			return model.Customer{}, &DuplicateFieldError{Field: "id", Value: c.CustomerID}
		}
		if e.Email == c.Email {
			return model.Customer{}, &DuplicateFieldError{Field: "email", Value: c.Email}
		}
		if e.Phone == c.Phone {
			return model.Customer{}, &DuplicateFieldError{Field: "phone", Value: c.Phone}
		}
	}

	no, err := u.customers.NextSequenceNo(ctx)
	if err != nil {
		return model.Customer{}, err
	}
	c.SequenceNo = no

	if err := u.customers.Append(ctx, c); err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// LoginSeller は名前＋パスワードの完全一致。最初に一致した行が勝つ。
func (u *AccountUsecase) LoginSeller(ctx context.Context, name, password string) (model.Seller, error) {
	name = strings.TrimSpace(name)
	password = strings.TrimSpace(password)

	sellers, err := u.sellers.ListAll(ctx)
	if err != nil {
		return model.Seller{}, err
	}
	for _, s := range sellers {
		if s.Name == name && s.Password == password {
			return s, nil
		}
	}
	return model.Seller{}, ErrInvalidCredentials
}

func (u *AccountUsecase) LoginCustomer(ctx context.Context, name, password string) (model.Customer, error) {
	name = strings.TrimSpace(name)
	password = strings.TrimSpace(password)

	customers, err := u.customers.ListAll(ctx)
	if err != nil {
		return model.Customer{}, err
	}
	for _, c := range customers {
		if c.Name == name && c.Password == password {
			return c, nil
		}
	}
	return model.Customer{}, ErrInvalidCredentials
}

func (u *AccountUsecase) LoginAdmin(ctx context.Context, username, password string) (model.Admin, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	admins, err := u.admins.ListAll(ctx)
	if err != nil {
		return model.Admin{}, err
	}
	for _, a := range admins {
		if a.Username == username && a.Password == password {
			return a, nil
		}
	}
	return model.Admin{}, ErrInvalidCredentials
}

// EnsureAdmin はテーブルが空のときだけ初期管理者を1行シードする。
func (u *AccountUsecase) EnsureAdmin(ctx context.Context, username, password string) error {
	admins, err := u.admins.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(admins) > 0 {
		return nil
	}
	return u.admins.Append(ctx, model.Admin{
		SequenceNo: 1,
		Username:   username,
		Password:   password,
	})
}

// ListSellers は管理者ダッシュボードの出品者一覧用。
func (u *AccountUsecase) ListSellers(ctx context.Context) ([]model.Seller, error) {
	return u.sellers.ListAll(ctx)
}
