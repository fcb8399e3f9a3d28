package session_test

import (
	"testing"

	"app/internal/domain/model"
	"app/internal/session"

	"github.com/stretchr/testify/assert"
)

func TestSession_New(t *testing.T) {
	s := session.New()

	assert.NotEmpty(t, s.ID)
	assert.Empty(t, s.Role)
	assert.Nil(t, s.Admin)
	assert.Nil(t, s.Seller)
	assert.Nil(t, s.Customer)
	assert.Nil(t, s.Cart)
}

func TestSession_LoginSwitchesRole(t *testing.T) {
	s := session.New()

	s.LoginCustomer(model.Customer{CustomerID: "C1", Name: "Carol"})
	s.Cart = append(s.Cart, model.CartItem{ProductID: 1, Quantity: 2})

	// 別ロールでのログインは前のセッション内容を全て捨てる
	s.LoginSeller(model.Seller{SellerID: "S1", Name: "Acme"})

	assert.Equal(t, session.RoleSeller, s.Role)
	assert.Nil(t, s.Customer)
	assert.Nil(t, s.Cart)
	if assert.NotNil(t, s.Seller) {
		assert.Equal(t, "S1", s.Seller.SellerID)
	}

	s.LoginAdmin(model.Admin{Username: "admin"})
	assert.Equal(t, session.RoleAdmin, s.Role)
	assert.Nil(t, s.Seller)
}

func TestSession_Logout(t *testing.T) {
	s := session.New()
	s.LoginCustomer(model.Customer{CustomerID: "C1"})
	s.Cart = append(s.Cart, model.CartItem{ProductID: 1, Quantity: 1})

	s.Logout()

	assert.Empty(t, s.Role)
	assert.Nil(t, s.Customer)
	assert.Nil(t, s.Cart)
}

func TestSession_ClearCartKeepsLogin(t *testing.T) {
	s := session.New()
	s.LoginCustomer(model.Customer{CustomerID: "C1"})
	s.Cart = append(s.Cart, model.CartItem{ProductID: 1, Quantity: 1})

	s.ClearCart()

	assert.Nil(t, s.Cart)
	assert.Equal(t, session.RoleCustomer, s.Role)
	assert.NotNil(t, s.Customer)
}
