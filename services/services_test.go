package services

import (
	"context"
	"testing"

	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/pkg/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var ctx = context.Background()

func seedUser(t *testing.T, db *gorm.DB, email string, role entity.Role) *entity.User {
	t.Helper()
	u := &entity.User{Name: email, Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedProduct(t *testing.T, db *gorm.DB, sellerID uint, price int64, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: "Widget", Category: "tools", Price: price, Stock: stock, SellerID: sellerID}
	require.NoError(t, db.Create(p).Error)
	return p
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	got, _ := apperr.StatusOf(err)
	assert.Equal(t, status, got, err.Error())
}

func newTestDB(t *testing.T) *gorm.DB { return testdb.New(t) }
