package services

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"marketplace/dto"
	"marketplace/entity"
	"marketplace/repository"
	"marketplace/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authSecret = "test-secret"

func newAuthService(t *testing.T) (*AuthService, *UserService) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	return NewAuthService(repo, authSecret, time.Minute, time.Hour), NewUserService(repo)
}

func TestAuth_RegisterLoginRefresh(t *testing.T) {
	auth, _ := newAuthService(t)

	user, tokens, err := auth.Register(ctx, dto.NewCreateUser(dto.RegisterBody{
		Name: "Sam", Email: "Sam@X.io", Password: "hunter22", Role: "seller",
	}))
	require.NoError(t, err)
	assert.Equal(t, "sam@x.io", user.Email)
	assert.Equal(t, entity.RoleSeller, user.Role)
	assert.NotEqual(t, "hunter22", user.Password)

	claims, err := utils.ParseToken(tokens.AccessToken, authSecret, utils.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, _, err = auth.Login(ctx, dto.NewLoginUser(dto.LoginBody{Email: "sam@x.io", Password: "wrong"}))
	requireStatus(t, err, http.StatusUnauthorized)
	_, _, err = auth.Login(ctx, dto.NewLoginUser(dto.LoginBody{Email: "nobody@x.io", Password: "hunter22"}))
	requireStatus(t, err, http.StatusUnauthorized)

	logged, tokens, err := auth.Login(ctx, dto.NewLoginUser(dto.LoginBody{Email: "SAM@x.io", Password: "hunter22"}))
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	fresh, err := auth.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	_, err = auth.Refresh(ctx, tokens.AccessToken)
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_RegisterConflictsAndAdmin(t *testing.T) {
	auth, _ := newAuthService(t)

	in := dto.CreateUser{Name: "A", Email: "a@x.io", Password: "secret1", Role: entity.RoleCustomer}
	_, _, err := auth.Register(ctx, in)
	require.NoError(t, err)

	_, _, err = auth.Register(ctx, in)
	requireStatus(t, err, http.StatusConflict)

	_, _, err = auth.Register(ctx, dto.CreateUser{Email: "root@x.io", Password: "secret1", Role: entity.RoleAdmin})
	requireStatus(t, err, http.StatusForbidden)

	_, _, err = auth.Register(ctx, dto.CreateUser{Email: "who@x.io", Password: "secret1", Role: entity.Role("owner")})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestAuth_RegisterUniqueIndexIsConflict(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(repository.NewUserRepository(db), authSecret, time.Minute, time.Hour)

	// a soft-deleted row is invisible to the email count but still holds
	// the unique index, same as a concurrent insert landing first
	gone := seedUser(t, db, "a@x.io", entity.RoleCustomer)
	require.NoError(t, db.Delete(gone).Error)

	_, _, err := auth.Register(ctx, dto.CreateUser{Name: "A", Email: "a@x.io", Password: "secret1", Role: entity.RoleCustomer})
	requireStatus(t, err, http.StatusConflict)
}

func TestAuth_ConcurrentRegisterOneWins(t *testing.T) {
	auth, _ := newAuthService(t)
	in := dto.CreateUser{Name: "A", Email: "race@x.io", Password: "secret1", Role: entity.RoleCustomer}

	const n = 4
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := auth.Register(ctx, in)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok int
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		requireStatus(t, err, http.StatusConflict)
	}
	assert.Equal(t, 1, ok)
}

func TestUser_UpdateProfile(t *testing.T) {
	auth, users := newAuthService(t)
	u, _, err := auth.Register(ctx, dto.CreateUser{Name: "A", Email: "a@x.io", Password: "secret1", Role: entity.RoleCustomer})
	require.NoError(t, err)

	got, err := users.UpdateProfile(ctx, dto.NewUpdateProfile(dto.UpdateProfileBody{Name: "Alice", BirthDate: "1991-04-02"}, u.ID))
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	require.NotNil(t, got.BirthDate)
	assert.Equal(t, "1991-04-02", got.BirthDate.UTC().Format("2006-01-02"))

	_, err = users.FindByID(ctx, 9999)
	requireStatus(t, err, http.StatusNotFound)
}
