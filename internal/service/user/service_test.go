package user

import (
	"context"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) (user.User, error) {
	if _, ok := f.users[u.ID]; !ok {
		return user.User{}, user.ErrUserNotFound
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(t *testing.T) (user.UserService, *fakeUserRepo) {
	t.Helper()
	repo := &fakeUserRepo{users: map[string]user.User{}}
	return NewUserService(nil, repo), repo
}

func TestCreateUserDefaultsGoal(t *testing.T) {
	svc, _ := newTestService(t)

	monthly, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		Name:     "Aya Tanaka",
		Email:    "aya@example.com",
		Password: "long-enough",
		Role:     "USER",
		PayType:  "MONTHLY",
		PayRate:  decimal.NewFromInt(330000),
	})
	require.NoError(t, err)
	assert.True(t, monthly.Goal.Equal(decimal.NewFromInt(330000)))

	hourly, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		Name:     "Ren Suzuki",
		Email:    "ren@example.com",
		Password: "long-enough",
		Role:     "USER",
		PayType:  "HOURLY",
		PayRate:  decimal.NewFromInt(2000),
	})
	require.NoError(t, err)
	// 2000 * 8h * 22 days
	assert.True(t, hourly.Goal.Equal(decimal.NewFromInt(352000)))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	req := user.CreateUserRequest{
		Name:     "Aya Tanaka",
		Email:    "aya@example.com",
		Password: "long-enough",
		Role:     "USER",
		PayType:  "HOURLY",
		PayRate:  decimal.NewFromInt(1500),
	}
	_, err := svc.CreateUser(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestCreateUserInvalid(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		Name:     "Aya Tanaka",
		Email:    "not-an-email",
		Password: "short",
		Role:     "SUPERUSER",
		PayType:  "HOURLY",
		PayRate:  decimal.NewFromInt(-1),
	})
	assert.Error(t, err)
}

func TestUpdateUserPartial(t *testing.T) {
	svc, repo := newTestService(t)
	u := user.User{
		ID:      uuid.NewString(),
		Name:    "Aya Tanaka",
		Email:   "aya@example.com",
		Role:    user.RoleUser,
		PayType: "HOURLY",
		PayRate: decimal.NewFromInt(1500),
	}
	repo.users[u.ID] = u

	rate := decimal.NewFromInt(1800)
	resp, err := svc.UpdateUser(context.Background(), user.UpdateUserRequest{
		ID:      u.ID,
		PayRate: &rate,
	})
	require.NoError(t, err)

	assert.Equal(t, "Aya Tanaka", resp.Name)
	assert.True(t, resp.PayRate.Equal(decimal.NewFromInt(1800)))
}

func TestDeleteUserSelf(t *testing.T) {
	svc, repo := newTestService(t)
	u := user.User{ID: uuid.NewString(), Email: "admin@example.com", Role: user.RoleAdmin}
	repo.users[u.ID] = u

	err := svc.DeleteUser(authedContext(t, u.ID), u.ID)
	assert.ErrorIs(t, err, user.ErrCannotDeleteSelf)
}

func TestDeleteUser(t *testing.T) {
	svc, repo := newTestService(t)
	admin := user.User{ID: uuid.NewString(), Email: "admin@example.com", Role: user.RoleAdmin}
	target := user.User{ID: uuid.NewString(), Email: "user@example.com", Role: user.RoleUser}
	repo.users[admin.ID] = admin
	repo.users[target.ID] = target

	require.NoError(t, svc.DeleteUser(authedContext(t, admin.ID), target.ID))

	_, err := repo.GetByID(context.Background(), target.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdateProfileGoalOnly(t *testing.T) {
	svc, repo := newTestService(t)
	u := user.User{
		ID:      uuid.NewString(),
		Email:   "aya@example.com",
		PayType: "HOURLY",
		PayRate: decimal.NewFromInt(1500),
		Goal:    decimal.NewFromInt(264000),
	}
	repo.users[u.ID] = u

	resp, err := svc.UpdateProfile(authedContext(t, u.ID), user.UpdateProfileRequest{
		Goal: decimal.NewFromInt(400000),
	})
	require.NoError(t, err)

	assert.True(t, resp.Goal.Equal(decimal.NewFromInt(400000)))
	assert.True(t, resp.PayRate.Equal(decimal.NewFromInt(1500)))
}

func TestChangePassword(t *testing.T) {
	svc, repo := newTestService(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	require.NoError(t, err)
	u := user.User{ID: uuid.NewString(), Email: "aya@example.com", PasswordHash: string(hash)}
	repo.users[u.ID] = u
	ctx := authedContext(t, u.ID)

	err = svc.ChangePassword(ctx, user.ChangePasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "new-password",
	})
	assert.ErrorIs(t, err, user.ErrWrongPassword)

	err = svc.ChangePassword(ctx, user.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})
	require.NoError(t, err)

	stored := repo.users[u.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password")))
}
