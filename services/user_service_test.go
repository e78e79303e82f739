package services

import (
	"context"
	"testing"

	"logo-lms/access"
	"logo-lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	users     *MockUserRepository
	favorites *MockFavoriteRepository
	purchases *MockPurchaseRepository
	store     *MockAvatarStore
}

func newUserFixture() *userFixture {
	return &userFixture{
		users:     &MockUserRepository{},
		favorites: &MockFavoriteRepository{},
		purchases: &MockPurchaseRepository{},
		store:     &MockAvatarStore{},
	}
}

func (f *userFixture) service(withStore bool) UserService {
	if withStore {
		return NewUserService(f.users, f.favorites, f.purchases, f.store)
	}
	return NewUserService(f.users, f.favorites, f.purchases, nil)
}

func TestListOwnProfile(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	f.users.On("GetByID", ctx, pupil.UserID).Return(&models.User{ID: pupil.UserID, Username: "pupil", Role: models.RoleStudent}, nil)
	f.favorites.On("CourseIDs", ctx, pupil.UserID).Return([]uint{10}, nil)
	f.purchases.On("CourseIDs", ctx, pupil.UserID).Return([]uint{10, 11}, nil)

	items, err := f.service(false).ListOwn(ctx, pupil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, pupil.UserID, items[0].ID)
	assert.Equal(t, []uint{10}, items[0].Favorites)
	assert.Equal(t, []uint{10, 11}, items[0].PurchasedCourses)

	_, err = f.service(false).ListOwn(ctx, nil)
	assert.Equal(t, access.ErrUnauthenticated, err)
}

func TestProfileOwnership(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	me := &models.User{ID: pupil.UserID, Username: "pupil", Email: "pupil@example.com"}
	f.users.On("GetByID", ctx, pupil.UserID).Return(me, nil)

	res, err := f.service(false).Get(ctx, pupil, pupil.UserID)
	require.NoError(t, err)
	assert.Equal(t, "pupil@example.com", res.Email)

	_, err = f.service(false).Get(ctx, author, pupil.UserID)
	assert.Equal(t, access.ErrNotOwner, err)

	name := "stolen"
	_, err = f.service(false).Update(ctx, author, pupil.UserID, models.UpdateProfileRequest{Username: &name})
	assert.Equal(t, access.ErrNotOwner, err)
	f.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileUpdate(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	me := &models.User{ID: pupil.UserID, Username: "pupil", Email: "pupil@example.com"}
	f.users.On("GetByID", ctx, pupil.UserID).Return(me, nil)
	f.users.On("EmailTaken", ctx, "new@example.com", pupil.UserID).Return(false, nil)
	f.users.On("Update", ctx, pupil.UserID, map[string]interface{}{"email": "new@example.com"}).
		Return(&models.User{ID: pupil.UserID, Username: "pupil", Email: "new@example.com"}, nil)

	email := "New@Example.com"
	res, err := f.service(false).Update(ctx, pupil, pupil.UserID, models.UpdateProfileRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", res.Email)
}

func TestProfileUpdateUsernameTaken(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	f.users.On("GetByID", ctx, pupil.UserID).Return(&models.User{ID: pupil.UserID, Username: "pupil"}, nil)
	f.users.On("UsernameTaken", ctx, "teacher", pupil.UserID).Return(true, nil)

	name := "teacher"
	_, err := f.service(false).Update(ctx, pupil, pupil.UserID, models.UpdateProfileRequest{Username: &name})
	assert.Equal(t, models.ErrUsernameTaken, err)
}

func TestUploadAvatar(t *testing.T) {
	ctx := context.Background()
	body := []byte("png")

	f := newUserFixture()
	f.users.On("GetByID", ctx, pupil.UserID).Return(&models.User{ID: pupil.UserID}, nil)
	f.store.On("Upload", ctx, "avatars/3", "me.png", "image/png", body).Return("https://cdn/avatars/3/x.png", nil)
	f.users.On("Update", ctx, pupil.UserID, map[string]interface{}{"avatar_url": "https://cdn/avatars/3/x.png"}).
		Return(&models.User{ID: pupil.UserID, AvatarURL: "https://cdn/avatars/3/x.png"}, nil)

	res, err := f.service(true).UploadAvatar(ctx, pupil, pupil.UserID, "me.png", "image/png", body)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/avatars/3/x.png", res.Avatar)

	_, err = f.service(true).UploadAvatar(ctx, author, pupil.UserID, "me.png", "image/png", body)
	assert.Equal(t, access.ErrNotOwner, err)
	f.store.AssertNumberOfCalls(t, "Upload", 1)

	_, err = f.service(false).UploadAvatar(ctx, pupil, pupil.UserID, "me.png", "image/png", body)
	assert.Equal(t, models.ErrAvatarUnsupported, err)
}
