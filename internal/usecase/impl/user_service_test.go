package impl

import (
	"context"
	"testing"

	"whisper/internal/domain/entity"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/domain/repository"
	"whisper/internal/domain/service"
	mockRepo "whisper/internal/mocks/repository"
	mockSvc "whisper/internal/mocks/service"
	"whisper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService, *mockSvc.MockMediaService) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	media := mockSvc.NewMockMediaService(t)

	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Media:        media,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return svc, userRepo, hasher, tokenSvc, media
}

func TestUserService_Register_Success(t *testing.T) {
	svc, userRepo, hasher, tokenSvc, _ := newUserServiceForTest(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct horse battery staple",
	}

	userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	hasher.EXPECT().
		Hash(input.Password).
		Return("$2a$12$hash", nil)

	userID := uuid.New()
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = userID

			return nil
		})

	tokenSvc.EXPECT().
		GenerateToken(userID).
		Return("signed.jwt.token", nil)

	output, err := svc.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "$2a$12$hash", output.User.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, userRepo, _, _, _ := newUserServiceForTest(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "password123",
	}

	userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{Email: input.Email}, nil)

	output, err := svc.Register(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, output)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	svc, userRepo, hasher, _, _ := newUserServiceForTest(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "password123",
	}

	userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	hasher.EXPECT().
		Hash(input.Password).
		Return("", errors.New("cost out of range"))

	output, err := svc.Register(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.Nil(t, output)
}

func TestUserService_Login_Success(t *testing.T) {
	svc, userRepo, hasher, tokenSvc, _ := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "ada@example.com", PasswordHash: "$2a$12$hash"}

	userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	hasher.EXPECT().
		Check("password123", user.PasswordHash).
		Return(true)

	tokenSvc.EXPECT().
		GenerateToken(userID).
		Return("signed.jwt.token", nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, userRepo, _, _, _ := newUserServiceForTest(t)

	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "password123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, hasher, _, _ := newUserServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "$2a$12$hash"}

	userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	hasher.EXPECT().
		Check("wrong", user.PasswordHash).
		Return(false)

	// Wrong password and unknown email are indistinguishable to the caller.
	output, err := svc.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, userRepo, _, _, _ := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetProfile(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserService_UpdateProfilePic_ReplacesAndRemovesOld(t *testing.T) {
	svc, userRepo, _, _, media := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, ProfilePic: "https://cdn.example.com/old.png"}

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(existing, nil)

	media.EXPECT().
		Store(ctx, "data:image/png;base64,AAAA", service.MediaKindImage).
		Return("https://cdn.example.com/new.png", nil)

	userRepo.EXPECT().
		UpdateProfilePic(ctx, userID, "https://cdn.example.com/new.png").
		Return(nil)

	media.EXPECT().
		Remove(ctx, "https://cdn.example.com/old.png").
		Return(nil)

	user, err := svc.UpdateProfilePic(ctx, userID, &usecase.UpdateProfileInput{ProfilePic: "data:image/png;base64,AAAA"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/new.png", user.ProfilePic)
}

func TestUserService_UpdateProfilePic_OldRemovalFailureIsContained(t *testing.T) {
	svc, userRepo, _, _, media := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, ProfilePic: "https://cdn.example.com/old.png"}

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(existing, nil)

	media.EXPECT().
		Store(ctx, "data:image/png;base64,AAAA", service.MediaKindImage).
		Return("https://cdn.example.com/new.png", nil)

	userRepo.EXPECT().
		UpdateProfilePic(ctx, userID, "https://cdn.example.com/new.png").
		Return(nil)

	media.EXPECT().
		Remove(ctx, "https://cdn.example.com/old.png").
		Return(errors.New("object store unavailable"))

	user, err := svc.UpdateProfilePic(ctx, userID, &usecase.UpdateProfileInput{ProfilePic: "data:image/png;base64,AAAA"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/new.png", user.ProfilePic)
}

func TestUserService_DeleteAccount_RemovesMediaAndRow(t *testing.T) {
	svc, userRepo, _, _, media := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, ProfilePic: "https://cdn.example.com/pic.png"}

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(existing, nil)

	media.EXPECT().
		Remove(ctx, existing.ProfilePic).
		Return(nil)

	userRepo.EXPECT().
		Delete(ctx, userID).
		Return(nil)

	require.NoError(t, svc.DeleteAccount(ctx, userID))
}

func TestUserService_ListContacts(t *testing.T) {
	svc, userRepo, _, _, _ := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	contacts := []*entity.User{
		{ID: uuid.New(), FullName: "Alan"},
		{ID: uuid.New(), FullName: "Grace"},
	}

	userRepo.EXPECT().
		ListOthers(ctx, userID).
		Return(contacts, nil)

	users, err := svc.ListContacts(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, contacts, users)
}
