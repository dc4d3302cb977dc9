package impl

import (
	"context"
	"log/slog"

	"whisper/config"
	deliverycontext "whisper/internal/delivery/context"
	"whisper/internal/domain/entity"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/domain/repository"
	"whisper/internal/domain/service"
	"whisper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	media        service.MediaService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Media        service.MediaService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		media:        params.Media,
		logger:       params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and signs the caller in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("failed to hash password during registration", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrPasswordHashFailed)
	}

	user := &entity.User{
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hash,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("registration completed", slog.String("userID", user.ID.String()))

	return &usecase.AuthOutput{User: user, AccessToken: token}, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.AuthOutput{User: user, AccessToken: token}, nil
}

// GetProfile returns the caller's own user record.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfilePic stores the new picture, swaps the stored URL, and removes
// the previous asset. Removal of the old asset is best-effort.
func (srv *userService) UpdateProfilePic(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	url, err := srv.media.Store(ctx, input.ProfilePic, service.MediaKindImage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store profile picture")
	}

	if err := srv.userRepo.UpdateProfilePic(ctx, userID, url); err != nil {
		return nil, errors.Wrap(err, "failed to update profile picture")
	}

	if user.ProfilePic != "" {
		if err := srv.media.Remove(ctx, user.ProfilePic); err != nil {
			srv.log(ctx).Warn("failed to remove previous profile picture",
				slog.String("userID", userID.String()),
				slog.Any("error", err),
			)
		}
	}

	user.ProfilePic = url

	return user, nil
}

// DeleteAccount removes the user's profile media and their user record.
func (srv *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return errors.Wrap(err, "failed to find user")
	}

	if user.ProfilePic != "" {
		if err := srv.media.Remove(ctx, user.ProfilePic); err != nil {
			srv.log(ctx).Warn("failed to remove profile picture during account deletion",
				slog.String("userID", userID.String()),
				slog.Any("error", err),
			)
		}
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("account deleted", slog.String("userID", userID.String()))

	return nil
}

// ListContacts returns every user except the caller, for the sidebar.
func (srv *userService) ListContacts(ctx context.Context, userID uuid.UUID) ([]*entity.User, error) {
	users, err := srv.userRepo.ListOthers(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return users, nil
}
