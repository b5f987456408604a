package impl

import (
	"context"
	"strings"
	"testing"

	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"
	"tasker/internal/infra/auth"
	"tasker/internal/infra/persistence/memory"
	mockRepo "tasker/internal/mocks/repository"
	mockSvc "tasker/internal/mocks/service"
	"tasker/internal/usecase"
	"tasker/internal/validation"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Validator:    validation.New(),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegisterInput() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "secret123",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == input.Name && u.Email == input.Email && u.PasswordHash == "hashed"
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = "user-1" }).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken("user-1").Return("jwt-token", nil)

	out, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, &usecase.AuthOutput{
		UserID: "user-1",
		Name:   "Test User",
		Email:  "test@example.com",
		Token:  "jwt-token",
	}, out)
}

func TestUserService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *usecase.RegisterUserInput)
		wantErr error
	}{
		{
			name:    "missing name",
			mutate:  func(in *usecase.RegisterUserInput) { in.Name = "" },
			wantErr: domainerrors.ErrMissingFields,
		},
		{
			name:    "malformed email",
			mutate:  func(in *usecase.RegisterUserInput) { in.Email = "not-an-email" },
			wantErr: domainerrors.ErrInvalidSignupInput,
		},
		{
			name:    "missing email fails the email format check first",
			mutate:  func(in *usecase.RegisterUserInput) { in.Email = "" },
			wantErr: domainerrors.ErrInvalidSignupInput,
		},
		{
			name:    "short password",
			mutate:  func(in *usecase.RegisterUserInput) { in.Password = "12345" },
			wantErr: domainerrors.ErrInvalidSignupInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			input := validRegisterInput()
			tt.mutate(input)

			_, err := fx.service.Register(context.Background(), input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: "existing"}, nil)

	_, err := fx.service.Register(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_DuplicateEmailRace(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_StoreFailures(t *testing.T) {
	t.Run("lookup fails", func(t *testing.T) {
		fx := createTestUserService(t)
		input := validRegisterInput()
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(nil, errors.New("connection refused"))

		_, err := fx.service.Register(context.Background(), input)
		assert.True(t, errors.Is(err, domainerrors.ErrUserCreationFailed))
	})

	t.Run("hash fails", func(t *testing.T) {
		fx := createTestUserService(t)
		input := validRegisterInput()
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

		_, err := fx.service.Register(context.Background(), input)
		assert.True(t, errors.Is(err, domainerrors.ErrUserCreationFailed))
	})

	t.Run("create fails", func(t *testing.T) {
		fx := createTestUserService(t)
		input := validRegisterInput()
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
		fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("write timeout"))

		_, err := fx.service.Register(context.Background(), input)
		assert.True(t, errors.Is(err, domainerrors.ErrUserCreationFailed))
	})

	t.Run("token fails", func(t *testing.T) {
		fx := createTestUserService(t)
		input := validRegisterInput()
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
		fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).
			Run(func(_ context.Context, u *entity.User) { u.ID = "user-1" }).
			Return(nil)
		fx.tokenService.EXPECT().GenerateToken("user-1").Return("", errors.New("signing failed"))

		_, err := fx.service.Register(context.Background(), input)
		assert.True(t, errors.Is(err, domainerrors.ErrUserCreationFailed))
	})
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: "user-1", Name: "Test User", Email: "test@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateToken("user-1").Return("jwt-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", out.UserID)
	assert.Equal(t, "jwt-token", out.Token)
}

func TestUserService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	wrongPassword := createTestUserService(t)
	wrongPassword.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").
		Return(&entity.User{ID: "user-1", PasswordHash: "hashed"}, nil)
	wrongPassword.hasher.EXPECT().Check("bad-password", "hashed").Return(false)

	_, errWrong := wrongPassword.service.Login(ctx, &usecase.LoginInput{Email: "test@example.com", Password: "bad-password"})

	unknownEmail := createTestUserService(t)
	unknownEmail.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	unknownEmail.hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
	unknownEmail.hasher.EXPECT().Check("bad-password", "dummy-hash").Return(false)

	_, errUnknown := unknownEmail.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "bad-password"})

	require.Error(t, errWrong)
	require.Error(t, errUnknown)
	assert.Equal(t, errWrong, errUnknown)
	assert.True(t, errors.Is(errWrong, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_DummyHashComputedOnce(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound).Twice()
	fx.hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
	fx.hasher.EXPECT().Check("pw", "dummy-hash").Return(false).Twice()

	for range 2 {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "pw"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	}
}

func TestUserService_Login_StoreFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(nil, errors.New("connection reset"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "test@example.com", Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrLoginFailed))
}

func TestUserService_Register_PasswordLongerThanBcryptLimit(t *testing.T) {
	ctx := context.Background()
	tokenService := mockSvc.NewMockTokenService(t)
	tokenService.EXPECT().GenerateToken(mock.Anything).Return("jwt-token", nil)

	service := NewUserService(UserServiceParams{
		UserRepo:     memory.NewUserRepository(memory.NewStore()),
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokenService,
		Validator:    validation.New(),
		Logger:       newDiscardLogger(),
	})

	password := strings.Repeat("a", 73)
	out, err := service.Register(ctx, &usecase.RegisterUserInput{
		Name:     "Long Password",
		Email:    "long@example.com",
		Password: password,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.UserID)

	out, err = service.Login(ctx, &usecase.LoginInput{Email: "long@example.com", Password: password})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", out.Token)
}
