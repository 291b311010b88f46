package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/go-playground/validator/v10"
	"github.com/maxaizer/job-platform/internal/auth"
	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/internal/events"
	"github.com/maxaizer/job-platform/internal/logger"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type userRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id int) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Get(ctx context.Context, limit int, offset int) ([]entities.User, error)
}

type UserService struct {
	users      userRepository
	tokens     *auth.TokenService
	bus        EventBus.Bus
	bcryptCost int
	validate   *validator.Validate
}

func NewUserService(users userRepository, tokens *auth.TokenService, bus EventBus.Bus, bcryptCost int) (*UserService, error) {
	if users == nil {
		return nil, errors.New("users repository is nil")
	}
	if tokens == nil {
		return nil, errors.New("token service is nil")
	}
	if bus == nil {
		return nil, errors.New("bus is nil")
	}
	return &UserService{
		users:      users,
		tokens:     tokens,
		bus:        bus,
		bcryptCost: bcryptCost,
		validate:   validator.New(),
	}, nil
}

type RegisterInput struct {
	Email    string `validate:"required,email"`
	Name     string `validate:"required,max=50"`
	Surname  string `validate:"required,max=50"`
	Age      int    `validate:"gte=14,lte=100"`
	Role     string `validate:"required"`
	Password string `validate:"required,min=6"`
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {

	if err := s.validate.Struct(input); err != nil {
		return nil, registerValidationError(err)
	}

	role, err := entities.ToRole(input.Role)
	if err != nil {
		return nil, apperrors.Validation("%v", err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := &entities.User{
		Email:        input.Email,
		Name:         input.Name,
		Surname:      input.Surname,
		Age:          input.Age,
		Role:         role,
		PasswordHash: hash,
	}

	if err = s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Infof("user %v registered with ID %v", user.Email, user.ID)
	s.bus.Publish(events.UserRegisteredTopic, events.UserRegistered{UserID: user.ID, Role: user.Role})

	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *entities.User, error) {

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to get user by email: %v", err)
		return "", nil, apperrors.Internal(err)
	}
	if user == nil || !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, apperrors.Unauthenticated("invalid credentials")
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return "", nil, apperrors.Internal(err)
	}

	log.Infof("user %v logged in", user.Email)
	return token, user, nil
}

func (s *UserService) Get(ctx context.Context, limit, offset int) ([]entities.User, error) {
	if err := validatePagination(limit, offset); err != nil {
		return nil, err
	}
	return s.users.Get(ctx, limit, offset)
}

func (s *UserService) GetByID(ctx context.Context, id int) (*entities.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user")
	}
	return user, nil
}

func registerValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Validation("invalid input")
	}

	switch validationErrors[0].Field() {
	case "Email":
		return apperrors.Validation("invalid email format")
	case "Age":
		return apperrors.Validation("age must be between 14 and 100")
	case "Password":
		return apperrors.Validation("password must be at least 6 characters long")
	case "Name", "Surname":
		return apperrors.Validation("name and surname are required and must be less than 50 characters")
	default:
		return apperrors.Validation("invalid input")
	}
}
