package user

import (
	"context"
	"errors"
	"fmt"

	"HomeStock-Backend/domain"
	"HomeStock-Backend/entities"
	"HomeStock-Backend/internal/utils"
	"HomeStock-Backend/internal/utils/mailing"
	"HomeStock-Backend/pkg/session"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyHash keeps the bcrypt comparison in the unknown-email branch, so login
// timing does not reveal whether an address is registered.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*entities.Session, error)
	}

	userService struct {
		userRepository UserRepository
		sessionService session.SessionService
	}
)

func NewUserService(userRepository UserRepository, sessionService session.SessionService) UserService {
	return &userService{
		userRepository: userRepository,
		sessionService: sessionService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashed),
		Gender:   req.Gender,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RegisterResponse{}, domain.ErrEmailAlreadyRegistered
		}
		return domain.RegisterResponse{}, err
	}

	if utils.GetConfig("SMTP_HOST") != "" {
		go func() {
			body := fmt.Sprintf(
				"<p>Hi %s,</p><p>Your HomeStock account is ready. <a href=\"%s/login\">Log in</a> to start tracking your household stock.</p>",
				user.FullName, utils.GetConfig("APP_URL"),
			)
			if err := mailing.SendMail(user.Email, "Welcome to HomeStock", body); err != nil {
				log.Errorf("failed to send welcome mail: %v", err)
			}
		}()
	}

	return domain.RegisterResponse{
		ID:       user.ID.String(),
		FullName: user.FullName,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// Login verifies the credentials and mints a session. Unknown email and wrong
// password collapse into the same outcome.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*entities.Session, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.sessionService.Create(ctx, user.ID)
}
