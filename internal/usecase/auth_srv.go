package usecase

import (
	"context"
	"fmt"
	"strings"

	"nightcare/internal/data/repository"
	"nightcare/internal/dto/request"
	"nightcare/internal/dto/response"
	"nightcare/pkg/apperrors"
	"nightcare/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   config,
		log:      log,
	}
}

// Login registers the phone on first use and returns the same user record on
// every later login. The OTP is a demo stub: any value of the configured
// length passes, there is no challenge to verify against.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	req.Phone = strings.TrimSpace(req.Phone)
	req.OTP = strings.TrimSpace(req.OTP)
	phone, otp := req.Phone, req.OTP

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, apperrors.NewValidation("phone and otp required")
	}

	if len(otp) != s.config.OTP.Length {
		s.log.Warn("Login rejected, malformed otp", zap.String("phone", phone))
		return nil, apperrors.NewValidation(
			fmt.Sprintf("invalid otp, must be %d digits", s.config.OTP.Length))
	}

	user, err := s.userRepo.CreateIfAbsent(ctx, phone)
	if err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("phone", phone))
		return nil, apperrors.NewStore("create user", err)
	}

	// A nil user after the upsert means the storage engine lost the row.
	if user == nil {
		s.log.Error("User missing after insert", zap.String("phone", phone))
		return nil, fmt.Errorf("could not create user: %w", apperrors.ErrStoreInvariant)
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("phone", user.Phone))

	return response.LoginToResponse(user), nil
}
