package usecase

import (
	"fmt"
	"log"
	"strings"

	"github.com/jaevor/go-nanoid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rosemall/flash-order-service/internal/domain"
)

type RegisterInput struct {
	Phone      string
	Code       string
	InviteCode string
	Password   string
}

type UserUsecase interface {
	Register(input *RegisterInput) (*domain.User, error)
	Login(phone, password string) (*domain.User, error)
	GetUserByID(userID string) (*domain.User, error)
	ListUsers() ([]*domain.User, error)
}

type DefaultUserUsecase struct {
	UserRepo     domain.UserRepository
	ReferralRepo domain.ReferralRepository

	newInviteCode func() string
}

func NewDefaultUserUsecase(userRepo domain.UserRepository, referralRepo domain.ReferralRepository) *DefaultUserUsecase {
	inviteCodeGenerator, err := nanoid.CustomASCII("0123456789ABCDEFGHJKLMNPQRSTUVWXYZ", 8)
	if err != nil {
		log.Fatalf("failed to init invite code generator: %v", err)
	}

	return &DefaultUserUsecase{
		UserRepo:      userRepo,
		ReferralRepo:  referralRepo,
		newInviteCode: inviteCodeGenerator,
	}
}

// Register creates the account and attributes it to the referrer named by
// the invite code. SMS code delivery is an external concern; only presence
// is checked here.
func (uc *DefaultUserUsecase) Register(input *RegisterInput) (*domain.User, error) {
	if strings.TrimSpace(input.Phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Code) == "" {
		return nil, fmt.Errorf("%w: verification code is required", domain.ErrValidation)
	}
	if len(input.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}

	referrer, err := uc.UserRepo.GetUserByInviteCode(input.InviteCode)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, fmt.Errorf("%w: unknown invite code", domain.ErrValidation)
		}
		return nil, err
	}

	if _, err := uc.UserRepo.GetUserByPhone(input.Phone); err == nil {
		return nil, fmt.Errorf("%w: phone already registered", domain.ErrValidation)
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Phone:        input.Phone,
		Nickname:     maskPhone(input.Phone),
		PasswordHash: string(hash),
		InviteCode:   uc.newInviteCode(),
	}
	if _, err := uc.UserRepo.CreateUser(user); err != nil {
		return nil, err
	}

	if _, err := uc.ReferralRepo.CreateReferral(&domain.Referral{
		ReferrerID:     referrer.ID,
		ReferredUserID: user.ID,
	}); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *DefaultUserUsecase) Login(phone, password string) (*domain.User, error) {
	user, err := uc.UserRepo.GetUserByPhone(phone)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, fmt.Errorf("%w: wrong phone or password", domain.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: wrong phone or password", domain.ErrUnauthorized)
	}

	return user, nil
}

func (uc *DefaultUserUsecase) GetUserByID(userID string) (*domain.User, error) {
	return uc.UserRepo.GetUserByID(userID)
}

func (uc *DefaultUserUsecase) ListUsers() ([]*domain.User, error) {
	return uc.UserRepo.ListUsers()
}

func maskPhone(phone string) string {
	if len(phone) < 7 {
		return phone
	}
	return phone[:3] + "****" + phone[len(phone)-4:]
}
