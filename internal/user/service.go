package user

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/maheenur13/laundry-lab-frontend/internal/auth"
	"github.com/maheenur13/laundry-lab-frontend/internal/logger"
	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

// OTPStore is the slice of the otp package the user service needs.
type OTPStore interface {
	Issue(ctx context.Context, phone string) (string, error)
	Verify(ctx context.Context, phone, code string) error
}

// VerifyResult is the outcome of a successful OTP verification. IsNewUser
// marks accounts that still have to complete their profile.
type VerifyResult struct {
	AccessToken string
	User        *User
	IsNewUser   bool
}

type Service interface {
	RequestOTP(ctx context.Context, phone string) (string, error)
	VerifyOTP(ctx context.Context, phone, code string) (*VerifyResult, error)
	CompleteSignup(ctx context.Context, phone, fullName, address string) (*VerifyResult, error)
	GetProfile(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*User, error)
	ListDeliveryPersonnel(ctx context.Context) ([]*User, error)
}

type service struct {
	repo Repository
	otps OTPStore
}

func NewService(repo Repository, otps OTPStore) Service {
	return &service{repo: repo, otps: otps}
}

var (
	digitsOnly = regexp.MustCompile(`\D`)
	localPhone = regexp.MustCompile(`^01[3-9]\d{8}$`)
	otpShape   = regexp.MustCompile(`^\d{6}$`)
)

// normalizePhone reduces a Bangladeshi phone number to its local 11-digit
// form. Accepted inputs: 01XXXXXXXXX or (+)8801XXXXXXXXX.
func normalizePhone(raw string) (string, error) {
	cleaned := digitsOnly.ReplaceAllString(raw, "")

	if strings.HasPrefix(cleaned, "880") && len(cleaned) == 13 {
		cleaned = "0" + cleaned[3:]
	}

	if !localPhone.MatchString(cleaned) {
		return "", ErrInvalidPhone
	}
	return cleaned, nil
}

// RequestOTP validates the phone locally and issues a code. Validation
// failures never reach the OTP store.
func (s *service) RequestOTP(ctx context.Context, phone string) (string, error) {
	log := logger.FromCtx(ctx)

	normalized, err := normalizePhone(phone)
	if err != nil {
		return "", err
	}

	code, err := s.otps.Issue(ctx, normalized)
	if err != nil {
		log.Error("failed to issue otp", zap.String("phone", normalized), zap.Error(err))
		return "", err
	}

	log.Info("otp issued", zap.String("phone", normalized))
	return code, nil
}

// VerifyOTP checks the code and logs the user in. A first-time phone number
// gets an unverified customer stub and IsNewUser set; the profile-completion
// step upgrades it.
func (s *service) VerifyOTP(ctx context.Context, phone, code string) (*VerifyResult, error) {
	log := logger.FromCtx(ctx)

	normalized, err := normalizePhone(phone)
	if err != nil {
		return nil, err
	}
	if !otpShape.MatchString(code) {
		return nil, ErrInvalidOTP
	}

	if err := s.otps.Verify(ctx, normalized, code); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByPhone(ctx, normalized)
	if err != nil {
		log.Error("failed to look up user", zap.String("phone", normalized), zap.Error(err))
		return nil, err
	}

	isNew := false
	if u == nil {
		u, err = s.repo.Create(ctx, normalized, laundry.RoleCustomer)
		if err != nil {
			log.Error("failed to create user stub", zap.String("phone", normalized), zap.Error(err))
			return nil, err
		}
		isNew = true
	} else if !u.IsVerified {
		// Requested an OTP before but never finished signup.
		isNew = true
	}

	token, err := auth.GenerateJWT(u.ID, u.PhoneNumber, u.Role)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", u.ID), zap.Error(err))
		return nil, err
	}

	log.Info("otp verified",
		zap.String("user_id", u.ID),
		zap.Bool("is_new_user", isNew),
	)

	return &VerifyResult{AccessToken: token, User: u, IsNewUser: isNew}, nil
}

// CompleteSignup fills in the profile of a freshly created account and
// issues a new token.
func (s *service) CompleteSignup(ctx context.Context, phone, fullName, address string) (*VerifyResult, error) {
	log := logger.FromCtx(ctx)

	normalized, err := normalizePhone(phone)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(address) == "" {
		return nil, ErrMissingFields
	}

	u, err := s.repo.CompleteSignup(ctx, normalized, strings.TrimSpace(fullName), strings.TrimSpace(address))
	if err != nil {
		log.Error("failed to complete signup", zap.String("phone", normalized), zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	token, err := auth.GenerateJWT(u.ID, u.PhoneNumber, u.Role)
	if err != nil {
		return nil, err
	}

	log.Info("signup completed", zap.String("user_id", u.ID))

	return &VerifyResult{AccessToken: token, User: u}, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (*User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*User, error) {
	u, err := s.repo.UpdateProfile(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *service) ListDeliveryPersonnel(ctx context.Context) ([]*User, error) {
	return s.repo.ListByRole(ctx, laundry.RoleDelivery)
}
