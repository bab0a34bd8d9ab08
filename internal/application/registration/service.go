package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/pavankalyan07-python/NextAthlete/internal/domain"
	"github.com/pavankalyan07-python/NextAthlete/internal/pkg/id"
	"github.com/pavankalyan07-python/NextAthlete/internal/pkg/password"
	"github.com/pavankalyan07-python/NextAthlete/internal/pkg/validate"
)

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

type ResendRequest struct {
	ContactMethod string  `json:"contactMethod" validate:"required,oneof=email phone"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
}

type Service interface {
	// SignUp validates the request, persists the record with a hashed
	// password, issues a verification token and dispatches the verification
	// link. Dispatch is best-effort: its failure never unwinds the signup.
	SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.User, error)
	// Verify redeems a verification token and marks the account verified.
	// Redeeming the same token again within its window is a harmless no-op.
	Verify(ctx context.Context, tokenStr string) error
	// Resend re-issues a verification token for an existing unverified
	// account and dispatches a fresh link.
	Resend(ctx context.Context, req ResendRequest) error
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	SetVerified(ctx context.Context, userID string) error
}

type tokenIssuer interface {
	SignVerification(userID string) (string, error)
	VerifyVerification(tokenStr string) (string, error)
}

type mailSender interface {
	SendEmail(to, subject, body string) error
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type service struct {
	repo            userStore
	tokens          tokenIssuer
	mailer          mailSender
	sms             smsSender
	bcryptCost      int
	baseURL         string
	dispatchTimeout time.Duration
}

type ServiceDeps struct {
	UserRepo        userStore
	Tokens          tokenIssuer
	Mailer          mailSender
	SMSSender       smsSender
	BcryptCost      int
	BaseURL         string
	DispatchTimeout time.Duration
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:            deps.UserRepo,
		tokens:          deps.Tokens,
		mailer:          deps.Mailer,
		sms:             deps.SMSSender,
		bcryptCost:      deps.BcryptCost,
		baseURL:         strings.TrimRight(deps.BaseURL, "/"),
		dispatchTimeout: deps.DispatchTimeout,
	}
}

func (s *service) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.User, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	if !req.Consent {
		return nil, fmt.Errorf("consent is required: %w", domain.ErrBadRequest)
	}
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("dateOfBirth must be in YYYY-MM-DD format: %w", domain.ErrBadRequest)
	}

	// Conditional requiredness is a plain branch on contactMethod, evaluated
	// before anything touches the store.
	var email, phone *string
	switch req.ContactMethod {
	case domain.ContactEmail:
		if req.Email == nil {
			return nil, fmt.Errorf("email is required: %w", domain.ErrBadRequest)
		}
		normalized := strings.ToLower(strings.TrimSpace(*req.Email))
		if !emailRe.MatchString(normalized) {
			return nil, fmt.Errorf("invalid email format: %w", domain.ErrBadRequest)
		}
		email = &normalized
	case domain.ContactPhone:
		if req.Phone == nil {
			return nil, fmt.Errorf("phone is required: %w", domain.ErrBadRequest)
		}
		trimmed := strings.TrimSpace(*req.Phone)
		if !phoneRe.MatchString(trimmed) {
			return nil, fmt.Errorf("phone number must be 10 digits: %w", domain.ErrBadRequest)
		}
		phone = &trimmed
	}

	// Fast-path rejection. The store's transactional guard item is what
	// actually closes the race between this check and the insert.
	if email != nil {
		if _, err := s.repo.GetByEmail(ctx, *email); err == nil {
			return nil, &domain.DuplicateContactError{Field: domain.ContactEmail}
		}
	}
	if phone != nil {
		if _, err := s.repo.GetByPhone(ctx, *phone); err == nil {
			return nil, &domain.DuplicateContactError{Field: domain.ContactPhone}
		}
	}

	hash, err := password.Hash(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &domain.User{
		UserID:        id.New(),
		FullName:      strings.TrimSpace(req.FullName),
		DateOfBirth:   dob,
		Gender:        req.Gender,
		ContactMethod: req.ContactMethod,
		Email:         email,
		Phone:         phone,
		PasswordHash:  hash,
		State:         req.State,
		City:          req.City,
		Consent:       req.Consent,
		IsVerified:    false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	tok, err := s.tokens.SignVerification(u.UserID)
	if err != nil {
		return nil, err
	}
	s.dispatchVerification(u, tok)

	return u, nil
}

func (s *service) Verify(ctx context.Context, tokenStr string) error {
	userID, err := s.tokens.VerifyVerification(tokenStr)
	if err != nil {
		return err
	}
	return s.repo.SetVerified(ctx, userID)
}

func (s *service) Resend(ctx context.Context, req ResendRequest) error {
	if err := validate.Struct(&req); err != nil {
		return fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}

	var u *domain.User
	var err error
	switch {
	case req.ContactMethod == domain.ContactEmail && req.Email != nil:
		u, err = s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(*req.Email)))
	case req.ContactMethod == domain.ContactPhone && req.Phone != nil:
		u, err = s.repo.GetByPhone(ctx, strings.TrimSpace(*req.Phone))
	default:
		return fmt.Errorf("contact address is required: %w", domain.ErrBadRequest)
	}
	if err != nil {
		return err
	}
	if u.IsVerified {
		return fmt.Errorf("account already verified: %w", domain.ErrBadRequest)
	}

	tok, err := s.tokens.SignVerification(u.UserID)
	if err != nil {
		return err
	}
	s.dispatchVerification(u, tok)
	return nil
}

// dispatchVerification sends the verification link over the user's contact
// channel. It waits at most dispatchTimeout; a slow or unreachable provider
// cannot stall the caller past that, and failures are logged rather than
// returned because the record is already committed.
func (s *service) dispatchVerification(u *domain.User, tok string) {
	link := fmt.Sprintf("%s/api/auth/verify?token=%s", s.baseURL, url.QueryEscape(tok))

	ctx, cancel := context.WithTimeout(context.Background(), s.dispatchTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		if u.ContactMethod == domain.ContactPhone {
			if s.sms == nil {
				done <- errors.New("sms sender not configured")
				return
			}
			done <- s.sms.SendSMS(ctx, u.Contact(), "Verify your NextAthlete account: "+link)
			return
		}
		body := fmt.Sprintf(`<p>Click <a href="%s">here</a> to verify your account.</p>`, link)
		done <- s.mailer.SendEmail(u.Contact(), "Verify your email", body)
	}()

	select {
	case err := <-done:
		if err != nil {
			slog.Warn("verification dispatch failed", "user_id", u.UserID, "method", u.ContactMethod, "err", err)
		}
	case <-ctx.Done():
		slog.Warn("verification dispatch timed out", "user_id", u.UserID, "method", u.ContactMethod)
	}
}
