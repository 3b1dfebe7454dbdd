// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"schoolhub/internal/domain/entity"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/domain/repository"
	"schoolhub/internal/domain/service"
	"schoolhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPassword seeds the hash verified when no account matches, so unknown
// emails cost the same bcrypt work as wrong passwords.
const dummyPassword = "schoolhub-unknown-account"

// authService implements the AuthUsecase interface.
type authService struct {
	principalRepo repository.PrincipalRepository
	teacherRepo   repository.TeacherRepository
	studentRepo   repository.StudentRepository
	hasher        service.CredentialHasher
	tokenService  service.TokenService
	metrics       service.MetricsRecorder
	logger        *slog.Logger

	dummyHash func() (string, error)
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	PrincipalRepo repository.PrincipalRepository
	TeacherRepo   repository.TeacherRepository
	StudentRepo   repository.StudentRepository
	Hasher        service.CredentialHasher
	TokenService  service.TokenService
	Metrics       service.MetricsRecorder
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		principalRepo: params.PrincipalRepo,
		teacherRepo:   params.TeacherRepo,
		studentRepo:   params.StudentRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		metrics:       params.Metrics,
		logger:        params.Logger,
	}
	srv.dummyHash = sync.OnceValues(func() (string, error) {
		return srv.hasher.Hash(context.Background(), dummyPassword)
	})

	return srv
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Login looks up the account of the requested role, verifies the password and
// issues an access token. Unknown email and wrong password are indistinguishable.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	role := entity.RoleOrDefault(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}
	email := entity.NormalizeEmail(input.Email)

	srv.log(ctx).Debug("Starting login", slog.String("role", role.String()), slog.String("email", email))

	account, found, err := srv.lookupAccount(ctx, role, email)
	if err != nil {
		srv.fail(ctx, role, email, err)

		return nil, errors.Wrap(err, "failed to look up account")
	}

	var targetHash string
	if found {
		targetHash = account.PasswordHash
	} else {
		targetHash, err = srv.dummyHash()
		if err != nil {
			srv.fail(ctx, role, email, err)

			return nil, errors.Wrap(err, "failed to prepare dummy hash")
		}
	}

	// Verify outside any transaction, bcrypt is CPU-bound.
	ok, err := srv.hasher.Verify(ctx, input.Password, targetHash)
	if err != nil {
		srv.fail(ctx, role, email, err)

		return nil, errors.Wrap(err, "failed to verify credential")
	}

	if !found || !ok {
		srv.metrics.LoginAttempt(role, service.OutcomeInvalidCredentials)
		srv.log(ctx).Warn("Login failed", slog.String("role", role.String()), slog.String("email", email),
			slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	issued, err := srv.tokenService.Issue(account.Identity)
	if err != nil {
		srv.fail(ctx, role, email, err)

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.metrics.LoginAttempt(role, service.OutcomeSuccess)
	srv.log(ctx).Debug("Logged in", slog.String("role", role.String()), slog.Any("accountID", account.AccountID))

	return &usecase.LoginOutput{
		AccessToken: issued.Token,
		TokenType:   usecase.TokenTypeBearer,
		ExpiresAt:   issued.ExpiresAt,
		Identity:    account.Identity,
	}, nil
}

func (srv *authService) lookupAccount(ctx context.Context, role entity.Role, email string) (*entity.Account, bool, error) {
	switch role {
	case entity.RoleTeacher:
		teacher, found, err := srv.teacherRepo.FindByEmail(ctx, email)
		if err != nil || !found {
			return nil, false, err
		}

		return teacher.Account(), true, nil
	case entity.RoleStudent:
		student, found, err := srv.studentRepo.FindByEmail(ctx, email)
		if err != nil || !found {
			return nil, false, err
		}

		return student.Account(), true, nil
	default:
		principal, found, err := srv.principalRepo.FindByEmail(ctx, email)
		if err != nil || !found {
			return nil, false, err
		}

		return principal.Account(), true, nil
	}
}

func (srv *authService) fail(ctx context.Context, role entity.Role, email string, err error) {
	srv.metrics.LoginAttempt(role, service.OutcomeError)
	srv.log(ctx).Error("Login aborted", slog.String("role", role.String()), slog.String("email", email), slog.Any("error", err))
}
