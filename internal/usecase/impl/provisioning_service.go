package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"schoolhub/internal/domain/entity"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/domain/repository"
	"schoolhub/internal/domain/service"
	"schoolhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// provisioningService implements the ProvisioningUsecase interface.
//
// Every entry point runs all of its checks before generating a password or
// writing anything, and persists with a single insert. The database constraints
// remain the authoritative guard against concurrent duplicates.
type provisioningService struct {
	teacherRepo repository.TeacherRepository
	studentRepo repository.StudentRepository
	classRepo   repository.ClassRepository
	generator   service.PasswordGenerator
	hasher      service.CredentialHasher
	notifier    service.Notifier
	metrics     service.MetricsRecorder
	logger      *slog.Logger
	now         func() time.Time
}

// ProvisioningServiceParams holds dependencies for ProvisioningService, injected by Fx.
type ProvisioningServiceParams struct {
	fx.In

	TeacherRepo repository.TeacherRepository
	StudentRepo repository.StudentRepository
	ClassRepo   repository.ClassRepository
	Generator   service.PasswordGenerator
	Hasher      service.CredentialHasher
	Notifier    service.Notifier
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewProvisioningService is the constructor for provisioningService.
func NewProvisioningService(params ProvisioningServiceParams) usecase.ProvisioningUsecase {
	return &provisioningService{
		teacherRepo: params.TeacherRepo,
		studentRepo: params.StudentRepo,
		classRepo:   params.ClassRepo,
		generator:   params.Generator,
		hasher:      params.Hasher,
		notifier:    params.Notifier,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *provisioningService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// CreateTeacher creates a teacher account with a generated password and sends
// the password to the teacher by email.
func (srv *provisioningService) CreateTeacher(ctx context.Context, input *usecase.CreateTeacherInput) (*entity.PublicTeacher, error) {
	profile := buildProfile(input.FirstName, input.LastName, input.Email, input.IdentificationNumber, input.PhoneNumber)
	srv.log(ctx).Info("Creating teacher", slog.String("email", profile.Email))

	// Fast path only; teachers.email uniqueness is enforced on insert.
	if _, found, err := srv.teacherRepo.FindByEmail(ctx, profile.Email); err != nil {
		return nil, errors.Wrap(err, "failed to check teacher email")
	} else if found {
		return nil, errors.Wrap(domainerrors.ErrDuplicateAccount, "teacher email already registered")
	}

	password, hash, err := srv.issueCredential(ctx)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	teacher := &entity.Teacher{
		ID:           uuid.New(),
		Profile:      profile,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.teacherRepo.Create(ctx, teacher); err != nil {
		srv.log(ctx).Warn("Failed to create teacher", slog.String("email", profile.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create teacher")
	}

	srv.metrics.AccountProvisioned(entity.RoleTeacher)
	srv.notifier.Emit(ctx, credentialEvent(profile, password, entity.TeacherPasswordSubject, entity.TeacherPasswordTemplate))
	srv.log(ctx).Info("Teacher created", slog.Any("teacherID", teacher.ID))

	return teacher.Public(), nil
}

// CreateStudent creates a student in an existing class. The duplicate email and
// unknown class checks both run before a password is generated.
func (srv *provisioningService) CreateStudent(ctx context.Context, input *usecase.CreateStudentInput) (*entity.PublicStudent, error) {
	profile := buildProfile(input.FirstName, input.LastName, input.Email, input.IdentificationNumber, input.PhoneNumber)
	srv.log(ctx).Info("Creating student", slog.String("email", profile.Email), slog.Any("classID", input.ClassID))

	_, found, err := srv.studentRepo.FindByEmail(ctx, profile.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check student email")
	}
	if found {
		return nil, errors.Wrap(domainerrors.ErrDuplicateAccount, "student email already registered")
	}

	_, found, err = srv.classRepo.FindByID(ctx, input.ClassID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find class")
	}
	if !found {
		return nil, errors.Wrap(domainerrors.ErrClassNotFound, "student class does not exist")
	}

	password, hash, err := srv.issueCredential(ctx)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	student := &entity.Student{
		ID:           uuid.New(),
		Profile:      profile,
		ClassID:      input.ClassID,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.studentRepo.Create(ctx, student); err != nil {
		srv.log(ctx).Warn("Failed to create student", slog.String("email", profile.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create student")
	}

	srv.metrics.AccountProvisioned(entity.RoleStudent)
	srv.notifier.Emit(ctx, credentialEvent(profile, password, entity.StudentPasswordSubject, entity.StudentPasswordTemplate))
	srv.log(ctx).Info("Student created", slog.Any("studentID", student.ID))

	return student.Public(), nil
}

// CreateClass assigns a new uniquely named class to a teacher that has none.
func (srv *provisioningService) CreateClass(ctx context.Context, input *usecase.CreateClassInput) (*entity.Class, error) {
	className := strings.TrimSpace(input.ClassName)
	srv.log(ctx).Info("Creating class", slog.String("className", className), slog.Any("teacherID", input.TeacherID))

	_, found, err := srv.teacherRepo.FindByID(ctx, input.TeacherID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find teacher")
	}
	if !found {
		return nil, errors.Wrap(domainerrors.ErrTeacherNotFound, "class teacher does not exist")
	}

	_, found, err = srv.classRepo.FindByTeacherID(ctx, input.TeacherID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find class by teacher")
	}
	if found {
		return nil, errors.Wrap(domainerrors.ErrTeacherAlreadyHasClass, "teacher already owns a class")
	}

	_, found, err = srv.classRepo.FindByName(ctx, className)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find class by name")
	}
	if found {
		return nil, errors.Wrap(domainerrors.ErrClassNameTaken, "class name already used")
	}

	now := srv.now()
	class := &entity.Class{
		ID:        uuid.New(),
		ClassName: className,
		TeacherID: input.TeacherID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.classRepo.Create(ctx, class); err != nil {
		srv.log(ctx).Warn("Failed to create class", slog.String("className", className), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create class")
	}

	srv.metrics.ClassCreated()
	srv.log(ctx).Info("Class created", slog.Any("classID", class.ID))

	return class, nil
}

// issueCredential generates a password and its hash. The plaintext only ever
// leaves through the notification.
func (srv *provisioningService) issueCredential(ctx context.Context) (password, hash string, err error) {
	password, err = srv.generator.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate password", slog.Any("error", err))

		return "", "", errors.Wrap(err, "failed to generate password")
	}

	hash, err = srv.hasher.Hash(ctx, password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return "", "", errors.Wrap(err, "failed to hash password")
	}

	return password, hash, nil
}

func buildProfile(firstName, lastName, email, identificationNumber, phoneNumber string) entity.Profile {
	return entity.Profile{
		FirstName:            strings.TrimSpace(firstName),
		LastName:             strings.TrimSpace(lastName),
		Email:                entity.NormalizeEmail(email),
		IdentificationNumber: strings.TrimSpace(identificationNumber),
		PhoneNumber:          strings.TrimSpace(phoneNumber),
	}
}

func credentialEvent(profile entity.Profile, password, subject, template string) *entity.CredentialEvent {
	return &entity.CredentialEvent{
		Event:    entity.EventSendEmail,
		To:       profile.Email,
		Subject:  subject,
		Template: template,
		Context: entity.CredentialContext{
			FullName: profile.FullName(),
			Password: password,
		},
	}
}
