package handler

import (
	"schoolhub/internal/delivery/api/response"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateTeacherRequest is the body of POST /principal/teachers.
type CreateTeacherRequest struct {
	FirstName            string `json:"first_name" validate:"required,max=100"`
	LastName             string `json:"last_name" validate:"required,max=100"`
	Email                string `json:"email" validate:"required,email,max=254"`
	IdentificationNumber string `json:"identification_number" validate:"required,max=32"`
	PhoneNumber          string `json:"phone_number" validate:"required,max=32"`
}

// CreateStudentRequest is the body of POST /principal/students.
type CreateStudentRequest struct {
	CreateTeacherRequest
	ClassID string `json:"class_id" validate:"required,uuid"`
}

// CreateClassRequest is the body of POST /principal/classes.
type CreateClassRequest struct {
	ClassName string `json:"class_name" validate:"required,max=100"`
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
}

// ProvisioningHandler serves the principal's creation endpoints.
type ProvisioningHandler struct {
	uc usecase.ProvisioningUsecase
}

func NewProvisioningHandler(uc usecase.ProvisioningUsecase) *ProvisioningHandler {
	return &ProvisioningHandler{uc: uc}
}

// CreateTeacher creates a teacher and mails the generated password.
func (h *ProvisioningHandler) CreateTeacher(c echo.Context) error {
	var req CreateTeacherRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid teacher input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	teacher, err := h.uc.CreateTeacher(c.Request().Context(), &usecase.CreateTeacherInput{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		IdentificationNumber: req.IdentificationNumber,
		PhoneNumber:          req.PhoneNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, teacher)
}

// CreateStudent creates a student in an existing class and mails the generated password.
func (h *ProvisioningHandler) CreateStudent(c echo.Context) error {
	var req CreateStudentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid student input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	classID, err := parseID("class_id", req.ClassID)
	if err != nil {
		return err
	}

	student, err := h.uc.CreateStudent(c.Request().Context(), &usecase.CreateStudentInput{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		IdentificationNumber: req.IdentificationNumber,
		PhoneNumber:          req.PhoneNumber,
		ClassID:              classID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, student)
}

// CreateClass assigns a new class to a teacher without one.
func (h *ProvisioningHandler) CreateClass(c echo.Context) error {
	var req CreateClassRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid class input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	teacherID, err := parseID("teacher_id", req.TeacherID)
	if err != nil {
		return err
	}

	class, err := h.uc.CreateClass(c.Request().Context(), &usecase.CreateClassInput{
		ClassName: req.ClassName,
		TeacherID: teacherID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, class)
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be a UUID")
	}

	return id, nil
}
