package postgres

import (
	"schoolhub/internal/domain/entity"
	"schoolhub/internal/infra/persistence/model"
)

func toPrincipalDomain(m *model.PrincipalModel) *entity.Principal {
	return &entity.Principal{
		ID: m.ID,
		Profile: entity.Profile{
			FirstName:            m.FirstName,
			LastName:             m.LastName,
			Email:                m.Email,
			IdentificationNumber: m.IdentificationNumber,
			PhoneNumber:          m.PhoneNumber,
		},
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toTeacherDomain(m *model.TeacherModel) *entity.Teacher {
	return &entity.Teacher{
		ID: m.ID,
		Profile: entity.Profile{
			FirstName:            m.FirstName,
			LastName:             m.LastName,
			Email:                m.Email,
			IdentificationNumber: m.IdentificationNumber,
			PhoneNumber:          m.PhoneNumber,
		},
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromTeacherDomain(t *entity.Teacher) *model.TeacherModel {
	return &model.TeacherModel{
		ID:                   t.ID,
		FirstName:            t.FirstName,
		LastName:             t.LastName,
		Email:                t.Email,
		IdentificationNumber: t.IdentificationNumber,
		PhoneNumber:          t.PhoneNumber,
		PasswordHash:         t.PasswordHash,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
}

func toStudentDomain(m *model.StudentModel) *entity.Student {
	return &entity.Student{
		ID: m.ID,
		Profile: entity.Profile{
			FirstName:            m.FirstName,
			LastName:             m.LastName,
			Email:                m.Email,
			IdentificationNumber: m.IdentificationNumber,
			PhoneNumber:          m.PhoneNumber,
		},
		ClassID:      m.ClassID,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromStudentDomain(s *entity.Student) *model.StudentModel {
	return &model.StudentModel{
		ID:                   s.ID,
		FirstName:            s.FirstName,
		LastName:             s.LastName,
		Email:                s.Email,
		IdentificationNumber: s.IdentificationNumber,
		PhoneNumber:          s.PhoneNumber,
		ClassID:              s.ClassID,
		PasswordHash:         s.PasswordHash,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func toClassDomain(m *model.ClassModel) *entity.Class {
	return &entity.Class{
		ID:        m.ID,
		ClassName: m.ClassName,
		TeacherID: m.TeacherID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromClassDomain(c *entity.Class) *model.ClassModel {
	return &model.ClassModel{
		ID:        c.ID,
		ClassName: c.ClassName,
		TeacherID: c.TeacherID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
