package postgres

import (
	"tasker/internal/domain/entity"
	"tasker/internal/infra/persistence/model"

	"github.com/google/uuid"
)

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID.String(),
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	m := &model.UserModel{
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
	if id, err := uuid.Parse(u.ID); err == nil {
		m.ID = id
	}

	return m
}

func toTaskDomain(m *model.TaskModel) *entity.Task {
	return &entity.Task{
		ID:          m.ID.String(),
		OwnerID:     m.UserID.String(),
		Title:       m.Title,
		Description: m.Description,
		Status:      entity.TaskStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
