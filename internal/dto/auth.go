package dto

import (
	md "github.com/JMURv/hr-auth/internal/models"
	"github.com/google/uuid"
)

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type LoginRequest struct {
	UserID       uuid.UUID `json:"userId"       validate:"required"`
	Role         string    `json:"role"         validate:"required"`
	TokenVersion int64     `json:"tokenVersion"`
}

type SessionListResponse struct {
	Data []*md.Session `json:"data"`
}
