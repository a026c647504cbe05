package dto

import "github.com/troopay/troopay-backend/internal/models"

type UpdateMembersRequest struct {
	Members []string `json:"members"`
}

type MembersResponse struct {
	Members []models.User `json:"members"`
}
