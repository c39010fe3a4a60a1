package dto

import (
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
)

type CreateMembershipRequest struct {
	ClientID   uuid.UUID  `json:"client_id" validate:"required"`
	Plan       string     `json:"plan" validate:"required,min=1"`
	PriceCents int64      `json:"price_cents" validate:"gte=0"`
	StartsAt   time.Time  `json:"starts_at" validate:"required"`
	EndsAt     *time.Time `json:"ends_at"`
}

type ChangeMembershipStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE PAUSED CANCELLED"`
}

type MembershipResponse struct {
	ID         string     `json:"id"`
	ClientID   string     `json:"client_id"`
	Plan       string     `json:"plan"`
	PriceCents int64      `json:"price_cents"`
	StartsAt   time.Time  `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func MembershipResponseFromEntity(membership *entity.Membership) MembershipResponse {
	return MembershipResponse{
		ID:         membership.ID.String(),
		ClientID:   membership.ClientID.String(),
		Plan:       membership.Plan,
		PriceCents: membership.PriceCents,
		StartsAt:   membership.StartsAt,
		EndsAt:     membership.EndsAt,
		Status:     string(membership.Status),
		CreatedAt:  membership.CreatedAt,
		UpdatedAt:  membership.UpdatedAt,
	}
}

func MembershipResponsesFromEntities(memberships []entity.Membership) []MembershipResponse {
	responses := make([]MembershipResponse, 0, len(memberships))
	for i := range memberships {
		responses = append(responses, MembershipResponseFromEntity(&memberships[i]))
	}
	return responses
}
