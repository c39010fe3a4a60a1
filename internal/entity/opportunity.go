package entity

import (
	"time"

	"github.com/google/uuid"
)

type OpportunityStage string

const (
	OpportunityStageProspecting OpportunityStage = "PROSPECTING"
	OpportunityStageProposal    OpportunityStage = "PROPOSAL"
	OpportunityStageNegotiation OpportunityStage = "NEGOTIATION"
	OpportunityStageWon         OpportunityStage = "WON"
	OpportunityStageLost        OpportunityStage = "LOST"
)

type Opportunity struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`

	LeadID   *uuid.UUID `gorm:"type:uuid;index"`
	ClientID *uuid.UUID `gorm:"type:uuid;index"`

	Title      string           `gorm:"type:varchar(255);not null"`
	Stage      OpportunityStage `gorm:"type:varchar(20);default:'PROSPECTING';not null"`
	ValueCents int64            `gorm:"not null"`

	ExpectedCloseAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
