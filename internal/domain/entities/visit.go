package entities

import (
	"time"

	"github.com/google/uuid"
)

// VisitStatus represents the state of a scheduled shelter visit
type VisitStatus string

const (
	VisitStatusPending   VisitStatus = "pending"
	VisitStatusApproved  VisitStatus = "approved"
	VisitStatusRejected  VisitStatus = "rejected"
	VisitStatusCancelled VisitStatus = "cancelled"
	VisitStatusCompleted VisitStatus = "completed"
)

// Visit represents a scheduled shelter visit
type Visit struct {
	ID               uuid.UUID   `json:"id"`
	UserID           uuid.UUID   `json:"userId"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	VisitDateAndTime string      `json:"visitDateAndTime"`
	Notes            string      `json:"notes"`
	Status           VisitStatus `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// ScheduleVisitInput represents a visit booking request.
type ScheduleVisitInput struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	VisitDateAndTime string `json:"visitDateAndTime" binding:"required"`
	Notes            string `json:"notes"`
}

// UpdateVisitStatusInput represents a staff status transition.
type UpdateVisitStatusInput struct {
	VisitID string      `json:"visitId" binding:"required"`
	Status  VisitStatus `json:"status" binding:"required"`
}
