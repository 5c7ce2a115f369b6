package auditlog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Actions recorded against RSVP records
const (
	ActionRSVPApproved = "RSVP_APPROVED"
	ActionRSVPRevoked  = "RSVP_APPROVAL_REVOKED"
	ActionRSVPDeleted  = "RSVP_DELETED"
	ActionRSVPExported = "RSVP_LIST_EXPORTED"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// AuditLog is one admin action in the audit_logs collection
type AuditLog struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	ActorEmail string                 `bson:"actorEmail" json:"actorEmail"`
	Action     string                 `bson:"action" json:"action"`
	TargetID   string                 `bson:"targetId,omitempty" json:"targetId,omitempty"`
	Details    map[string]interface{} `bson:"details,omitempty" json:"details,omitempty"`
	IPAddress  string                 `bson:"ipAddress" json:"ipAddress"`
	Status     string                 `bson:"status" json:"status"`
	CreatedAt  time.Time              `bson:"createdAt" json:"createdAt"`
}
