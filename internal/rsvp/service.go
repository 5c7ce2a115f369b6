package rsvp

import (
	"context"
	"errors"
	"log"

	"github.com/mwhitfield/wedding-website-backend/config"
	"github.com/mwhitfield/wedding-website-backend/internal/auditlog"
	"github.com/mwhitfield/wedding-website-backend/utils"
)

var (
	// ErrEmptyUpdate signals a PUT with no recognized fields.
	ErrEmptyUpdate = errors.New("no fields to update")
	// ErrInvalidEmailFormat signals a supplied email that fails the shape check.
	ErrInvalidEmailFormat = errors.New("invalid email format")
)

type Service struct {
	repo  Repository
	audit auditlog.Service
	cfg   *config.Config
}

func NewService(repo Repository, auditSvc auditlog.Service, cfg *config.Config) *Service {
	return &Service{repo: repo, audit: auditSvc, cfg: cfg}
}

// ===========================
// 🎯 Submit - the public submission flow
// Validates the raw payload, then normalizes and stores it. Returns the
// accumulated validation messages when the payload is rejected. Duplicate
// emails are not rejected here: the client pre-checks via CheckEmail and uses
// a delete-then-recreate flow to replace an existing RSVP.
func (s *Service) Submit(ctx context.Context, in *SubmissionInput) (*RSVP, []string, error) {
	valid, verrs := Validate(in)
	if !valid {
		return nil, verrs, nil
	}

	rec, err := s.repo.Create(ctx, Normalize(in))
	if err != nil {
		return nil, nil, err
	}

	// Confirmation + admin notification are best-effort; a mail failure never
	// fails the submission.
	go utils.SendRSVPConfirmation(s.cfg, rec.Name, rec.Email, rec.Attending)
	go utils.SendRSVPAdminNotification(s.cfg, rec.Name, rec.Email, rec.Attending)

	return rec, nil, nil
}

// ===========================
// 📄 List - public listing with optional attending filter and limit
func (s *Service) List(ctx context.Context, attending *bool, limit int64) ([]RSVP, error) {
	filter := map[string]interface{}{}
	if attending != nil {
		filter["attending"] = *attending
	}
	return s.repo.List(ctx, filter, ListOptions{Limit: limit})
}

// ===========================
// 📄 ListAdmin - admin listing, optionally filtered by approval state too
func (s *Service) ListAdmin(ctx context.Context, approved, attending *bool, limit int64) ([]RSVP, error) {
	filter := map[string]interface{}{}
	if approved != nil {
		filter["approved"] = *approved
	}
	if attending != nil {
		filter["attending"] = *attending
	}
	return s.repo.List(ctx, filter, ListOptions{Limit: limit})
}

func (s *Service) Get(ctx context.Context, id string) (*RSVP, error) {
	return s.repo.GetByID(ctx, id)
}

// CheckEmail reports whether an RSVP already exists for the address.
func (s *Service) CheckEmail(ctx context.Context, email string) (*RSVP, bool, error) {
	rec, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

// ===========================
// 🛠 Update - merges only the provided fields into the stored record
func (s *Service) Update(ctx context.Context, id string, req *UpdateRequest) (*RSVP, error) {
	fields, err := buildUpdateFields(req)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}

// ===========================
// ✅ SetApproval - admin approve/revoke, audited
func (s *Service) SetApproval(ctx context.Context, id string, approved bool, actorEmail, ip string) (*RSVP, error) {
	rec, err := s.repo.Update(ctx, id, map[string]interface{}{"approved": approved})

	action := auditlog.ActionRSVPApproved
	status := auditlog.StatusSuccess
	if !approved {
		action = auditlog.ActionRSVPRevoked
	}
	if err != nil {
		status = auditlog.StatusFailure
	}
	s.logAudit(ctx, actorEmail, id, action, map[string]interface{}{"approved": approved}, ip, status)

	return rec, err
}

// ===========================
// ❌ AdminDelete - admin-initiated delete, audited
func (s *Service) AdminDelete(ctx context.Context, id string, actorEmail, ip string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)

	status := auditlog.StatusSuccess
	if err != nil || !deleted {
		status = auditlog.StatusFailure
	}
	s.logAudit(ctx, actorEmail, id, auditlog.ActionRSVPDeleted, nil, ip, status)

	return deleted, err
}

func (s *Service) logAudit(ctx context.Context, actorEmail, targetID, action string, details map[string]interface{}, ip, status string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.LogAction(ctx, actorEmail, targetID, action, details, ip, status); err != nil {
		log.Printf("⚠️ Failed to write audit log for %s on %s: %v", action, targetID, err)
	}
}

// buildUpdateFields converts a partial update request into the storage field
// map, validating only what was supplied. An empty result is an error.
func buildUpdateFields(req *UpdateRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if req.Name != nil {
		fields["name"] = trimmed(req.Name)
	}
	if req.Email != nil {
		if !ValidEmail(*req.Email) {
			return nil, ErrInvalidEmailFormat
		}
		fields["email"] = normalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		fields["phone"] = trimmed(req.Phone)
	}
	if req.Attending != nil {
		fields["attending"] = *req.Attending
	}
	if req.Guests != nil {
		fields["guests"] = *req.Guests
	}
	if req.GuestName != nil {
		fields["guestName"] = trimmed(req.GuestName)
	}
	if req.DietaryRestrictions != nil {
		fields["dietaryRestrictions"] = normalizeDietary(req.DietaryRestrictions)
	}
	if req.Accommodations != nil {
		fields["accommodations"] = *req.Accommodations
	}
	if req.AccommodationsText != nil {
		fields["accommodationsText"] = trimmed(req.AccommodationsText)
	}
	if req.Song != nil {
		fields["song"] = trimmed(req.Song)
	}
	if req.Message != nil {
		fields["message"] = trimmed(req.Message)
	}
	if req.Approved != nil {
		fields["approved"] = *req.Approved
	}

	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}
	return fields, nil
}
