package service

import (
	"context"
	"errors"

	"planora/internal/apperr"
	"planora/internal/model"
	"planora/internal/repository"
	"planora/pkg/generic"
	"planora/pkg/util"
)

// IntakeService handles membership and contact form submissions, and answers
// the membership gate's question.
type IntakeService struct {
	memberships repository.IMembershipRepository
	contacts    repository.IContactRepository
	users       repository.IUserRepository
}

func NewIntakeService(memberships repository.IMembershipRepository, contacts repository.IContactRepository, users repository.IUserRepository) *IntakeService {
	return &IntakeService{memberships: memberships, contacts: contacts, users: users}
}

// SubmitMembership records a member signup. When the submitter is logged in
// (userID non-empty) the record is keyed to that account and the account is
// flagged as a member; anonymous submissions are stored without a user link
// and grant nothing.
func (s *IntakeService) SubmitMembership(ctx context.Context, userID string, req model.MembershipRequest) (*model.Membership, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return nil, apperr.Validation("Name, email, and phone are required.")
	}

	membership := &model.Membership{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Interests: req.Interests,
		Feedback:  req.Feedback,
	}
	if userID != "" {
		uid, err := util.ParseObjectID(userID)
		if err != nil {
			return nil, apperr.Validation("Invalid user ID")
		}
		membership.UserID = uid
	}

	created, err := s.memberships.Create(ctx, membership)
	if err != nil {
		return nil, apperr.Dependency("Error submitting membership information", err)
	}

	if !membership.UserID.IsZero() {
		if err := s.users.SetMember(ctx, membership.UserID, true); err != nil && !errors.Is(err, generic.ErrNotFound) {
			return nil, apperr.Dependency("Error submitting membership information", err)
		}
	}
	return created, nil
}

// SubmitContact records a contact-form entry. Write-only, no lifecycle.
func (s *IntakeService) SubmitContact(ctx context.Context, req model.ContactRequest) (*model.Contact, error) {
	if req.Name == "" || req.Email == "" || req.Query == "" {
		return nil, apperr.Validation("Name, email, and query are required.")
	}

	contact := &model.Contact{Name: req.Name, Email: req.Email, Query: req.Query}
	created, err := s.contacts.Create(ctx, contact)
	if err != nil {
		return nil, apperr.Dependency("Error submitting contact information", err)
	}
	return created, nil
}

// HasMembership reports whether the user owns a membership record. A store
// failure is distinct from "no": callers must be able to tell "not allowed"
// from "could not check".
func (s *IntakeService) HasMembership(ctx context.Context, userID string) (bool, error) {
	uid, err := util.ParseObjectID(userID)
	if err != nil {
		return false, nil
	}

	_, err = s.memberships.FindByUserID(ctx, uid)
	if errors.Is(err, generic.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Dependency("Server error, could not verify membership.", err)
	}
	return true, nil
}
