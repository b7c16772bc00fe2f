package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/spacia-app/property-backend/internal/properties/domain"
	"github.com/spacia-app/property-backend/internal/users"
)

const (
	msgOperationOK    = "Operation Successful"
	msgNotAuthorized  = "Not Authorized To Update This Property"
	msgStorageFailure = "Exception Occurred"
)

// Store is the durable keyed storage of listings.
type Store interface {
	FindByStatus(ctx context.Context, status string) ([]domain.Property, error)
	FindByStatusAndOwner(ctx context.Context, status, owner string) ([]domain.Property, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	Save(ctx context.Context, p *domain.Property) error
	AppendImage(ctx context.Context, id, url string) error
}

// UserDirectory resolves registered users; it is never written here.
type UserDirectory interface {
	FindByUsername(ctx context.Context, username string) (*users.User, error)
}

// Gateway hands a structured inquiry payload to the asynchronous email
// sender. Delivery is at-most-once best-effort and never acknowledged.
type Gateway interface {
	Send(ctx context.Context, payload []byte) error
}

// Cache holds the active-listing slice between reads.
type Cache interface {
	GetActive(ctx context.Context) ([]domain.Property, bool)
	SetActive(ctx context.Context, items []domain.Property)
	Invalidate(ctx context.Context)
}

// Service owns the listing lifecycle: creation, owner-gated partial
// update and deactivation, and inquiry notification.
type Service struct {
	store        Store
	users        UserDirectory
	gateway      Gateway // nil when notifications are not configured
	cache        Cache   // nil when redis is not configured
	imageBaseURL string
}

func New(store Store, users UserDirectory, gateway Gateway, cache Cache, imageBaseURL string) *Service {
	return &Service{
		store:        store,
		users:        users,
		gateway:      gateway,
		cache:        cache,
		imageBaseURL: imageBaseURL,
	}
}

// ListActive returns every listing still marked active.
func (s *Service) ListActive(ctx context.Context) ([]domain.Property, error) {
	if s.cache != nil {
		if items, ok := s.cache.GetActive(ctx); ok {
			return items, nil
		}
	}

	items, err := s.store.FindByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetActive(ctx, items)
	}
	return items, nil
}

// ListMine returns the owner's active listings.
func (s *Service) ListMine(ctx context.Context, owner string) ([]domain.Property, error) {
	return s.store.FindByStatusAndOwner(ctx, domain.StatusActive, owner)
}

// Create persists a new listing. Client-supplied id, owner, status and
// timestamps on the draft are ignored.
func (s *Service) Create(ctx context.Context, draft domain.Property, owner string) domain.Result {
	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.Status = domain.StatusActive
	draft.PostedBy = owner
	draft.PostedOn = now
	draft.ModifiedOn = now

	if err := s.store.Save(ctx, &draft); err != nil {
		return domain.Failure(msgStorageFailure, err)
	}

	s.invalidate(ctx)
	return domain.Created(msgOperationOK, draft.ID)
}

// Update applies a partial update to the owner's listing. An unknown id
// is a silent no-op that still reports success; that found-or-ignore
// behavior is load-bearing for callers and covered by a regression test.
func (s *Service) Update(ctx context.Context, id string, patch domain.Patch, actingUser string) domain.Result {
	saved, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.Failure(msgStorageFailure, err)
	}
	if saved == nil {
		log.Printf("[properties] update: listing %s not found, skipping", id)
		return domain.Success(msgOperationOK)
	}
	if !saved.OwnedBy(actingUser) {
		return domain.Unauthorized(msgNotAuthorized)
	}

	saved.Apply(patch)
	if err := s.store.Save(ctx, saved); err != nil {
		return domain.Failure(msgStorageFailure, err)
	}

	s.invalidate(ctx)
	return domain.Success(msgOperationOK)
}

// Deactivate retires the owner's listing. Same ownership gate and
// silent no-op policy as Update; the transition is one-way.
func (s *Service) Deactivate(ctx context.Context, id, actingUser string) domain.Result {
	saved, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.Failure(msgStorageFailure, err)
	}
	if saved == nil {
		log.Printf("[properties] deactivate: listing %s not found, skipping", id)
		return domain.Success(msgOperationOK)
	}
	if !saved.OwnedBy(actingUser) {
		return domain.Unauthorized(msgNotAuthorized)
	}

	saved.Status = domain.StatusInactive
	saved.ModifiedOn = time.Now().UTC()
	if err := s.store.Save(ctx, saved); err != nil {
		return domain.Failure(msgStorageFailure, err)
	}

	s.invalidate(ctx)
	return domain.Success(msgOperationOK)
}

// NotifyOwnerOfInterest emails the listing's owner about an inquiry.
// If the listing or either user fails to resolve, the notification is
// skipped without signaling the caller; no partial email is ever sent.
func (s *Service) NotifyOwnerOfInterest(ctx context.Context, listingID, inquirer string) domain.Result {
	listing, err := s.store.FindByID(ctx, listingID)
	if err != nil || listing == nil {
		log.Printf("[properties] inquiry for %s: listing unresolved, notification skipped", listingID)
		return domain.Success(msgOperationOK)
	}

	owner, err := s.users.FindByUsername(ctx, listing.PostedBy)
	if err != nil || owner == nil {
		log.Printf("[properties] inquiry for %s: owner %s unresolved, notification skipped", listingID, listing.PostedBy)
		return domain.Success(msgOperationOK)
	}

	inqUser, err := s.users.FindByUsername(ctx, inquirer)
	if err != nil || inqUser == nil {
		log.Printf("[properties] inquiry for %s: inquirer %s unresolved, notification skipped", listingID, inquirer)
		return domain.Success(msgOperationOK)
	}

	payload, err := composeInquiry(owner, inqUser, listing)
	if err == nil && s.gateway != nil {
		// Fire and forget: the sender is asynchronous and transport
		// errors are not surfaced to the inquirer.
		if err := s.gateway.Send(ctx, payload); err != nil {
			log.Printf("[properties] inquiry for %s: enqueue failed: %v", listingID, err)
		}
	}

	return domain.Success(msgOperationOK)
}

// AttachImage records a completed upload by appending the composed
// public URL to the listing's image list.
func (s *Service) AttachImage(ctx context.Context, listingID, fileKey string) error {
	if err := s.store.AppendImage(ctx, listingID, s.imageBaseURL+fileKey); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// WarmActive drops and repopulates the active-listing cache. Used by the
// nightly job; harmless without a cache.
func (s *Service) WarmActive(ctx context.Context) (int, error) {
	s.invalidate(ctx)
	items, err := s.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
