package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/javier-f-ramos/clasifica2/internal/domain/listing"
	"github.com/javier-f-ramos/clasifica2/internal/infra"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/errs"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/shared"
)

var (
	ErrCategoryNotFound = errs.New("category not found")
	ErrInvalidListing   = errs.New("invalid listing")
)

// ListingInput is the validated payload for create and update. Handlers build
// it from request DTOs; value object construction happens here so invalid
// data never reaches the domain.
type ListingInput struct {
	CategoryID  uuid.UUID
	Title       string
	Description string
	PriceCents  *int64
	IsFree      bool
	Province    string
	City        string
	YoutubeURL  *string
}

type ListingCommands interface {
	Create(ctx context.Context, userID uuid.UUID, input ListingInput) (uuid.UUID, error)
	Update(ctx context.Context, userID, listingID uuid.UUID, input ListingInput) error
	ChangeStatus(ctx context.Context, userID, listingID uuid.UUID, status listing.Status) error
	Delete(ctx context.Context, userID, listingID uuid.UUID) error
	AddImage(ctx context.Context, userID, listingID uuid.UUID, storagePath string, sortOrder int32) error
}

type listingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewListingCommands(uow shared.UnitOfWork) ListingCommands {
	return &listingCommandsImpl{uow: uow}
}

func (l *listingCommandsImpl) Create(ctx context.Context, userID uuid.UUID, input ListingInput) (uuid.UUID, error) {
	entity, err := buildListing(userID, input)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidListing)
	}

	if _, err := l.uow.CommandReads().CategoryByID(ctx, input.CategoryID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrCategoryNotFound)
		}
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Listings().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindForeignKeyViolated) {
				return errs.Mark(createErr, ErrCategoryNotFound)
			}
			return createErr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (l *listingCommandsImpl) Update(ctx context.Context, userID, listingID uuid.UUID, input ListingInput) error {
	entity, err := buildListing(userID, input)
	if err != nil {
		return errs.Mark(err, ErrInvalidListing)
	}

	return l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := l.requireOwnership(ctx, tx, userID, listingID); err != nil {
			return err
		}

		rebuilt := listing.ReconstructListing(
			listingID, userID, input.CategoryID,
			entity.Title(), entity.Description(), entity.Price(),
			input.IsFree, entity.Location(), input.YoutubeURL,
			entity.Status(), nil, nil,
			entity.CreatedAt(), entity.UpdatedAt(),
		)
		return tx.Listings().Update(ctx, tx.DB(), rebuilt)
	})
}

func (l *listingCommandsImpl) ChangeStatus(ctx context.Context, userID, listingID uuid.UUID, status listing.Status) error {
	return l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := l.ownedSnapshot(ctx, tx, userID, listingID)
		if err != nil {
			return err
		}
		if snapshot.Status == listing.StatusDeleted.String() {
			return ErrListingDeleted
		}
		return tx.Listings().UpdateStatus(ctx, tx.DB(), listingID, status)
	})
}

func (l *listingCommandsImpl) Delete(ctx context.Context, userID, listingID uuid.UUID) error {
	return l.ChangeStatus(ctx, userID, listingID, listing.StatusDeleted)
}

func (l *listingCommandsImpl) AddImage(ctx context.Context, userID, listingID uuid.UUID, storagePath string, sortOrder int32) error {
	return l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := l.requireOwnership(ctx, tx, userID, listingID); err != nil {
			return err
		}
		return tx.Listings().AddImage(ctx, tx.DB(), listingID, storagePath, sortOrder)
	})
}

func (l *listingCommandsImpl) requireOwnership(ctx context.Context, tx shared.Tx, userID, listingID uuid.UUID) error {
	_, err := l.ownedSnapshot(ctx, tx, userID, listingID)
	return err
}

func (l *listingCommandsImpl) ownedSnapshot(ctx context.Context, tx shared.Tx, userID, listingID uuid.UUID) (*shared.ListingSnapshot, error) {
	snapshot, err := tx.Reads().ListingByID(ctx, listingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrListingNotFound)
		}
		return nil, err
	}
	if snapshot.UserID != userID {
		return nil, ErrListingNotOwned
	}
	return snapshot, nil
}

func buildListing(userID uuid.UUID, input ListingInput) (*listing.Listing, error) {
	title, err := listing.NewTitle(input.Title)
	if err != nil {
		return nil, err
	}
	description, err := listing.NewDescription(input.Description)
	if err != nil {
		return nil, err
	}
	location, err := listing.NewLocation(input.Province, input.City)
	if err != nil {
		return nil, err
	}

	var price *listing.Price
	if input.PriceCents != nil {
		p, priceErr := listing.NewPrice(*input.PriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		price = &p
	}

	return listing.NewListing(userID, input.CategoryID, title, description, price, input.IsFree, location, input.YoutubeURL)
}
