package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/javier-f-ramos/clasifica2/internal/domain/listing"
	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"
	"github.com/javier-f-ramos/clasifica2/internal/infra"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/clock"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/errs"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/shared"
)

var (
	ErrListingNotFound  = errs.New("listing not found")
	ErrListingNotOwned  = errs.New("listing does not belong to user")
	ErrListingDeleted   = errs.New("listing is deleted")
	ErrUnknownPlan      = errs.New("unknown promotion plan")
	ErrCheckoutFailed   = errs.New("checkout session creation failed")
	ErrPromotionStorage = errs.New("promotion storage failure")

	// errAlreadyProcessed aborts the transaction when the session id is a
	// replay. It never escapes ApplyPurchase.
	errAlreadyProcessed = errs.New("purchase already processed")
)

type PromotionCommands interface {
	// CreateCheckout opens a hosted checkout page for a promotion plan.
	CreateCheckout(ctx context.Context, userID, listingID uuid.UUID, kind promotion.Kind, durationDays int) (*CheckoutSession, error)
	// ApplyPurchase extends the listing's visibility window for a confirmed
	// payment. Safe to call any number of times with the same purchase.
	ApplyPurchase(ctx context.Context, purchase *promotion.Purchase) error
}

type promotionCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway CheckoutGateway
	clock   clock.Clock
}

func NewPromotionCommands(uow shared.UnitOfWork, gateway CheckoutGateway, clk clock.Clock) PromotionCommands {
	return &promotionCommandsImpl{
		uow:     uow,
		gateway: gateway,
		clock:   clk,
	}
}

func (p *promotionCommandsImpl) CreateCheckout(ctx context.Context, userID, listingID uuid.UUID, kind promotion.Kind, durationDays int) (*CheckoutSession, error) {
	plan, err := promotion.FindPlan(kind, durationDays)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownPlan)
	}

	snapshot, err := p.uow.CommandReads().ListingByID(ctx, listingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrListingNotFound)
		}
		return nil, err
	}

	if snapshot.UserID != userID {
		return nil, ErrListingNotOwned
	}
	if snapshot.Status == listing.StatusDeleted.String() {
		return nil, ErrListingDeleted
	}

	session, err := p.gateway.CreateCheckoutSession(ctx, CheckoutRequest{
		ListingID:    listingID,
		UserID:       userID,
		Kind:         plan.Kind,
		DurationDays: plan.Days,
		AmountCents:  plan.AmountCents,
		Label:        plan.Label,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	return session, nil
}

// ApplyPurchase runs the whole ledger entry in one transaction: record the
// payment, lock the listing row, extend its window. The UNIQUE constraint on
// the session id makes the record step the idempotence gate; a replayed
// webhook hits it before touching the listing, and a missing listing rolls
// the payment record back with it.
func (p *promotionCommandsImpl) ApplyPurchase(ctx context.Context, purchase *promotion.Purchase) error {
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.PaymentLog().Insert(ctx, tx.DB(), purchase); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errAlreadyProcessed
			}
			return errs.Mark(err, ErrPromotionStorage)
		}

		snapshot, err := tx.Listings().LockForPromotion(ctx, tx.DB(), purchase.ListingID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrListingNotFound)
			}
			return errs.Mark(err, ErrPromotionStorage)
		}

		current := snapshot.FeaturedUntil
		if purchase.Kind() == promotion.KindPremium {
			current = snapshot.PremiumUntil
		}
		until := promotion.ExtendWindow(p.clock.Now(), current, purchase.DurationDays())

		if err := tx.Listings().UpdatePromotionWindow(ctx, tx.DB(), purchase.ListingID(), purchase.Kind(), until); err != nil {
			return errs.Mark(err, ErrPromotionStorage)
		}

		slog.Info("promotion window extended",
			"listing_id", purchase.ListingID(),
			"promotion_type", purchase.Kind().String(),
			"duration_days", purchase.DurationDays(),
			"until", until)
		return nil
	})
	if err != nil {
		if errors.Is(err, errAlreadyProcessed) {
			slog.Info("duplicate purchase ignored", "checkout_session_id", purchase.SessionID())
			return nil
		}
		return err
	}
	return nil
}
