package commands

import (
	"context"

	"rental-booking/internal/domain/property"
	"rental-booking/internal/infra"
	"rental-booking/internal/usecase/queries"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=property.go -destination=../../../tests/mock/commands/mock_property.go -package=commandsmock

type PropertyCommands interface {
	Create(ctx context.Context, params property.Params) (*queries.PropertyView, error)
	Update(ctx context.Context, id uuid.UUID, patch property.Patch) (*queries.PropertyView, error)
	// Delete refuses while PENDING or CONFIRMED reservations still reference the property,
	// and while single-property mode points the site at it.
	Delete(ctx context.Context, id uuid.UUID) error
}

type propertyCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPropertyCommands(uow shared.UnitOfWork) PropertyCommands {
	return &propertyCommandsImpl{uow: uow}
}

func (c *propertyCommandsImpl) Create(ctx context.Context, params property.Params) (*queries.PropertyView, error) {
	prop, err := property.NewProperty(params)
	if err != nil {
		return nil, err
	}

	var saved *property.Property
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		saved, err = tx.Properties().Create(ctx, tx.DB(), prop)
		return err
	})
	if err != nil {
		return nil, err
	}

	return propertyToView(saved), nil
}

func (c *propertyCommandsImpl) Update(ctx context.Context, id uuid.UUID, patch property.Patch) (*queries.PropertyView, error) {
	var saved *property.Property
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		prop, err := tx.Reads().PropertyByID(ctx, id)
		if err != nil {
			return mapPropertyNotFound(err)
		}
		if err := prop.Apply(patch); err != nil {
			return err
		}
		saved, err = tx.Properties().Update(ctx, tx.DB(), prop)
		return mapPropertyNotFound(err)
	})
	if err != nil {
		return nil, err
	}

	return propertyToView(saved), nil
}

func (c *propertyCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().PropertyByID(ctx, id); err != nil {
			return mapPropertyNotFound(err)
		}

		site, err := tx.Reads().SiteConfig(ctx)
		if err != nil {
			return err
		}
		if site.Pins(id) {
			return property.ErrIsMainProperty
		}

		active, err := tx.Properties().CountActiveReservations(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if active > 0 {
			return property.ErrHasActiveBookings
		}

		return mapPropertyNotFound(tx.Properties().Delete(ctx, tx.DB(), id))
	})
}

func mapPropertyNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return property.ErrNotFound
	}
	return err
}
