package commands

import (
	"context"
	"log/slog"

	"sport-rental/internal/domain/reservation"
	"sport-rental/internal/infra"
	"sport-rental/internal/pkg/errs"
)

type CreateReservationInput struct {
	Draft          reservation.Draft
	SkipValidation bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (int32, error)
	UpdateReturnDate(ctx context.Context, id int32, returnDate reservation.Date) error
	DeleteReservation(ctx context.Context, id int32) error
}

type reservationCommandsImpl struct {
	reservationRepo ReservationRepository
	equipmentRepo   EquipmentRepository
	validator       *reservation.Validator
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	equipmentRepo EquipmentRepository,
	validator *reservation.Validator,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo: reservationRepo,
		equipmentRepo:   equipmentRepo,
		validator:       validator,
	}
}

// CreateReservation reads the stock on hand, runs the admission rules and inserts.
// The stock read and the insert are separate statements without a lock, so two
// concurrent requests can both pass the stock rule.
func (r *reservationCommandsImpl) CreateReservation(ctx context.Context, in CreateReservationInput) (int32, error) {
	entity, err := r.buildReservation(ctx, in)
	if err != nil {
		return 0, err
	}

	id, err := r.reservationRepo.Create(ctx, entity)
	if err != nil {
		return 0, translateRepoErr(err, errs.ErrReservationNotFound, errs.ErrInvalidReference)
	}
	return id, nil
}

func (r *reservationCommandsImpl) buildReservation(ctx context.Context, in CreateReservationInput) (*reservation.Reservation, error) {
	if in.SkipValidation {
		entity, err := reservation.FromDraft(in.Draft)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		return entity, nil
	}

	stock, err := r.stockOnHand(ctx, in.Draft)
	if err != nil {
		return nil, err
	}

	entity, err := r.validator.Validate(in.Draft, stock)
	if err != nil {
		slog.Info("reservation rejected", "reason", err.Error())
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return entity, nil
}

// stockOnHand is zero while the draft lacks its references; the missing
// reference rule rejects such drafts before stock is considered.
func (r *reservationCommandsImpl) stockOnHand(ctx context.Context, d reservation.Draft) (int32, error) {
	if d.CustomerID == nil || d.EquipmentID == nil || d.ReservationDate == nil || d.ReturnDate == nil {
		return 0, nil
	}

	snapshot, err := r.equipmentRepo.FindByID(ctx, *d.EquipmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.ErrInvalidReference
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snapshot.Quantity, nil
}

// UpdateReturnDate does not re-run the admission rules.
func (r *reservationCommandsImpl) UpdateReturnDate(ctx context.Context, id int32, returnDate reservation.Date) error {
	if err := r.reservationRepo.UpdateReturnDate(ctx, id, returnDate); err != nil {
		return translateRepoErr(err, errs.ErrReservationNotFound, errs.ErrInvalidReference)
	}
	return nil
}

func (r *reservationCommandsImpl) DeleteReservation(ctx context.Context, id int32) error {
	if err := r.reservationRepo.Delete(ctx, id); err != nil {
		return translateRepoErr(err, errs.ErrReservationNotFound, errs.ErrInvalidReference)
	}
	return nil
}
