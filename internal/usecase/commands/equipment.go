package commands

import (
	"context"

	"sport-rental/internal/domain/equipment"
	"sport-rental/internal/pkg/errs"
)

type CreateEquipmentInput struct {
	Attributes     equipment.Attributes
	SkipValidation bool
}

type EquipmentCommands interface {
	CreateEquipment(ctx context.Context, in CreateEquipmentInput) (int32, error)
	UpdatePriceQuantity(ctx context.Context, id int32, price float64, quantity int32) error
	DeleteEquipment(ctx context.Context, id int32) error
}

type equipmentCommandsImpl struct {
	equipmentRepo EquipmentRepository
}

func NewEquipmentCommands(equipmentRepo EquipmentRepository) EquipmentCommands {
	return &equipmentCommandsImpl{
		equipmentRepo: equipmentRepo,
	}
}

func (c *equipmentCommandsImpl) CreateEquipment(ctx context.Context, in CreateEquipmentInput) (int32, error) {
	var entity *equipment.Equipment
	if in.SkipValidation {
		entity = equipment.NewEquipmentUnchecked(in.Attributes)
	} else {
		var err error
		entity, err = equipment.NewEquipment(in.Attributes)
		if err != nil {
			return 0, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	id, err := c.equipmentRepo.Create(ctx, entity)
	if err != nil {
		return 0, translateRepoErr(err, errs.ErrEquipmentNotFound, errs.ErrInvalidReference)
	}
	return id, nil
}

// UpdatePriceQuantity writes both values unchecked, like every other update.
func (c *equipmentCommandsImpl) UpdatePriceQuantity(ctx context.Context, id int32, price float64, quantity int32) error {
	if err := c.equipmentRepo.UpdatePriceQuantity(ctx, id, price, quantity); err != nil {
		return translateRepoErr(err, errs.ErrEquipmentNotFound, errs.ErrInvalidReference)
	}
	return nil
}

func (c *equipmentCommandsImpl) DeleteEquipment(ctx context.Context, id int32) error {
	if err := c.equipmentRepo.Delete(ctx, id); err != nil {
		return translateRepoErr(err, errs.ErrEquipmentNotFound, errs.ErrStillReferenced)
	}
	return nil
}
