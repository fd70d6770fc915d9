package commands

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/errs"
)

var (
	ErrAddressNotFoundWrite = errs.New("address not found")
	ErrDuplicateAddress     = errs.New("address title already in use")
	ErrInvalidAddress       = errs.New("address fields cannot be empty")
)

type AddressRequest struct {
	Title    string
	FullText string
	City     string
}

type AddressCommands interface {
	Create(ctx context.Context, userID uuid.UUID, req AddressRequest) (uuid.UUID, error)
	Update(ctx context.Context, addressID, userID uuid.UUID, req AddressRequest) error
	Delete(ctx context.Context, addressID, userID uuid.UUID) error
}

type addressUseCaseImpl struct {
	repo AddressRepository
}

func NewAddressUseCase(repo AddressRepository) AddressCommands {
	return &addressUseCaseImpl{repo: repo}
}

func (r AddressRequest) validate() (AddressRequest, error) {
	r.Title = strings.TrimSpace(r.Title)
	r.FullText = strings.TrimSpace(r.FullText)
	r.City = strings.TrimSpace(r.City)
	if r.Title == "" || r.FullText == "" || r.City == "" {
		return r, ErrInvalidAddress
	}
	return r, nil
}

func (uc *addressUseCaseImpl) Create(ctx context.Context, userID uuid.UUID, req AddressRequest) (uuid.UUID, error) {
	req, err := req.validate()
	if err != nil {
		return uuid.Nil, err
	}

	created, err := uc.repo.Create(ctx, userID, req.Title, req.FullText, req.City)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrDuplicateAddress)
		}
		return uuid.Nil, err
	}
	return created.ID, nil
}

func (uc *addressUseCaseImpl) Update(ctx context.Context, addressID, userID uuid.UUID, req AddressRequest) error {
	req, err := req.validate()
	if err != nil {
		return err
	}

	if err := uc.repo.Update(ctx, addressID, userID, req.Title, req.FullText, req.City); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrAddressNotFoundWrite)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.Mark(err, ErrDuplicateAddress)
		default:
			return err
		}
	}
	return nil
}

func (uc *addressUseCaseImpl) Delete(ctx context.Context, addressID, userID uuid.UUID) error {
	if err := uc.repo.SoftDelete(ctx, addressID, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrAddressNotFoundWrite)
		}
		return err
	}
	return nil
}
