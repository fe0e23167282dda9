package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "romeo/internal/errors"
	"romeo/internal/model"
	"romeo/internal/repository"
)

// AddressPatch carries a partial address update. Empty string fields keep
// their previous value; SetDefault moves the default flag when non-nil.
type AddressPatch struct {
	Label      string
	Street     string
	City       string
	State      string
	Zip        string
	SetDefault *bool
}

// AddressService handles the per-user address book.
type AddressService interface {
	List(ctx context.Context, userID string) ([]model.Address, error)
	Add(ctx context.Context, userID, label, street, city, state, zip string) (*model.Address, error)
	Edit(ctx context.Context, userID string, index int, patch AddressPatch) (*model.Address, error)
	Delete(ctx context.Context, userID string, index int) error
	Default(ctx context.Context, userID string) (*model.Address, error)
}

type addressService struct {
	addresses repository.AddressRepository
}

// NewAddressService creates a new address service.
func NewAddressService(addresses repository.AddressRepository) AddressService {
	return &addressService{addresses: addresses}
}

func (s *addressService) List(ctx context.Context, userID string) ([]model.Address, error) {
	return s.addresses.List(ctx, userID)
}

// Add appends an address. The first address in an empty book becomes the
// default; later additions leave the default untouched.
func (s *addressService) Add(ctx context.Context, userID, label, street, city, state, zip string) (*model.Address, error) {
	fields := map[string]string{
		"label":  strings.TrimSpace(label),
		"street": strings.TrimSpace(street),
		"city":   strings.TrimSpace(city),
		"state":  strings.TrimSpace(state),
		"zip":    strings.TrimSpace(zip),
	}
	for _, field := range []string{"label", "street", "city", "state", "zip"} {
		if fields[field] == "" {
			return nil, apperrors.NewValidation(field, field+" is required")
		}
	}

	existing, _ := s.addresses.List(ctx, userID)
	address := model.Address{
		Label:     fields["label"],
		Street:    fields["street"],
		City:      fields["city"],
		State:     fields["state"],
		Zip:       fields["zip"],
		IsDefault: len(existing) == 0,
	}
	existing = append(existing, address)

	if err := s.addresses.Save(ctx, userID, existing); err != nil {
		return nil, fmt.Errorf("persist addresses: %w", err)
	}
	return &address, nil
}

// Edit merges the patch into the address at index.
func (s *addressService) Edit(ctx context.Context, userID string, index int, patch AddressPatch) (*model.Address, error) {
	addresses, _ := s.addresses.List(ctx, userID)
	if index < 0 || index >= len(addresses) {
		return nil, apperrors.ErrIndexOutOfRange
	}

	address := addresses[index]
	if v := strings.TrimSpace(patch.Label); v != "" {
		address.Label = v
	}
	if v := strings.TrimSpace(patch.Street); v != "" {
		address.Street = v
	}
	if v := strings.TrimSpace(patch.City); v != "" {
		address.City = v
	}
	if v := strings.TrimSpace(patch.State); v != "" {
		address.State = v
	}
	if v := strings.TrimSpace(patch.Zip); v != "" {
		address.Zip = v
	}
	if patch.SetDefault != nil && *patch.SetDefault {
		for i := range addresses {
			addresses[i].IsDefault = false
		}
		address.IsDefault = true
	}
	addresses[index] = address

	if err := s.addresses.Save(ctx, userID, addresses); err != nil {
		return nil, fmt.Errorf("persist addresses: %w", err)
	}
	return &address, nil
}

// Delete removes the address at index. Deleting the default promotes the
// first remaining address so the book never ends up without a default.
func (s *addressService) Delete(ctx context.Context, userID string, index int) error {
	addresses, _ := s.addresses.List(ctx, userID)
	if index < 0 || index >= len(addresses) {
		return apperrors.ErrIndexOutOfRange
	}

	wasDefault := addresses[index].IsDefault
	addresses = append(addresses[:index], addresses[index+1:]...)
	if wasDefault && len(addresses) > 0 {
		addresses[0].IsDefault = true
	}

	if err := s.addresses.Save(ctx, userID, addresses); err != nil {
		return fmt.Errorf("persist addresses: %w", err)
	}
	return nil
}

// Default returns the flagged default, else the first address, else nil.
func (s *addressService) Default(ctx context.Context, userID string) (*model.Address, error) {
	addresses, _ := s.addresses.List(ctx, userID)
	for i := range addresses {
		if addresses[i].IsDefault {
			return &addresses[i], nil
		}
	}
	if len(addresses) > 0 {
		return &addresses[0], nil
	}
	return nil, nil
}
