package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "romeo/internal/errors"
	"romeo/internal/repository"
	"romeo/internal/store"
)

func newAddressFixture() AddressService {
	return NewAddressService(repository.NewAddressRepository(store.NewMemory()))
}

func TestAddressService_Add(t *testing.T) {
	ctx := context.Background()
	svc := newAddressFixture()

	first, err := svc.Add(ctx, testUserID, "Home", "1 Main St", "Verona", "VR", "37100")
	assert.NoError(t, err)
	assert.True(t, first.IsDefault, "first address becomes the default")

	second, err := svc.Add(ctx, testUserID, "Office", "2 Side St", "Verona", "VR", "37101")
	assert.NoError(t, err)
	assert.False(t, second.IsDefault, "later additions leave the default untouched")

	_, err = svc.Add(ctx, testUserID, "Home", "", "Verona", "VR", "37100")
	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "street", ve.Field)
}

func TestAddressService_Edit(t *testing.T) {
	ctx := context.Background()
	svc := newAddressFixture()

	_, _ = svc.Add(ctx, testUserID, "Home", "1 Main St", "Verona", "VR", "37100")

	// patching only the label keeps every other field
	edited, err := svc.Edit(ctx, testUserID, 0, AddressPatch{Label: "Casa"})
	assert.NoError(t, err)
	assert.Equal(t, "Casa", edited.Label)
	assert.Equal(t, "1 Main St", edited.Street)
	assert.Equal(t, "Verona", edited.City)
	assert.Equal(t, "VR", edited.State)
	assert.Equal(t, "37100", edited.Zip)
	assert.True(t, edited.IsDefault)

	_, err = svc.Edit(ctx, testUserID, 4, AddressPatch{Label: "x"})
	assert.ErrorIs(t, err, apperrors.ErrIndexOutOfRange)
}

func TestAddressService_Edit_MoveDefault(t *testing.T) {
	ctx := context.Background()
	svc := newAddressFixture()

	_, _ = svc.Add(ctx, testUserID, "Home", "1 Main St", "Verona", "VR", "37100")
	_, _ = svc.Add(ctx, testUserID, "Office", "2 Side St", "Verona", "VR", "37101")

	setDefault := true
	edited, err := svc.Edit(ctx, testUserID, 1, AddressPatch{SetDefault: &setDefault})
	assert.NoError(t, err)
	assert.True(t, edited.IsDefault)

	addresses, _ := svc.List(ctx, testUserID)
	assert.False(t, addresses[0].IsDefault, "default moved off the old address")
	assert.True(t, addresses[1].IsDefault)
}

func TestAddressService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newAddressFixture()

	_, _ = svc.Add(ctx, testUserID, "Home", "1 Main St", "Verona", "VR", "37100")
	_, _ = svc.Add(ctx, testUserID, "Office", "2 Side St", "Verona", "VR", "37101")

	// deleting the default promotes the first remaining address
	assert.NoError(t, svc.Delete(ctx, testUserID, 0))
	addresses, _ := svc.List(ctx, testUserID)
	assert.Len(t, addresses, 1)
	assert.True(t, addresses[0].IsDefault)

	assert.ErrorIs(t, svc.Delete(ctx, testUserID, 1), apperrors.ErrIndexOutOfRange)
}

func TestAddressService_Default(t *testing.T) {
	ctx := context.Background()
	svc := newAddressFixture()

	def, err := svc.Default(ctx, testUserID)
	assert.NoError(t, err)
	assert.Nil(t, def, "empty book has no default")

	_, _ = svc.Add(ctx, testUserID, "Home", "1 Main St", "Verona", "VR", "37100")
	_, _ = svc.Add(ctx, testUserID, "Office", "2 Side St", "Verona", "VR", "37101")

	def, err = svc.Default(ctx, testUserID)
	assert.NoError(t, err)
	assert.Equal(t, "Home", def.Label)
}
