package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceImpl_Register(t *testing.T) {
	// given
	service := NewUserService(NewStubUserRepo())
	ctx := context.Background()

	// when
	created, err := service.Register(ctx, "Brayan", "brayan@example.com", "secret123")

	// then
	assert.NoError(t, err)
	assert.NotEmpty(t, created.Uid)
	assert.Equal(t, "brayan@example.com", created.Email)
	assert.Equal(t, DefaultSettings(), created.Settings)
}

func TestServiceImpl_Register_RejectsDuplicateEmail(t *testing.T) {
	// given
	service := NewUserService(NewStubUserRepo())
	ctx := context.Background()
	_, err := service.Register(ctx, "Brayan", "brayan@example.com", "secret123")
	assert.NoError(t, err)

	// when
	_, err = service.Register(ctx, "Other", "Brayan@Example.com", "different")

	// then
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestServiceImpl_Authenticate(t *testing.T) {
	// given
	service := NewUserService(NewStubUserRepo())
	ctx := context.Background()
	created, err := service.Register(ctx, "Brayan", "brayan@example.com", "secret123")
	assert.NoError(t, err)

	// when
	found, err := service.Authenticate(ctx, "brayan@example.com", "secret123")

	// then
	assert.NoError(t, err)
	assert.Equal(t, created.Uid, found.Uid)

	// wrong password is rejected
	_, err = service.Authenticate(ctx, "brayan@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown email is indistinguishable from a wrong password
	_, err = service.Authenticate(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestServiceImpl_UpdateSettings(t *testing.T) {
	// given
	service := NewUserService(NewStubUserRepo())
	created, err := service.Register(context.Background(), "Brayan", "brayan@example.com", "secret123")
	assert.NoError(t, err)
	ctx := WithUser(context.Background(), created)

	// when
	updated, err := service.UpdateSettings(ctx, Settings{
		Currency:         "COP",
		Locale:           "es-CO",
		ColombianMode:    true,
		PaymentFrequency: PayBiweekly,
	})

	// then
	assert.NoError(t, err)
	assert.True(t, updated.Settings.ColombianMode)
	assert.Equal(t, "COP", updated.Settings.Currency)
	assert.Equal(t, PayBiweekly, updated.Settings.PaymentFrequency)
}

func TestServiceImpl_DeleteCurrentUser(t *testing.T) {
	// given
	service := NewUserService(NewStubUserRepo())
	created, err := service.Register(context.Background(), "Brayan", "brayan@example.com", "secret123")
	assert.NoError(t, err)
	ctx := WithUser(context.Background(), created)

	// when
	assert.NoError(t, service.DeleteCurrentUser(ctx))

	// then: the account is gone, credentials included
	users, err := service.GetAllUsers(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, users)
	_, err = service.Authenticate(context.Background(), "brayan@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestServiceImpl_DeleteCurrentUser_RequiresUser(t *testing.T) {
	service := NewUserService(NewStubUserRepo())

	err := service.DeleteCurrentUser(context.Background())

	assert.ErrorIs(t, err, ErrNoUser)
}
