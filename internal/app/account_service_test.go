package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/storefront-web/internal/domain"
	"github.com/jsamuelsen/storefront-web/internal/mocks"
)

func newTestAccountService(t *testing.T) (*AccountService, *mocks.MockPublisherClient, *mocks.MockNewsletterClient) {
	t.Helper()

	publisher := mocks.NewMockPublisherClient(t)
	newsletter := mocks.NewMockNewsletterClient(t)

	return NewAccountService(AccountServiceConfig{
		Publisher:  publisher,
		Newsletter: newsletter,
	}), publisher, newsletter
}

func TestNewAccountService_PanicsWithoutPublisher(t *testing.T) {
	assert.Panics(t, func() {
		NewAccountService(AccountServiceConfig{})
	})
}

func TestAccountService_Account(t *testing.T) {
	svc, publisher, _ := newTestAccountService(t)

	publisher.EXPECT().Account(mock.Anything, "token").Return(&domain.Account{Username: "jane"}, nil)

	account, err := svc.Account(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, "jane", account.Username)
}

func TestAccountService_Account_Failure(t *testing.T) {
	svc, publisher, _ := newTestAccountService(t)

	publisher.EXPECT().Account(mock.Anything, "token").
		Return(nil, domain.NewUpstreamStatusError("publisher-api", 503, "unavailable"))

	account, err := svc.Account(context.Background(), "token")

	require.Error(t, err)
	assert.Nil(t, account)
	assert.True(t, domain.IsUpstream(err))
}

func TestAccountService_UpdateNewsletter(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		setupMock func(*mocks.MockNewsletterClient)
		wantErr   bool
	}{
		{
			name:  "subscribes",
			email: "jane@example.com",
			setupMock: func(m *mocks.MockNewsletterClient) {
				m.EXPECT().SetSubscription(mock.Anything, "jane@example.com", true).Return(nil)
			},
		},
		{
			name:  "client failure",
			email: "jane@example.com",
			setupMock: func(m *mocks.MockNewsletterClient) {
				m.EXPECT().SetSubscription(mock.Anything, "jane@example.com", true).
					Return(domain.NewUpstreamError("marketo", "rejected"))
			},
			wantErr: true,
		},
		{
			name:    "missing email",
			email:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, newsletter := newTestAccountService(t)
			if tt.setupMock != nil {
				tt.setupMock(newsletter)
			}

			err := svc.UpdateNewsletter(context.Background(), tt.email, true)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccountService_UpdateNewsletter_NotConfigured(t *testing.T) {
	svc := NewAccountService(AccountServiceConfig{Publisher: mocks.NewMockPublisherClient(t)})

	err := svc.UpdateNewsletter(context.Background(), "jane@example.com", false)

	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))
}

func TestAccountService_AcceptAgreement(t *testing.T) {
	svc, publisher, _ := newTestAccountService(t)

	publisher.EXPECT().AcceptAgreement(mock.Anything, "token").Return(nil)

	require.NoError(t, svc.AcceptAgreement(context.Background(), "token"))
}

func TestAccountService_ChangeUsername(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, publisher, _ := newTestAccountService(t)

		publisher.EXPECT().ChangeUsername(mock.Anything, "token", "jane").Return(nil)

		require.NoError(t, svc.ChangeUsername(context.Background(), "token", " jane "))
	})

	t.Run("empty", func(t *testing.T) {
		svc, _, _ := newTestAccountService(t)

		err := svc.ChangeUsername(context.Background(), "token", "")

		assert.True(t, domain.IsValidation(err))
	})

	t.Run("field errors are returned as is", func(t *testing.T) {
		svc, publisher, _ := newTestAccountService(t)

		rejected := &domain.StoreErrorList{
			Status: 409,
			Errors: []domain.StoreError{{Code: "conflict", Message: "username already taken"}},
		}
		publisher.EXPECT().ChangeUsername(mock.Anything, "token", "jane").Return(rejected)

		err := svc.ChangeUsername(context.Background(), "token", "jane")

		list, ok := domain.AsStoreErrorList(err)
		require.True(t, ok)
		assert.Same(t, rejected, list)
	})

	t.Run("other failures are wrapped", func(t *testing.T) {
		svc, publisher, _ := newTestAccountService(t)

		publisher.EXPECT().ChangeUsername(mock.Anything, "token", "jane").
			Return(domain.NewUpstreamError("publisher-api", "timeout"))

		err := svc.ChangeUsername(context.Background(), "token", "jane")

		require.Error(t, err)
		_, isList := domain.AsStoreErrorList(err)
		assert.False(t, isList)
		assert.Contains(t, err.Error(), "changing username")
	})
}
