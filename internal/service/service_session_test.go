// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/accumulo-proxy-login/internal/adapter"
	"github.com/MKhiriev/accumulo-proxy-login/internal/logger"
	"github.com/MKhiriev/accumulo-proxy-login/internal/mock"
	"github.com/MKhiriev/accumulo-proxy-login/internal/proxy"
	"github.com/MKhiriev/accumulo-proxy-login/internal/service"
	"github.com/MKhiriev/accumulo-proxy-login/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSessionSvc creates a SessionService over a mocked adapter.
func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (service.SessionService, *mock.MockProxyAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockProxyAdapter(ctrl)
	mockAdapter.EXPECT().Address().Return("proxy.example.com:42424").AnyTimes()

	return service.NewSessionService(mockAdapter, logger.Nop()), mockAdapter
}

var creds = models.NewCredentials("root", "secret")

// ── Bootstrap ────────────────────────────────────────────────────────────────

func TestSessionService_Bootstrap_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestSessionSvc(t, ctrl)
	mockClient := mock.NewMockAccumuloProxy(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Open(ctx).Return(nil),
		mockAdapter.EXPECT().Login(ctx, creds).Return(models.LoginToken("token"), nil),
		mockAdapter.EXPECT().Client().Return(mockClient),
	)

	session, err := svc.Bootstrap(ctx, creds)

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, "root", session.Principal)
	assert.Equal(t, "proxy.example.com:42424", session.Address)
	assert.Equal(t, proxy.AccumuloProxy(mockClient), session.Client)
	assert.Equal(t, models.LoginToken("token"), session.Token)

	// Close releases the adapter exactly once.
	mockAdapter.EXPECT().Close().Return(nil).Times(1)
	assert.NoError(t, session.Close())
	assert.NoError(t, session.Close())
}

func TestSessionService_Bootstrap_UniqueIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first, firstAdapter := newTestSessionSvc(t, ctrl)
	second, secondAdapter := newTestSessionSvc(t, ctrl)
	for _, a := range []*mock.MockProxyAdapter{firstAdapter, secondAdapter} {
		a.EXPECT().Open(gomock.Any()).Return(nil)
		a.EXPECT().Login(gomock.Any(), creds).Return(models.LoginToken("t"), nil)
		a.EXPECT().Client().Return(mock.NewMockAccumuloProxy(ctrl))
	}

	s1, err := first.Bootstrap(context.Background(), creds)
	require.NoError(t, err)
	s2, err := second.Bootstrap(context.Background(), creds)
	require.NoError(t, err)

	assert.NotEqual(t, s1.ID, s2.ID)
}

func TestSessionService_Bootstrap_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSessionSvc(t, ctrl)

	// No Open, Login or Close expectations: nothing touches the network.
	session, err := svc.Bootstrap(context.Background(), models.NewCredentials("  ", "secret"))

	assert.Nil(t, session)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestSessionService_Bootstrap_OpenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	openErr := errors.Join(adapter.ErrConnection, errors.New("connection refused"))
	mockAdapter.EXPECT().Open(ctx).Return(openErr)
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Times(0)

	session, err := svc.Bootstrap(ctx, creds)

	assert.Nil(t, session)
	assert.ErrorIs(t, err, service.ErrConnectProxy)
	assert.ErrorIs(t, err, adapter.ErrConnection)
}

func TestSessionService_Bootstrap_LoginRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	loginErr := errors.Join(adapter.ErrUnauthorized, &proxy.AccumuloSecurityException{Msg: "Error BAD_CREDENTIALS for user root"})
	gomock.InOrder(
		mockAdapter.EXPECT().Open(ctx).Return(nil),
		mockAdapter.EXPECT().Login(ctx, creds).Return(nil, loginErr),
		mockAdapter.EXPECT().Close().Return(nil),
	)

	session, err := svc.Bootstrap(ctx, creds)

	assert.Nil(t, session)
	assert.ErrorIs(t, err, service.ErrLoginOnProxy)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	var secErr *proxy.AccumuloSecurityException
	assert.True(t, errors.As(err, &secErr))
}

func TestSessionService_Bootstrap_LoginErrorAndCloseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Open(ctx).Return(nil),
		mockAdapter.EXPECT().Login(ctx, creds).Return(nil, adapter.ErrTransport),
		mockAdapter.EXPECT().Close().Return(errors.New("close failed")),
	)

	_, err := svc.Bootstrap(ctx, creds)

	assert.ErrorIs(t, err, service.ErrLoginOnProxy)
	assert.ErrorIs(t, err, adapter.ErrTransport)
}

func TestSessionService_Bootstrap_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Open(ctx).Return(nil),
		mockAdapter.EXPECT().Login(ctx, creds).Return(models.LoginToken{}, nil),
		mockAdapter.EXPECT().Close().Return(nil),
	)

	session, err := svc.Bootstrap(ctx, creds)

	assert.Nil(t, session)
	assert.ErrorIs(t, err, service.ErrEmptyLoginToken)
}

// ── Session.Close ────────────────────────────────────────────────────────────

func TestSession_Close_ErrorIsSticky(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestSessionSvc(t, ctrl)
	closeErr := errors.New("reset by peer")

	mockAdapter.EXPECT().Open(gomock.Any()).Return(nil)
	mockAdapter.EXPECT().Login(gomock.Any(), creds).Return(models.LoginToken("t"), nil)
	mockAdapter.EXPECT().Client().Return(mock.NewMockAccumuloProxy(ctrl))
	mockAdapter.EXPECT().Close().Return(closeErr).Times(1)

	session, err := svc.Bootstrap(context.Background(), creds)
	require.NoError(t, err)

	assert.ErrorIs(t, session.Close(), closeErr)
	assert.ErrorIs(t, session.Close(), closeErr)
}

func TestSession_Close_ZeroValue(t *testing.T) {
	var s service.Session
	assert.NoError(t, s.Close())
}

// ── NewClientServices ───────────────────────────────────────────────────────

func TestNewClientServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := service.NewClientServices(mock.NewMockProxyAdapter(ctrl), logger.Nop())

	require.NotNil(t, services)
	assert.NotNil(t, services.SessionService)
}
