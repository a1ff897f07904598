package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type resetMocks struct {
	auth   *mock.MockAuthService
	codec  *mock.MockResetTokenCodec
	mailer *mock.MockMailer
}

func newTestResetSvc(t *testing.T, ctrl *gomock.Controller) (PasswordResetService, resetMocks) {
	t.Helper()
	m := resetMocks{
		auth:   mock.NewMockAuthService(ctrl),
		codec:  mock.NewMockResetTokenCodec(ctrl),
		mailer: mock.NewMockMailer(ctrl),
	}
	cfg := testAppConfig()
	cfg.BaseURL = "http://blog.test/"
	return NewPasswordResetService(m.auth, m.codec, m.mailer, cfg, logger.Nop()), m
}

func TestPasswordResetService_RequestReset_SendsLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 4, Email: "alice@example.com"}
	gomock.InOrder(
		m.auth.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil),
		m.codec.EXPECT().Issue(int64(4)).Return("tok.en.sig", nil),
		m.mailer.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, email models.Email) error {
				assert.Equal(t, "alice@example.com", email.To)
				assert.Equal(t, "Password Reset Request", email.Subject)
				assert.Contains(t, email.Body, "http://blog.test/reset_password/tok.en.sig\n")
				assert.True(t, strings.HasPrefix(email.Body, "To reset your password"))
				return nil
			},
		),
	)

	require.NoError(t, svc.RequestReset(ctx, models.ResetRequest{Email: "alice@example.com"}))
}

func TestPasswordResetService_RequestReset_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl)
	ctx := context.Background()

	m.auth.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	assert.NoError(t, svc.RequestReset(ctx, models.ResetRequest{Email: "ghost@example.com"}))
}

func TestPasswordResetService_RequestReset_MailFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl)
	ctx := context.Background()

	m.auth.EXPECT().FindByEmail(ctx, gomock.Any()).Return(models.User{ID: 4, Email: "a@b.io"}, nil)
	m.codec.EXPECT().Issue(int64(4)).Return("token", nil)
	m.mailer.EXPECT().Send(ctx, gomock.Any()).Return(adapter.ErrMailNotSent)

	assert.NoError(t, svc.RequestReset(ctx, models.ResetRequest{Email: "a@b.io"}))
}

func TestPasswordResetService_RequestReset_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("db down")
	m.auth.EXPECT().FindByEmail(ctx, gomock.Any()).Return(models.User{}, dbErr)

	assert.ErrorIs(t, svc.RequestReset(ctx, models.ResetRequest{Email: "a@b.io"}), dbErr)
}

func TestPasswordResetService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestResetSvc(t, ctrl)
	ctx := context.Background()

	form := models.PasswordRequest{Password: "new", ConfirmPassword: "new"}

	t.Run("valid token", func(t *testing.T) {
		m.codec.EXPECT().Verify("good").Return(int64(4), nil)
		m.auth.EXPECT().UpdatePassword(ctx, int64(4), "new").Return(nil)

		assert.NoError(t, svc.ResetPassword(ctx, "good", form))
	})

	t.Run("invalid token", func(t *testing.T) {
		m.codec.EXPECT().Verify("bad").Return(int64(0), ErrTokenIsExpiredOrInvalid)

		assert.ErrorIs(t, svc.ResetPassword(ctx, "bad", form), ErrTokenIsExpiredOrInvalid)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		m.codec.EXPECT().Verify("orphan").Return(int64(99), nil)
		m.auth.EXPECT().UpdatePassword(ctx, int64(99), "new").Return(store.ErrNoUserWasFound)

		assert.ErrorIs(t, svc.ResetPassword(ctx, "orphan", form), ErrTokenIsExpiredOrInvalid)
	})
}

// The whole flow with the real codec: the link in the mail carries a token
// that resets the password of the right user.
func TestPasswordResetService_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	mailer := mock.NewMockMailer(ctrl)
	cfg := testAppConfig()
	svc := NewPasswordResetService(auth, NewResetTokenCodec(cfg, nil), mailer, cfg, logger.Nop())
	ctx := context.Background()

	var body string
	auth.EXPECT().FindByEmail(ctx, "alice@example.com").Return(models.User{ID: 11, Email: "alice@example.com"}, nil)
	mailer.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e models.Email) error {
		body = e.Body
		return nil
	})
	require.NoError(t, svc.RequestReset(ctx, models.ResetRequest{Email: "alice@example.com"}))

	prefix := cfg.BaseURL + "/reset_password/"
	start := strings.Index(body, prefix)
	require.GreaterOrEqual(t, start, 0)
	token := strings.SplitN(body[start+len(prefix):], "\n", 2)[0]

	auth.EXPECT().UpdatePassword(ctx, int64(11), "fresh").Return(nil)
	assert.NoError(t, svc.ResetPassword(ctx, token, models.PasswordRequest{Password: "fresh", ConfirmPassword: "fresh"}))
}
