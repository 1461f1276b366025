package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/content"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) SubmitContactMessage(ctx context.Context, msg content.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestContentService_Landing_ReturnsDefaults(t *testing.T) {
	svc := NewService(new(MockGateway), zaptest.NewLogger(t))

	landing := svc.Landing()
	assert.Equal(t, "MISoft", landing.Hero.Title)
	assert.NotEmpty(t, landing.Features)
	assert.NotEmpty(t, landing.Modules)
	assert.NotEmpty(t, landing.Plans)
}

func TestContentService_SubmitContact_NormalizesAndForwards(t *testing.T) {
	gw := new(MockGateway)
	var forwarded content.ContactMessage
	gw.On("SubmitContactMessage", mock.Anything, mock.AnythingOfType("content.ContactMessage")).
		Run(func(args mock.Arguments) {
			forwarded = args.Get(1).(content.ContactMessage)
		}).
		Return(nil)

	svc := NewService(gw, zaptest.NewLogger(t))
	err := svc.SubmitContact(context.Background(), ContactRequest{
		Name:    "  Ayesha Raza  ",
		Email:   " Ayesha@Example.COM ",
		Company: "Crescent Textiles",
		Message: "  Interested in the manufacturing module.  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ayesha Raza", forwarded.Name)
	assert.Equal(t, "ayesha@example.com", forwarded.Email)
	assert.Equal(t, "Interested in the manufacturing module.", forwarded.Message)
	gw.AssertExpectations(t)
}

func TestContentService_SubmitContact_RejectsBlankFields(t *testing.T) {
	tests := []struct {
		name string
		req  ContactRequest
		want string
	}{
		{"blank name", ContactRequest{Name: "   ", Email: "a@b.com", Message: "hi"}, "Name is required"},
		{"blank email", ContactRequest{Name: "A", Email: "  ", Message: "hi"}, "Email is required"},
		{"blank message", ContactRequest{Name: "A", Email: "a@b.com", Message: " \t "}, "Message is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := new(MockGateway)
			svc := NewService(gw, zaptest.NewLogger(t))

			err := svc.SubmitContact(context.Background(), tt.req)
			require.Error(t, err)
			var derr *shared.DomainError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, "VALIDATION_ERROR", derr.Code)
			assert.Equal(t, tt.want, derr.Message)
			gw.AssertNotCalled(t, "SubmitContactMessage", mock.Anything, mock.Anything)
		})
	}
}

func TestContentService_SubmitContact_RejectsOversizedMessage(t *testing.T) {
	svc := NewService(new(MockGateway), zaptest.NewLogger(t))

	err := svc.SubmitContact(context.Background(), ContactRequest{
		Name:    "A",
		Email:   "a@b.com",
		Message: strings.Repeat("x", maxMessageLength+1),
	})
	require.Error(t, err)
	var derr *shared.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Message is too long", derr.Message)
}

func TestContentService_SubmitContact_UpstreamErrorPassesThrough(t *testing.T) {
	upstream := errors.New("core api: 503")
	gw := new(MockGateway)
	gw.On("SubmitContactMessage", mock.Anything, mock.Anything).Return(upstream)

	svc := NewService(gw, zaptest.NewLogger(t))
	err := svc.SubmitContact(context.Background(), ContactRequest{
		Name:    "A",
		Email:   "a@b.com",
		Message: "hi",
	})
	assert.ErrorIs(t, err, upstream)
}
