package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sentrydesk/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendSubmissionDigest(ctx context.Context, toEmail, toName string, items []port.DigestItem) error {
	args := m.Called(ctx, toEmail, toName, items)
	return args.Error(0)
}
