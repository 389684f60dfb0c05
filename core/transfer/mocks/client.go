package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of transfer.Client
type Client struct {
	mock.Mock
}

func (m *Client) Fetch(ctx context.Context, remotePath, localPath string) error {
	args := m.Called(ctx, remotePath, localPath)
	return args.Error(0)
}

func (m *Client) Close() error {
	args := m.Called()
	return args.Error(0)
}
