package di

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ssargent/wondercard/pkg/api"
)

type stubStarter struct{ started bool }

func (s *stubStarter) StartServer(context.Context, api.GiftStore, api.ServerConfig, *zap.Logger) error {
	s.started = true
	return nil
}

type stubFactory struct{ starter *stubStarter }

func (f stubFactory) CreateServerStarter() api.ServerStarter { return f.starter }

func TestNewContainerDefaults(t *testing.T) {
	c := NewContainer()
	assert.IsType(t, &api.DefaultStoreOpener{}, c.GetStoreOpener())
	assert.IsType(t, &api.DefaultServerFactory{}, c.GetServerFactory())
}

func TestContainerOverrides(t *testing.T) {
	c := NewContainer()
	starter := &stubStarter{}
	c.SetServerFactory(stubFactory{starter: starter})

	err := c.GetServerFactory().CreateServerStarter().StartServer(context.Background(), nil, api.ServerConfig{}, zap.NewNop())
	assert.NoError(t, err)
	assert.True(t, starter.started)

	opener := api.NewStoreOpener()
	c.SetStoreOpener(opener)
	assert.Same(t, opener, c.GetStoreOpener())
}
