package api

import (
	"context"
	"net"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/ssargent/wondercard/pkg/trainer"
)

func TestStartServerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	config := ServerConfig{
		Bind:    "127.0.0.1",
		Port:    0,
		APIKey:  testAPIKey,
		Trainer: trainer.Default(),
	}

	done := make(chan error, 1)
	go func() {
		done <- StartServer(ctx, newMemStore(), config, zaptest.NewLogger(t))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Server did not stop after cancel")
	}
}

func TestStartServerReportsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	defer ln.Close()
	config := ServerConfig{
		Bind:   "127.0.0.1",
		Port:   ln.Addr().(*net.TCPAddr).Port,
		APIKey: testAPIKey,
	}

	err = StartServer(context.Background(), newMemStore(), config, zaptest.NewLogger(t))
	if err == nil {
		t.Fatal("Expected an error for a port in use")
	}
}

func TestServerFactory(t *testing.T) {
	starter := NewServerFactory().CreateServerStarter()
	if _, ok := starter.(*DefaultServerStarter); !ok {
		t.Errorf("Expected *DefaultServerStarter, got %T", starter)
	}
}

func TestStoreOpener(t *testing.T) {
	store, err := NewStoreOpener().OpenStore(t.TempDir(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	id, err := store.Create(pikachuCard())
	if err != nil {
		t.Fatalf("Failed to create gift: %v", err)
	}
	card, err := store.Read(id)
	if err != nil {
		t.Fatalf("Failed to read gift: %v", err)
	}
	if card.CardID() != 1001 {
		t.Errorf("Expected card 1001, got %d", card.CardID())
	}
}
