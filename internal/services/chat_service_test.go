// internal/services/chat_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestChatService(store CatalogStore, gen TextGenerator) *ChatService {
	return NewChatService(
		NewIntentResolver(),
		NewCatalogService(store),
		NewResponseComposer(gen, "ElectroMart"),
		5,
	)
}

func TestHandleMessageStockCheckEndToEnd(t *testing.T) {
	store := &fakeCatalogStore{rows: testCatalogRows()}
	gen := &fakeGenerator{reply: "unused"}
	svc := newTestChatService(store, gen)

	reply := svc.HandleMessage(context.Background(), "is the dell xps 13 in stock?")

	assert.Equal(t, "Yes, the Dell XPS 13 is currently in stock with 50 units available.", reply)
	assert.Zero(t, gen.calls)
}

func TestHandleMessageBrowseUsesConfiguredLimit(t *testing.T) {
	store := &fakeCatalogStore{rows: testCatalogRows()}
	gen := &fakeGenerator{reply: "Take a look at these."}
	svc := NewChatService(
		NewIntentResolver(),
		NewCatalogService(store),
		NewResponseComposer(gen, "ElectroMart"),
		3,
	)

	reply := svc.HandleMessage(context.Background(), "show me laptops")

	assert.Equal(t, "Take a look at these.", reply)
	assert.Equal(t, 3, store.lastFilter.Limit)
}

// A catalog outage and a genuinely empty result must read the same to
// the user.
func TestHandleMessageCatalogFailureLooksLikeNoMatch(t *testing.T) {
	gen := &fakeGenerator{reply: "unused"}

	downStore := &fakeCatalogStore{err: errors.New("connection refused")}
	downReply := newTestChatService(downStore, gen).HandleMessage(context.Background(), "any Lenovo laptops under 100?")

	emptyStore := &fakeCatalogStore{}
	emptyReply := newTestChatService(emptyStore, gen).HandleMessage(context.Background(), "any Lenovo laptops under 100?")

	assert.Equal(t, emptyReply, downReply)
	assert.Contains(t, downReply, "couldn't find any Laptop products")
	assert.Zero(t, gen.calls)
}

func TestHandleMessageGeneralQuery(t *testing.T) {
	store := &fakeCatalogStore{rows: testCatalogRows()}
	gen := &fakeGenerator{reply: "Happy to help!"}
	svc := newTestChatService(store, gen)

	reply := svc.HandleMessage(context.Background(), "do you offer gift wrapping?")

	assert.Equal(t, "Happy to help!", reply)
	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.lastPrompt, "do you offer gift wrapping?")
}
