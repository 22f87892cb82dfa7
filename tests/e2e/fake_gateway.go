//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"

	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

var errUnknownSession = errs.Define("unknown checkout session", errs.ErrUpstream)

// FakeGateway records opened checkout sessions in memory. Tests mark a session paid
// and then drive the status check endpoint.
type FakeGateway struct {
	mu       sync.Mutex
	sessions map[string]*fakeSession
	failNext bool
}

type fakeSession struct {
	req  commands.CheckoutRequest
	paid bool
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{sessions: map[string]*fakeSession{}}
}

func (g *FakeGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions = map[string]*fakeSession{}
	g.failNext = false
}

// FailNextSession makes the next OpenSession call fail like a provider outage.
func (g *FakeGateway) FailNextSession() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failNext = true
}

func (g *FakeGateway) MarkPaid(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if s, ok := g.sessions[sessionID]; ok {
		s.paid = true
	}
}

// Request returns what the application asked the provider to charge.
func (g *FakeGateway) Request(sessionID string) (commands.CheckoutRequest, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[sessionID]
	if !ok {
		return commands.CheckoutRequest{}, false
	}
	return s.req, true
}

func (g *FakeGateway) OpenSession(_ context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failNext {
		g.failNext = false
		return nil, errs.New("checkout provider unavailable")
	}

	id := "cs_test_" + uuid.NewString()
	g.sessions[id] = &fakeSession{req: req}
	return &commands.CheckoutSession{
		ID:  id,
		URL: fmt.Sprintf("https://checkout.example.test/pay/%s", id),
	}, nil
}

func (g *FakeGateway) SessionStatus(_ context.Context, sessionID string) (*commands.SessionStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[sessionID]
	if !ok {
		return nil, errUnknownSession
	}
	id := s.req.ReservationID
	return &commands.SessionStatus{Paid: s.paid, ReservationID: &id}, nil
}

// VerifyEvent treats the signature as the session id so tests can fire webhooks
// without computing provider signatures.
func (g *FakeGateway) VerifyEvent(_ []byte, signature string) (*commands.WebhookEvent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[signature]
	if !ok {
		return nil, errs.New("signature mismatch")
	}
	return &commands.WebhookEvent{
		Type:      commands.EventCheckoutSessionCompleted,
		SessionID: signature,
		Paid:      s.paid,
	}, nil
}
