package service

import (
	"context"
	"errors"
	"testing"

	"title-assist-be/internal/pkg/logger"
	"title-assist-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(mail *fakeMailer, operatorEmail string) *notifierService {
	return NewNotifierService(nil, mail, operatorEmail, logger.NewNopLogger()).(*notifierService)
}

func TestNotifierEmailsOperatorOnLead(t *testing.T) {
	mail := &fakeMailer{}
	n := newTestNotifier(mail, "ops@example.com")

	ev := events.NewLeadCaptured("s1", "Jordan", "205-555-0100")
	require.NoError(t, n.handleEvent(context.Background(), ev))

	assert.Equal(t, "ops@example.com", mail.leadTo)
	assert.Equal(t, "Jordan", mail.leadName)
	assert.Equal(t, "205-555-0100", mail.leadPhone)
}

func TestNotifierSkipsWithoutOperatorEmail(t *testing.T) {
	mail := &fakeMailer{}
	n := newTestNotifier(mail, "")

	ev := events.NewLeadCaptured("s1", "Jordan", "205-555-0100")
	require.NoError(t, n.handleEvent(context.Background(), ev))

	assert.Empty(t, mail.leadTo)
}

func TestNotifierIgnoresNonLeadEvents(t *testing.T) {
	mail := &fakeMailer{}
	n := newTestNotifier(mail, "ops@example.com")

	require.NoError(t, n.handleEvent(context.Background(), events.NewRecordVerified("s1", "dana@example.com")))
	require.NoError(t, n.handleEvent(context.Background(), events.NewLookupFailed("s1", "dana@example.com", "db down")))

	assert.Empty(t, mail.leadTo)
}

func TestNotifierSwallowsMailerFailure(t *testing.T) {
	mail := &fakeMailer{err: errors.New("smtp down")}
	n := newTestNotifier(mail, "ops@example.com")

	// A failed alert is logged, not redelivered.
	ev := events.NewLeadCaptured("s1", "Jordan", "205-555-0100")
	assert.NoError(t, n.handleEvent(context.Background(), ev))
}
