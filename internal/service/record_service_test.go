package service

import (
	"context"
	"errors"
	"testing"

	"title-assist-be/internal/config"
	"title-assist-be/internal/entity"
	"title-assist-be/internal/pkg/logger"
	"title-assist-be/internal/repository/specification"
	"title-assist-be/pkg/conversation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sentTo    string
	sentCode  string
	leadTo    string
	leadName  string
	leadPhone string
	err       error
}

func (f *fakeMailer) SendVerificationCode(toEmail, code string) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = toEmail
	f.sentCode = code
	return nil
}

func (f *fakeMailer) SendLeadNotification(toEmail, name, phone string) error {
	if f.err != nil {
		return f.err
	}
	f.leadTo = toEmail
	f.leadName = name
	f.leadPhone = phone
	return nil
}

type fakeRecordRepo struct {
	byEmail    *entity.ClientRecord
	byPhone    *entity.ClientRecord
	emailErr   error
	phoneErr   error
	emailCalls int
	phoneCalls int
}

func (f *fakeRecordRepo) Create(ctx context.Context, record *entity.ClientRecord) error { return nil }
func (f *fakeRecordRepo) Update(ctx context.Context, record *entity.ClientRecord) error { return nil }
func (f *fakeRecordRepo) Delete(ctx context.Context, id uuid.UUID) error                { return nil }
func (f *fakeRecordRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClientRecord, error) {
	return nil, nil
}
func (f *fakeRecordRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClientRecord, error) {
	return nil, nil
}
func (f *fakeRecordRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (f *fakeRecordRepo) FindByEmail(ctx context.Context, email string) (*entity.ClientRecord, error) {
	f.emailCalls++
	return f.byEmail, f.emailErr
}

func (f *fakeRecordRepo) FindByPhone(ctx context.Context, phone string) (*entity.ClientRecord, error) {
	f.phoneCalls++
	return f.byPhone, f.phoneErr
}

func TestLookupPrefersEmailMatch(t *testing.T) {
	repo := &fakeRecordRepo{
		byEmail: &entity.ClientRecord{Email: "dana@example.com"},
		byPhone: &entity.ClientRecord{Email: "other@example.com"},
	}
	lookup := NewRecordLookup(repo, nil, logger.NewNopLogger())

	rec, err := lookup.Lookup(context.Background(), conversation.LookupRequest{
		Email: "dana@example.com",
		Phone: "205-555-0100",
	})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "dana@example.com", rec.Email)
	assert.Equal(t, 0, repo.phoneCalls)
}

func TestLookupFallsBackToPhone(t *testing.T) {
	repo := &fakeRecordRepo{
		byPhone: &entity.ClientRecord{Email: "dana@example.com", Phone: "205-555-0100"},
	}
	lookup := NewRecordLookup(repo, nil, logger.NewNopLogger())

	rec, err := lookup.Lookup(context.Background(), conversation.LookupRequest{
		Email: "typo@example.com",
		Phone: "205-555-0100",
	})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "205-555-0100", rec.Phone)
	assert.Equal(t, 1, repo.emailCalls)
	assert.Equal(t, 1, repo.phoneCalls)
}

func TestLookupNoMatchAnywhere(t *testing.T) {
	repo := &fakeRecordRepo{}
	lookup := NewRecordLookup(repo, nil, logger.NewNopLogger())

	rec, err := lookup.Lookup(context.Background(), conversation.LookupRequest{
		Email: "typo@example.com",
		Phone: "205-555-0100",
	})
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestLookupPhoneErrorPropagates(t *testing.T) {
	repo := &fakeRecordRepo{phoneErr: errors.New("db down")}
	lookup := NewRecordLookup(repo, nil, logger.NewNopLogger())

	_, err := lookup.Lookup(context.Background(), conversation.LookupRequest{
		Email: "typo@example.com",
		Phone: "205-555-0100",
	})
	assert.Error(t, err)
}

func demoChatConfig() config.ChatConfig {
	return config.ChatConfig{
		DemoMode:             true,
		DemoVerificationCode: "0000",
	}
}

func TestCodeAuthenticatorDemoMode(t *testing.T) {
	auth := NewCodeAuthenticator(demoChatConfig(), &fakeMailer{}, logger.NewNopLogger())
	sess := conversation.NewSession("s1")
	rec := &conversation.ClientRecord{Email: "dana@example.com"}

	prompt, err := auth.Issue(context.Background(), sess, rec)
	require.NoError(t, err)
	assert.Contains(t, prompt, "DEMO CODE: 0000")
	assert.NotEmpty(t, sess.CodeHash)
	// Only the hash is stored, never the code itself.
	assert.NotContains(t, string(sess.CodeHash), "0000")

	assert.False(t, auth.Verify(sess, "1234"))
	assert.True(t, auth.Verify(sess, "0000"))
}

func TestCodeAuthenticatorEmailsRealCode(t *testing.T) {
	mail := &fakeMailer{}
	cfg := config.ChatConfig{DemoMode: false}
	auth := NewCodeAuthenticator(cfg, mail, logger.NewNopLogger())
	sess := conversation.NewSession("s1")
	rec := &conversation.ClientRecord{Email: "dana@example.com"}

	prompt, err := auth.Issue(context.Background(), sess, rec)
	require.NoError(t, err)
	assert.NotContains(t, prompt, "DEMO CODE")
	assert.Equal(t, "dana@example.com", mail.sentTo)
	require.Len(t, mail.sentCode, 4)

	assert.True(t, auth.Verify(sess, mail.sentCode))
	assert.False(t, auth.Verify(sess, "9999"))
}

func TestCodeAuthenticatorMailerFailure(t *testing.T) {
	mail := &fakeMailer{err: errors.New("smtp down")}
	cfg := config.ChatConfig{DemoMode: false}
	auth := NewCodeAuthenticator(cfg, mail, logger.NewNopLogger())
	sess := conversation.NewSession("s1")

	_, err := auth.Issue(context.Background(), sess, &conversation.ClientRecord{Email: "dana@example.com"})
	require.Error(t, err)
	assert.Empty(t, sess.CodeHash)
}

func TestVerifyWithoutIssuedCode(t *testing.T) {
	auth := NewCodeAuthenticator(demoChatConfig(), &fakeMailer{}, logger.NewNopLogger())
	sess := conversation.NewSession("s1")

	assert.False(t, auth.Verify(sess, "0000"))
}
