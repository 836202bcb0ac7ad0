package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"title-assist-be/internal/config"
	"title-assist-be/internal/constant"
	"title-assist-be/internal/entity"
	"title-assist-be/internal/pkg/logger"
	"title-assist-be/internal/pkg/mailer"
	"title-assist-be/internal/repository/contract"
	"title-assist-be/pkg/conversation"
	"title-assist-be/pkg/events"
	pktNats "title-assist-be/pkg/nats"

	"golang.org/x/crypto/bcrypt"
)

// recordLookup adapts the persistence layer to the engine's RecordStore
// contract. Email is tried first; the phone is a fallback when the email has
// no record.
type recordLookup struct {
	repo    contract.ClientRecordRepository
	natsPub *pktNats.Publisher
	logger  logger.ILogger
}

func NewRecordLookup(repo contract.ClientRecordRepository, natsPub *pktNats.Publisher, log logger.ILogger) conversation.RecordStore {
	return &recordLookup{repo: repo, natsPub: natsPub, logger: log}
}

var _ conversation.RecordStore = &recordLookup{}

func (r *recordLookup) Lookup(ctx context.Context, req conversation.LookupRequest) (*conversation.ClientRecord, error) {
	var (
		rec *entity.ClientRecord
		err error
	)
	if req.Email != "" {
		rec, err = r.repo.FindByEmail(ctx, req.Email)
		if err != nil {
			r.publishLookupFailed(req, err)
			return nil, fmt.Errorf("record lookup by email: %w", err)
		}
	}
	if rec == nil && req.Phone != "" {
		rec, err = r.repo.FindByPhone(ctx, req.Phone)
		if err != nil {
			r.publishLookupFailed(req, err)
			return nil, fmt.Errorf("record lookup by phone: %w", err)
		}
	}
	if rec == nil {
		return nil, nil
	}

	return &conversation.ClientRecord{
		Name:         rec.Name,
		Phone:        rec.Phone,
		Email:        rec.Email,
		VehicleYear:  rec.VehicleYear,
		VehicleMake:  rec.VehicleMake,
		VehicleModel: rec.VehicleModel,
		State:        rec.State,
		TitleStatus:  rec.TitleStatus,
		TitleRemedy:  rec.TitleRemedy,
	}, nil
}

func (r *recordLookup) publishLookupFailed(req conversation.LookupRequest, err error) {
	if r.natsPub == nil {
		return
	}
	// Fire and forget; event delivery must never block the conversation.
	go func() {
		ev := events.NewLookupFailed("", req.Email, err.Error())
		if pubErr := r.natsPub.Publish(context.Background(), ev); pubErr != nil {
			r.logger.Warn("RecordLookup", "Failed to publish LOOKUP_FAILED", map[string]interface{}{
				"error": pubErr.Error(),
			})
		}
	}()
}

// codeAuthenticator implements the engine's verification contract. In demo
// mode the fixed code is shown inline; otherwise a random 4-digit code is
// emailed to the address on the record. Only the bcrypt hash is kept on the
// session either way.
type codeAuthenticator struct {
	cfg    config.ChatConfig
	mailer mailer.IEmailService
	logger logger.ILogger
}

func NewCodeAuthenticator(cfg config.ChatConfig, email mailer.IEmailService, log logger.ILogger) conversation.CodeAuthenticator {
	return &codeAuthenticator{cfg: cfg, mailer: email, logger: log}
}

var _ conversation.CodeAuthenticator = &codeAuthenticator{}

func (a *codeAuthenticator) Issue(ctx context.Context, sess *conversation.Session, rec *conversation.ClientRecord) (string, error) {
	if a.cfg.DemoMode {
		code := a.cfg.DemoVerificationCode
		if code == "" {
			code = constant.DefaultVerificationCode
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("hash verification code: %w", err)
		}
		sess.CodeHash = hash
		return fmt.Sprintf(constant.MsgCodeSentFormat, code), nil
	}

	code := randomCode()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash verification code: %w", err)
	}
	if err := a.mailer.SendVerificationCode(rec.Email, code); err != nil {
		return "", err
	}
	sess.CodeHash = hash
	return constant.MsgCodeSent, nil
}

func randomCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// crypto/rand failing means something is deeply wrong; fall back to
		// the demo default rather than panicking mid-conversation.
		return constant.DefaultVerificationCode
	}
	return fmt.Sprintf("%04d", n.Int64())
}

func (a *codeAuthenticator) Verify(sess *conversation.Session, attempt string) bool {
	if len(sess.CodeHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(sess.CodeHash, []byte(attempt)) == nil
}
