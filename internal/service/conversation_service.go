package service

import (
	"context"
	"sync"
	"time"

	"title-assist-be/internal/config"
	"title-assist-be/internal/constant"
	"title-assist-be/internal/dto"
	"title-assist-be/internal/pkg/logger"
	"title-assist-be/internal/pkg/ratelimit"
	"title-assist-be/internal/pkg/serverutils"
	"title-assist-be/internal/repository/contract"
	"title-assist-be/internal/repository/memory"
	"title-assist-be/internal/websocket"
	"title-assist-be/pkg/conversation"
	"title-assist-be/pkg/events"
	pktNats "title-assist-be/pkg/nats"

	"github.com/google/uuid"
)

// IConversationService defines the widget conversation surface.
type IConversationService interface {
	StartSession(ctx context.Context) (*dto.StartSessionResponse, error)
	SendMessage(ctx context.Context, sessionID string, request *dto.SendMessageRequest) (*dto.ConversationResponse, error)
	SelectOption(ctx context.Context, sessionID string, request *dto.SelectOptionRequest) (*dto.ConversationResponse, error)
	GetTranscript(ctx context.Context, sessionID string) ([]*dto.TranscriptMessageResponse, error)
}

type conversationService struct {
	engine         *conversation.Engine
	sessionRepo    *memory.SessionRepository
	transcriptRepo contract.TranscriptRepository
	transcriptPub  ITranscriptPublisher
	natsPub        *pktNats.Publisher
	wsHub          *websocket.Hub
	limiter        *ratelimit.Limiter
	cfg            *config.Config
	logger         logger.ILogger

	// One mutex per live session keeps concurrent inputs from interleaving
	// transitions. Entries leak only until the session expires, which is
	// acceptable at widget traffic levels.
	locks sync.Map
}

func NewConversationService(
	engine *conversation.Engine,
	sessionRepo *memory.SessionRepository,
	transcriptRepo contract.TranscriptRepository,
	transcriptPub ITranscriptPublisher,
	natsPub *pktNats.Publisher,
	wsHub *websocket.Hub,
	limiter *ratelimit.Limiter,
	cfg *config.Config,
	log logger.ILogger,
) IConversationService {
	return &conversationService{
		engine:         engine,
		sessionRepo:    sessionRepo,
		transcriptRepo: transcriptRepo,
		transcriptPub:  transcriptPub,
		natsPub:        natsPub,
		wsHub:          wsHub,
		limiter:        limiter,
		cfg:            cfg,
		logger:         log,
	}
}

func (cs *conversationService) StartSession(ctx context.Context) (*dto.StartSessionResponse, error) {
	sess := conversation.NewSession(uuid.NewString())
	effects := cs.engine.Greeting(sess)
	cs.sessionRepo.Save(sess)

	token, err := serverutils.IssueSessionToken(cs.cfg.App.JWTSecret, sess.ID, 24*time.Hour)
	if err != nil {
		return nil, err
	}

	cs.logger.Info("Conversation", "Session started", map[string]interface{}{"session_id": sess.ID})
	cs.recordEffects(sess, effects)

	return &dto.StartSessionResponse{
		SessionId: sess.ID,
		Token:     token,
		Effects:   effects,
	}, nil
}

func (cs *conversationService) SendMessage(ctx context.Context, sessionID string, request *dto.SendMessageRequest) (*dto.ConversationResponse, error) {
	return cs.handleEvent(ctx, sessionID, conversation.TextEvent(request.Message))
}

func (cs *conversationService) SelectOption(ctx context.Context, sessionID string, request *dto.SelectOptionRequest) (*dto.ConversationResponse, error) {
	return cs.handleEvent(ctx, sessionID, conversation.OptionEvent(request.OptionId))
}

func (cs *conversationService) handleEvent(ctx context.Context, sessionID string, ev conversation.Event) (*dto.ConversationResponse, error) {
	mu := cs.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, found := cs.sessionRepo.Get(sessionID)
	if !found {
		return nil, serverutils.NewNotFoundError("Session expired, please start a new conversation")
	}

	if err := cs.checkRateLimit(ctx, sess, ev); err != nil {
		return nil, err
	}

	prevMode := sess.Mode
	effects, err := cs.engine.HandleInput(ctx, sess, ev)
	if err != nil {
		return nil, err
	}
	cs.sessionRepo.Save(sess)

	cs.recordInput(sess, ev)
	cs.recordEffects(sess, effects)
	cs.emitTransitionEvents(prevMode, sess)

	if cs.wsHub != nil && len(effects) > 0 {
		cs.wsHub.SendToSession(sess.ID, effects)
	}

	return &dto.ConversationResponse{
		SessionId: sess.ID,
		Mode:      string(sess.Mode),
		Effects:   effects,
	}, nil
}

func (cs *conversationService) GetTranscript(ctx context.Context, sessionID string) ([]*dto.TranscriptMessageResponse, error) {
	lines, err := cs.transcriptRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TranscriptMessageResponse, len(lines))
	for i, line := range lines {
		out[i] = &dto.TranscriptMessageResponse{
			Role:      line.Role,
			Content:   line.Content,
			OptionId:  line.OptionID,
			Mode:      line.Mode,
			CreatedAt: line.CreatedAt,
		}
	}
	return out, nil
}

func (cs *conversationService) sessionLock(sessionID string) *sync.Mutex {
	actual, _ := cs.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

// checkRateLimit throttles the two expensive paths: record lookups and
// freeform assistant questions. Scripted transitions are free.
func (cs *conversationService) checkRateLimit(ctx context.Context, sess *conversation.Session, ev conversation.Event) error {
	if cs.limiter == nil || ev.IsOption() {
		return nil
	}

	switch sess.Mode {
	case conversation.ModeRecordCheckEmail:
		if !cs.limiter.Allow(ctx, "lookup:"+sess.ID, cs.cfg.Chat.LookupRateLimit, time.Minute) {
			return serverutils.NewTooManyRequestsError("Too many record checks, please wait a moment")
		}
	case conversation.ModeAIFreeform:
		if !cs.limiter.Allow(ctx, "ask:"+sess.ID, cs.cfg.Chat.AskRateLimit, time.Minute) {
			return serverutils.NewTooManyRequestsError("Too many questions, please wait a moment")
		}
	}
	return nil
}

func (cs *conversationService) recordInput(sess *conversation.Session, ev conversation.Event) {
	line := &dto.TranscriptLineMessage{
		SessionId: sess.ID,
		Role:      constant.ChatMessageRoleUser,
		Mode:      string(sess.Mode),
	}
	if ev.IsOption() {
		line.OptionId = ev.Option
		line.Content = ev.Option
	} else {
		line.Content = ev.Text
	}
	cs.publishLine(line)
}

func (cs *conversationService) recordEffects(sess *conversation.Session, effects []conversation.Effect) {
	for _, ef := range effects {
		if ef.Message == nil {
			continue
		}
		cs.publishLine(&dto.TranscriptLineMessage{
			SessionId: sess.ID,
			Role:      constant.ChatMessageRoleModel,
			Content:   ef.Message.Text,
			Mode:      string(sess.Mode),
		})
	}
}

func (cs *conversationService) publishLine(line *dto.TranscriptLineMessage) {
	if cs.transcriptPub == nil {
		return
	}
	if err := cs.transcriptPub.PublishLine(line); err != nil {
		cs.logger.Warn("Conversation", "Failed to publish transcript line", map[string]interface{}{
			"session_id": line.SessionId,
			"error":      err.Error(),
		})
	}
}

// emitTransitionEvents publishes operator-facing events for the transitions
// that matter: lead captured (basics complete) and record verified.
func (cs *conversationService) emitTransitionEvents(prevMode conversation.Mode, sess *conversation.Session) {
	if cs.natsPub == nil {
		return
	}

	var ev events.Event
	switch {
	case prevMode == conversation.ModeCollectingBasics && sess.Mode == conversation.ModeIntroChoice:
		ev = events.NewLeadCaptured(sess.ID, sess.Answers[conversation.AnswerName], sess.Answers[conversation.AnswerPhone])
	case prevMode == conversation.ModeAwaitingVerification && sess.Mode == conversation.ModeConfirmChoice:
		email := ""
		if sess.PendingRecord != nil {
			email = sess.PendingRecord.Email
		}
		ev = events.NewRecordVerified(sess.ID, email)
	default:
		return
	}

	go func() {
		if err := cs.natsPub.Publish(context.Background(), ev); err != nil {
			cs.logger.Warn("Conversation", "Failed to publish event", map[string]interface{}{
				"session_id": sess.ID,
				"event":      ev.EventType(),
				"error":      err.Error(),
			})
		}
	}()
}
