package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"title-assist-be/internal/constant"
	"title-assist-be/internal/pkg/logger"
	"title-assist-be/pkg/forms"
	"title-assist-be/pkg/states"
)

// LookupRequest identifies a client record by contact info. At least one
// field is populated.
type LookupRequest struct {
	Email string
	Phone string
}

// RecordStore is the external lookup collaborator. A nil record with a nil
// error means no match.
type RecordStore interface {
	Lookup(ctx context.Context, req LookupRequest) (*ClientRecord, error)
}

// Assistant answers freeform questions when no deterministic match exists.
type Assistant interface {
	Ask(ctx context.Context, question string) (string, error)
}

// CodeAuthenticator issues a verification code for a matched record and
// checks later attempts against it. Issue returns the user-facing prompt so
// delivery details (email vs demo code) stay out of the engine.
type CodeAuthenticator interface {
	Issue(ctx context.Context, sess *Session, rec *ClientRecord) (string, error)
	Verify(sess *Session, attempt string) bool
}

// Engine is the conversation state machine. Each HandleInput call performs
// exactly one transition and returns the outbound presentation effects.
// External calls (record lookup, assistant) are awaited inside the call with
// a bounded timeout; their failures never escape as errors, they degrade to
// the manual flow per the script.
type Engine struct {
	records     RecordStore
	assistant   Assistant
	codes       CodeAuthenticator
	catalog     *forms.Catalog
	logger      logger.ILogger
	callTimeout time.Duration
}

func NewEngine(records RecordStore, assistant Assistant, codes CodeAuthenticator, catalog *forms.Catalog, log logger.ILogger) *Engine {
	return &Engine{
		records:     records,
		assistant:   assistant,
		codes:       codes,
		catalog:     catalog,
		logger:      log,
		callTimeout: 10 * time.Second,
	}
}

// Greeting emits the opening script for a fresh session.
func (e *Engine) Greeting(sess *Session) []Effect {
	return []Effect{
		say(constant.GreetingLine1),
		say(constant.GreetingLine2),
		say(constant.QuestionName),
	}
}

// HandleInput advances the session by one transition. Empty text submissions
// and options that do not belong to the current mode are ignored.
func (e *Engine) HandleInput(ctx context.Context, sess *Session, ev Event) ([]Effect, error) {
	if ev.IsOption() {
		return e.handleOption(ctx, sess, ev.Option)
	}
	return e.handleText(ctx, sess, strings.TrimSpace(ev.Text))
}

func (e *Engine) handleText(ctx context.Context, sess *Session, text string) ([]Effect, error) {
	if text == "" {
		return nil, nil
	}

	switch sess.Mode {
	case ModeCollectingBasics:
		return e.collectBasics(sess, text), nil
	case ModeAwaitingState:
		return e.collectState(sess, text), nil
	case ModeRecordCheckEmail:
		return e.checkRecord(ctx, sess, text), nil
	case ModeAwaitingVerification:
		return e.verifyCode(sess, text), nil
	case ModeAIFreeform:
		return e.askAssistant(ctx, sess, text), nil
	default:
		// A choice is pending; typed text cannot advance the flow.
		return []Effect{say(constant.MsgChooseOption)}, nil
	}
}

func (e *Engine) collectBasics(sess *Session, text string) []Effect {
	if _, ok := sess.Answers[AnswerName]; !ok {
		sess.Answers[AnswerName] = text
		prompt := constant.QuestionPhone
		if !sess.GreetedByName {
			sess.GreetedByName = true
			prompt = fmt.Sprintf(constant.PersonalizedPrefixFormat, text) + prompt
		}
		return []Effect{say(prompt)}
	}

	sess.Answers[AnswerPhone] = text
	sess.Mode = ModeIntroChoice
	return []Effect{
		say(constant.GreetingLine3),
		offer(
			Option{ID: constant.OptionIntroGeneral, Label: constant.LabelIntroGeneral},
			Option{ID: constant.OptionIntroIssue, Label: constant.LabelIntroIssue},
		),
	}
}

func (e *Engine) collectState(sess *Session, text string) []Effect {
	name := states.Resolve(text)
	sess.Answers[AnswerState] = name
	sess.Mode = ModeBrowsingOptions
	return []Effect{
		say(fmt.Sprintf(constant.MsgStateMenuFormat, name)),
		e.topicMenu(),
	}
}

func (e *Engine) checkRecord(ctx context.Context, sess *Session, text string) []Effect {
	if !strings.Contains(text, "@") {
		return []Effect{say(constant.MsgInvalidEmail)}
	}

	lookupCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	// The phone collected up front rides along so the store can fall back to
	// it when the typed email has no record.
	rec, err := e.records.Lookup(lookupCtx, LookupRequest{Email: text, Phone: sess.Answers[AnswerPhone]})
	if err != nil {
		e.logger.Warn("Conversation", "Record lookup failed", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		sess.Mode = ModeAwaitingState
		return []Effect{say(constant.MsgLookupFailed), say(constant.QuestionState)}
	}
	if rec == nil {
		sess.Mode = ModeAwaitingState
		return []Effect{say(constant.MsgNoRecord), say(constant.QuestionState)}
	}

	sess.PendingRecord = rec
	sess.Mode = ModeAwaitingVerification
	prompt, err := e.codes.Issue(ctx, sess, rec)
	if err != nil {
		e.logger.Warn("Conversation", "Verification code issue failed", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		sess.clearPendingRecord()
		sess.Mode = ModeAwaitingState
		return []Effect{say(constant.MsgLookupFailed), say(constant.QuestionState)}
	}
	return []Effect{say(prompt)}
}

func (e *Engine) verifyCode(sess *Session, text string) []Effect {
	if sess.PendingRecord == nil {
		// State was lost mid-cycle; never proceed silently.
		sess.Mode = ModeAwaitingState
		return []Effect{say(constant.MsgRecordLost), say(constant.QuestionState)}
	}
	if !e.codes.Verify(sess, text) {
		return []Effect{say(constant.MsgCodeRetry)}
	}

	rec := sess.PendingRecord
	sess.Mode = ModeConfirmChoice
	return []Effect{
		say(fmt.Sprintf(constant.MsgSummaryFormat, rec.VehicleYear, rec.VehicleMake, rec.VehicleModel, rec.State)),
		offer(
			Option{ID: constant.OptionConfirmYes, Label: constant.LabelConfirmYes},
			Option{ID: constant.OptionConfirmNo, Label: constant.LabelConfirmNo},
		),
	}
}

func (e *Engine) askAssistant(ctx context.Context, sess *Session, text string) []Effect {
	if entry, ok := e.catalog.MatchKeyword(text); ok {
		return []Effect{sayRich(fmt.Sprintf(constant.MsgFormDownloadFormat, entry.Label, entry.Link))}
	}

	askCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	reply, err := e.assistant.Ask(askCtx, text)
	if err != nil {
		e.logger.Warn("Conversation", "Assistant call failed", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		return []Effect{say(constant.MsgAssistantFallback)}
	}
	return []Effect{sayRich(reply)}
}

func (e *Engine) handleOption(ctx context.Context, sess *Session, id string) ([]Effect, error) {
	switch sess.Mode {
	case ModeIntroChoice:
		switch id {
		case constant.OptionIntroGeneral:
			sess.Mode = ModeAwaitingState
			return []Effect{say(constant.MsgGeneralIntro), say(constant.QuestionState)}, nil
		case constant.OptionIntroIssue:
			sess.Mode = ModeRecordCheckChoice
			return []Effect{
				say(constant.MsgIssueIntro),
				offer(
					Option{ID: constant.OptionRecordCheck, Label: constant.LabelRecordCheck},
					Option{ID: constant.OptionRecordSkip, Label: constant.LabelRecordSkip},
				),
			}, nil
		}

	case ModeRecordCheckChoice:
		switch id {
		case constant.OptionRecordCheck:
			sess.Mode = ModeRecordCheckEmail
			return []Effect{say(constant.MsgRecordCheckEmail)}, nil
		case constant.OptionRecordSkip:
			sess.Mode = ModeAwaitingState
			return []Effect{say(constant.MsgRecordSkip), say(constant.QuestionState)}, nil
		}

	case ModeConfirmChoice:
		switch id {
		case constant.OptionConfirmYes:
			return e.confirmRecord(sess), nil
		case constant.OptionConfirmNo:
			sess.clearPendingRecord()
			sess.Mode = ModeAwaitingState
			return []Effect{say(constant.MsgStateUpdate), say(constant.QuestionState)}, nil
		}

	case ModeFormConfirmChoice:
		switch id {
		case constant.OptionFormsYes:
			return e.deliverForms(sess), nil
		case constant.OptionFormsNo:
			sess.PendingForms = nil
			sess.Mode = ModeBrowsingOptions
			return []Effect{say(constant.MsgFormsDeclined), e.topicMenu()}, nil
		}

	case ModeBrowsingOptions:
		if id == constant.OptionTopicAsk {
			sess.Mode = ModeAIFreeform
			return []Effect{say(constant.MsgAIIntro)}, nil
		}
		if content, ok := constant.TopicContent[id]; ok {
			return []Effect{sayRich(content)}, nil
		}
	}

	// Stale or unknown selection (e.g. a button from a screen the session
	// already left); ignore rather than act on outdated UI.
	e.logger.Warn("Conversation", "Ignoring option outside current mode", map[string]interface{}{
		"session_id": sess.ID,
		"mode":       string(sess.Mode),
		"option":     id,
	})
	return nil, nil
}

func (e *Engine) confirmRecord(sess *Session) []Effect {
	rec := sess.PendingRecord
	if rec == nil {
		sess.Mode = ModeAwaitingState
		return []Effect{say(constant.MsgRecordLost), say(constant.QuestionState)}
	}

	sess.Answers[AnswerState] = rec.State
	remedy := strings.TrimSpace(rec.TitleRemedy)
	sess.clearPendingRecord()

	effects := []Effect{
		say(fmt.Sprintf(constant.MsgStateUseFormat, rec.State)),
		say(fmt.Sprintf(constant.MsgStatusFormat, rec.TitleStatus)),
	}

	if remedy == "" {
		sess.Mode = ModeBrowsingOptions
		return append(effects, say(constant.MsgNoRemedy), e.topicMenu())
	}

	effects = append(effects, sayRich(fmt.Sprintf(constant.MsgRemedyFormat, remedy)))

	matched := e.catalog.Match(remedy)
	if len(matched) == 0 {
		sess.Mode = ModeBrowsingOptions
		return append(effects, e.topicMenu())
	}

	labels := make([]string, 0, len(matched))
	for _, code := range matched {
		if entry, ok := e.catalog.Get(code); ok {
			labels = append(labels, entry.Label)
		}
	}

	sess.PendingForms = matched
	sess.Mode = ModeFormConfirmChoice
	return append(effects,
		say(fmt.Sprintf(constant.MsgFormsFoundFormat, strings.Join(labels, ", "))),
		offer(
			Option{ID: constant.OptionFormsYes, Label: constant.LabelFormsYes},
			Option{ID: constant.OptionFormsNo, Label: constant.LabelFormsNo},
		),
	)
}

func (e *Engine) deliverForms(sess *Session) []Effect {
	var effects []Effect
	for _, code := range sess.PendingForms {
		entry, ok := e.catalog.Get(code)
		if !ok {
			e.logger.Warn("Conversation", "Matched form missing from catalog", map[string]interface{}{
				"session_id": sess.ID,
				"code":       code,
			})
			continue
		}
		effects = append(effects, sayRich(fmt.Sprintf(constant.MsgFormLinkFormat, entry.Label, entry.Link)))
	}
	sess.PendingForms = nil
	sess.Mode = ModeBrowsingOptions
	return append(effects, e.topicMenu())
}

func (e *Engine) topicMenu() Effect {
	return offer(
		Option{ID: constant.OptionTopicSign, Label: constant.LabelTopicSign},
		Option{ID: constant.OptionTopicAsk, Label: constant.LabelTopicAsk},
		Option{ID: constant.OptionTopicMissing, Label: constant.LabelTopicMissing},
		Option{ID: constant.OptionTopicDeceased, Label: constant.LabelTopicDeceased},
		Option{ID: constant.OptionTopicSalvage, Label: constant.LabelTopicSalvage},
		Option{ID: constant.OptionTopicLien, Label: constant.LabelTopicLien},
	)
}
