package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"title-assist-be/internal/constant"
	"title-assist-be/internal/pkg/logger"
	"title-assist-be/pkg/forms"
)

type fakeRecords struct {
	rec   *ClientRecord
	err   error
	calls int
	last  LookupRequest
}

func (f *fakeRecords) Lookup(ctx context.Context, req LookupRequest) (*ClientRecord, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.rec, nil
}

type fakeAssistant struct {
	reply string
	err   error
	asked []string
}

func (f *fakeAssistant) Ask(ctx context.Context, question string) (string, error) {
	f.asked = append(f.asked, question)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// fakeCodes stores the expected code in plain text; the production
// implementation uses bcrypt but the engine only sees the interface.
type fakeCodes struct {
	code string
}

func (f *fakeCodes) Issue(ctx context.Context, sess *Session, rec *ClientRecord) (string, error) {
	sess.CodeHash = []byte(f.code)
	return fmt.Sprintf(constant.MsgCodeSentFormat, f.code), nil
}

func (f *fakeCodes) Verify(sess *Session, attempt string) bool {
	return len(sess.CodeHash) > 0 && attempt == string(sess.CodeHash)
}

func testRecord() *ClientRecord {
	return &ClientRecord{
		Name:         "Dana Fuller",
		Phone:        "205-555-0142",
		Email:        "dana@example.com",
		VehicleYear:  "2014",
		VehicleMake:  "Honda",
		VehicleModel: "Civic",
		State:        "Alabama",
		TitleStatus:  "Lien recorded",
		TitleRemedy:  "Complete MVT 5-13 and submit a lien release request",
	}
}

func newTestEngine(records RecordStore, assistant Assistant) *Engine {
	return NewEngine(records, assistant, &fakeCodes{code: "0000"}, forms.DefaultCatalog(), logger.NewNopLogger())
}

func advance(t *testing.T, e *Engine, sess *Session, ev Event) []Effect {
	t.Helper()
	effects, err := e.HandleInput(context.Background(), sess, ev)
	require.NoError(t, err)
	return effects
}

func messageTexts(effects []Effect) []string {
	var out []string
	for _, ef := range effects {
		if ef.Message != nil {
			out = append(out, ef.Message.Text)
		}
	}
	return out
}

func hasOptions(effects []Effect) bool {
	for _, ef := range effects {
		if len(ef.Options) > 0 {
			return true
		}
	}
	return false
}

func TestScriptedFlowReachesBrowsing(t *testing.T) {
	e := newTestEngine(&fakeRecords{}, &fakeAssistant{})
	sess := NewSession("s1")

	advance(t, e, sess, TextEvent("Jordan"))
	advance(t, e, sess, TextEvent("205-555-0100"))
	require.Equal(t, ModeIntroChoice, sess.Mode)

	advance(t, e, sess, OptionEvent(constant.OptionIntroGeneral))
	require.Equal(t, ModeAwaitingState, sess.Mode)

	effects := advance(t, e, sess, TextEvent("Texas"))
	assert.Equal(t, ModeBrowsingOptions, sess.Mode)
	assert.True(t, hasOptions(effects), "topic menu should be offered")

	assert.Equal(t, map[string]string{
		AnswerName:  "Jordan",
		AnswerPhone: "205-555-0100",
		AnswerState: "Texas",
	}, sess.Answers)
}

func TestStateInputIsResolved(t *testing.T) {
	e := newTestEngine(&fakeRecords{}, &fakeAssistant{})
	sess := NewSession("s1")
	sess.Mode = ModeAwaitingState

	advance(t, e, sess, TextEvent("calif"))
	assert.Equal(t, "California", sess.Answers[AnswerState])
}

func TestEmptyInputIgnored(t *testing.T) {
	e := newTestEngine(&fakeRecords{}, &fakeAssistant{})
	sess := NewSession("s1")

	effects := advance(t, e, sess, TextEvent("   "))
	assert.Empty(t, effects)
	assert.Equal(t, ModeCollectingBasics, sess.Mode)
	assert.Empty(t, sess.Answers)
}

func TestPersonalizationAtMostOnce(t *testing.T) {
	e := newTestEngine(&fakeRecords{}, &fakeAssistant{reply: "ok"})
	sess := NewSession("s1")

	var transcript []string
	collect := func(effects []Effect) {
		transcript = append(transcript, messageTexts(effects)...)
	}

	collect(e.Greeting(sess))
	collect(advance(t, e, sess, TextEvent("Jordan")))
	collect(advance(t, e, sess, TextEvent("205-555-0100")))
	collect(advance(t, e, sess, OptionEvent(constant.OptionIntroGeneral)))
	collect(advance(t, e, sess, TextEvent("Alabama")))
	collect(advance(t, e, sess, OptionEvent(constant.OptionTopicAsk)))
	collect(advance(t, e, sess, TextEvent("how do titles work?")))

	count := 0
	for _, line := range transcript {
		if strings.Contains(line, "Nice to meet you") {
			count++
		}
	}
	assert.Equal(t, 1, count, "personalized prefix must appear exactly once")
}

func toRecordCheckEmail(t *testing.T, e *Engine, sess *Session) {
	t.Helper()
	advance(t, e, sess, TextEvent("Jordan"))
	advance(t, e, sess, TextEvent("205-555-0100"))
	advance(t, e, sess, OptionEvent(constant.OptionIntroIssue))
	advance(t, e, sess, OptionEvent(constant.OptionRecordCheck))
	require.Equal(t, ModeRecordCheckEmail, sess.Mode)
}

func TestLookupCarriesCollectedPhone(t *testing.T) {
	records := &fakeRecords{rec: testRecord()}
	e := newTestEngine(records, &fakeAssistant{})
	sess := NewSession("s1")
	toRecordCheckEmail(t, e, sess)

	advance(t, e, sess, TextEvent("dana@example.com"))

	require.Equal(t, 1, records.calls)
	assert.Equal(t, "dana@example.com", records.last.Email)
	assert.Equal(t, "205-555-0100", records.last.Phone)
}

func TestEmailValidationRejectsMissingAt(t *testing.T) {
	records := &fakeRecords{rec: testRecord()}
	e := newTestEngine(records, &fakeAssistant{})
	sess := NewSession("s1")
	toRecordCheckEmail(t, e, sess)

	effects := advance(t, e, sess, TextEvent("not-an-email"))
	assert.Equal(t, ModeRecordCheckEmail, sess.Mode)
	assert.Contains(t, messageTexts(effects), constant.MsgInvalidEmail)
	assert.Zero(t, records.calls, "no lookup for invalid email")
}

func TestLookupNoMatchFallsBackToState(t *testing.T) {
	e := newTestEngine(&fakeRecords{rec: nil}, &fakeAssistant{})
	sess := NewSession("s1")
	toRecordCheckEmail(t, e, sess)

	effects := advance(t, e, sess, TextEvent("dana@example.com"))
	assert.Equal(t, ModeAwaitingState, sess.Mode)
	assert.Nil(t, sess.PendingRecord)
	assert.Contains(t, messageTexts(effects), constant.MsgNoRecord)
}

func TestLookupErrorFallsBackToState(t *testing.T) {
	e := newTestEngine(&fakeRecords{err: errors.New("store unreachable")}, &fakeAssistant{})
	sess := NewSession("s1")
	toRecordCheckEmail(t, e, sess)

	effects := advance(t, e, sess, TextEvent("dana@example.com"))
	assert.Equal(t, ModeAwaitingState, sess.Mode)
	assert.Nil(t, sess.PendingRecord)
	assert.Contains(t, messageTexts(effects), constant.MsgLookupFailed)
}

func TestVerificationGating(t *testing.T) {
	e := newTestEngine(&fakeRecords{rec: testRecord()}, &fakeAssistant{})
	sess := NewSession("s1")
	toRecordCheckEmail(t, e, sess)

	advance(t, e, sess, TextEvent("dana@example.com"))
	require.Equal(t, ModeAwaitingVerification, sess.Mode)
	require.NotNil(t, sess.PendingRecord)

	// Wrong code: stay put, keep the record.
	effects := advance(t, e, sess, TextEvent("1234"))
	assert.Equal(t, ModeAwaitingVerification, sess.Mode)
	assert.NotNil(t, sess.PendingRecord)
	assert.Contains(t, messageTexts(effects), constant.MsgCodeRetry)

	// Correct code: move to confirm with the record intact.
	effects = advance(t, e, sess, TextEvent("0000"))
	assert.Equal(t, ModeConfirmChoice, sess.Mode)
	assert.NotNil(t, sess.PendingRecord)
	assert.True(t, hasOptions(effects))
}

func TestVerificationWithoutRecordRecovers(t *testing.T) {
	e := newTestEngine(&fakeRecords{}, &fakeAssistant{})
	sess := NewSession("s1")
	sess.Mode = ModeAwaitingVerification

	effects := advance(t, e, sess, TextEvent("0000"))
	assert.Equal(t, ModeAwaitingState, sess.Mode)
	assert.Contains(t, messageTexts(effects), constant.MsgRecordLost)
}

func TestConfirmYesRunsRemedyFlow(t *testing.T) {
	e := newTestEngine(&fakeRecords{rec: testRecord()}, &fakeAssistant{})
	sess := NewSession("s1")
	toRecordCheckEmail(t, e, sess)
	advance(t, e, sess, TextEvent("dana@example.com"))
	advance(t, e, sess, TextEvent("0000"))

	effects := advance(t, e, sess, OptionEvent(constant.OptionConfirmYes))
	assert.Equal(t, ModeFormConfirmChoice, sess.Mode)
	assert.Equal(t, "Alabama", sess.Answers[AnswerState])
	assert.Nil(t, sess.PendingRecord, "record is consumed by confirm-yes")
	assert.Equal(t, []string{"mvt-5-13"}, sess.PendingForms)
	assert.True(t, hasOptions(effects))

	effects = advance(t, e, sess, OptionEvent(constant.OptionFormsYes))
	assert.Equal(t, ModeBrowsingOptions, sess.Mode)
	assert.Empty(t, sess.PendingForms)

	joined := strings.Join(messageTexts(effects), "\n")
	assert.Contains(t, joined, "MVT-5-13 Form (Alabama)")
	assert.Contains(t, joined, "https://")
}

func TestConfirmYesWithoutRemedyGoesToMenu(t *testing.T) {
	rec := testRecord()
	rec.TitleRemedy = ""
	e := newTestEngine(&fakeRecords{rec: rec}, &fakeAssistant{})
	sess := NewSession("s1")
	toRecordCheckEmail(t, e, sess)
	advance(t, e, sess, TextEvent("dana@example.com"))
	advance(t, e, sess, TextEvent("0000"))

	effects := advance(t, e, sess, OptionEvent(constant.OptionConfirmYes))
	assert.Equal(t, ModeBrowsingOptions, sess.Mode)
	assert.Contains(t, messageTexts(effects), constant.MsgNoRemedy)
}

func TestConfirmYesWithoutRecordRecovers(t *testing.T) {
	e := newTestEngine(&fakeRecords{}, &fakeAssistant{})
	sess := NewSession("s1")
	sess.Mode = ModeConfirmChoice

	effects := advance(t, e, sess, OptionEvent(constant.OptionConfirmYes))
	assert.Equal(t, ModeAwaitingState, sess.Mode)
	_, stateSet := sess.Answers[AnswerState]
	assert.False(t, stateSet, "must not adopt an undefined state value")
	assert.Contains(t, messageTexts(effects), constant.MsgRecordLost)
}

func TestConfirmNoPromptsManualState(t *testing.T) {
	e := newTestEngine(&fakeRecords{rec: testRecord()}, &fakeAssistant{})
	sess := NewSession("s1")
	toRecordCheckEmail(t, e, sess)
	advance(t, e, sess, TextEvent("dana@example.com"))
	advance(t, e, sess, TextEvent("0000"))

	advance(t, e, sess, OptionEvent(constant.OptionConfirmNo))
	assert.Equal(t, ModeAwaitingState, sess.Mode)
	assert.Nil(t, sess.PendingRecord)
}

func TestFormsDeclined(t *testing.T) {
	e := newTestEngine(&fakeRecords{}, &fakeAssistant{})
	sess := NewSession("s1")
	sess.Mode = ModeFormConfirmChoice
	sess.PendingForms = []string{"mvt-5-13"}

	effects := advance(t, e, sess, OptionEvent(constant.OptionFormsNo))
	assert.Equal(t, ModeBrowsingOptions, sess.Mode)
	assert.Empty(t, sess.PendingForms)
	assert.Contains(t, messageTexts(effects), constant.MsgFormsDeclined)
}

func TestTopicSelectionStaysInMenu(t *testing.T) {
	e := newTestEngine(&fakeRecords{}, &fakeAssistant{})
	sess := NewSession("s1")
	sess.Mode = ModeBrowsingOptions

	effects := advance(t, e, sess, OptionEvent(constant.OptionTopicSalvage))
	assert.Equal(t, ModeBrowsingOptions, sess.Mode)
	require.Len(t, effects, 1)
	assert.True(t, effects[0].Message.Rich)
}

func TestAskMeAnythingSwitchesToFreeform(t *testing.T) {
	e := newTestEngine(&fakeRecords{}, &fakeAssistant{})
	sess := NewSession("s1")
	sess.Mode = ModeBrowsingOptions

	advance(t, e, sess, OptionEvent(constant.OptionTopicAsk))
	assert.Equal(t, ModeAIFreeform, sess.Mode)
}

func TestFreeformFormShortcutSkipsAssistant(t *testing.T) {
	assistant := &fakeAssistant{reply: "should not be used"}
	e := newTestEngine(&fakeRecords{}, assistant)
	sess := NewSession("s1")
	sess.Mode = ModeAIFreeform

	effects := advance(t, e, sess, TextEvent("I need a power of attorney form"))
	assert.Empty(t, assistant.asked)
	joined := strings.Join(messageTexts(effects), "\n")
	assert.Contains(t, joined, "MVT-5-13 Form (Alabama)")
	assert.Equal(t, ModeAIFreeform, sess.Mode)
}

func TestFreeformAssistantReplyAndFallback(t *testing.T) {
	assistant := &fakeAssistant{reply: "Titles prove ownership."}
	e := newTestEngine(&fakeRecords{}, assistant)
	sess := NewSession("s1")
	sess.Mode = ModeAIFreeform

	effects := advance(t, e, sess, TextEvent("what is a title?"))
	assert.Contains(t, messageTexts(effects), "Titles prove ownership.")

	assistant.err = errors.New("upstream down")
	effects = advance(t, e, sess, TextEvent("and a lien?"))
	assert.Contains(t, messageTexts(effects), constant.MsgAssistantFallback)
	assert.Equal(t, ModeAIFreeform, sess.Mode)
}

func TestStaleOptionIgnored(t *testing.T) {
	e := newTestEngine(&fakeRecords{}, &fakeAssistant{})
	sess := NewSession("s1")
	sess.Mode = ModeBrowsingOptions

	effects := advance(t, e, sess, OptionEvent(constant.OptionConfirmYes))
	assert.Empty(t, effects)
	assert.Equal(t, ModeBrowsingOptions, sess.Mode)
}

func TestTextWhileChoicePendingIsNudged(t *testing.T) {
	e := newTestEngine(&fakeRecords{}, &fakeAssistant{})
	sess := NewSession("s1")
	sess.Mode = ModeIntroChoice

	effects := advance(t, e, sess, TextEvent("hello?"))
	assert.Equal(t, ModeIntroChoice, sess.Mode)
	assert.Contains(t, messageTexts(effects), constant.MsgChooseOption)
}

func TestSessionReset(t *testing.T) {
	sess := NewSession("s1")
	sess.Mode = ModeAwaitingVerification
	sess.Answers[AnswerName] = "Jordan"
	sess.PendingRecord = testRecord()
	sess.CodeHash = []byte("x")
	sess.GreetedByName = true

	sess.Reset()
	assert.Equal(t, ModeCollectingBasics, sess.Mode)
	assert.Empty(t, sess.Answers)
	assert.Nil(t, sess.PendingRecord)
	assert.Nil(t, sess.CodeHash)
	assert.False(t, sess.GreetedByName)
}
