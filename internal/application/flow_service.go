package application

import (
	"context"
	"fmt"
	"sync"

	"messenger-selfcheck/internal/domain"
	"messenger-selfcheck/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// FlowService struct - Application service implementing the questionnaire flow
// use case: one inbound event, one state transition, at most one outward action.
type FlowService struct {
	store     output.SessionStore
	messenger output.MessengerClient
	questions output.QuestionsClient
	catalog   *CatalogProvider
	results   output.ResultRepository

	// Per-sender mutexes serialize the read-modify-write of a session so two
	// rapid replies cannot race each other.
	locks sync.Map
}

// NewFlowService func - Creates new flow service
func NewFlowService(store output.SessionStore, messenger output.MessengerClient, questions output.QuestionsClient, catalog *CatalogProvider, results output.ResultRepository) *FlowService {
	return &FlowService{
		store:     store,
		messenger: messenger,
		questions: questions,
		catalog:   catalog,
		results:   results,
	}
}

// HandleEvent func - Use case: Handle one inbound messaging event
func (s *FlowService) HandleEvent(ctx context.Context, event domain.IncomingEvent) error {
	if event.SenderID == "" {
		logrus.Warn("Discarding event without sender id")
		return nil
	}

	lock := s.senderLock(event.SenderID)
	lock.Lock()
	defer lock.Unlock()

	if event.IsStartSignal {
		logrus.Infof("Start signal received: senderID=%s", event.SenderID)
		return s.startOver(ctx, event.SenderID)
	}

	if !event.WorthProcessing() {
		logrus.Debugf("Discarding event not worth processing: senderID=%s, echo=%t", event.SenderID, event.IsEcho)
		return nil
	}

	return s.processReply(ctx, event.SenderID, event.Reply())
}

// processReply - Business logic for one reply: load session, run the state
// machine, persist the new state, then deliver the computed action.
func (s *FlowService) processReply(ctx context.Context, senderID, reply string) error {
	session, err := s.store.GetSession(ctx, senderID)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if session == nil {
		// Expired or never started; recover by restarting
		logrus.Infof("No session for senderID=%s, restarting flow", senderID)
		return s.startOver(ctx, senderID)
	}

	catalog, err := s.catalog.Questions(ctx)
	if err != nil {
		return err
	}

	next, action := domain.Transition(session, reply, catalog)

	switch action.Type {
	case domain.ActionSubmit:
		return s.submit(ctx, senderID, action.Answers, catalog)

	case domain.ActionAskButtons, domain.ActionAskText:
		// Persist before delivery so a failed send never loses progress
		if err := s.store.SaveSession(ctx, next); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		return s.deliver(ctx, senderID, action)

	default:
		return nil
	}
}

// startOver - Resets the conversation and sends the language prompt.
// Always available, always resets, even mid-flow.
func (s *FlowService) startOver(ctx context.Context, senderID string) error {
	if err := s.store.DeleteSession(ctx, senderID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	fresh, action := domain.StartOver(senderID)
	if err := s.store.SaveSession(ctx, fresh); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return s.deliver(ctx, senderID, action)
}

// submit - Posts the collected answers for scoring. The session is deleted
// only after a confirmed success so a failed submission re-attempts on the
// next valid reply.
func (s *FlowService) submit(ctx context.Context, senderID string, answers map[string]string, catalog domain.Catalog) error {
	severity, err := s.questions.SubmitAnswers(ctx, senderID, answers, catalog)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}

	logrus.Infof("Submission scored: senderID=%s, severity=%s", senderID, severity)

	if err := s.store.DeleteSession(ctx, senderID); err != nil {
		logrus.Errorf("Failed to clear session after submission: %v", err)
	}

	s.recordResult(senderID, severity, answers)

	return s.messenger.SendTextMessage(ctx, senderID, fmt.Sprintf("You are at severity %s", severity))
}

// recordResult - Best-effort audit log of a confirmed submission
func (s *FlowService) recordResult(senderID, severity string, answers map[string]string) {
	if s.results == nil {
		return
	}

	result, err := domain.NewAssessmentResult(senderID, severity, answers)
	if err != nil {
		logrus.Errorf("Failed to build assessment result: %v", err)
		return
	}

	if err := s.results.SaveResult(result); err != nil {
		logrus.Errorf("Failed to store assessment result: %v", err)
	}
}

// deliver - Sends the computed action through the messaging gateway
func (s *FlowService) deliver(ctx context.Context, recipientID string, action domain.Action) error {
	switch action.Type {
	case domain.ActionAskButtons:
		return s.messenger.SendQuickReplies(ctx, recipientID, action.Text, action.Choices)
	case domain.ActionAskText:
		return s.messenger.SendTextMessage(ctx, recipientID, action.Text)
	default:
		return nil
	}
}

// senderLock returns the mutex serializing transitions for one sender
func (s *FlowService) senderLock(senderID string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(senderID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
