package services

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"skinai/internal/models/request_models"
	"skinai/internal/models/response_models"
	"skinai/internal/wizard"
	mem "skinai/pkg/memcache"
	"skinai/pkg/metrics"
	"skinai/pkg/utils"
)

// WizardSession owns the controller of one login. The mutex serialises
// events for the session; the controller itself holds no locks.
type WizardSession struct {
	mu     sync.Mutex
	ID     string
	UserID string
	ctrl   *wizard.Controller
}

// WizardSnapshot is a consistent copy of a session's state.
type WizardSnapshot struct {
	SessionID string
	UserID    string
	Step      wizard.Step
	Answers   wizard.Answers
}

type WizardServiceInterface interface {
	Open(sessionID, userID string) *response_models.WizardView
	View(sessionID string) (*response_models.WizardView, error)
	Start(sessionID string) (*response_models.WizardView, error)
	Advance(sessionID string, req request_models.AdvanceRequest) (*response_models.WizardView, error)
	Back(sessionID string, from wizard.Step) (*response_models.WizardView, error)
	Snapshot(sessionID string) (*WizardSnapshot, error)
	Close(sessionID string) bool
	Sweep() int
}

type WizardService struct {
	registry *wizard.Registry
	sessions mem.Store[*WizardSession]
	metrics  *metrics.Metrics
	log      *zap.Logger

	openMu sync.Mutex
}

func NewWizardService(registry *wizard.Registry, sessions mem.Store[*WizardSession], m *metrics.Metrics, log *zap.Logger) WizardServiceInterface {
	return &WizardService{
		registry: registry,
		sessions: sessions,
		metrics:  m,
		log:      log.Named("wizard"),
	}
}

// Open returns the session's view, creating a fresh controller on LANDING if
// the session does not exist yet.
func (w *WizardService) Open(sessionID, userID string) *response_models.WizardView {
	w.openMu.Lock()
	s, ok := w.sessions.Touch(sessionID)
	if !ok {
		s = &WizardSession{ID: sessionID, UserID: userID}
		s.ctrl = wizard.NewController(wizard.WithObserver(w.observer(sessionID)))
		w.sessions.Set(sessionID, s)
		w.log.Info("wizard session opened", zap.String("session_id", sessionID), zap.String("user_id", userID))
	}
	w.openMu.Unlock()
	w.metrics.SetActiveSessions(w.sessions.Len())

	s.mu.Lock()
	defer s.mu.Unlock()
	return w.view(s, true)
}

func (w *WizardService) View(sessionID string) (*response_models.WizardView, error) {
	return w.run(sessionID, func(s *WizardSession) bool { return true })
}

func (w *WizardService) Start(sessionID string) (*response_models.WizardView, error) {
	return w.run(sessionID, func(s *WizardSession) bool {
		_, applied := s.ctrl.Start()
		return applied
	})
}

// Advance applies the screen's primary action. The brand screen refuses to
// submit without a brand, so an empty brand never reaches the controller.
func (w *WizardService) Advance(sessionID string, req request_models.AdvanceRequest) (*response_models.WizardView, error) {
	if !req.FromStep.Valid() {
		return nil, fmt.Errorf("%w: unknown step", utils.ErrInvalidInput)
	}

	payload, err := payloadFor(req)
	if err != nil {
		return nil, err
	}

	return w.run(sessionID, func(s *WizardSession) bool {
		_, applied := s.ctrl.Advance(req.FromStep, payload)
		return applied
	})
}

func (w *WizardService) Back(sessionID string, from wizard.Step) (*response_models.WizardView, error) {
	if !from.Valid() {
		return nil, fmt.Errorf("%w: unknown step", utils.ErrInvalidInput)
	}
	return w.run(sessionID, func(s *WizardSession) bool {
		_, applied := s.ctrl.GoBack(from)
		return applied
	})
}

func (w *WizardService) Snapshot(sessionID string) (*WizardSnapshot, error) {
	s, ok := w.sessions.Touch(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return &WizardSnapshot{
		SessionID: s.ID,
		UserID:    s.UserID,
		Step:      s.ctrl.Current(),
		Answers:   s.ctrl.Answers(),
	}, nil
}

// Close discards the session. It reports whether one existed.
func (w *WizardService) Close(sessionID string) bool {
	_, ok := w.sessions.Delete(sessionID)
	if ok {
		w.log.Info("wizard session closed", zap.String("session_id", sessionID))
	}
	w.metrics.SetActiveSessions(w.sessions.Len())
	return ok
}

// Sweep drops idle sessions and returns how many were removed.
func (w *WizardService) Sweep() int {
	expired := w.sessions.Sweep()
	for _, s := range expired {
		w.log.Info("wizard session expired", zap.String("session_id", s.ID), zap.String("user_id", s.UserID))
	}
	w.metrics.SetActiveSessions(w.sessions.Len())
	return len(expired)
}

func (w *WizardService) run(sessionID string, event func(s *WizardSession) bool) (*response_models.WizardView, error) {
	s, ok := w.sessions.Touch(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	applied := event(s)
	return w.view(s, applied), nil
}

// view must be called with s.mu held.
func (w *WizardService) view(s *WizardSession, applied bool) *response_models.WizardView {
	step := s.ctrl.Current()
	return &response_models.WizardView{
		SessionID:   s.ID,
		CurrentStep: step,
		Screen:      w.registry.Screen(step),
		Answers:     s.ctrl.Answers(),
		Applied:     applied,
	}
}

func (w *WizardService) observer(sessionID string) wizard.Observer {
	return func(ev wizard.Event) {
		w.metrics.ObserveWizard(ev)
		if ev.Applied {
			w.log.Debug("wizard transition",
				zap.String("session_id", sessionID),
				zap.String("action", string(ev.Action)),
				zap.Stringer("from", ev.From),
				zap.Stringer("to", ev.To),
			)
			return
		}
		w.log.Info("wizard event ignored",
			zap.String("session_id", sessionID),
			zap.String("action", string(ev.Action)),
			zap.Stringer("from", ev.From),
			zap.Stringer("current", ev.To),
			zap.String("reason", string(ev.Reason)),
		)
	}
}

// payloadFor picks the field the screen on FromStep produces.
func payloadFor(req request_models.AdvanceRequest) (wizard.Payload, error) {
	switch req.FromStep {
	case wizard.SkinTypeAnalysis:
		return wizard.SkinTypeAnswer(strings.TrimSpace(req.SkinType)), nil
	case wizard.MainMenu:
		return wizard.Branch(strings.ToLower(strings.TrimSpace(req.Branch))), nil
	case wizard.AllergyCheck:
		return wizard.AllergyAnswer(req.Allergies), nil
	case wizard.BrandPick:
		brand := strings.TrimSpace(req.Brand)
		if brand == "" {
			return nil, utils.ErrBrandRequired
		}
		return wizard.BrandAnswer(brand), nil
	default:
		return nil, nil
	}
}
