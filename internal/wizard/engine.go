package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	ErrNoConversation = errors.New("no active conversation")
	ErrUnknownScene   = errors.New("unknown scene")
)

type Outcome string

const (
	OutcomeAdvanced  Outcome = "advanced"
	OutcomeRepeated  Outcome = "repeated"
	OutcomeCompleted Outcome = "completed"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeFailed    Outcome = "failed"
)

// Presenter is the chat side of the engine.
type Presenter interface {
	// ShowPrompt renders a prompt, replacing replaceID when it is non-zero,
	// and returns the id of the message now holding the prompt.
	ShowPrompt(ctx context.Context, actorID int64, prompt Prompt, replaceID int) (int, error)
	Notice(ctx context.Context, actorID int64, text string) error
}

// OutcomeObserver is notified once per handled event; used for metrics.
type OutcomeObserver func(sceneKey string, outcome Outcome)

type Engine struct {
	scenes    map[string]*Scene
	store     SessionStore
	presenter Presenter
	observe   OutcomeObserver
}

func NewEngine(store SessionStore, presenter Presenter, scenes ...*Scene) *Engine {
	e := &Engine{
		scenes:    make(map[string]*Scene, len(scenes)),
		store:     store,
		presenter: presenter,
	}
	for _, sc := range scenes {
		e.Register(sc)
	}
	return e
}

func (e *Engine) Register(sc *Scene) {
	e.scenes[sc.Key] = sc
}

func (e *Engine) OnOutcome(fn OutcomeObserver) {
	e.observe = fn
}

// Start binds a fresh conversation to actorID, replacing any active one.
func (e *Engine) Start(ctx context.Context, actorID int64, sceneKey string, initial State) error {
	sc, ok := e.scenes[sceneKey]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScene, sceneKey)
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("scene %s has no steps", sceneKey)
	}

	prev, _, err := e.store.Load(ctx, actorID)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	conv := &Conversation{SceneKey: sceneKey, State: initial.clone()}
	if conv.State == nil {
		conv.State = State{}
	}
	if prev != nil {
		conv.PromptMessageID = prev.PromptMessageID
	}
	if err := e.render(ctx, actorID, sc, conv); err != nil {
		return err
	}
	return e.store.Save(ctx, actorID, conv)
}

func (e *Engine) Active(ctx context.Context, actorID int64) (bool, error) {
	_, ok, err := e.store.Load(ctx, actorID)
	return ok, err
}

func (e *Engine) Cancel(ctx context.Context, actorID int64) error {
	return e.store.Delete(ctx, actorID)
}

// HandleEvent feeds ev to the actor's conversation at its current step.
func (e *Engine) HandleEvent(ctx context.Context, ev Event) (Outcome, error) {
	conv, ok, err := e.store.Load(ctx, ev.ActorID)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return "", ErrNoConversation
	}
	sc, ok := e.scenes[conv.SceneKey]
	if !ok {
		_ = e.store.Delete(ctx, ev.ActorID)
		return "", fmt.Errorf("%w: %s", ErrUnknownScene, conv.SceneKey)
	}

	outcome, err := e.step(ctx, ev, sc, conv)
	if e.observe != nil {
		e.observe(sc.Key, outcome)
	}
	return outcome, err
}

func (e *Engine) step(ctx context.Context, ev Event, sc *Scene, conv *Conversation) (Outcome, error) {
	if ev.IsButton && ev.Data == CancelData {
		if err := e.store.Delete(ctx, ev.ActorID); err != nil {
			return OutcomeFailed, err
		}
		e.notice(ctx, ev.ActorID, "Cancelled.")
		return OutcomeCancelled, nil
	}

	st := sc.Steps[conv.Step]
	if err := st.Handle(conv.State, ev); err != nil {
		if IsValidation(err) && conv.Retries < sc.MaxRetries {
			conv.Retries++
			e.notice(ctx, ev.ActorID, validationText(err))
			if rerr := e.render(ctx, ev.ActorID, sc, conv); rerr != nil {
				return OutcomeFailed, rerr
			}
			return OutcomeRepeated, e.store.Save(ctx, ev.ActorID, conv)
		}
		_ = e.store.Delete(ctx, ev.ActorID)
		if IsValidation(err) {
			e.notice(ctx, ev.ActorID, validationText(err)+"\nThe form was closed, start again.")
		} else {
			e.notice(ctx, ev.ActorID, "Something went wrong, the form was closed.")
		}
		return OutcomeFailed, err
	}

	conv.Step++
	conv.Retries = 0
	if conv.Step < len(sc.Steps) {
		if err := e.render(ctx, ev.ActorID, sc, conv); err != nil {
			return OutcomeFailed, err
		}
		return OutcomeAdvanced, e.store.Save(ctx, ev.ActorID, conv)
	}

	// The conversation is discarded before completion so a failing
	// completion can't leave a half-finished wizard behind.
	if err := e.store.Delete(ctx, ev.ActorID); err != nil {
		return OutcomeFailed, err
	}
	if sc.Complete != nil {
		if err := sc.Complete(ctx, ev.ActorID, conv.State.clone()); err != nil {
			e.notice(ctx, ev.ActorID, "Could not finish: "+err.Error())
			return OutcomeFailed, err
		}
	}
	return OutcomeCompleted, nil
}

func (e *Engine) render(ctx context.Context, actorID int64, sc *Scene, conv *Conversation) error {
	st := sc.Steps[conv.Step]
	if st.Prompt == nil {
		return nil
	}
	id, err := e.presenter.ShowPrompt(ctx, actorID, st.Prompt(conv.State), conv.PromptMessageID)
	if err != nil {
		return fmt.Errorf("show prompt %s/%s: %w", sc.Key, st.Name, err)
	}
	conv.PromptMessageID = id
	return nil
}

func (e *Engine) notice(ctx context.Context, actorID int64, text string) {
	if err := e.presenter.Notice(ctx, actorID, text); err != nil {
		log.Warn().Err(err).Int64("actor_id", actorID).Msg("wizard notice failed")
	}
}

func validationText(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return "⚠️ " + verr.Message
	}
	return "⚠️ " + err.Error()
}
