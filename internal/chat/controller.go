package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/translatechat/internal/language"
	"github.com/at-ishikawa/translatechat/internal/translation"
)

//go:generate mockgen -source=controller.go -destination=../mocks/chat/mock_notifier.go -package=mock_chat Notifier

// Notification is a short message shown to the user, like a toast.
type Notification struct {
	Title       string
	Description string
	Destructive bool
}

type Notifier interface {
	Notify(notification Notification)
}

// Controller submits texts for translation and records them in a Session.
type Controller struct {
	session    *Session
	translator translation.Translator
	notifier   Notifier

	mu        sync.RWMutex
	source    language.Code
	target    language.Code
	observers []func(Exchange)

	now   func() time.Time
	newID func() (string, error)
	wg    sync.WaitGroup
}

type ControllerOption func(*Controller)

// WithClock replaces time.Now for exchange timestamps.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) {
		c.now = now
	}
}

// WithIDGenerator replaces the time ordered UUID ids.
func WithIDGenerator(newID func() (string, error)) ControllerOption {
	return func(c *Controller) {
		c.newID = newID
	}
}

func NewController(
	session *Session,
	translator translation.Translator,
	notifier Notifier,
	source, target language.Code,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		session:    session,
		translator: translator,
		notifier:   notifier,
		source:     source,
		target:     target,
		now:        time.Now,
		newID:      newUUIDv7,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("uuid.NewV7 > %w", err)
	}
	return id.String(), nil
}

func (c *Controller) Session() *Session {
	return c.session
}

// Languages returns the current source and target languages.
func (c *Controller) Languages() (language.Code, language.Code) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source, c.target
}

// SetSource changes the source language. Choosing the current target swaps the pair,
// since a language is never translated into itself.
func (c *Controller) SetSource(code language.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if code == c.target {
		c.source, c.target = language.Swap(c.source, c.target)
		return
	}
	c.source = code
}

// SetTarget changes the target language. Choosing the current source swaps the pair.
func (c *Controller) SetTarget(code language.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if code == c.source {
		c.source, c.target = language.Swap(c.source, c.target)
		return
	}
	c.target = code
}

func (c *Controller) Swap() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.source, c.target = language.Swap(c.source, c.target)
}

// OnChange registers an observer called after an exchange is added or translated.
func (c *Controller) OnChange(observer func(Exchange)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, observer)
}

func (c *Controller) notifyChange(exchange Exchange) {
	c.mu.RLock()
	observers := append([]func(Exchange){}, c.observers...)
	c.mu.RUnlock()

	for _, observer := range observers {
		observer(exchange)
	}
}

// Submit records text as a new exchange and translates it in the background.
// It returns the id of the new exchange. Empty text is ignored with ErrEmptyText.
func (c *Controller) Submit(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}

	id, err := c.newID()
	if err != nil {
		return "", fmt.Errorf("newID > %w", err)
	}
	source, target := c.Languages()
	exchange := Exchange{
		ID:             id,
		OriginalText:   text,
		SourceLanguage: source,
		TargetLanguage: target,
		CreatedAt:      c.now(),
		IsUserAuthored: true,
	}
	if err := c.session.Append(exchange); err != nil {
		return "", fmt.Errorf("session.Append > %w", err)
	}
	c.notifyChange(exchange)

	// A requested translation always completes, even if the caller goes away.
	resolveCtx := context.WithoutCancel(ctx)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.resolve(resolveCtx, exchange)
	}()
	return id, nil
}

func (c *Controller) resolve(ctx context.Context, exchange Exchange) {
	translated := c.translator.Translate(ctx, exchange.OriginalText, exchange.SourceLanguage, exchange.TargetLanguage)

	updated, err := c.session.Resolve(exchange.ID, translated)
	if err != nil {
		slog.Default().Error("failed to record a translation",
			"id", exchange.ID,
			"error", err,
		)
		return
	}
	c.notifyChange(updated)
	c.notifier.Notify(Notification{
		Title:       "Translation completed",
		Description: "Message translated successfully",
	})
}

// Wait blocks until every submitted exchange is translated.
func (c *Controller) Wait() {
	c.wg.Wait()
}
