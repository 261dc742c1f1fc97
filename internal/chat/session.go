package chat

import (
	"fmt"
	"sync"
)

// Session is an append-only list of exchanges. Each exchange is updated in place
// at most once, and always by id.
type Session struct {
	mu        sync.RWMutex
	exchanges []Exchange
	index     map[string]int
}

func NewSession() *Session {
	return &Session{
		index: make(map[string]int),
	}
}

func (s *Session) Append(exchange Exchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[exchange.ID]; ok {
		return fmt.Errorf("append %s > %w", exchange.ID, ErrDuplicateID)
	}
	s.index[exchange.ID] = len(s.exchanges)
	s.exchanges = append(s.exchanges, exchange)
	return nil
}

// Resolve sets the translation of the exchange with the given id.
func (s *Session) Resolve(id, translation string) (Exchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return Exchange{}, fmt.Errorf("resolve %s > %w", id, ErrNotFound)
	}
	if s.exchanges[i].IsTranslated {
		return s.exchanges[i], fmt.Errorf("resolve %s > %w", id, ErrAlreadyResolved)
	}
	s.exchanges[i].TranslatedText = translation
	s.exchanges[i].IsTranslated = true
	return s.exchanges[i], nil
}

func (s *Session) Get(id string) (Exchange, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return Exchange{}, false
	}
	return s.exchanges[i], true
}

// At returns the exchange at a 1-based position, as shown to the user.
func (s *Session) At(position int) (Exchange, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if position < 1 || position > len(s.exchanges) {
		return Exchange{}, false
	}
	return s.exchanges[position-1], true
}

// Position returns the 1-based position of the exchange with the given id.
func (s *Session) Position(id string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return 0, false
	}
	return i + 1, true
}

// Exchanges returns a snapshot in submission order.
func (s *Session) Exchanges() []Exchange {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exchanges := make([]Exchange, len(s.exchanges))
	copy(exchanges, s.exchanges)
	return exchanges
}

func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.exchanges)
}

// Pending counts exchanges still waiting for a translation.
func (s *Session) Pending() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := 0
	for _, e := range s.exchanges {
		if !e.IsTranslated {
			pending++
		}
	}
	return pending
}
