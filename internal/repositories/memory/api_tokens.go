package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
)

// Create persists a new API token.
func (s *Store) Create(_ context.Context, token *domain.APIToken) error {
	if token == nil {
		return errors.New("token cannot be nil")
	}
	return s.write(func(st *state) error {
		if _, ok := st.apiTokens[token.ID]; ok {
			return fmt.Errorf("%w: api token %s", apperrors.ErrDuplicate, token.ID)
		}
		st.apiTokens[token.ID] = *token
		return nil
	})
}

// FindByID retrieves a live API token by id.
func (s *Store) FindByID(_ context.Context, id string) (*domain.APIToken, error) {
	return read(s, func(st *state) (*domain.APIToken, error) {
		t, ok := st.apiTokens[id]
		if !ok || t.DeletedAt != nil {
			return nil, apperrors.NewNotFoundError("api token", id)
		}
		return &t, nil
	})
}

// FindByUserID retrieves the live API tokens of a user, newest first.
func (s *Store) FindByUserID(_ context.Context, userID string) ([]domain.APIToken, error) {
	return read(s, func(st *state) ([]domain.APIToken, error) {
		tokens := []domain.APIToken{}
		for _, t := range st.apiTokens {
			if t.UserID == userID && t.DeletedAt == nil {
				tokens = append(tokens, t)
			}
		}
		sort.Slice(tokens, func(i, j int) bool { return tokens[i].CreatedAt.After(tokens[j].CreatedAt) })
		return tokens, nil
	})
}

// TouchLastUsed records that a token was just used.
func (s *Store) TouchLastUsed(_ context.Context, id string) error {
	return s.updateToken(id, func(t *domain.APIToken, now time.Time) { t.LastUsedAt = &now })
}

// Delete soft-deletes an API token.
func (s *Store) Delete(_ context.Context, id string) error {
	return s.updateToken(id, func(t *domain.APIToken, now time.Time) { t.DeletedAt = &now })
}

// DeleteByUserID soft-deletes every API token of a user.
func (s *Store) DeleteByUserID(_ context.Context, userID string) error {
	return s.write(func(st *state) error {
		now := time.Now().UTC()
		for id, t := range st.apiTokens {
			if t.UserID == userID && t.DeletedAt == nil {
				t.DeletedAt = &now
				st.apiTokens[id] = t
			}
		}
		return nil
	})
}

func (s *Store) updateToken(id string, change func(*domain.APIToken, time.Time)) error {
	return s.write(func(st *state) error {
		t, ok := st.apiTokens[id]
		if !ok || t.DeletedAt != nil {
			return apperrors.NewNotFoundError("api token", id)
		}
		now := time.Now().UTC()
		change(&t, now)
		t.UpdatedAt = now
		st.apiTokens[id] = t
		return nil
	})
}
