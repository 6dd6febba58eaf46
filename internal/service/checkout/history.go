package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"apotek-storefront/internal/kv"
)

const (
	namesKeyPrefix = "apotek-checkout-names:"
	areasKeyPrefix = "apotek-checkout-areas:"

	historyLimit = 5
)

// History remembers the last few distinct customer names and delivery areas
// per session, to speed up repeat orders. The lists are advisory only and
// never block submission.
type History struct {
	store  kv.Store
	logger *log.Logger
}

func NewHistory(store kv.Store, logger *log.Logger) *History {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &History{store: store, logger: logger}
}

// Names returns the remembered customer names, most recent first.
func (h *History) Names(ctx context.Context, sessionID string) []string {
	return h.load(ctx, namesKeyPrefix+sessionID)
}

// Areas returns the remembered delivery areas, most recent first.
func (h *History) Areas(ctx context.Context, sessionID string) []string {
	return h.load(ctx, areasKeyPrefix+sessionID)
}

// RecordName moves the trimmed name to the front of the list. No-op on empty
// input.
func (h *History) RecordName(ctx context.Context, sessionID, name string) error {
	return h.record(ctx, namesKeyPrefix+sessionID, name)
}

// RecordArea moves the trimmed area to the front of the list. No-op on empty
// input.
func (h *History) RecordArea(ctx context.Context, sessionID, area string) error {
	return h.record(ctx, areasKeyPrefix+sessionID, area)
}

func (h *History) ClearNames(ctx context.Context, sessionID string) error {
	return h.store.Delete(ctx, namesKeyPrefix+sessionID)
}

func (h *History) ClearAreas(ctx context.Context, sessionID string) error {
	return h.store.Delete(ctx, areasKeyPrefix+sessionID)
}

func (h *History) ClearAll(ctx context.Context, sessionID string) error {
	if err := h.ClearNames(ctx, sessionID); err != nil {
		return err
	}
	return h.ClearAreas(ctx, sessionID)
}

func (h *History) record(ctx context.Context, key, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	updated := remember(h.load(ctx, key), value)
	raw, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("checkout history: marshal: %w", err)
	}
	if err := h.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("checkout history: persist: %w", err)
	}
	return nil
}

func (h *History) load(ctx context.Context, key string) []string {
	raw, err := h.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrNoKey) {
			h.logger.Printf("checkout history: load key=%s error=%v", key, err)
		}
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		h.logger.Printf("checkout history: load key=%s malformed, resetting: %v", key, err)
		return nil
	}
	return list
}

// remember puts value at the front, drops any prior occurrence and caps the
// list at historyLimit entries.
func remember(list []string, value string) []string {
	out := make([]string, 0, historyLimit)
	out = append(out, value)
	for _, item := range list {
		if item != value {
			out = append(out, item)
		}
		if len(out) == historyLimit {
			break
		}
	}
	return out
}
