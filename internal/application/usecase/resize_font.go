package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/fontsized/internal/application/port"
	"github.com/bnema/fontsized/internal/domain/fontspec"
	"github.com/bnema/fontsized/internal/logging"
)

// ResizeFontUseCase steps every font role by a signed delta, pushes the
// result to the host, and writes it through to the resource database.
type ResizeFontUseCase struct {
	store port.ResourceStore
	sync  *SyncDisplayUseCase

	mu     sync.RWMutex
	pol    fontspec.StepPolicy
	prefix string
}

// NewResizeFontUseCase creates the resize use case. prefix is the resource
// name prefix the host reads its font settings under (e.g. "URxvt").
func NewResizeFontUseCase(store port.ResourceStore, syncUC *SyncDisplayUseCase, pol fontspec.StepPolicy, prefix string) *ResizeFontUseCase {
	return &ResizeFontUseCase{
		store:  store,
		sync:   syncUC,
		pol:    pol,
		prefix: prefix,
	}
}

// SetPolicy updates the step policy, typically on config reload.
func (uc *ResizeFontUseCase) SetPolicy(pol fontspec.StepPolicy) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.pol = pol
}

// Execute steps the set by delta, pushes the (possibly DPI-scaled)
// descriptors to the host, and persists the unscaled set.
//
// The base-file load and re-derive around the merge are best-effort; a
// failed merge is fatal and aborts the handler.
func (uc *ResizeFontUseCase) Execute(ctx context.Context, set *fontspec.Set, delta int, dpi float64) error {
	log := logging.FromContext(ctx)

	uc.mu.RLock()
	pol, prefix := uc.pol, uc.prefix
	uc.mu.RUnlock()

	for _, role := range fontspec.Roles() {
		set.Replace(role, set.Get(role).Step(delta, pol))
	}
	log.Info().Int("delta", delta).Str("font", set.Get(fontspec.RolePrimary).String()).Msg("font size stepped")

	if err := uc.sync.Push(ctx, set, dpi); err != nil {
		return err
	}

	return uc.persist(ctx, set, prefix)
}

func (uc *ResizeFontUseCase) persist(ctx context.Context, set *fontspec.Set, prefix string) error {
	log := logging.FromContext(ctx)

	if err := uc.store.LoadBase(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to reload resource base file")
	}

	if err := uc.store.Merge(ctx, ResourceLines(prefix, set)); err != nil {
		return fmt.Errorf("failed to merge font resources: %w", err)
	}

	if err := uc.store.RederiveBase(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to re-derive resource base file")
	}
	return nil
}

// ResourceLines serializes the set into merge-stream lines, one per role in
// the fixed role order.
func ResourceLines(prefix string, set *fontspec.Set) []string {
	roles := fontspec.Roles()
	lines := make([]string, 0, len(roles))
	for _, role := range roles {
		lines = append(lines, fmt.Sprintf("%s.%s: %s", prefix, role, set.Get(role)))
	}
	return lines
}
