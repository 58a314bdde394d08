package badges

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/creelhq/creel/creel/database/models"
	"github.com/creelhq/creel/creel/database/repositories"
)

// Manager drives the two-state lifecycle of each (user, badge) pair:
// unearned and earned. Awards and revokes inside one pass share a single
// statistics snapshot so a record change mid-pass can never produce both a
// spurious grant and a spurious revoke.
type Manager struct {
	badges     repositories.BadgeRepository
	awards     repositories.UserBadgeRepository
	aggregator *Aggregator
	evaluator  *Evaluator
	now        func() time.Time
}

func NewManager(
	badges repositories.BadgeRepository,
	awards repositories.UserBadgeRepository,
	aggregator *Aggregator,
	evaluator *Evaluator,
) *Manager {
	return &Manager{
		badges:     badges,
		awards:     awards,
		aggregator: aggregator,
		evaluator:  evaluator,
		now:        time.Now,
	}
}

// SyncResult reports the transitions one pass produced.
type SyncResult struct {
	Awarded []*models.BadgeDefinition
	Revoked []*models.BadgeDefinition
}

// Progress describes how close a user is to one badge. Computed on demand,
// never persisted.
type Progress struct {
	BadgeID    string  `json:"badge_id"`
	Name       string  `json:"name"`
	Current    float64 `json:"current"`
	Required   float64 `json:"required"`
	Percentage int     `json:"percentage"`
	Earned     bool    `json:"earned"`
}

// Sync evaluates every active badge against one fresh statistics snapshot,
// awarding newly satisfied badges and revoking ones no longer satisfied.
func (m *Manager) Sync(ctx context.Context, userID string) (*SyncResult, error) {
	return m.run(ctx, userID, true, true)
}

// AwardEligible grants satisfied badges without touching existing awards.
func (m *Manager) AwardEligible(ctx context.Context, userID string) (*SyncResult, error) {
	return m.run(ctx, userID, true, false)
}

// RevokeIneligible removes awards whose requirements no longer hold, e.g.
// after an activity edit or an administrator tightening a definition.
func (m *Manager) RevokeIneligible(ctx context.Context, userID string) (*SyncResult, error) {
	return m.run(ctx, userID, false, true)
}

func (m *Manager) run(ctx context.Context, userID string, award, revoke bool) (*SyncResult, error) {
	stats, err := m.aggregator.Compute(ctx, userID)
	if err != nil {
		return nil, err
	}

	defs, err := m.badges.GetActiveBadges(ctx)
	if err != nil {
		return nil, err
	}

	earned, err := m.earnedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	for _, def := range defs {
		satisfied, err := m.evaluator.IsSatisfied(ctx, def, stats, userID)
		if err != nil {
			return nil, err
		}

		_, has := earned[def.BadgeID]
		switch {
		case satisfied && !has && award:
			if err := m.awards.Create(ctx, &models.UserBadge{
				UserID:        userID,
				BadgeID:       def.BadgeID,
				AwardedAt:     m.now(),
				StatsSnapshot: stats,
				Notified:      false,
			}); err != nil {
				return nil, err
			}
			result.Awarded = append(result.Awarded, def)
			slog.Info("Badge awarded",
				slog.String("type", "badges"),
				slog.String("user_id", userID),
				slog.String("badge_id", def.BadgeID))
		case !satisfied && has && revoke:
			if err := m.awards.Delete(ctx, userID, def.BadgeID); err != nil {
				return nil, err
			}
			result.Revoked = append(result.Revoked, def)
			slog.Info("Badge revoked",
				slog.String("type", "badges"),
				slog.String("user_id", userID),
				slog.String("badge_id", def.BadgeID))
		}
	}
	return result, nil
}

func (m *Manager) earnedSet(ctx context.Context, userID string) (map[string]*models.UserBadge, error) {
	awards, err := m.awards.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	earned := make(map[string]*models.UserBadge, len(awards))
	for _, a := range awards {
		earned[a.BadgeID] = a
	}
	return earned, nil
}

// BadgeProgress reports progress toward one badge from a caller-supplied
// statistics snapshot. Scalar requirements always follow the percentage
// formula, so an earned badge whose definition was later tightened shows
// the honest fraction while Earned stays true. Badges with no scalar
// target show 0 until earned and 100 after.
func (m *Manager) BadgeProgress(def *models.BadgeDefinition, stats Stats, earned bool) Progress {
	p := Progress{
		BadgeID:  def.BadgeID,
		Name:     def.Name,
		Required: def.RequirementValue,
		Earned:   earned,
	}
	field, scalar := progressField(def)
	if scalar {
		p.Current = stats.Get(field)
	}
	switch {
	case scalar && p.Required > 0:
		pct := int(math.Round(p.Current / p.Required * 100))
		if pct > 100 {
			pct = 100
		}
		p.Percentage = pct
	case earned:
		p.Percentage = 100
	}
	return p
}

// ProgressAll reports progress for every active badge using one statistics
// snapshot. Recomputing stats per badge would multiply cost by the catalog
// size, so everything here shares a single Compute call.
func (m *Manager) ProgressAll(ctx context.Context, userID string) ([]Progress, error) {
	stats, err := m.aggregator.Compute(ctx, userID)
	if err != nil {
		return nil, err
	}
	defs, err := m.badges.GetActiveBadges(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := m.earnedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]Progress, 0, len(defs))
	for _, def := range defs {
		_, has := earned[def.BadgeID]
		out = append(out, m.BadgeProgress(def, stats, has))
	}
	return out, nil
}

// progressField resolves the statistic a badge's progress bar tracks.
func progressField(def *models.BadgeDefinition) (string, bool) {
	switch def.RequirementKind {
	case KindTimeOfDay:
		field, ok := timeOfDayFields[metaString(def.RequirementMeta, "time")]
		return field, ok
	case KindMoonPhase:
		field, ok := moonBucketFields[metaString(def.RequirementMeta, "phase")]
		return field, ok
	case KindSeason:
		field, ok := seasonFields[metaString(def.RequirementMeta, "season")]
		return field, ok
	case KindMoonVariety:
		return StatMoonPhaseCount, true
	case KindSeasonVariety:
		return StatSeasonCount, true
	case KindMonthVariety:
		return StatMonthCount, true
	default:
		if field, ok := scalarKindFields[def.RequirementKind]; ok {
			return field, true
		}
		if def.RequirementField != "" && def.RequirementKind != KindChallenge {
			return def.RequirementField, true
		}
		return "", false
	}
}
