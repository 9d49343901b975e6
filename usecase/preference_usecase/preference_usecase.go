package preference_usecase

import (
	"context"
	"math"
	"time"

	"wikifeed/config"
	"wikifeed/domain"
	"wikifeed/port/user_events_port"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
)

// PreferenceUsecase derives per-category preference weights from a user's
// recent engagement history. Each event contributes
//
//	weight(kind) * timeFactor * decayBase^daysAgo
//
// to every category of its article, and the accumulated totals are
// normalized into [-1, 1] by the largest absolute value.
type PreferenceUsecase struct {
	userEventsGateway user_events_port.UserEventsPort
	engagement        config.EngagementConfig
	now               func() time.Time
}

func NewPreferenceUsecase(userEventsGateway user_events_port.UserEventsPort, engagement config.EngagementConfig) *PreferenceUsecase {
	return &PreferenceUsecase{
		userEventsGateway: userEventsGateway,
		engagement:        engagement,
		now:               time.Now,
	}
}

// WithClock overrides the time source. Tests use it to pin decay math to a
// fixed instant.
func (u *PreferenceUsecase) WithClock(now func() time.Time) *PreferenceUsecase {
	u.now = now
	return u
}

// ComputePreferences returns the user's normalized category weights. A user
// with no events inside the window gets an empty map; callers treat every
// category as neutral then.
func (u *PreferenceUsecase) ComputePreferences(ctx context.Context, userID uuid.UUID) (domain.PreferenceWeights, error) {
	if userID == uuid.Nil {
		return nil, errors.ValidationError("user_id must not be empty", nil)
	}

	since := u.now().AddDate(0, 0, -u.engagement.WindowDays)
	events, err := u.userEventsGateway.FetchUserEvents(ctx, userID, since)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch user events", "error", err, "user_id", userID)
		return nil, err
	}

	accumulated := u.accumulate(events)

	return normalize(accumulated), nil
}

func (u *PreferenceUsecase) accumulate(events []*domain.CategorizedEvent) map[domain.Category]float64 {
	weights := u.engagement.EventWeights()
	now := u.now()

	accumulated := make(map[domain.Category]float64)
	for _, event := range events {
		base, ok := weights[string(event.Kind)]
		if !ok {
			continue
		}

		score := base * u.timeFactor(event.DurationSeconds) * u.recencyFactor(now, event.CreatedAt)
		for _, category := range event.Categories {
			accumulated[category] += score
		}
	}

	return accumulated
}

// timeFactor scales an event by how long the user actually spent, capped at
// the configured ceiling. Events that carry no duration (bookmarks, skips)
// get a neutral 0.5 so they still move the weights.
func (u *PreferenceUsecase) timeFactor(durationSeconds int) float64 {
	if durationSeconds <= 0 {
		return 0.5
	}
	return math.Min(float64(durationSeconds)/float64(u.engagement.TimeFactorCapSeconds), 1.0)
}

// recencyFactor decays by whole elapsed days, so everything inside the
// first 24 hours counts at full strength.
func (u *PreferenceUsecase) recencyFactor(now, createdAt time.Time) float64 {
	daysAgo := math.Floor(now.Sub(createdAt).Hours() / 24)
	if daysAgo < 0 {
		daysAgo = 0
	}
	return math.Pow(u.engagement.RecencyDecayBase, daysAgo)
}

// normalize divides by the largest absolute total so the strongest signal
// lands at +1 or -1 and every other weight keeps its sign and proportion.
func normalize(accumulated map[domain.Category]float64) domain.PreferenceWeights {
	maxAbs := 0.0
	for _, total := range accumulated {
		if abs := math.Abs(total); abs > maxAbs {
			maxAbs = abs
		}
	}

	if maxAbs == 0 {
		return domain.PreferenceWeights{}
	}

	normalized := make(domain.PreferenceWeights, len(accumulated))
	for category, total := range accumulated {
		normalized[category] = total / maxAbs
	}

	return normalized
}
