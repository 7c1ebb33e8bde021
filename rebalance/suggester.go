package rebalance

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/mkarlen/fairshare/availability"
	"github.com/mkarlen/fairshare/balance"
	"github.com/mkarlen/fairshare/internal/logging"
	"github.com/mkarlen/fairshare/internal/metrics"
	"github.com/mkarlen/fairshare/internal/suggestid"
	"github.com/mkarlen/fairshare/types"
	"github.com/mkarlen/fairshare/weight"
)

// Suggester computes rebalance suggestions from a load snapshot.
//
// Suggestions are greedy, one move at a time: each round relocates one
// pending task away from the currently most-loaded member, preferring the
// lightest non-urgent task whose move most reduces the projected imbalance
// ratio. The computation is pure; identical snapshots yield identical
// lists.
type Suggester struct {
	model      *weight.Model
	thresholds balance.Thresholds
	logger     types.Logger
	metrics    types.RebalanceMetrics
}

// SuggesterOption configures a Suggester.
type SuggesterOption func(*Suggester)

// WithSuggesterLogger sets the logger used for move tracing.
func WithSuggesterLogger(logger types.Logger) SuggesterOption {
	return func(s *Suggester) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSuggesterMetrics sets the metrics collector for suggestion runs.
func WithSuggesterMetrics(m types.RebalanceMetrics) SuggesterOption {
	return func(s *Suggester) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewSuggester creates a suggester.
//
// Parameters:
//   - model: Weight model for task points (nil uses the default model)
//   - thresholds: Balance thresholds; the balanced ratio bounds the stop
//     condition and the overload fields guard proposed targets (zero
//     fields use package defaults)
//   - opts: Optional configuration
//
// Returns:
//   - *Suggester: Initialized suggester
func NewSuggester(model *weight.Model, thresholds balance.Thresholds, opts ...SuggesterOption) *Suggester {
	if model == nil {
		model = weight.NewModel()
	}

	s := &Suggester{
		model:      model,
		thresholds: thresholds.WithDefaults(),
		logger:     logging.NewNop(),
		metrics:    metrics.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// move is one evaluated relocation candidate.
type move struct {
	task      types.Task
	points    int
	target    string
	projected float64
}

// Suggest proposes up to maxSuggestions task moves that reduce the
// household imbalance ratio.
//
// Each round identifies the most-loaded member, considers that member's
// pending tasks in ascending urgency-adjusted weight (so critical and
// overdue work is kept with its owner unless moving it is strictly
// better), and evaluates moving each to every other eligible member. The
// move with the lowest projected ratio wins; ties keep the earlier
// candidate, favoring less urgent and lighter tasks, then the lower
// member ID. A move
// is discarded when it would push a target who was not overloaded into
// overload. Rounds stop at the suggestion budget, when the ratio reaches
// the balanced threshold, or when no improving move remains. A source
// whose load is entirely historical (zero pending tasks) ends the run
// with whatever was collected so far.
//
// The snapshot loads stand in for each member's current-week load in the
// capacity check; callers wanting a stricter week window should pass
// profiles aggregated over that window.
//
// Parameters:
//   - tasks: Household task snapshot (pending and completed)
//   - members: Household members (deactivated members are skipped)
//   - profiles: Load profiles the ratio is computed from, typically one
//     aggregation result
//   - ref: Reference date for eligibility of undated tasks
//   - maxSuggestions: Upper bound on proposed moves (<= 0 yields none)
//
// Returns:
//   - []types.RebalanceSuggestion: Proposed moves in application order
func (s *Suggester) Suggest(
	tasks []types.Task,
	members []types.Member,
	profiles []types.LoadProfile,
	ref time.Time,
	maxSuggestions int,
) []types.RebalanceSuggestion {
	if maxSuggestions <= 0 || len(profiles) < 2 {
		return nil
	}

	loads := make(map[string]int, len(profiles))
	order := make([]string, 0, len(profiles))
	total := 0
	for _, p := range profiles {
		loads[p.MemberID] = p.TotalWeight
		order = append(order, p.MemberID)
		total += p.TotalWeight
	}
	slices.Sort(order)

	memberByID := make(map[string]types.Member, len(members))
	for _, m := range members {
		if !m.Inactive {
			memberByID[m.ID] = m
		}
	}

	// Working copy of pending assignments so applied moves shape later
	// rounds.
	assignee := make(map[string]string)
	pointsOf := make(map[string]int)
	rankOf := make(map[string]float64)
	pending := make([]types.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Pending() && task.AssigneeID != "" {
			assignee[task.ID] = task.AssigneeID
			pointsOf[task.ID] = s.model.Points(task)
			rankOf[task.ID] = s.model.RankingWeight(task, ref)
			pending = append(pending, task)
		}
	}

	avg := 0.0
	if len(profiles) > 0 {
		avg = float64(total) / float64(len(profiles))
	}

	snapshotRatio := imbalanceRatio(loads, order)
	ratio := snapshotRatio

	var suggestions []types.RebalanceSuggestion
	for len(suggestions) < maxSuggestions && ratio > s.thresholds.BalancedMaxRatio {
		source := mostLoaded(loads, order)
		candidates := s.sourceCandidates(pending, assignee, rankOf, pointsOf, source)
		if len(candidates) == 0 {
			break
		}

		best := s.bestMove(candidates, order, memberByID, loads, pointsOf, assignee, avg, ref)
		if best == nil || best.projected >= ratio {
			break
		}

		suggestion := types.RebalanceSuggestion{
			ID:             suggestid.For(best.task.ID, source, best.target),
			TaskID:         best.task.ID,
			FromMemberID:   source,
			ToMemberID:     best.target,
			WeightDelta:    best.points,
			ProjectedRatio: best.projected,
			SnapshotRatio:  snapshotRatio,
		}
		suggestions = append(suggestions, suggestion)

		s.logger.Debug("rebalance move selected",
			"task_id", best.task.ID,
			"from", source,
			"to", best.target,
			"points", best.points,
			"projected_ratio", best.projected,
		)

		loads[source] -= best.points
		loads[best.target] += best.points
		assignee[best.task.ID] = best.target
		ratio = best.projected
	}

	s.metrics.RecordSuggestions(len(suggestions), snapshotRatio, ratio)

	return suggestions
}

// sourceCandidates returns the source member's pending tasks sorted by
// ascending urgency-adjusted weight (the urgency multiplier makes critical
// and overdue tasks rank heavier, so non-urgent work is offered for
// relocation first and urgent work tends to stay with its owner), ties by
// points and then task ID, honoring moves already applied to the working
// assignment map.
func (s *Suggester) sourceCandidates(
	pending []types.Task,
	assignee map[string]string,
	rankOf map[string]float64,
	pointsOf map[string]int,
	source string,
) []types.Task {
	candidates := make([]types.Task, 0, len(pending))
	for _, task := range pending {
		if assignee[task.ID] == source {
			candidates = append(candidates, task)
		}
	}

	slices.SortFunc(candidates, func(a, b types.Task) int {
		if d := cmp.Compare(rankOf[a.ID], rankOf[b.ID]); d != 0 {
			return d
		}
		if d := pointsOf[a.ID] - pointsOf[b.ID]; d != 0 {
			return d
		}

		return strings.Compare(a.ID, b.ID)
	})

	return candidates
}

// bestMove evaluates every candidate task against every other member and
// returns the move with the lowest projected ratio, or nil when no legal
// move exists.
func (s *Suggester) bestMove(
	candidates []types.Task,
	order []string,
	memberByID map[string]types.Member,
	loads map[string]int,
	pointsOf map[string]int,
	assignee map[string]string,
	avg float64,
	ref time.Time,
) *move {
	var best *move

	for _, task := range candidates {
		points := pointsOf[task.ID]
		source := assignee[task.ID]

		for _, targetID := range order {
			if targetID == source {
				continue
			}
			target, ok := memberByID[targetID]
			if !ok {
				continue
			}
			if !availability.IsEligible(target, task, assignmentDate(task, ref), points, loads[targetID]) {
				continue
			}
			if s.newlyOverloaded(loads[targetID], loads[targetID]+points, avg) {
				continue
			}

			projected := ratioAfterMove(loads, order, source, targetID, points)
			if best == nil || projected < best.projected {
				best = &move{task: task, points: points, target: targetID, projected: projected}
			}
		}
	}

	return best
}

// newlyOverloaded reports whether a load increase pushes a member who was
// not overloaded past either overload condition. Members already
// overloaded before the move do not veto it; the guard only prevents
// creating new overload.
func (s *Suggester) newlyOverloaded(before, after int, avg float64) bool {
	return !s.overloaded(before, avg) && s.overloaded(after, avg)
}

func (s *Suggester) overloaded(load int, avg float64) bool {
	if load > s.thresholds.OverloadPoints {
		return true
	}

	return avg > 0 && float64(load) > avg*s.thresholds.OverloadAverageFactor
}

// assignmentDate resolves the date eligibility is checked against: the
// task's due date when present, the reference date otherwise.
func assignmentDate(task types.Task, ref time.Time) time.Time {
	if task.DueDate != nil {
		return *task.DueDate
	}

	return ref
}

// imbalanceRatio mirrors the classifier's ratio definition: highest load
// over max(lowest load, 1), computed across members with nonzero load.
// Fewer than two loaded members is trivially balanced at 1.
func imbalanceRatio(loads map[string]int, order []string) float64 {
	loaded := 0
	maxLoad, minLoad := 0, 0
	for _, id := range order {
		load := loads[id]
		if load == 0 {
			continue
		}
		if loaded == 0 || load > maxLoad {
			maxLoad = load
		}
		if loaded == 0 || load < minLoad {
			minLoad = load
		}
		loaded++
	}

	if loaded < 2 {
		return 1
	}

	floor := minLoad
	if floor < 1 {
		floor = 1
	}

	return float64(maxLoad) / float64(floor)
}

// ratioAfterMove computes the imbalance ratio as if points moved from
// source to target, without mutating the working loads.
func ratioAfterMove(loads map[string]int, order []string, source, target string, points int) float64 {
	adjusted := make(map[string]int, len(loads))
	for id, load := range loads {
		adjusted[id] = load
	}
	adjusted[source] -= points
	adjusted[target] += points

	return imbalanceRatio(adjusted, order)
}

// mostLoaded returns the member carrying the highest load, ties broken by
// ascending member ID via the sorted order slice.
func mostLoaded(loads map[string]int, order []string) string {
	best := ""
	bestLoad := -1
	for _, id := range order {
		if loads[id] > bestLoad {
			best = id
			bestLoad = loads[id]
		}
	}

	return best
}
