package core

import (
	"math"
	"sort"
)

// normalizedMetrics holds one path's per-dimension values mapped to [0, 1]
// such that higher normalized is always more desirable.
type normalizedMetrics struct {
	cost      float64
	speed     float64
	liquidity float64
	risk      float64
}

type normalizedPath struct {
	path       Path
	normalized normalizedMetrics
}

// ScoreNormalizer maps a batch of candidate paths' raw aggregates onto
// [0, 1], higher-is-better, per dimension.
type ScoreNormalizer struct{}

// Normalize computes min/max of total_cost, total_time, total_risk and
// min_liquidity across paths, then maps each path's dimensions into [0, 1].
//
// cost/time/risk: 1 - (x-min)/(max-min)  (lower raw value -> higher score)
//
// liquidity: 1 - (min_liquidity-min)/(max-min)
//
// open question (spec §9): the liquidity formula inverts the intuitive
// "higher liquidity is better" reading — a path with the batch's highest
// liquidity gets the lowest liquidity score. This is reproduced exactly
// because it matches the routing prototype this was distilled from, not
// because it is correct; flagged here for product review rather than
// silently fixed.
//
// When a dimension is constant across the whole batch (max == min), every
// path gets 1.0 for that dimension.
func (ScoreNormalizer) Normalize(paths []Path) []normalizedPath {
	if len(paths) == 0 {
		return nil
	}

	minCost, maxCost := math.Inf(1), math.Inf(-1)
	minTime, maxTime := math.Inf(1), math.Inf(-1)
	minRisk, maxRisk := math.Inf(1), math.Inf(-1)
	minLiq, maxLiq := math.Inf(1), math.Inf(-1)

	for _, p := range paths {
		minCost, maxCost = math.Min(minCost, p.TotalCost), math.Max(maxCost, p.TotalCost)
		minTime, maxTime = math.Min(minTime, p.TotalTime), math.Max(maxTime, p.TotalTime)
		minRisk, maxRisk = math.Min(minRisk, p.TotalRisk), math.Max(maxRisk, p.TotalRisk)
		minLiq, maxLiq = math.Min(minLiq, p.MinLiquidity), math.Max(maxLiq, p.MinLiquidity)
	}

	out := make([]normalizedPath, len(paths))
	for i, p := range paths {
		out[i] = normalizedPath{
			path: p,
			normalized: normalizedMetrics{
				cost:      invertedFraction(p.TotalCost, minCost, maxCost),
				speed:     invertedFraction(p.TotalTime, minTime, maxTime),
				risk:      invertedFraction(p.TotalRisk, minRisk, maxRisk),
				liquidity: invertedFraction(p.MinLiquidity, minLiq, maxLiq),
			},
		}
	}
	return out
}

func invertedFraction(x, min, max float64) float64 {
	if max <= min {
		return 1.0
	}
	return 1.0 - (x-min)/(max-min)
}

type scoredPath struct {
	path  Path
	score float64
}

// Optimizer selects candidate paths either by weighted-sum scalarization
// or by Pareto-front extraction, depending on the caller's RoutingParams.
type Optimizer struct{}

// WeightedSum scores every normalized path as a single scalar:
//
//	score = alpha*cost_n + beta*speed_n + gamma*liquidity_n + delta*(1-risk_n)
//
// open question (spec §9): risk_n is already oriented higher-is-better by
// the normalizer, so the `1 - risk_n` re-inversion here flips it back. This
// is a preserved quirk of the routing prototype, reproduced exactly rather
// than corrected, since "correcting" it would change rank order for every
// caller that weights risk.
func (Optimizer) WeightedSum(normalized []normalizedPath, params RoutingParams) []scoredPath {
	out := make([]scoredPath, len(normalized))
	for i, np := range normalized {
		score := params.Alpha*np.normalized.cost +
			params.Beta*np.normalized.speed +
			params.Gamma*np.normalized.liquidity +
			params.Delta*(1-np.normalized.risk)
		out[i] = scoredPath{path: np.path, score: score}
	}
	return out
}

// ParetoFront retains the paths not dominated by any other path in the
// batch, scores survivors as cost_n+speed_n+liquidity_n-risk_n, sorts
// descending and truncates to maxResults.
//
// Domination (o dominates c) — working entirely in the already
// higher-is-better normalized space:
//
//	o.cost <= c.cost && o.speed <= c.speed && o.risk <= c.risk && o.liquidity >= c.liquidity
//	AND at least one of those four comparisons is strict.
//
// open question (spec §9): this mixes "lower is better" (cost/speed/risk
// compared with <=) with "higher is better" (liquidity compared with >=)
// on a space where all four axes were normalized to higher-is-better. That
// makes the comparison internally inconsistent — likely a carry-over from
// an earlier raw-aggregate version of this function. Reproduced exactly;
// flagged for product review rather than silently fixed.
func (Optimizer) ParetoFront(normalized []normalizedPath, maxResults int) []scoredPath {
	var survivors []normalizedPath
	for _, candidate := range normalized {
		dominated := false
		for _, other := range normalized {
			if isDominated(other.normalized, candidate.normalized) {
				dominated = true
				break
			}
		}
		if !dominated {
			survivors = append(survivors, candidate)
		}
	}

	scored := make([]scoredPath, len(survivors))
	for i, np := range survivors {
		score := np.normalized.cost + np.normalized.speed + np.normalized.liquidity - np.normalized.risk
		scored[i] = scoredPath{path: np.path, score: score}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}

func isDominated(o, c normalizedMetrics) bool {
	weaklyBetter := o.cost <= c.cost && o.speed <= c.speed && o.risk <= c.risk && o.liquidity >= c.liquidity
	if !weaklyBetter {
		return false
	}
	return o.cost < c.cost || o.speed < c.speed || o.risk < c.risk || o.liquidity > c.liquidity
}

// Ranker assigns 1-based ranks to a sequence of scored paths, in the order
// the optimizer produced them, filling ScoreBreakdown from the path's
// original (non-normalized) aggregates plus the optimizer's final score.
type Ranker struct{}

func (Ranker) Rank(scored []scoredPath, maxResults int) []RankedPath {
	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	out := make([]RankedPath, len(scored))
	for i, sp := range scored {
		out[i] = RankedPath{
			Path: sp.path,
			Rank: i + 1,
			ScoreBreakdown: ScoreBreakdown{
				CostScore:      sp.path.TotalCost,
				SpeedScore:     sp.path.TotalTime,
				LiquidityScore: sp.path.MinLiquidity,
				RiskScore:      sp.path.TotalRisk,
				FinalScore:     sp.score,
			},
		}
	}
	return out
}

// ScoringEngine is the normalize -> optimize -> rank pipeline.
type ScoringEngine struct {
	normalizer ScoreNormalizer
	optimizer  Optimizer
	ranker     Ranker
}

// NewScoringEngine constructs a ScoringEngine.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// ScoreAndRank normalizes paths, picks weighted-sum (when the four
// RoutingParams weights sum to 1.0, allowing for floating-point rounding
// such as the balanced preset's 0.9999999999999999) or Pareto-front
// optimization otherwise, and ranks the result, truncated to maxResults. Empty input
// short-circuits to an empty, non-nil-safe output.
func (se *ScoringEngine) ScoreAndRank(paths []Path, params RoutingParams, maxResults int) []RankedPath {
	if len(paths) == 0 {
		return nil
	}

	normalized := se.normalizer.Normalize(paths)

	// Note: WeightedSum deliberately does not sort by score — it ranks
	// paths in the order they were given, matching the routing
	// prototype's weighed_sum(), which never reorders its input. Only
	// ParetoFront sorts (descending by score) before truncation. This
	// asymmetry is preserved rather than "fixed" into a consistent
	// best-first ordering for both branches.
	var scored []scoredPath
	if math.Abs(params.Sum()-1.0) < 1e-9 {
		scored = se.optimizer.WeightedSum(normalized, params)
	} else {
		scored = se.optimizer.ParetoFront(normalized, maxResults)
	}

	return se.ranker.Rank(scored, maxResults)
}
