package core

import "testing"

func samplePaths() []Path {
	return []Path{
		{TotalCost: 1, TotalTime: 10, TotalRisk: 1, MinLiquidity: 1000},
		{TotalCost: 5, TotalTime: 50, TotalRisk: 5, MinLiquidity: 100},
	}
}

func TestNormalizeRangeAndConstantDimension(t *testing.T) {
	paths := samplePaths()
	norm := ScoreNormalizer{}.Normalize(paths)
	if len(norm) != 2 {
		t.Fatalf("expected 2 normalized entries, got %d", len(norm))
	}
	for _, np := range norm {
		for _, v := range []float64{np.normalized.cost, np.normalized.speed, np.normalized.risk, np.normalized.liquidity} {
			if v < 0 || v > 1 {
				t.Fatalf("expected normalized value in [0,1], got %v", v)
			}
		}
	}

	// constant dimension (both paths cost 3) normalizes to 1.0 for every path.
	constPaths := []Path{
		{TotalCost: 3, TotalTime: 10, TotalRisk: 1, MinLiquidity: 100},
		{TotalCost: 3, TotalTime: 20, TotalRisk: 2, MinLiquidity: 200},
	}
	normConst := ScoreNormalizer{}.Normalize(constPaths)
	for _, np := range normConst {
		if np.normalized.cost != 1.0 {
			t.Fatalf("expected constant dimension to normalize to 1.0, got %v", np.normalized.cost)
		}
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := (ScoreNormalizer{}).Normalize(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %+v", got)
	}
}

func TestWeightedSumPreservesInputOrder(t *testing.T) {
	paths := samplePaths()
	norm := ScoreNormalizer{}.Normalize(paths)
	scored := Optimizer{}.WeightedSum(norm, BalancedParams())
	if len(scored) != 2 {
		t.Fatalf("expected 2 scored paths, got %d", len(scored))
	}
	// order must match input order (cheap path first), not descending score.
	if scored[0].path.TotalCost != 1 || scored[1].path.TotalCost != 5 {
		t.Fatalf("expected weighted-sum to preserve input order, got %+v", scored)
	}
}

func TestParetoFrontTruncatesToMaxResults(t *testing.T) {
	paths := []Path{
		{TotalCost: 1, TotalTime: 10, TotalRisk: 1, MinLiquidity: 1000},
		{TotalCost: 2, TotalTime: 20, TotalRisk: 2, MinLiquidity: 900},
		{TotalCost: 50, TotalTime: 90, TotalRisk: 9, MinLiquidity: 10},
	}
	norm := ScoreNormalizer{}.Normalize(paths)
	scored := Optimizer{}.ParetoFront(norm, 1)
	if len(scored) != 1 {
		t.Fatalf("expected truncation to 1 result, got %d", len(scored))
	}
}

func TestScoreAndRankChoosesWeightedSumWhenWeightsSumToOne(t *testing.T) {
	se := NewScoringEngine()
	paths := samplePaths()
	params := RoutingParams{Alpha: 0.25, Beta: 0.25, Gamma: 0.25, Delta: 0.25}
	ranked := se.ScoreAndRank(paths, params, 10)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked paths, got %d", len(ranked))
	}
	if ranked[0].Rank != 1 || ranked[1].Rank != 2 {
		t.Fatalf("expected contiguous 1-based ranks, got %+v", ranked)
	}
	// weighted-sum path: input order preserved, so rank 1 is the cheap path.
	if ranked[0].Path.TotalCost != 1 {
		t.Fatalf("expected weighted-sum branch to keep input order, got %+v", ranked)
	}
}

func TestScoreAndRankFallsBackToParetoWhenWeightsDontSumToOne(t *testing.T) {
	se := NewScoringEngine()
	paths := samplePaths()
	params := RoutingParams{Alpha: 0.1, Beta: 0.1, Gamma: 0.1, Delta: 0.1}
	ranked := se.ScoreAndRank(paths, params, 10)
	if len(ranked) == 0 {
		t.Fatalf("expected at least one ranked path from the pareto branch")
	}
	for i, rp := range ranked {
		if rp.Rank != i+1 {
			t.Fatalf("expected contiguous 1-based ranks, got %+v", ranked)
		}
	}
}

func TestScoreAndRankEmptyInput(t *testing.T) {
	se := NewScoringEngine()
	if got := se.ScoreAndRank(nil, BalancedParams(), 10); got != nil {
		t.Fatalf("expected nil for empty path input, got %+v", got)
	}
}
