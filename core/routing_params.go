package core

// RoutingParams is a four-way weighting of cost, speed, liquidity and risk,
// used both to steer the routing engine's search (graph.neighbours) and to
// score normalized paths in the scoring pipeline (see the open question
// on neighbours' sign convention in graph.go).
type RoutingParams struct {
	Alpha float64 // cost weight
	Beta  float64 // speed weight
	Gamma float64 // liquidity weight
	Delta float64 // risk weight
}

// CheapestParams minimizes cost exclusively.
func CheapestParams() RoutingParams {
	return RoutingParams{Alpha: 1, Beta: 0, Gamma: 0, Delta: 0}
}

// FastestParams minimizes latency exclusively.
func FastestParams() RoutingParams {
	return RoutingParams{Alpha: 0, Beta: 1, Gamma: 0, Delta: 0}
}

// BalancedParams is the default blend across all four dimensions.
func BalancedParams() RoutingParams {
	return RoutingParams{Alpha: 0.4, Beta: 0.3, Gamma: 0.2, Delta: 0.1}
}

// ParamsForPreference maps a preference label to a RoutingParams preset.
// An unrecognized label falls back to balanced, matching the original
// prototype's from_preferences behavior.
func ParamsForPreference(preference string) RoutingParams {
	switch preference {
	case "cheapest":
		return CheapestParams()
	case "fastest":
		return FastestParams()
	case "balanced":
		return BalancedParams()
	default:
		return BalancedParams()
	}
}

// Sum returns alpha+beta+gamma+delta, used by the scoring pipeline to pick
// between weighted-sum and Pareto-front optimization.
func (p RoutingParams) Sum() float64 {
	return p.Alpha + p.Beta + p.Gamma + p.Delta
}
