// internal/rating/glicko2.go
package rating

import "math"

const (
	// GlickoScale is the multiplier used for converting between Elo and Glicko2's mu.
	GlickoScale = 173.7178
	// DefaultMu is the baseline rating (1500) in Elo terms.
	DefaultMu = 1500.0
	// DefaultPhi is the baseline rating deviation (350) in Elo terms.
	DefaultPhi = 350.0
	// DefaultSigma is the starting volatility.
	DefaultSigma = 0.06
	// Tau is the constraint on volatility changes.
	Tau = 0.5
	// Epsilon is the convergence tolerance of the volatility iteration.
	Epsilon = 0.000001
)

// Rating is a Glicko-2 rating expressed on the 1500-based scale.
type Rating struct {
	Elo   float64 `json:"elo"`
	RD    float64 `json:"rd"`
	Sigma float64 `json:"sigma"`
}

// NewRating returns the rating every seat starts from.
func NewRating() Rating {
	return Rating{Elo: DefaultMu, RD: DefaultPhi, Sigma: DefaultSigma}
}

// glicko is a rating in Glicko-2's internal scale.
type glicko struct {
	mu    float64
	phi   float64
	sigma float64
}

func (r Rating) glicko() glicko {
	return glicko{
		mu:    (r.Elo - DefaultMu) / GlickoScale,
		phi:   r.RD / GlickoScale,
		sigma: r.Sigma,
	}
}

func (s glicko) rating() Rating {
	return Rating{
		Elo:   s.mu*GlickoScale + DefaultMu,
		RD:    s.phi * GlickoScale,
		Sigma: s.sigma,
	}
}

// update runs one rating period for s against a single opponent, given the
// score s achieved in [0, 1].
func update(s, opp glicko, score float64) glicko {
	gOpp := g(opp.phi)
	expect := expected(s.mu, opp.mu, opp.phi)

	v := 1.0 / (gOpp * gOpp * expect * (1 - expect))
	delta := v * gOpp * (score - expect)

	sigma := newVolatility(s, v, delta)
	phiStar := math.Sqrt(s.phi*s.phi + sigma*sigma)
	phi := 1.0 / math.Sqrt(1.0/(phiStar*phiStar)+1.0/v)

	return glicko{
		mu:    s.mu + phi*phi*gOpp*(score-expect),
		phi:   phi,
		sigma: sigma,
	}
}

// newVolatility finds the new sigma with the Illinois variant of regula falsi.
func newVolatility(s glicko, v, delta float64) float64 {
	a := math.Log(s.sigma * s.sigma)
	fn := func(x float64) float64 {
		return volatilityFn(x, a, s.phi, v, delta)
	}

	A := a
	var B float64
	if delta*delta > s.phi*s.phi+v {
		B = math.Log(delta*delta - s.phi*s.phi - v)
	} else {
		k := 1.0
		for fn(a-k*Tau) < 0 {
			k++
		}
		B = a - k*Tau
	}

	fA, fB := fn(A), fn(B)
	for i := 0; i < 100 && math.Abs(B-A) > Epsilon; i++ {
		C := A + (A-B)*fA/(fB-fA)
		fC := fn(C)
		if fC*fB <= 0 {
			A, fA = B, fB
		} else {
			fA /= 2
		}
		B, fB = C, fC
	}
	return math.Exp(A / 2)
}

// g is the G(phi) factor from Glicko2, applying the standard formula 1/sqrt(1+3phi^2/pi^2).
func g(phi float64) float64 {
	return 1.0 / math.Sqrt(1.0+3.0*phi*phi/(math.Pi*math.Pi))
}

// expected is the expected score of mu against an opponent (mu2, phi2).
func expected(mu, mu2, phi2 float64) float64 {
	return 1.0 / (1.0 + math.Exp(-g(phi2)*(mu-mu2)))
}

func volatilityFn(x, a, phi, v, delta float64) float64 {
	ex := math.Exp(x)
	num := ex * (delta*delta - phi*phi - v - ex)
	den := 2.0 * (phi*phi + v + ex) * (phi*phi + v + ex)
	return num/den - (x-a)/(Tau*Tau)
}
