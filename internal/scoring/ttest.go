package scoring

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Below this value the survival function is evaluated through the
// log-space tail series instead of log(Survival), which would lose all
// precision once the p-value rounds to zero in float64.
const survivalFloor = 1e-280

// TTestSignedLogP runs a two-sided Welch t-test between x and y and
// returns the signed log p-value: 2*logSF(|t|, df) carrying the sign
// of the mean difference. Positive means mean(x) > mean(y); stronger
// evidence pushes the magnitude further from zero.
func TTestSignedLogP(x, y []float64) float64 {
	t, df := welchT(x, y)
	if t == 0 {
		return 0
	}
	sign := -1.0
	if t < 0 {
		sign = 1.0
	}
	return 2 * logTSurvival(math.Abs(t), df) * sign
}

// welchT returns the Welch t statistic and Satterthwaite degrees of
// freedom for the two samples.
func welchT(x, y []float64) (t, df float64) {
	nx, ny := float64(len(x)), float64(len(y))
	mx, my := stat.Mean(x, nil), stat.Mean(y, nil)
	vx, vy := stat.Variance(x, nil), stat.Variance(y, nil)

	sx, sy := vx/nx, vy/ny
	se := math.Sqrt(sx + sy)
	if se == 0 {
		// Both resamples constant: the diff is either exact zero or
		// infinitely significant.
		if mx == my {
			return 0, nx + ny - 2
		}
		return math.Copysign(math.Inf(1), mx-my), nx + ny - 2
	}

	t = (mx - my) / se
	df = (sx + sy) * (sx + sy) / (sx*sx/(nx-1) + sy*sy/(ny-1))
	return t, df
}

// logTSurvival returns log P(T > t) for a Student's t variable with df
// degrees of freedom, for t >= 0. When the survival value itself
// underflows, the tail is evaluated directly in log space via the
// incomplete beta series: SF(t) = I_x(df/2, 1/2)/2 with x = df/(df+t^2).
func logTSurvival(t, df float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	if s := dist.Survival(t); s > survivalFloor {
		return math.Log(s)
	}

	a, b := df/2, 0.5
	x := df / (df + t*t)
	logIx := a*math.Log(x) + b*math.Log1p(-x) - math.Log(a) - mathext.Lbeta(a, b)
	// First-order series correction; higher orders are negligible at
	// this depth of the tail.
	logIx += math.Log1p(a * (1 - b) / (a + 1) * x)
	return logIx - math.Ln2
}
