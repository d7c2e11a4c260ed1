// AngelaMos | 2026
// alert.go

package inventory

type Level string

const (
	LevelCritical Level = "critical"
	LevelLow      Level = "low"
	LevelOptimal  Level = "optimal"
)

const (
	criticalRatio = 0.5
	lowRatio      = 1.0
)

// AlertLevel classifies stock against its minimum: under half is
// critical, under the minimum is low. Items without a minimum are always
// optimal.
func AlertLevel(current, minimum int) Level {
	if minimum <= 0 {
		return LevelOptimal
	}

	ratio := float64(current) / float64(minimum)
	switch {
	case ratio < criticalRatio:
		return LevelCritical
	case ratio < lowRatio:
		return LevelLow
	default:
		return LevelOptimal
	}
}

// DaysRemaining is the dashboard's coarse depletion estimate per level.
func DaysRemaining(level Level) int {
	switch level {
	case LevelCritical:
		return 3
	case LevelLow:
		return 12
	default:
		return 30
	}
}
