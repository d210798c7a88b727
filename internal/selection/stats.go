package selection

// DefaultTarget is the day count that satisfies the residency threshold.
const DefaultTarget = 183

type Stats struct {
	Count     int
	Target    int
	Remaining int
	Achieved  bool
	Progress  float64
}

// ComputeStats derives the summary for count selected days. A non-positive
// target falls back to DefaultTarget.
func ComputeStats(count, target int) Stats {
	if target <= 0 {
		target = DefaultTarget
	}
	remaining := target - count
	if remaining < 0 {
		remaining = 0
	}
	progress := float64(count) / float64(target)
	if progress > 1 {
		progress = 1
	}
	if progress < 0 {
		progress = 0
	}
	return Stats{
		Count:     count,
		Target:    target,
		Remaining: remaining,
		Achieved:  count >= target,
		Progress:  progress,
	}
}
