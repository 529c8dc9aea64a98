package engine

import (
	"fmt"
	"time"
)

// Stats accumulates counters over one game
type Stats struct {
	Ticks        uint64        // Loop iterations completed
	AlienTicks   uint64        // Ticks on which the fleet moved
	AlienTime    time.Duration // Cumulative time spent in the behavior engine
	ShotsFired   int
	Hits         int
	BombsDropped int
	BombsSkipped int // Drop requests lost to a full bomb pool
	Rerolls      int // Fatigue-forced behavior changes
}

// AvgAlienTime returns the mean behavior engine time per alien tick
func (s Stats) AvgAlienTime() time.Duration {
	if s.AlienTicks == 0 {
		return 0
	}
	return s.AlienTime / time.Duration(s.AlienTicks)
}

// Accuracy returns hits per shot fired in [0, 1]
func (s Stats) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.ShotsFired)
}

func (s Stats) String() string {
	return fmt.Sprintf("ticks=%d alien_ticks=%d avg_alien=%s shots=%d hits=%d bombs=%d skipped=%d rerolls=%d",
		s.Ticks, s.AlienTicks, s.AvgAlienTime(), s.ShotsFired, s.Hits, s.BombsDropped, s.BombsSkipped, s.Rerolls)
}
