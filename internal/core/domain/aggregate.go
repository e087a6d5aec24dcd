package domain

import (
	"fmt"
	"time"
)

// Aggregate converts a skill queue snapshot into a point-in-time FarmStat.
// Entries whose skill ID is not in tracked contribute nothing. A finished
// entry adds its full trained SP; an in-progress entry adds a linear
// fraction of it, truncated toward zero; a not-yet-started entry only bumps
// the queued count. Entries are independent, so order does not matter.
//
// A zero or negative training window that has already passed is treated as
// fully trained rather than divided through.
func Aggregate(queue []QueuedSkill, now time.Time, tracked SkillSet) (FarmStat, error) {
	var stat FarmStat
	for i := range queue {
		entry := &queue[i]
		if !tracked.Contains(entry.SkillID) {
			continue
		}

		start, err := time.Parse(time.RFC3339, entry.StartDate)
		if err != nil {
			return FarmStat{}, fmt.Errorf("%w: skill %d start_date %q: %v",
				ErrInvalidQueueEntry, entry.SkillID, entry.StartDate, err)
		}
		finish, err := time.Parse(time.RFC3339, entry.FinishDate)
		if err != nil {
			return FarmStat{}, fmt.Errorf("%w: skill %d finish_date %q: %v",
				ErrInvalidQueueEntry, entry.SkillID, entry.FinishDate, err)
		}

		if !start.Before(now) {
			// Not started yet.
			stat.Queued++
			continue
		}

		trainSP := entry.LevelEndSP - entry.TrainingStartSP
		if now.After(finish) || !finish.After(start) {
			// Finished training, or a degenerate window already behind us.
			stat.Points += trainSP
			continue
		}

		// Currently in training: credit linear progress through the window.
		stat.Training = true
		completed := now.Sub(start).Seconds()
		total := finish.Sub(start).Seconds()
		stat.Points += int64(float64(trainSP) * (completed / total))
	}
	return stat, nil
}
