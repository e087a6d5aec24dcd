package domain

// ExtractionThreshold is the number of skill points consumed by one
// extraction.
const ExtractionThreshold = 500_000

// DefaultFarmSkills are the skill IDs counted toward extraction by default.
var DefaultFarmSkills = []int32{3412, 3551, 13278, 21718, 25739, 25810, 25811}

// TrainedSkill is one already-trained skill from the character skills
// endpoint. Only the fields the aggregation needs are decoded.
type TrainedSkill struct {
	SkillID     int32 `json:"skill_id"`
	Skillpoints int64 `json:"skillpoints_in_skill"`
}

// QueuedSkill is one scheduled training entry from the skill queue endpoint.
// Dates are RFC3339 strings in the wire format; they are parsed during
// aggregation so a malformed entry can be rejected instead of dropped.
type QueuedSkill struct {
	QueuePosition   int32  `json:"queue_position"`
	SkillID         int32  `json:"skill_id"`
	FinishedLevel   int32  `json:"finished_level"`
	StartDate       string `json:"start_date"`
	FinishDate      string `json:"finish_date"`
	TrainingStartSP int64  `json:"training_start_sp"`
	LevelStartSP    int64  `json:"level_start_sp"`
	LevelEndSP      int64  `json:"level_end_sp"`
}

// FarmStat is the derived statistic for one character: total extractable
// skill points, whether a farm skill is actively training, and how many farm
// skills are still queued.
type FarmStat struct {
	Name     string
	Points   int64
	Training bool
	Queued   int
}

// Extractions returns the number of whole extractions available.
func (s FarmStat) Extractions() int64 {
	return s.Points / ExtractionThreshold
}

// TotalExtractions sums the whole extractions available across stats.
func TotalExtractions(stats []FarmStat) int64 {
	var total int64
	for _, s := range stats {
		total += s.Extractions()
	}
	return total
}

// SkillSet is an allow-list of skill IDs.
type SkillSet map[int32]struct{}

// NewSkillSet builds a SkillSet from a list of skill IDs.
func NewSkillSet(ids []int32) SkillSet {
	set := make(SkillSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set.
func (s SkillSet) Contains(id int32) bool {
	_, ok := s[id]
	return ok
}
