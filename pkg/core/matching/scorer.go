package matching

import (
	"strings"

	"github.com/maternacare/homevisit/pkg/core/model"
)

// Score is the pure scoring function for a (visit, candidate) pair. It is
// deterministic: the same inputs always produce the same integer.
//
// Components:
//   - workload: fewer active visits scores higher, floored at zero
//   - remaining capacity: more headroom scores higher
//   - risk compatibility: skill keywords matched against the recipient's
//     risk level
//   - time match: +8 if any of the candidate's slots on the visit weekday
//     covers the visit time (an empty slot means all day), -5 otherwise
//   - tie-break: 1000 - (id mod 100), so lower-numbered candidates rank
//     slightly higher among equals. Ids sharing a value mod 100 stay tied.
func Score(visit *model.Visit, candidate *model.Volunteer, activeLoad int, risk model.RiskLevel, slots []string) int {
	score := 0

	// workload: fewer assigned visits => higher score
	score += max(0, 50-activeLoad*5)

	// remaining capacity bonus
	remaining := candidate.ServiceLimit - activeLoad
	score += remaining * 3

	score += riskBonus(risk, candidate.Skills)

	if timeMatch(normalizeTime(visit.Time), slots) {
		score += 8
	} else {
		score -= 5 // small penalty if no precise time match
	}

	score += 1000 - int(candidate.ID%100)

	return score
}

// riskBonus rewards skill keywords relevant to the recipient's risk level.
// Blank skills or an unset risk level simply earn no bonus.
func riskBonus(risk model.RiskLevel, skills string) int {
	skills = strings.ToLower(skills)

	switch strings.ToLower(string(risk)) {
	case "high":
		if containsAny(skills, "first aid", "nurse", "midwife", "obgyn") {
			return 25
		}
		// Never fires: the check above already matches "first aid"
		if strings.Contains(skills, "first aid") {
			return 12
		}
	case "medium":
		if containsAny(skills, "first aid", "midwife", "nurse") {
			return 10
		}
	}
	return 0
}

// timeMatch reports whether any declared slot covers the visit time. A blank
// slot counts as whole-day availability. A single match is enough.
func timeMatch(visitTime string, slots []string) bool {
	for _, slot := range slots {
		ts := strings.ToLower(strings.TrimSpace(slot))
		if ts == "" {
			return true
		}
		// contains match: "10:00" in "9:00-11:00", or exact equality
		if visitTime != "" && (strings.Contains(ts, visitTime) || visitTime == ts) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// normalizeTime shortens a time string to "HH:MM" for comparison,
// e.g. "10:00:00" becomes "10:00"
func normalizeTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
