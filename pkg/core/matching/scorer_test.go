package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/maternacare/homevisit/pkg/core/model"
)

func testVisit(timeOfDay string) *model.Visit {
	return &model.Visit{
		ID:       1,
		MotherID: 10,
		Date:     time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), // a Monday
		Time:     timeOfDay,
		Status:   model.StatusPending,
	}
}

func TestScore_ExactComposition(t *testing.T) {
	visit := testVisit("10:00")
	candidate := &model.Volunteer{
		ID:           20,
		Name:         "Grace",
		Skills:       "Nurse, first aid",
		ServiceLimit: 3,
	}

	// workload 50, remaining 3*3=9, high risk +25, time match +8,
	// tie-break 1000-20=980
	got := Score(visit, candidate, 0, model.RiskHigh, []string{"10:00-12:00"})
	assert.Equal(t, 50+9+25+8+980, got)
}

func TestScore_WorkloadFloorsAtZero(t *testing.T) {
	visit := testVisit("")
	candidate := &model.Volunteer{ID: 5, ServiceLimit: 20}

	// 5*11=55 > 50, so the workload component floors at 0 instead of
	// going negative. remaining 9*3=27, no risk bonus, no slots -5,
	// tie-break 995.
	got := Score(visit, candidate, 11, model.RiskLow, nil)
	assert.Equal(t, 0+27+0-5+995, got)
}

func TestScore_NoSlotsPenalty(t *testing.T) {
	visit := testVisit("10:00")
	candidate := &model.Volunteer{ID: 7, ServiceLimit: 2}

	withMatch := Score(visit, candidate, 0, model.RiskLow, []string{""})
	withoutMatch := Score(visit, candidate, 0, model.RiskLow, []string{"14:00"})

	// an empty slot means all day (+8); a non-covering slot is -5
	assert.Equal(t, 13, withMatch-withoutMatch)
}

func TestScore_TieBreakPrefersLowerID(t *testing.T) {
	visit := testVisit("")
	a := &model.Volunteer{ID: 3, ServiceLimit: 2}
	b := &model.Volunteer{ID: 4, ServiceLimit: 2}

	assert.Greater(t, Score(visit, a, 0, model.RiskLow, nil), Score(visit, b, 0, model.RiskLow, nil))
}

func TestScore_IDsCongruentMod100StayTied(t *testing.T) {
	visit := testVisit("")
	a := &model.Volunteer{ID: 7, ServiceLimit: 2}
	b := &model.Volunteer{ID: 107, ServiceLimit: 2}

	assert.Equal(t, Score(visit, a, 0, model.RiskLow, nil), Score(visit, b, 0, model.RiskLow, nil))
}

func TestRiskBonus(t *testing.T) {
	tests := []struct {
		name   string
		risk   model.RiskLevel
		skills string
		want   int
	}{
		{"high risk nurse", model.RiskHigh, "Registered Nurse", 25},
		{"high risk first aid", model.RiskHigh, "First Aid certified", 25},
		{"high risk obgyn", model.RiskHigh, "obgyn assistant", 25},
		{"high risk no relevant skills", model.RiskHigh, "Driver", 0},
		{"medium risk midwife", model.RiskMedium, "Midwife", 10},
		{"medium risk no relevant skills", model.RiskMedium, "Cook", 0},
		{"low risk ignores skills", model.RiskLow, "Nurse, midwife, first aid", 0},
		{"blank skills", model.RiskHigh, "", 0},
		{"unset risk", model.RiskLevel(""), "Nurse", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, riskBonus(tt.risk, tt.skills))
		})
	}
}

func TestTimeMatch(t *testing.T) {
	tests := []struct {
		name      string
		visitTime string
		slots     []string
		want      bool
	}{
		{"empty slot is all day", "10:00", []string{""}, true},
		{"whitespace slot is all day", "10:00", []string{"   "}, true},
		{"contained in slot text", "10:00", []string{"10:00-12:00"}, true},
		{"range text does not imply coverage", "10:00", []string{"09:00-11:00"}, false},
		{"exact equality", "10:00", []string{"10:00"}, true},
		{"no overlap", "10:00", []string{"14:00-16:00"}, false},
		{"no slots at all", "10:00", nil, false},
		{"blank visit time only matches all-day", "", []string{"09:00-11:00"}, false},
		{"blank visit time with all-day slot", "", []string{""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeMatch(tt.visitTime, tt.slots))
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	assert.Equal(t, "10:00", normalizeTime("10:00:00"))
	assert.Equal(t, "10:00", normalizeTime("10:00"))
	assert.Equal(t, "9:00", normalizeTime("9:00"))
	assert.Equal(t, "", normalizeTime(""))
}
