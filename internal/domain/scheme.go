package domain

// Fallback labels shown when the upstream omits a nested scheme field.
const (
	FallbackKnowledgeName = "Desconocido"
	FallbackAchievement   = "Sin descripción"
)

// SubjectKnowledge is a weighted competency area of a subject. Percentages
// are informational and are not required to sum to 100.
type SubjectKnowledge struct {
	ID         int
	Name       string
	Percentage float64
}

type Achievement struct {
	ID          int
	Description string
}

// SchemeItem is one knowledge-to-achievement binding of a scheme.
type SchemeItem struct {
	ID          int
	Knowledge   SubjectKnowledge
	Achievement Achievement
}

// Scheme is the evaluation scheme of a (period, subject, group) triple.
// An empty scheme with Failed unset means the scheme is not configured yet.
type Scheme struct {
	Items  []SchemeItem
	Failed bool
}

// Configured reports whether at least one binding exists.
func (s *Scheme) Configured() bool {
	return s != nil && len(s.Items) > 0
}

// TotalPercentage sums the knowledge weights. It is informational only.
func (s *Scheme) TotalPercentage() float64 {
	if s == nil {
		return 0
	}
	var total float64
	for _, it := range s.Items {
		total += it.Knowledge.Percentage
	}
	return total
}

// AchievementGroup binds one SubjectKnowledge to one (period, group) with a
// free-text achievement description.
type AchievementGroup struct {
	ID          int
	Achievement string
	Knowledge   SubjectKnowledge
	Subject     Subject
	GroupID     int
	PeriodID    int
}
