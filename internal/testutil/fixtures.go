package testutil

import "github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"

// Upstream JSON fixtures. They mirror what the school API serves so tests
// exercise the real decoding path.

// KnowledgeJSON builds a subjectKnowledge object linked to a subject.
func KnowledgeJSON(id int, name string, pct float64, subjectID int, subjectName string) map[string]any {
	return map[string]any{
		"id":         id,
		"name":       name,
		"percentage": pct,
		"subject":    map[string]any{"id": subjectID, "subjectName": subjectName},
	}
}

// AchievementGroup options
type AchievementGroupOption func(map[string]any)

func WithKnowledge(k map[string]any) AchievementGroupOption {
	return func(m map[string]any) { m["subjectKnowledge"] = k }
}

func WithoutKnowledge() AchievementGroupOption {
	return func(m map[string]any) { delete(m, "subjectKnowledge") }
}

func WithoutAchievementText() AchievementGroupOption {
	return func(m map[string]any) { m["achievement"] = nil }
}

func WithScope(periodID, groupID int) AchievementGroupOption {
	return func(m map[string]any) {
		m["period"] = map[string]any{"id": periodID}
		m["group"] = map[string]any{"id": groupID}
	}
}

// AchievementGroupJSON builds an achievement-group row; by default it is
// linked to knowledge 4 "Álgebra" (30%) of subject 7 "Math".
func AchievementGroupJSON(id int, achievement string, opts ...AchievementGroupOption) map[string]any {
	m := map[string]any{
		"id":               id,
		"achievement":      achievement,
		"subjectKnowledge": KnowledgeJSON(4, "Álgebra", 30, 7, "Math"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Activity options
type ActivityOption func(map[string]any)

func WithAchievementGroup(ag map[string]any) ActivityOption {
	return func(m map[string]any) { m["achievementGroup"] = ag }
}

func WithDates(start, end string) ActivityOption {
	return func(m map[string]any) {
		m["startDate"] = start
		m["endDate"] = end
	}
}

func WithActivityStatus(s domain.ActivityStatus) ActivityOption {
	return func(m map[string]any) { m["status"] = string(s) }
}

// ActivityJSON builds an activity row with its achievement chain attached.
func ActivityJSON(id int, name string, opts ...ActivityOption) map[string]any {
	m := map[string]any{
		"id":               id,
		"activityName":     name,
		"description":      name + " description",
		"status":           string(domain.ActivityActive),
		"startDate":        "2025-02-03",
		"endDate":          "2025-02-14",
		"achievementGroup": AchievementGroupJSON(55, "Resuelve ecuaciones lineales"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GradeJSON builds an activity-grade record. A nil score is sent as null.
func GradeJSON(id, activityID, studentID int, score *float64, comment string) map[string]any {
	m := map[string]any{
		"id":         id,
		"activityId": activityID,
		"studentId":  studentID,
		"comment":    comment,
	}
	if score != nil {
		m["score"] = *score
	} else {
		m["score"] = nil
	}
	return m
}

// GroupJSON builds a group object; mentorID 0 means no mentor.
func GroupJSON(id int, code string, mentorID int) map[string]any {
	m := map[string]any{
		"id":        id,
		"groupCode": code,
		"groupName": "Grupo " + code,
		"level":     map[string]any{"id": 1, "levelName": code[:1]},
	}
	if mentorID > 0 {
		m["mentor"] = map[string]any{"id": mentorID, "firstName": "Mentor", "lastName": code}
	}
	return m
}

// AssignmentJSON builds a subject-professor row.
func AssignmentJSON(id int, subjectID int, subjectName string, group map[string]any, professorID int) map[string]any {
	return map[string]any{
		"id":        id,
		"subject":   map[string]any{"id": subjectID, "subjectName": subjectName},
		"group":     group,
		"professor": map[string]any{"id": professorID, "firstName": "Prof", "lastName": "X"},
	}
}

// EnrollmentJSON builds a group-student row.
func EnrollmentJSON(group map[string]any, studentID int, first, last string) map[string]any {
	return map[string]any{
		"group":   group,
		"student": map[string]any{"id": studentID, "firstName": first, "lastName": last},
	}
}
