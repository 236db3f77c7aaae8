package repository

import "github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"

// Upstream JSON shapes. They stay private to this package; everything above
// the repository layer works with domain types.

type refDTO struct {
	ID int `json:"id"`
}

type subjectDTO struct {
	ID   int    `json:"id"`
	Name string `json:"subjectName"`
}

type knowledgeDTO struct {
	ID         int         `json:"id"`
	Name       *string     `json:"name"`
	Percentage float64     `json:"percentage"`
	Subject    *subjectDTO `json:"subject,omitempty"`
}

type achievementGroupDTO struct {
	ID               int           `json:"id"`
	Achievement      *string       `json:"achievement"`
	SubjectKnowledge *knowledgeDTO `json:"subjectKnowledge"`
	Group            *refDTO       `json:"group,omitempty"`
	Period           *refDTO       `json:"period,omitempty"`
}

type activityDTO struct {
	ID               int                  `json:"id"`
	Name             string               `json:"activityName"`
	Description      string               `json:"description"`
	StartDate        *string              `json:"startDate"`
	EndDate          *string              `json:"endDate"`
	Status           string               `json:"status"`
	AchievementGroup *achievementGroupDTO `json:"achievementGroup"`
}

type gradeDTO struct {
	ID         int      `json:"id"`
	ActivityID int      `json:"activityId"`
	StudentID  int      `json:"studentId"`
	Score      *float64 `json:"score"`
	Comment    *string  `json:"comment"`
}

type professorDTO struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type groupDTO struct {
	ID     int           `json:"id"`
	Code   string        `json:"groupCode"`
	Name   string        `json:"groupName"`
	Level  *levelDTO     `json:"level"`
	Mentor *professorDTO `json:"mentor"`
}

type levelDTO struct {
	ID   int    `json:"id"`
	Name string `json:"levelName"`
}

type studentDTO struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type assignmentDTO struct {
	ID        int          `json:"id"`
	Subject   subjectDTO   `json:"subject"`
	Group     groupDTO     `json:"group"`
	Professor professorDTO `json:"professor"`
}

type enrollmentDTO struct {
	Group   groupDTO    `json:"group"`
	Student studentDTO  `json:"student"`
	Subject *subjectDTO `json:"subject,omitempty"`
}

func (d subjectDTO) toDomain() domain.Subject {
	return domain.Subject{ID: d.ID, Name: d.Name}
}

func (d professorDTO) toDomain() domain.Professor {
	return domain.Professor{ID: d.ID, FirstName: d.FirstName, LastName: d.LastName}
}

func (d groupDTO) toDomain() domain.Group {
	g := domain.Group{ID: d.ID, Code: d.Code, Name: d.Name}
	if d.Level != nil {
		g.Level = d.Level.Name
	}
	if d.Mentor != nil {
		m := d.Mentor.toDomain()
		g.Mentor = &m
	}
	return g
}

func (d studentDTO) toDomain() domain.Student {
	return domain.Student{ID: d.ID, FirstName: d.FirstName, LastName: d.LastName}
}

func (d knowledgeDTO) toDomain() domain.SubjectKnowledge {
	k := domain.SubjectKnowledge{ID: d.ID, Percentage: d.Percentage}
	if d.Name != nil {
		k.Name = *d.Name
	}
	return k
}

func (d achievementGroupDTO) toDomain() domain.AchievementGroup {
	ag := domain.AchievementGroup{ID: d.ID}
	if d.Achievement != nil {
		ag.Achievement = *d.Achievement
	}
	if d.SubjectKnowledge != nil {
		ag.Knowledge = d.SubjectKnowledge.toDomain()
		if d.SubjectKnowledge.Subject != nil {
			ag.Subject = d.SubjectKnowledge.Subject.toDomain()
		}
	}
	if d.Group != nil {
		ag.GroupID = d.Group.ID
	}
	if d.Period != nil {
		ag.PeriodID = d.Period.ID
	}
	return ag
}

func (d achievementGroupDTO) toSchemeRow() SchemeRow {
	row := SchemeRow{ID: d.ID, Achievement: d.Achievement}
	if d.SubjectKnowledge != nil {
		k := d.SubjectKnowledge.toDomain()
		row.Knowledge = &k
		if d.SubjectKnowledge.Subject != nil {
			s := d.SubjectKnowledge.Subject.toDomain()
			row.Subject = &s
		}
	}
	return row
}

func (d activityDTO) toDomain() domain.Activity {
	a := domain.Activity{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		StartDate:   parseNullableDate(d.StartDate),
		EndDate:     parseNullableDate(d.EndDate),
		Status:      domain.ActivityStatus(d.Status),
	}
	if d.AchievementGroup != nil {
		a.AchievementGroup = d.AchievementGroup.toDomain()
	}
	return a
}

func activityFromDomain(a *domain.Activity) activityDTO {
	return activityDTO{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		StartDate:   nullableDateToString(a.StartDate),
		EndDate:     nullableDateToString(a.EndDate),
		Status:      string(a.Status),
		AchievementGroup: &achievementGroupDTO{
			ID: a.AchievementGroup.ID,
		},
	}
}

func (d gradeDTO) toDomain() domain.ScoreRecord {
	rec := domain.ScoreRecord{
		ID:         d.ID,
		ActivityID: d.ActivityID,
		StudentID:  d.StudentID,
		Score:      d.Score,
	}
	if d.Comment != nil {
		rec.Comment = *d.Comment
	}
	return rec
}

func gradeFromDomain(rec domain.ScoreRecord) gradeDTO {
	comment := rec.Comment
	return gradeDTO{
		ID:         rec.ID,
		ActivityID: rec.ActivityID,
		StudentID:  rec.StudentID,
		Score:      rec.Score,
		Comment:    &comment,
	}
}
