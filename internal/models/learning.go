package models

import "time"

// MatchStatus is the lifecycle tag of a learning request.
type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchMatched   MatchStatus = "matched"
	MatchScheduled MatchStatus = "scheduled"
)

// Valid reports whether s is one of the known statuses.
func (s MatchStatus) Valid() bool {
	switch s {
	case MatchPending, MatchMatched, MatchScheduled:
		return true
	}
	return false
}

// LearningRequest records a user's intent to learn a skill, tracked from
// submission through match and scheduling. Provider holds the resolved
// teacher's display name as a denormalized copy: it stays valid even if the
// roster entry later disappears. ScheduledDate and MeetingLink are set only
// once the request reaches MatchScheduled.
type LearningRequest struct {
	ID            string      `json:"id"`
	SkillName     string      `json:"skill_name"`
	Category      string      `json:"category"`
	Description   string      `json:"description,omitempty"`
	Provider      string      `json:"provider,omitempty"`
	MatchStatus   MatchStatus `json:"match_status"`
	ScheduledDate string      `json:"scheduled_date,omitempty"`
	MeetingLink   string      `json:"meeting_link,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Scheduled reports whether the request carries a confirmed session.
func (r LearningRequest) Scheduled() bool {
	return r.MatchStatus == MatchScheduled && r.ScheduledDate != ""
}
