package models

// Candidate is the part of another student's profile shown on a dashboard.
// Email and timestamps stay private.
type Candidate struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	College     string     `json:"college"`
	Bio         string     `json:"bio,omitempty"`
	ContactInfo string     `json:"contact_info,omitempty"`
	ProfilePic  string     `json:"profile_pic,omitempty"`
	Interests   []Interest `json:"interests"`
}

// CandidateOf projects u onto its public dashboard view.
func CandidateOf(u User) Candidate {
	return Candidate{
		ID:          u.ID,
		Name:        u.Name,
		College:     u.College,
		Bio:         u.Bio,
		ContactInfo: u.ContactInfo,
		ProfilePic:  u.ProfilePic,
		Interests:   u.Interests,
	}
}

// Match is one ranked candidate on the dashboard.
type Match struct {
	User            Candidate  `json:"user"`
	SharedInterests []Interest `json:"shared_interests"`
	Percentage      int        `json:"percentage"` // 0..100, floored
}

// MatchResult is the ranked list plus its length.
type MatchResult struct {
	Matches    []Match `json:"matches"`
	MatchCount int     `json:"match_count"`
}
