package models

import "time"

// User is a registered student profile. PasswordHash is never serialized.
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // don't expose hash
	College      string     `json:"college"`
	Bio          string     `json:"bio,omitempty"`
	ContactInfo  string     `json:"contact_info,omitempty"`
	ProfilePic   string     `json:"profile_pic,omitempty"` // storage key
	Interests    []Interest `json:"interests"`
	CreatedAt    time.Time  `json:"created_at"`
}

// InterestIDs returns the ids of the user's interests in stored order.
func (u User) InterestIDs() []int {
	ids := make([]int, 0, len(u.Interests))
	for _, i := range u.Interests {
		ids = append(ids, i.ID)
	}
	return ids
}
