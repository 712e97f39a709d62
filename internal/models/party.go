package models

// Party groups the guests sharing a party ID
type Party struct {
	ID      string
	Code    string // first member carrying a code
	Label   string // code shown to the visitor, preferring the matched guest's
	Members []Guest
}

// Size returns the number of members
func (p *Party) Size() int {
	return len(p.Members)
}

// HasMember reports whether guestID belongs to the party
func (p *Party) HasMember(guestID string) bool {
	return p.Member(guestID) != nil
}

// Member returns the member with guestID, or nil
func (p *Party) Member(guestID string) *Guest {
	for i := range p.Members {
		if p.Members[i].ID == guestID {
			return &p.Members[i]
		}
	}
	return nil
}
