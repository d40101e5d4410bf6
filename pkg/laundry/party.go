package laundry

import (
	"encoding/json"
	"errors"
)

// PartyRef is a user field that the API returns either unexpanded (a bare id
// string) or expanded (a full user object), depending on whether the endpoint
// populated the relation. The two cases are kept explicit instead of being
// sniffed at call sites.
type PartyRef struct {
	ID   string
	User *User
}

// Expanded reports whether the full user object is present.
func (p PartyRef) Expanded() bool {
	return p.User != nil
}

// Ref returns the user id regardless of expansion.
func (p PartyRef) Ref() string {
	if p.User != nil {
		return p.User.ID
	}
	return p.ID
}

// ExpandedParty wraps a full user object.
func ExpandedParty(u *User) PartyRef {
	return PartyRef{ID: u.ID, User: u}
}

// UnexpandedParty wraps a bare id.
func UnexpandedParty(id string) PartyRef {
	return PartyRef{ID: id}
}

func (p *PartyRef) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty party reference")
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &p.ID)
	}
	p.User = &User{}
	if err := json.Unmarshal(data, p.User); err != nil {
		return err
	}
	p.ID = p.User.ID
	return nil
}

func (p PartyRef) MarshalJSON() ([]byte, error) {
	if p.User != nil {
		return json.Marshal(p.User)
	}
	return json.Marshal(p.ID)
}
