package store

import "townclerk/pkg/model"

// CouncilMemberInput is the payload for creating a council member.
type CouncilMemberInput struct {
	FullName   string `json:"fullName"`
	Title      string `json:"title"`
	Commission string `json:"commission"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// CouncilMemberUpdate carries the fields of a partial council member update.
type CouncilMemberUpdate struct {
	FullName   *string `json:"fullName"`
	Title      *string `json:"title"`
	Commission *string `json:"commission"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
}

// CouncilStore abstracts council member storage. Searches match a
// case-insensitive substring of full name, title or commission.
type CouncilStore interface {
	ListMembers(search string, page, limit int) ([]model.CouncilMember, Pagination, error)
	FetchMember(id int64) (*model.CouncilMember, error)
	CreateMember(input CouncilMemberInput) (*model.CouncilMember, error)
	UpdateMember(id int64, update CouncilMemberUpdate) (*model.CouncilMember, error)
	DeleteMember(id int64) error
}
