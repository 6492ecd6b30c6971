package shared

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// VoteRequest is the PATCH body shared by articles and comments
// (kept here to avoid an import cycle between the two domains).
type VoteRequest struct {
	IncVotes *int `json:"inc_votes"`
}

func (r VoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IncVotes, validation.NotNil.Error("inc_votes is required")),
	)
}

// Delta returns the signed vote change; call after Validate
func (r VoteRequest) Delta() int {
	if r.IncVotes == nil {
		return 0
	}
	return *r.IncVotes
}
