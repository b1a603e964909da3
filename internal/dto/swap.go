package dto

// SwapContact is the provider-side contact card shown on an active swap.
type SwapContact struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

// ActiveSwap projects a scheduled learning request into the swap view.
type ActiveSwap struct {
	ID          string      `json:"id"`
	SkillTitle  string      `json:"skill_title"`
	Provider    SwapContact `json:"provider"`
	Status      string      `json:"status"`
	NextSession string      `json:"next_session"`
	MeetingLink string      `json:"meeting_link"`
	Joinable    bool        `json:"joinable"`
}
