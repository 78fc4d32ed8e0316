package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type PollDTO struct {
	PollID    string         `json:"poll_id"`
	Question  string         `json:"question"`
	Options   []string       `json:"options"`
	Responses map[string]int `json:"responses"`
}

type PollsResponse struct {
	Message string    `json:"message"`
	Polls   []PollDTO `json:"polls"`
}

type VoteRequest struct {
	Option string `json:"option"`
}

type VoteResponse struct {
	Message string  `json:"message"`
	Poll    PollDTO `json:"poll"`
}

type PollResultsResponse struct {
	Message string `json:"message"`
	Results struct {
		PollID     string         `json:"poll_id"`
		Question   string         `json:"question"`
		Options    []string       `json:"options"`
		Responses  map[string]int `json:"responses"`
		TotalVotes int            `json:"total_votes"`
	} `json:"results"`
}
