package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type BoothResourceDTO struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

type BoothDTO struct {
	SponsorID       string             `json:"sponsor_id"`
	Name            string             `json:"name"`
	Company         string             `json:"company"`
	Resources       []BoothResourceDTO `json:"resources"`
	EventsSponsored []string           `json:"events_sponsored"`
}

type BoothResponse struct {
	Message string   `json:"message"`
	Booth   BoothDTO `json:"booth"`
}

type AddResourceRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}
