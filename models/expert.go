package models

// ExpertRequest is the inbound payload of POST /ask_expert.
type ExpertRequest struct {
	Question string `json:"question"`
}

// ExpertResponse carries the advisor model's answer back to the client.
type ExpertResponse struct {
	Answer string `json:"answer"`
}
