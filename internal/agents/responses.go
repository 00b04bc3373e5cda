package agents

type intentResponse struct {
	Intent string `json:"intent"`
}

type inquiriesResponse struct {
	Inquiries []string `json:"inquiries"`
}

type reviewResponse struct {
	Feedback string `json:"feedback"`
}
