package jira

type DateTime struct {
	ISO8601  string `json:"iso8601"`
	Jira     string `json:"jira"`
	Friendly string `json:"friendly"`
}

type User struct {
	AccountID    string `json:"accountId"`
	EmailAddress string `json:"emailAddress"`
	DisplayName  string `json:"displayName"`
	Active       bool   `json:"active"`
	TimeZone     string `json:"timeZone"`
}

type RequestFieldValue struct {
	FieldID string      `json:"fieldId"`
	Label   string      `json:"label"`
	Value   interface{} `json:"value"`
}

type Status struct {
	Status         string   `json:"status"`
	StatusCategory string   `json:"statusCategory"`
	StatusDate     DateTime `json:"statusDate"`
}

type Issue struct {
	IssueID       string              `json:"issueId"`
	IssueKey      string              `json:"issueKey"`
	Summary       string              `json:"summary"`
	RequestTypeID string              `json:"requestTypeId"`
	ServiceDeskID string              `json:"serviceDeskId"`
	CreatedDate   DateTime            `json:"createdDate"`
	Reporter      User                `json:"reporter"`
	RequestFields []RequestFieldValue `json:"requestFieldValues"`
	CurrentStatus Status              `json:"currentStatus"`
	Links         struct {
		Web string `json:"web"`
	} `json:"_links"`
}

type JiraResponse struct {
	Size       int     `json:"size"`
	Start      int     `json:"start"`
	Limit      int     `json:"limit"`
	IsLastPage bool    `json:"isLastPage"`
	Values     []Issue `json:"values"`
}

// createRequestPayload is the body for opening a service desk request.
type createRequestPayload struct {
	ServiceDeskID      string            `json:"serviceDeskId"`
	RequestTypeID      string            `json:"requestTypeId"`
	RequestFieldValues map[string]string `json:"requestFieldValues"`
}
