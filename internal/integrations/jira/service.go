package jira

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"assettrack/pkg/models"

	"github.com/joho/godotenv"
)

// JiraService opens repair tickets on the company service desk when an asset
// goes into repair. When the env vars are missing the bridge stays disabled
// and every notification is a no-op.
type JiraService struct {
	baseURL       string
	email         string
	token         string
	serviceDeskID string
	requestTypeID string
	client        *http.Client
}

func NewJiraService() *JiraService {
	_ = godotenv.Load()

	return &JiraService{
		baseURL:       os.Getenv("JIRA_BASE_URL"),
		email:         os.Getenv("JIRA_EMAIL"),
		token:         os.Getenv("JIRA_API_TOKEN"),
		serviceDeskID: os.Getenv("JIRA_SERVICE_DESK_ID"),
		requestTypeID: os.Getenv("JIRA_REQUEST_TYPE_ID"),
		client:        http.DefaultClient,
	}
}

func (s *JiraService) Enabled() bool {
	return s.baseURL != "" && s.token != "" && s.serviceDeskID != ""
}

// NotifyUnderRepair opens a repair ticket for the asset. Called best-effort
// from the asset service; a failed ticket never fails the status change.
func (s *JiraService) NotifyUnderRepair(asset *models.Asset) {
	if !s.Enabled() {
		return
	}

	if _, err := s.CreateRepairRequest(asset); err != nil {
		log.Printf("failed to open repair ticket for asset %d: %v", asset.ID, err)
	}
}

func (s *JiraService) CreateRepairRequest(asset *models.Asset) (*Issue, error) {
	serial := "n/a"
	if asset.SerialNumber != nil {
		serial = *asset.SerialNumber
	}

	payload := createRequestPayload{
		ServiceDeskID: s.serviceDeskID,
		RequestTypeID: s.requestTypeID,
		RequestFieldValues: map[string]string{
			"summary": fmt.Sprintf("Repair: %s (#%d)", asset.Name, asset.ID),
			"description": fmt.Sprintf("Asset %s (%s, serial %s) was marked as under repair.",
				asset.Name, asset.AssetType, serial),
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal repair request: %w", err)
	}

	url := fmt.Sprintf("%s/rest/servicedeskapi/request", s.baseURL)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(s.email, s.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("jira returned %s", resp.Status)
	}

	var issue Issue
	if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return nil, err
	}

	return &issue, nil
}

func (s *JiraService) GetRepairRequests(status string, limit string, start string) ([]Issue, error) {
	url := fmt.Sprintf("%s/rest/servicedeskapi/request?serviceDeskId=%s&limit=%s&start=%s",
		s.baseURL, s.serviceDeskID, limit, start)

	if status != "" {
		url += fmt.Sprintf("&status=%s", status)
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(s.email, s.token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jira returned %s", resp.Status)
	}

	var response JiraResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	return response.Values, nil
}

func (s *JiraService) GetRepairRequest(issueID string) (*Issue, error) {
	url := fmt.Sprintf("%s/rest/servicedeskapi/request/%s", s.baseURL, issueID)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(s.email, s.token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jira returned %s", resp.Status)
	}

	var issue Issue
	if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return nil, err
	}

	return &issue, nil
}
