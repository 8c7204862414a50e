package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	assessmentapimodels "talentflow-backend/models/api/assessment"
	candidateapimodels "talentflow-backend/models/api/candidate"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
)

const (
	maxRetries = 3
	retryDelay = 1000 * time.Millisecond
)

// Client is a typed consumer of the REST surface. Transport failures
// and 5xx responses are retried up to maxRetries with a fixed delay;
// 4xx responses propagate immediately.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type JobsQuery struct {
	Page   int
	Limit  int
	Status models.JobStatus
	Search string
	Tags   []string
}

type JobsPage struct {
	Data []dbmodels.Job     `json:"data"`
	Meta apimodels.ListMeta `json:"meta"`
}

type CandidatesQuery struct {
	Page   int
	Limit  int
	Search string
	Stage  models.Stage
	JobID  string
}

type CandidatesPage struct {
	Data []dbmodels.Candidate `json:"data"`
	Meta apimodels.ListMeta   `json:"meta"`
}

func (c *Client) GetJobs(ctx context.Context, q JobsQuery) (JobsPage, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if len(q.Tags) > 0 {
		params.Set("tags", strings.Join(q.Tags, ","))
	}
	var page JobsPage
	err := c.doWithRetry(ctx, http.MethodGet, "/api/jobs", params, nil, &page)
	return page, err
}

func (c *Client) GetJob(ctx context.Context, id string) (dbmodels.Job, error) {
	var rec dbmodels.Job
	err := c.doWithRetry(ctx, http.MethodGet, "/api/jobs/"+id, nil, nil, &rec)
	return rec, err
}

func (c *Client) CreateJob(ctx context.Context, data jobapimodels.JobData) (dbmodels.Job, error) {
	var rec dbmodels.Job
	err := c.doWithRetry(ctx, http.MethodPost, "/api/jobs", nil, data, &rec)
	return rec, err
}

func (c *Client) UpdateJob(ctx context.Context, id string, data jobapimodels.JobUpdate) (dbmodels.Job, error) {
	var rec dbmodels.Job
	err := c.doWithRetry(ctx, http.MethodPatch, "/api/jobs/"+id, nil, data, &rec)
	return rec, err
}

func (c *Client) ReorderJobs(ctx context.Context, jobIDs []string) error {
	var resp jobapimodels.ReorderResponse
	err := c.doWithRetry(ctx, http.MethodPatch, "/api/jobs/reorder", nil, jobapimodels.ReorderRequest{JobIDs: jobIDs}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return apimodels.NewServerError("reorder was not applied")
	}
	return nil
}

func (c *Client) GetCandidates(ctx context.Context, q CandidatesQuery) (CandidatesPage, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Stage != "" {
		params.Set("stage", string(q.Stage))
	}
	if q.JobID != "" {
		params.Set("jobId", q.JobID)
	}
	var page CandidatesPage
	err := c.doWithRetry(ctx, http.MethodGet, "/api/candidates", params, nil, &page)
	return page, err
}

func (c *Client) CreateCandidate(ctx context.Context, data candidateapimodels.CandidateData) (dbmodels.Candidate, error) {
	var rec dbmodels.Candidate
	err := c.doWithRetry(ctx, http.MethodPost, "/api/candidates", nil, data, &rec)
	return rec, err
}

func (c *Client) GetCandidate(ctx context.Context, id string) (dbmodels.Candidate, error) {
	var rec dbmodels.Candidate
	err := c.doWithRetry(ctx, http.MethodGet, "/api/candidates/"+id, nil, nil, &rec)
	return rec, err
}

func (c *Client) GetCandidateHistory(ctx context.Context, id string) ([]dbmodels.StageHistoryEvent, error) {
	var list []dbmodels.StageHistoryEvent
	err := c.doWithRetry(ctx, http.MethodGet, "/api/candidates/"+id+"/history", nil, nil, &list)
	return list, err
}

func (c *Client) UpdateCandidateStage(ctx context.Context, id string, stage models.Stage) (dbmodels.Candidate, error) {
	var rec dbmodels.Candidate
	err := c.doWithRetry(ctx, http.MethodPatch, "/api/candidates/"+id+"/stage", nil, candidateapimodels.StageUpdate{Stage: stage}, &rec)
	return rec, err
}

func (c *Client) GetAssessments(ctx context.Context, jobID string) ([]dbmodels.Assessment, error) {
	params := url.Values{}
	if jobID != "" {
		params.Set("jobId", jobID)
	}
	var list []dbmodels.Assessment
	err := c.doWithRetry(ctx, http.MethodGet, "/api/assessments", params, nil, &list)
	return list, err
}

func (c *Client) GetAssessment(ctx context.Context, id string) (dbmodels.Assessment, error) {
	var rec dbmodels.Assessment
	err := c.doWithRetry(ctx, http.MethodGet, "/api/assessments/"+id, nil, nil, &rec)
	return rec, err
}

func (c *Client) CreateAssessment(ctx context.Context, data assessmentapimodels.AssessmentData) (dbmodels.Assessment, error) {
	var rec dbmodels.Assessment
	err := c.doWithRetry(ctx, http.MethodPost, "/api/assessments", nil, data, &rec)
	return rec, err
}

func (c *Client) UpdateAssessment(ctx context.Context, id string, data assessmentapimodels.AssessmentUpdate) (dbmodels.Assessment, error) {
	var rec dbmodels.Assessment
	err := c.doWithRetry(ctx, http.MethodPatch, "/api/assessments/"+id, nil, data, &rec)
	return rec, err
}

func (c *Client) SubmitAssessmentResponse(ctx context.Context, assessmentID string, data assessmentapimodels.ResponseData) (dbmodels.AssessmentResponse, error) {
	var rec dbmodels.AssessmentResponse
	err := c.doWithRetry(ctx, http.MethodPost, "/api/assessments/"+assessmentID+"/responses", nil, data, &rec)
	return rec, err
}

func (c *Client) doWithRetry(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return apimodels.NewNetworkError(ctx.Err().Error())
			case <-time.After(retryDelay):
			}
		}
		lastErr = c.do(ctx, method, path, params, body, out)
		if lastErr == nil {
			return nil
		}
		// Client errors are final, retrying cannot change the answer.
		switch apimodels.KindOf(lastErr) {
		case apimodels.ErrKindNotFound, apimodels.ErrKindValidation:
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		reqBody = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apimodels.NewNetworkError(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response body")
	}
	return nil
}

func statusError(resp *http.Response) error {
	message := resp.Status
	var errBody apimodels.ErrorResponse
	if raw, err := io.ReadAll(resp.Body); err == nil && len(raw) > 0 {
		if json.Unmarshal(raw, &errBody) == nil && errBody.Error != "" {
			message = errBody.Error
		}
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apimodels.NewNotFoundError(message)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return apimodels.NewValidationError(message)
	}
	return apimodels.NewServerError(fmt.Sprintf("server failed with %s", message))
}
