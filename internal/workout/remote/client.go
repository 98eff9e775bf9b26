package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workout/draft"
)

const TokenHeader = "X-FITTRACK-TOKEN"

// longest error body kept in a StatusError
const maxErrorBodyLen = 512

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrMissingID       = errors.New("workout store returned no id")
)

// StatusError is returned for any non 2xx answer of the workout store.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a 404 answer of the workout store.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

// RemoteError is returned when the workout store answered 2xx with success
// set to false.
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: workout store failure: %s", e.Op, e.Message)
}

// Client talks to the workout store over HTTP and JSON.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the workout store at baseURL. The token, if
// not empty, is forwarded with each request as is.
func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

func (c *Client) CreateSession(ctx context.Context, meta draft.Metadata) (int64, error) {
	return c.create(ctx, "create session", "/api/workouts/addsession", NewSessionRequest(meta))
}

func (c *Client) UpdateSession(ctx context.Context, sessionID int64, meta draft.Metadata) error {
	return c.mutate(ctx, "update session", http.MethodPut, sessionPath(sessionID), NewSessionRequest(meta))
}

func (c *Client) DeleteSession(ctx context.Context, sessionID int64) error {
	return c.mutate(ctx, "delete session", http.MethodDelete, sessionPath(sessionID), nil)
}

func (c *Client) FetchSession(ctx context.Context, sessionID int64) (*SessionDetails, error) {
	details := &SessionDetails{}
	if err := c.do(ctx, "fetch session", http.MethodGet, sessionPath(sessionID), nil, details); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %d", ErrSessionNotFound, sessionID)
		}
		return nil, err
	}
	return details, nil
}

type HistoryParams struct {
	Limit     int
	StartDate time.Time
	EndDate   time.Time
}

// History lists sessions, most recent first.
func (c *Client) History(ctx context.Context, params HistoryParams) ([]SessionRecord, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if !params.StartDate.IsZero() {
		query.Set("start_date", params.StartDate.Format(DateLayout))
	}
	if !params.EndDate.IsZero() {
		query.Set("end_date", params.EndDate.Format(DateLayout))
	}

	path := "/api/workouts/history"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	sessions := make([]SessionRecord, 0)
	if err := c.do(ctx, "session history", http.MethodGet, path, nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *Client) CreateStrengthSet(ctx context.Context, sessionID int64, performedOn time.Time, set draft.Strength) (int64, error) {
	return c.create(ctx, "create strength set", "/api/workouts/addset", CreateSetRequest{
		WorkoutSessionID: sessionID,
		MuscleGroupID:    set.MuscleGroupID,
		VariationID:      set.VariationID,
		Weight:           set.Weight,
		Reps:             set.Reps,
		PerformedOn:      NewDate(performedOn),
	})
}

func (c *Client) UpdateStrengthSet(ctx context.Context, id int64, weight float64, reps int) error {
	return c.mutate(ctx, "update strength set", http.MethodPut, fmt.Sprintf("/api/workouts/set/%d", id), UpdateSetRequest{
		Weight: &weight,
		Reps:   &reps,
	})
}

func (c *Client) DeleteStrengthSet(ctx context.Context, id int64) error {
	return c.mutate(ctx, "delete strength set", http.MethodDelete, fmt.Sprintf("/api/workouts/set/%d", id), nil)
}

func (c *Client) CreateCardioLog(ctx context.Context, sessionID int64, performedOn time.Time, run draft.Cardio) (int64, error) {
	return c.create(ctx, "create cardio log", "/api/workouts/addcardio", CreateCardioRequest{
		WorkoutSessionID: sessionID,
		CardioExerciseID: run.ActivityID,
		Duration:         run.DurationMinutes,
		PerformedOn:      NewDate(performedOn),
	})
}

func (c *Client) UpdateCardioLog(ctx context.Context, id int64, durationMinutes int) error {
	return c.mutate(ctx, "update cardio log", http.MethodPut, fmt.Sprintf("/api/workouts/cardio/%d", id), UpdateCardioRequest{
		Duration: &durationMinutes,
	})
}

func (c *Client) DeleteCardioLog(ctx context.Context, id int64) error {
	return c.mutate(ctx, "delete cardio log", http.MethodDelete, fmt.Sprintf("/api/workouts/cardio/%d", id), nil)
}

func (c *Client) MuscleGroups(ctx context.Context) ([]MuscleGroup, error) {
	groups := make([]MuscleGroup, 0)
	if err := c.do(ctx, "list muscle groups", http.MethodGet, "/api/workouts/muscle_groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) Variations(ctx context.Context) ([]Variation, error) {
	variations := make([]Variation, 0)
	if err := c.do(ctx, "list variations", http.MethodGet, "/api/workouts/variations", nil, &variations); err != nil {
		return nil, err
	}
	return variations, nil
}

func (c *Client) CardioExercises(ctx context.Context) ([]CardioExercise, error) {
	exercises := make([]CardioExercise, 0)
	if err := c.do(ctx, "list cardio exercises", http.MethodGet, "/api/workouts/cardio_exercises", nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (c *Client) CreateMuscleGroup(ctx context.Context, req CreateMuscleGroupRequest) (int64, error) {
	return c.create(ctx, "create muscle group", "/api/workouts/muscle_groups", req)
}

func (c *Client) CreateVariation(ctx context.Context, req CreateVariationRequest) (int64, error) {
	return c.create(ctx, "create variation", "/api/workouts/variations", req)
}

func (c *Client) CreateCardioExercise(ctx context.Context, req CreateCardioExerciseRequest) (int64, error) {
	return c.create(ctx, "create cardio exercise", "/api/workouts/cardio_exercises", req)
}

func sessionPath(sessionID int64) string {
	return fmt.Sprintf("/api/workouts/session/%d", sessionID)
}

// create issues a POST and returns the id the store assigned.
func (c *Client) create(ctx context.Context, op, path string, body any) (int64, error) {
	resp, err := c.mutation(ctx, op, http.MethodPost, path, body)
	if err != nil {
		return 0, err
	}
	if resp.ID == nil || *resp.ID <= 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrMissingID)
	}
	return *resp.ID, nil
}

func (c *Client) mutate(ctx context.Context, op, method, path string, body any) error {
	_, err := c.mutation(ctx, op, method, path, body)
	return err
}

func (c *Client) mutation(ctx context.Context, op, method, path string, body any) (*MutationResponse, error) {
	resp := &MutationResponse{}
	if err := c.do(ctx, op, method, path, body, resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &RemoteError{Op: op, Message: resp.Message}
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.client."+strings.ReplaceAll(op, " ", "_"))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: new request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set(TokenHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warnf("%s: close response body: %s", op, err)
		}
	}()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody := string(respBytes)
		if len(respBody) > maxErrorBodyLen {
			respBody = respBody[:maxErrorBodyLen]
		}
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: respBody}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("%s: unmarshal response [%s]: %w", op, respBytes, err)
	}

	log.Tracef("%s: %s %s -> %d", op, method, path, resp.StatusCode)
	return nil
}
