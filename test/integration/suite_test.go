//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
)

// scenarioState holds everything one scenario touches. A fresh fake upstream
// and gateway are started for every scenario.
type scenarioState struct {
	upstream *fakeUpstream
	gateway  *httptest.Server
	client   *http.Client

	response     *http.Response
	responseBody []byte
}

func (s *scenarioState) start() error {
	s.upstream = newFakeUpstream()

	gateway, err := newGateway(s.upstream.server.URL, gatewayOptions{})
	if err != nil {
		return fmt.Errorf("starting gateway: %w", err)
	}

	s.gateway = gateway
	s.client = &http.Client{Timeout: 10 * time.Second}

	return nil
}

func (s *scenarioState) stop() {
	if s.gateway != nil {
		s.gateway.Close()
	}

	if s.upstream != nil {
		s.upstream.close()
	}

	s.response = nil
	s.responseBody = nil
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	s := &scenarioState{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, s.start()
	})

	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		s.stop()
		return ctx, nil
	})

	ctx.Step(`^the upstream serves the sample posts$`, s.theUpstreamServesTheSamplePosts)
	ctx.Step(`^the upstream answers (\d+) for "([^"]*)"$`, s.theUpstreamAnswersFor)
	ctx.Step(`^the upstream answers (\d+) with body "([^"]*)" for "([^"]*)"$`, s.theUpstreamAnswersWithBodyFor)
	ctx.Step(`^the upstream is down$`, s.theUpstreamIsDown)

	ctx.Step(`^I request (GET|POST|PUT|DELETE) "([^"]*)"$`, s.iRequest)
	ctx.Step(`^I request GET "([^"]*)" with header "([^"]*)" set to "([^"]*)"$`, s.iRequestGETWithHeader)

	ctx.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "(.*)"$`, s.theResponseShouldContain)
	ctx.Step(`^the response should be a JSON array of (\d+) items$`, s.theResponseShouldBeAJSONArrayOfItems)
	ctx.Step(`^every item should have "([^"]*)" equal to (\d+)$`, s.everyItemShouldHaveEqualTo)
	ctx.Step(`^the response header "([^"]*)" should be "([^"]*)"$`, s.theResponseHeaderShouldBe)
	ctx.Step(`^the response should be a problem with status (\d+) and title "([^"]*)"$`, s.theResponseShouldBeAProblem)
	ctx.Step(`^the problem detail should be "([^"]*)"$`, s.theProblemDetailShouldBe)
	ctx.Step(`^the problem detail should contain "([^"]*)"$`, s.theProblemDetailShouldContain)

	ctx.Step(`^the upstream should have received (\d+) requests for "([^"]*)"$`, s.theUpstreamShouldHaveReceived)
	ctx.Step(`^the last upstream request should carry "([^"]*)" "([^"]*)"$`, s.theLastUpstreamRequestShouldCarry)
}

func (s *scenarioState) theUpstreamServesTheSamplePosts() error {
	s.upstream.respondJSON("/posts", samplePosts)

	for _, p := range samplePosts {
		id := p["id"].(int)
		s.upstream.respondJSON(fmt.Sprintf("/posts/%d", id), p)
		s.upstream.respondJSON(fmt.Sprintf("/comments?postId=%d", id), sampleComments(id))
		s.upstream.respondJSON(fmt.Sprintf("/posts/%d/comments", id), sampleComments(id))
	}

	return nil
}

func (s *scenarioState) theUpstreamAnswersFor(status int, path string) error {
	s.upstream.respond(path, status, `{}`)
	return nil
}

func (s *scenarioState) theUpstreamAnswersWithBodyFor(status int, body, path string) error {
	s.upstream.respond(path, status, body)
	return nil
}

func (s *scenarioState) theUpstreamIsDown() error {
	s.upstream.close()
	return nil
}

func (s *scenarioState) iRequest(method, path string) error {
	return s.do(method, path, nil)
}

func (s *scenarioState) iRequestGETWithHeader(path, header, value string) error {
	return s.do(http.MethodGet, path, http.Header{header: []string{value}})
}

func (s *scenarioState) do(method, path string, header http.Header) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, s.gateway.URL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	s.response = resp

	s.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

func (s *scenarioState) theResponseStatusShouldBe(expected int) error {
	if s.response == nil {
		return errors.New("no response received")
	}

	if s.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, s.response.StatusCode, s.responseBody)
	}

	return nil
}

func (s *scenarioState) theResponseShouldContain(text string) error {
	text = strings.ReplaceAll(text, `\"`, `"`)

	if !strings.Contains(string(s.responseBody), text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, s.responseBody)
	}

	return nil
}

func (s *scenarioState) items() ([]map[string]any, error) {
	var items []map[string]any
	if err := json.Unmarshal(s.responseBody, &items); err != nil {
		return nil, fmt.Errorf("response is not a JSON array: %w. Body: %s", err, s.responseBody)
	}

	if items == nil {
		return nil, fmt.Errorf("response is null, want an array. Body: %s", s.responseBody)
	}

	return items, nil
}

func (s *scenarioState) theResponseShouldBeAJSONArrayOfItems(n int) error {
	items, err := s.items()
	if err != nil {
		return err
	}

	if len(items) != n {
		return fmt.Errorf("expected %d items, got %d", n, len(items))
	}

	return nil
}

func (s *scenarioState) everyItemShouldHaveEqualTo(field string, want int) error {
	items, err := s.items()
	if err != nil {
		return err
	}

	for i, item := range items {
		got, ok := item[field].(float64)
		if !ok || int(got) != want {
			return fmt.Errorf("item %d: %s = %v, want %d", i, field, item[field], want)
		}
	}

	return nil
}

func (s *scenarioState) theResponseHeaderShouldBe(header, want string) error {
	if got := s.response.Header.Get(header); got != want {
		return fmt.Errorf("header %s = %q, want %q", header, got, want)
	}

	return nil
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func (s *scenarioState) problem() (problem, error) {
	var p problem

	if ct := s.response.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/problem+json") {
		return p, fmt.Errorf("content type %q is not application/problem+json", ct)
	}

	if err := json.Unmarshal(s.responseBody, &p); err != nil {
		return p, fmt.Errorf("response is not a problem document: %w", err)
	}

	return p, nil
}

func (s *scenarioState) theResponseShouldBeAProblem(status int, title string) error {
	if err := s.theResponseStatusShouldBe(status); err != nil {
		return err
	}

	p, err := s.problem()
	if err != nil {
		return err
	}

	if p.Status != status || p.Title != title {
		return fmt.Errorf("problem = {status:%d title:%q}, want {status:%d title:%q}", p.Status, p.Title, status, title)
	}

	return nil
}

func (s *scenarioState) theProblemDetailShouldBe(want string) error {
	p, err := s.problem()
	if err != nil {
		return err
	}

	if p.Detail != want {
		return fmt.Errorf("detail = %q, want %q", p.Detail, want)
	}

	return nil
}

func (s *scenarioState) theProblemDetailShouldContain(want string) error {
	p, err := s.problem()
	if err != nil {
		return err
	}

	if !containsAll(p.Detail, want) {
		return fmt.Errorf("detail %q does not contain %q", p.Detail, want)
	}

	return nil
}

func (s *scenarioState) theUpstreamShouldHaveReceived(n int, path string) error {
	if got := s.upstream.hits(path); got != n {
		return fmt.Errorf("upstream received %d requests for %s, want %d", got, path, n)
	}

	return nil
}

func (s *scenarioState) theLastUpstreamRequestShouldCarry(header, want string) error {
	last, ok := s.upstream.lastRequest()
	if !ok {
		return errors.New("upstream received no requests")
	}

	var got string

	switch header {
	case "X-Request-ID":
		got = last.RequestID
	case "X-Correlation-ID":
		got = last.CorrelationID
	default:
		return fmt.Errorf("header %s is not recorded", header)
	}

	if got != want {
		return fmt.Errorf("upstream saw %s = %q, want %q", header, got, want)
	}

	return nil
}

// TestFeatures runs the godog feature suite against an in-process gateway.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
