package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/websocket"
	"github.com/mosaicnetworks/fairshow/src/common"
	"github.com/mosaicnetworks/fairshow/src/dataset"
	"github.com/mosaicnetworks/fairshow/src/latency"
	"github.com/mosaicnetworks/fairshow/src/page"
	"github.com/mosaicnetworks/fairshow/src/progress"
	"github.com/mosaicnetworks/fairshow/src/render"
	"github.com/mosaicnetworks/fairshow/src/witness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service  *Service
	server   *httptest.Server
	clock    *clock.Mock
	sessions *page.Store
}

func newFixture(t *testing.T, steps int) *fixture {
	return newSizedFixture(t, steps, page.DefaultMaxSessions)
}

func newSizedFixture(t *testing.T, steps, maxSessions int) *fixture {
	mock := clock.NewMock()
	logger := common.NewTestEntry(t, "service")
	sessions := page.NewStore(maxSessions, func(id string) *progress.Runner {
		return progress.NewRunner(mock, progress.DefaultStepInterval, steps, logger.WithField("session", id))
	})
	s := NewService("127.0.0.1:0", sessions, logger)
	server := httptest.NewServer(s.Handler())
	t.Cleanup(server.Close)
	return &fixture{service: s, server: server, clock: mock, sessions: sessions}
}

// newSession creates a stored session through the API.
func (f *fixture) newSession(t *testing.T) *page.Session {
	t.Helper()

	var created page.Session
	resp := f.do(t, http.MethodPost, "/session", "", "", &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	sess, ok := f.sessions.Get(created.ID)
	require.True(t, ok)
	return sess
}

// tick advances the mock clock one step and waits for the run to take it.
func (f *fixture) tick(t *testing.T, updates <-chan progress.Status) progress.Status {
	t.Helper()

	f.clock.Add(progress.DefaultStepInterval)
	select {
	case s := <-updates:
		return s
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for progress update")
	}
	return progress.Status{}
}

// page renders the session's current page.
func (f *fixture) page(t *testing.T, session string) render.View {
	t.Helper()

	var view render.View
	resp := f.do(t, http.MethodGet, "/page/", session, "", &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return view
}

func (f *fixture) do(t *testing.T, method, path, session string, body string, out interface{}) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, f.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestPages(t *testing.T) {
	f := newFixture(t, progress.DefaultSteps)

	var labels []string
	resp := f.do(t, http.MethodGet, "/pages", "", "", &labels)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, page.Labels(), labels)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestPageNavigationIsPerSession(t *testing.T) {
	f := newFixture(t, progress.DefaultSteps)
	id := f.newSession(t).ID

	var view render.View
	resp := f.do(t, http.MethodGet, "/page/Results", id, "", &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, id, resp.Header.Get(SessionHeader))
	assert.Equal(t, "Results", view.Page)

	// same session remembers the page
	resp = f.do(t, http.MethodGet, "/page/", id, "", &view)
	assert.Equal(t, id, resp.Header.Get(SessionHeader))
	assert.Equal(t, "Results", view.Page)

	// anonymous callers see the overview and get no session
	resp = f.do(t, http.MethodGet, "/page/", "", "", &view)
	assert.Equal(t, "Overview", view.Page)
	assert.Empty(t, resp.Header.Get(SessionHeader))

	resp = f.do(t, http.MethodGet, "/page/Roadmap", id, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAnonymousReadsAreNotStored(t *testing.T) {
	f := newFixture(t, progress.DefaultSteps)

	for i := 0; i < 50; i++ {
		f.do(t, http.MethodGet, "/latency", "", "", nil)
		f.do(t, http.MethodGet, "/page/Results", "", "", nil)
		f.do(t, http.MethodGet, "/simulation", "stale", "", nil)
		f.do(t, http.MethodPost, "/verify", "", "", nil)
	}
	assert.Equal(t, 0, f.sessions.Len())
}

func TestSessionStoreIsBounded(t *testing.T) {
	f := newSizedFixture(t, progress.DefaultSteps, 5)

	for i := 0; i < 40; i++ {
		f.do(t, http.MethodPost, "/session", "", "", nil)
		f.do(t, http.MethodPost, "/controls", "", `{"fast_latency_ms": 60}`, nil)
	}
	assert.Equal(t, 5, f.sessions.Len())
}

func TestControlsAndLatency(t *testing.T) {
	f := newFixture(t, progress.DefaultSteps)

	var sess page.Session
	resp := f.do(t, http.MethodPost, "/session", "", "", &sess)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, sess.ID, resp.Header.Get(SessionHeader))

	resp = f.do(t, http.MethodPost, "/controls", sess.ID, `{"vdf_delay_seconds": 1, "fast_latency_ms": 1}`, &sess)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.0, sess.VDFDelaySeconds)
	assert.Equal(t, 10.0, sess.FastLatencyMs, "sliders clamp")

	resp = f.do(t, http.MethodPost, "/controls", sess.ID, `{"validator": "Validator Q"}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var report LatencyReport
	resp = f.do(t, http.MethodGet, "/latency?fast=50&slow=300", sess.ID, "", &report)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.InDelta(t, 83.333, report.AdvantagePercent, 1e-3)
	assert.Equal(t, 1.0, report.VDFDelaySeconds)
	assert.InDelta(t, 19.23, report.Neutralization.DifferencePercent, 1e-2)
	assert.Equal(t, latency.Insufficient, report.Neutralization.Classification)

	resp = f.do(t, http.MethodGet, "/latency?fast=50&slow=300&vdf=5", sess.ID, "", &report)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, latency.Neutralized, report.Neutralization.Classification)
	assert.Equal(t, 5050.0, report.Neutralization.FastTotalMs)
	assert.Len(t, report.Stack, 2)

	resp = f.do(t, http.MethodGet, "/latency?slow=0", sess.ID, "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = f.do(t, http.MethodGet, "/latency?fast=abc", sess.ID, "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestComparisonAndAlgorithm(t *testing.T) {
	f := newFixture(t, progress.DefaultSteps)

	var rows []dataset.ComparisonRow
	resp := f.do(t, http.MethodGet, "/comparison", "", "", &rows)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, rows, 11)

	resp = f.do(t, http.MethodGet, "/comparison?sort=Grinding+Attack+%25", "", "", &rows)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, dataset.ProposedWork, rows[0].Algorithm)

	resp = f.do(t, http.MethodGet, "/comparison?sort=Finality", "", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var row dataset.ComparisonRow
	resp = f.do(t, http.MethodGet, "/algorithm/Near%20Protocol", "", "", &row)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 7.5, row.TPSThousands)

	resp = f.do(t, http.MethodGet, "/algorithm/Bitcoin", "", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVerifyIsDeterministic(t *testing.T) {
	f := newFixture(t, progress.DefaultSteps)

	var first witness.Result
	resp := f.do(t, http.MethodPost, "/verify", "", "", &first)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, "0x7a3f...8e9d", first.WitnessHash)

	for _, body := range []string{
		`{"block_number": 1, "validator": "Validator B"}`,
		`{"block_number": 10000, "validator": "Validator D"}`,
		`{"block_number": 4242}`,
	} {
		var res witness.Result
		resp = f.do(t, http.MethodPost, "/verify", "", body, &res)
		require.Equal(t, http.StatusOK, resp.StatusCode, body)
		assert.Equal(t, etag, resp.Header.Get("ETag"), body)
		assert.Equal(t, first, res, body)
	}

	resp = f.do(t, http.MethodPost, "/verify", "", `{"block_number": 10001}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/verify", "", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestVerifyRejectsExplicitZero(t *testing.T) {
	f := newFixture(t, progress.DefaultSteps)
	sess := f.newSession(t)

	resp := f.do(t, http.MethodPost, "/verify", sess.ID, `{"block_number": 0}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/verify", sess.ID, `{"validator": ""}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, sess.LastVerification)
}

func TestVerifyResultIsShownOnPage(t *testing.T) {
	f := newFixture(t, progress.DefaultSteps)
	sess := f.newSession(t)

	f.do(t, http.MethodGet, "/page/Fairness%20Witnesses", sess.ID, "", nil)

	resp := f.do(t, http.MethodPost, "/verify", sess.ID, `{"block_number": 17, "validator": "Validator C"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	view := f.page(t, sess.ID)

	var result *render.Block
	for i, b := range view.Blocks {
		if b.Kind == render.Success && strings.HasPrefix(b.Title, "Verification Result") {
			result = &view.Blocks[i]
		}
	}
	require.NotNil(t, result)
	assert.Equal(t, "Verification Result for Block #17", result.Title)
	assert.Contains(t, result.Text, "Validator C")

	// leaving the page drops the result
	f.do(t, http.MethodGet, "/page/Overview", sess.ID, "", nil)
	f.do(t, http.MethodGet, "/page/Fairness%20Witnesses", sess.ID, "", nil)
	for _, b := range f.page(t, sess.ID).Blocks {
		assert.False(t, strings.HasPrefix(b.Title, "Verification Result"))
	}
}

func TestSimulationLifecycle(t *testing.T) {
	f := newFixture(t, 3)
	sess := f.newSession(t)

	updates, unsubscribe := sess.Runner().Subscribe()
	defer unsubscribe()

	var status progress.Status
	resp := f.do(t, http.MethodPost, "/simulation", sess.ID, "", &status)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.True(t, status.Running)

	resp = f.do(t, http.MethodPost, "/simulation", sess.ID, "", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	for i := 0; i < 3; i++ {
		f.tick(t, updates)
	}

	resp = f.do(t, http.MethodGet, "/simulation", sess.ID, "", &status)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, status.Done)
	assert.False(t, status.Running)
	assert.Equal(t, progress.CompletionMessage(5), status.Message)
}

func TestSimulationsArePerSession(t *testing.T) {
	f := newFixture(t, 2)
	a, b, c := f.newSession(t), f.newSession(t), f.newSession(t)

	for _, sess := range []*page.Session{a, b, c} {
		resp := f.do(t, http.MethodPost, "/controls", sess.ID, `{"page": "VDF Simulation"}`, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	updatesA, unsubscribeA := a.Runner().Subscribe()
	defer unsubscribeA()
	updatesB, unsubscribeB := b.Runner().Subscribe()
	defer unsubscribeB()

	resp := f.do(t, http.MethodPost, "/simulation", a.ID, "", nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	// b is not blocked by a's run
	resp = f.do(t, http.MethodPost, "/simulation", b.ID, "", nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	for i := 0; i < 2; i++ {
		f.tick(t, updatesA)
		select {
		case <-updatesB:
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for b's step %d", i+1)
		}
	}

	// c never ran a simulation
	f.do(t, http.MethodPost, "/controls", c.ID, `{"vdf_delay_seconds": 9}`, nil)
	view := f.page(t, c.ID)
	assert.NotContains(t, texts(view), progress.CompletionMessage(5))
	for _, block := range view.Blocks {
		assert.NotEqual(t, render.Progress, block.Kind)
	}

	// moving b's VDF slider clears b's finished run and leaves a's alone
	f.do(t, http.MethodPost, "/controls", b.ID, `{"vdf_delay_seconds": 9}`, nil)
	view = f.page(t, b.ID)
	assert.NotContains(t, texts(view), progress.CompletionMessage(5))

	view = f.page(t, a.ID)
	assert.Contains(t, texts(view), progress.CompletionMessage(5))
}

func texts(v render.View) []string {
	var res []string
	for _, b := range v.Blocks {
		res = append(res, b.Text)
	}
	return res
}

func TestSimulationStream(t *testing.T) {
	f := newFixture(t, 2)
	sess := f.newSession(t)

	updates, unsubscribe := sess.Runner().Subscribe()
	defer unsubscribe()

	require.NoError(t, sess.Runner().Start(5))

	base := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/simulation/ws"

	_, resp, err := websocket.DefaultDialer.Dial(base, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(base+"?session="+sess.ID, nil)
	require.NoError(t, err)
	defer conn.Close()

	var status progress.Status
	require.NoError(t, conn.ReadJSON(&status))
	assert.Equal(t, 0, status.Step)
	assert.True(t, status.Running)

	for i := 1; i <= 2; i++ {
		f.tick(t, updates)
		require.NoError(t, conn.ReadJSON(&status))
		assert.Equal(t, i, status.Step)
	}
	assert.True(t, status.Done)

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}
