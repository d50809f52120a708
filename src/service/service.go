package service

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/mosaicnetworks/fairshow/src/dataset"
	"github.com/mosaicnetworks/fairshow/src/latency"
	"github.com/mosaicnetworks/fairshow/src/page"
	"github.com/mosaicnetworks/fairshow/src/render"
	"github.com/mosaicnetworks/fairshow/src/witness"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SessionHeader carries the viewer session ID in both directions.
const SessionHeader = "X-Fairshow-Session"

// SessionParam carries the session ID where headers cannot be set, as in a
// browser websocket handshake.
const SessionParam = "session"

var errNoRunner = errors.New("session has no simulation runner")

// Service exposes the presentation over HTTP. Handlers run one at a time, so
// every interaction sees a consistent session.
type Service struct {
	sync.Mutex

	bindAddress string
	sessions    *page.Store
	mux         *http.ServeMux
	upgrader    websocket.Upgrader
	logger      *logrus.Entry
}

// NewService ...
func NewService(bindAddress string, sessions *page.Store, logger *logrus.Entry) *Service {
	service := Service{
		bindAddress: bindAddress,
		sessions:    sessions,
		mux:         http.NewServeMux(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}

	service.registerHandlers()

	return &service
}

func (s *Service) registerHandlers() {
	s.logger.Debug("Registering fairshow API handlers")
	s.mux.HandleFunc("/pages", s.makeHandler(s.GetPages))
	s.mux.HandleFunc("/page/", s.makeHandler(s.GetPage))
	s.mux.HandleFunc("/session", s.makeHandler(s.PostSession))
	s.mux.HandleFunc("/controls", s.makeHandler(s.PostControls))
	s.mux.HandleFunc("/latency", s.makeHandler(s.GetLatency))
	s.mux.HandleFunc("/comparison", s.makeHandler(s.GetComparison))
	s.mux.HandleFunc("/algorithm/", s.makeHandler(s.GetAlgorithm))
	s.mux.HandleFunc("/verify", s.makeHandler(s.PostVerify))
	s.mux.HandleFunc("/simulation", s.makeHandler(s.Simulation))
	// the stream outlives a single interaction and must not hold the lock
	s.mux.HandleFunc("/simulation/ws", s.cors(s.StreamSimulation))
}

func (s *Service) makeHandler(fn func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return s.cors(func(w http.ResponseWriter, r *http.Request) {
		s.Lock()
		defer s.Unlock()

		fn(w, r)
	})
}

func (s *Service) cors(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Expose-Headers", SessionHeader+", ETag")

		fn(w, r)
	}
}

// Handler returns the router, for embedding in another server or in tests.
func (s *Service) Handler() http.Handler {
	return s.mux
}

// Serve calls ListenAndServe. This is a blocking call.
func (s *Service) Serve() error {
	s.logger.WithField("bind_address", s.bindAddress).Info("Serving fairshow API")

	err := http.ListenAndServe(s.bindAddress, s.mux)
	if err != nil {
		s.logger.Error(err)
	}
	return err
}

// lookup returns the stored session named by the request, if any.
func (s *Service) lookup(r *http.Request) (*page.Session, bool) {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		id = r.URL.Query().Get(SessionParam)
	}
	return s.sessions.Get(id)
}

// session returns the caller's session for an interaction that changes it,
// creating one when the header is missing or stale, and echoes its ID.
func (s *Service) session(w http.ResponseWriter, r *http.Request) *page.Session {
	sess, ok := s.lookup(r)
	if !ok {
		sess = s.sessions.Create()
		s.logger.WithField("session", sess.ID).Debug("New session")
	}
	w.Header().Set(SessionHeader, sess.ID)
	return sess
}

// view returns the caller's session for a read. Without a known session it
// answers from a throwaway session with default controls, which is not
// stored.
func (s *Service) view(w http.ResponseWriter, r *http.Request) *page.Session {
	if sess, ok := s.lookup(r); ok {
		w.Header().Set(SessionHeader, sess.ID)
		return sess
	}
	return page.NewSession("")
}

// GetPages ...
func (s *Service) GetPages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, page.Labels())
}

// GetPage selects the page named in the path, if any, and renders the
// session's current page. Anonymous callers get the named page with default
// controls.
func (s *Service) GetPage(w http.ResponseWriter, r *http.Request) {
	sess := s.view(w, r)

	if label := strings.TrimPrefix(r.URL.Path, "/page/"); label != "" {
		p, err := page.Parse(label)
		if err != nil {
			s.fail(w, err, http.StatusNotFound, "Parsing page %s", label)
			return
		}
		sess.SetPage(p)
	}

	view, err := render.Render(sess)
	if err != nil {
		s.fail(w, err, http.StatusInternalServerError, "Rendering page %s", sess.Page)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// PostSession starts a fresh session with default controls.
func (s *Service) PostSession(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}

	sess := s.sessions.Create()
	w.Header().Set(SessionHeader, sess.ID)

	s.logger.WithField("session", sess.ID).Debug("New session")

	writeJSON(w, http.StatusCreated, sess)
}

// PostControls applies a partial control update to the session.
func (s *Service) PostControls(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}

	sess := s.session(w, r)

	var controls page.Controls
	if err := json.NewDecoder(r.Body).Decode(&controls); err != nil {
		s.fail(w, err, http.StatusBadRequest, "Decoding controls")
		return
	}

	if err := sess.Apply(controls); err != nil {
		s.fail(w, err, http.StatusBadRequest, "Applying controls")
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// LatencyReport is the response of GetLatency.
type LatencyReport struct {
	FastLatencyMs    float64                `json:"fast_latency_ms"`
	SlowLatencyMs    float64                `json:"slow_latency_ms"`
	VDFDelaySeconds  float64                `json:"vdf_delay_seconds"`
	AdvantagePercent float64                `json:"advantage_percent"`
	Neutralization   latency.Neutralization `json:"neutralization"`
	Message          string                 `json:"message"`
	Timeline         []latency.TimelineBar  `json:"timeline"`
	Stack            []latency.StackBar     `json:"stack"`
}

// GetLatency runs the calculator on the query parameters fast, slow and vdf.
// Missing parameters fall back to the session sliders. Values are passed to
// the calculator unclamped.
func (s *Service) GetLatency(w http.ResponseWriter, r *http.Request) {
	sess := s.view(w, r)
	q := r.URL.Query()

	fast, err := floatParam(q.Get("fast"), sess.FastLatencyMs)
	if err != nil {
		s.fail(w, err, http.StatusBadRequest, "Parsing fast parameter")
		return
	}
	slow, err := floatParam(q.Get("slow"), sess.SlowLatencyMs)
	if err != nil {
		s.fail(w, err, http.StatusBadRequest, "Parsing slow parameter")
		return
	}
	vdf, err := floatParam(q.Get("vdf"), sess.VDFDelaySeconds)
	if err != nil {
		s.fail(w, err, http.StatusBadRequest, "Parsing vdf parameter")
		return
	}

	advantage, err := latency.WithoutNeutralization(fast, slow)
	if err != nil {
		s.fail(w, err, http.StatusBadRequest, "Computing advantage")
		return
	}
	n, err := latency.WithNeutralization(fast, slow, vdf)
	if err != nil {
		s.fail(w, err, http.StatusBadRequest, "Computing neutralization")
		return
	}

	writeJSON(w, http.StatusOK, LatencyReport{
		FastLatencyMs:    fast,
		SlowLatencyMs:    slow,
		VDFDelaySeconds:  vdf,
		AdvantagePercent: advantage,
		Neutralization:   n,
		Message:          n.Classification.Message(),
		Timeline:         latency.Timeline(fast, slow),
		Stack:            latency.Stack(fast, slow, vdf),
	})
}

// GetComparison returns the comparison table, sorted best-first by the sort
// query parameter when present.
func (s *Service) GetComparison(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("sort")
	if label == "" {
		writeJSON(w, http.StatusOK, dataset.Rows())
		return
	}

	rows, err := dataset.SortBy(dataset.Column(label))
	if err != nil {
		s.fail(w, err, http.StatusBadRequest, "Sorting by %s", label)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

// GetAlgorithm ...
func (s *Service) GetAlgorithm(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/algorithm/")

	row, err := dataset.Lookup(name)
	if err != nil {
		s.fail(w, err, http.StatusNotFound, "Looking up algorithm %s", name)
		return
	}

	writeJSON(w, http.StatusOK, row)
}

// VerifyRequest is the body of PostVerify. Absent fields fall back to the
// session form values.
type VerifyRequest struct {
	BlockNumber *int    `json:"block_number"`
	Validator   *string `json:"validator"`
}

// PostVerify answers the "Verify Fairness" button with the scripted witness
// result and keeps it for the Fairness Witnesses page.
func (s *Service) PostVerify(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}

	sess := s.view(w, r)

	req := VerifyRequest{}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.fail(w, err, http.StatusBadRequest, "Decoding verify request")
			return
		}
	}

	block, validator := sess.BlockNumber, sess.Validator
	if req.BlockNumber != nil {
		block = *req.BlockNumber
	}
	if req.Validator != nil {
		validator = *req.Validator
	}

	res, err := witness.Verify(block, validator)
	if err != nil {
		s.fail(w, err, http.StatusBadRequest, "Verifying block %d", block)
		return
	}

	fingerprint, err := res.Fingerprint()
	if err != nil {
		s.fail(w, err, http.StatusInternalServerError, "Fingerprinting result")
		return
	}

	sess.BlockNumber = block
	sess.Validator = validator
	sess.RecordVerification(res)

	w.Header().Set("ETag", `"`+fingerprint+`"`)
	writeJSON(w, http.StatusOK, res)
}

// Simulation starts a VDF progress run on POST and reports its status on GET.
func (s *Service) Simulation(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.view(w, r).Simulation())
	case http.MethodPost:
		sess := s.session(w, r)
		runner := sess.Runner()
		if runner == nil {
			s.fail(w, errNoRunner, http.StatusInternalServerError, "Starting simulation")
			return
		}
		if err := runner.Start(sess.VDFDelaySeconds); err != nil {
			s.fail(w, err, http.StatusConflict, "Starting simulation")
			return
		}
		writeJSON(w, http.StatusAccepted, runner.Status())
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// StreamSimulation upgrades to a websocket and pushes a Status of the
// session's run for every step until it completes. The current status is sent
// first. The session is named by the header or the session query parameter.
func (s *Service) StreamSimulation(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(r)
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}
	runner := sess.Runner()
	if runner == nil {
		s.fail(w, errNoRunner, http.StatusInternalServerError, "Streaming simulation")
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Error("Upgrading simulation stream")
		return
	}
	defer conn.Close()

	updates, unsubscribe := runner.Subscribe()
	defer unsubscribe()

	status := runner.Status()
	if err := conn.WriteJSON(status); err != nil || !status.Running {
		return
	}

	for status = range updates {
		if err := conn.WriteJSON(status); err != nil {
			s.logger.WithError(err).Debug("Simulation stream closed")
			return
		}
		if status.Done {
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, status.Message))
			return
		}
	}
}

func (s *Service) fail(w http.ResponseWriter, err error, status int, format string, args ...interface{}) {
	s.logger.WithError(err).Errorf(format, args...)

	http.Error(w, err.Error(), status)
}

func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func floatParam(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
