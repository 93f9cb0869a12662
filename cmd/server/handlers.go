package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cours-de-latin/declension"
	"github.com/cours-de-latin/declension/htmlbind"
)

// ---- JSON request/response types ----------------------------------------

type inflectResponse struct {
	Input  string `json:"input"`
	Lang   string `json:"lang"`
	Case   string `json:"case"`
	Result string `json:"result"`
}

type textRequest struct {
	Text      string `json:"text"`
	Lang      string `json:"lang"`
	Case      string `json:"case"`
	EveryWord bool   `json:"every_word"`
}

type htmlRequest struct {
	HTML     string `json:"html"`
	Selector string `json:"selector"`
	Target   string `json:"target"`
	Lang     string `json:"lang"`
	Case     string `json:"case"`
	Policy   string `json:"policy"`
}

type htmlResponse struct {
	Result string `json:"result"`
	HTML   string `json:"html"`
}

type languagesResponse struct {
	// Languages maps language code → accepted case names.
	Languages map[string][]string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

type api struct {
	reg     *declension.Registry
	log     logrus.FieldLogger
	maxBody int64
}

func (a *api) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.WithError(err).Warn("encode error")
	}
}

func (a *api) writeError(w http.ResponseWriter, status int, msg string) {
	a.writeJSON(w, status, errorResponse{Error: msg})
}

// writeInflectError maps engine errors to HTTP statuses.
func (a *api) writeInflectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, declension.ErrUnsupportedLanguage):
		a.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, declension.ErrInvalidInput),
		errors.Is(err, declension.ErrUnknownCase),
		errors.Is(err, declension.ErrUnknownPolicy):
		a.writeError(w, http.StatusBadRequest, err.Error())
	default:
		a.writeError(w, http.StatusUnprocessableEntity, err.Error())
	}
}

func (a *api) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.writeError(w, http.StatusBadRequest, "body must be a JSON object: "+err.Error())
		return false
	}
	return true
}

// ---- handlers -----------------------------------------------------------

func (a *api) handleInflect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	q := r.URL.Query()
	word, lang, caseName := q.Get("word"), q.Get("lang"), q.Get("case")
	if word == "" || lang == "" || caseName == "" {
		a.writeError(w, http.StatusBadRequest, "'word', 'lang' and 'case' query parameters are required")
		return
	}
	policy, err := declension.ParsePolicy(q.Get("policy"))
	if err != nil {
		a.writeInflectError(w, err)
		return
	}

	out, err := a.reg.InflectWord(word, lang, caseName, declension.Options{Policy: policy})
	if err != nil {
		a.writeInflectError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, inflectResponse{Input: word, Lang: lang, Case: caseName, Result: out})
}

func (a *api) handleInflectText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		a.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body textRequest
	if !a.decode(w, r, &body) {
		return
	}
	if body.Lang == "" || body.Case == "" {
		a.writeError(w, http.StatusBadRequest, "'lang' and 'case' are required")
		return
	}

	out, err := a.reg.InflectText(body.Text, body.Lang, body.Case, !body.EveryWord)
	if err != nil {
		a.writeInflectError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, inflectResponse{Input: body.Text, Lang: body.Lang, Case: body.Case, Result: out})
}

func (a *api) handleInflectHTML(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		a.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body htmlRequest
	if !a.decode(w, r, &body) {
		return
	}
	if body.Selector == "" {
		a.writeError(w, http.StatusBadRequest, "'selector' is required")
		return
	}
	policy, err := declension.ParsePolicy(body.Policy)
	if err != nil {
		a.writeInflectError(w, err)
		return
	}

	doc, err := htmlbind.Parse(strings.NewReader(body.HTML))
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := doc.Bind(a.reg, htmlbind.Request{
		Selector: body.Selector,
		Target:   body.Target,
		Lang:     body.Lang,
		Case:     body.Case,
		Policy:   policy,
	})
	if err != nil {
		a.writeInflectError(w, err)
		return
	}
	rendered, err := doc.HTML()
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.writeJSON(w, http.StatusOK, htmlResponse{Result: out, HTML: rendered})
}

func (a *api) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	langs := make(map[string][]string)
	for _, code := range a.reg.Languages() {
		e, err := a.reg.Engine(code)
		if err != nil {
			continue
		}
		langs[code] = e.CaseNames()
	}
	a.writeJSON(w, http.StatusOK, languagesResponse{Languages: langs})
}

// ---- middleware ---------------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// withRequestLog tags every request with an X-Request-ID and logs it once
// it completes.
func withRequestLog(log logrus.FieldLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"duration":   time.Since(start).String(),
		}).Info("request")
	})
}

func newMux(reg *declension.Registry, log logrus.FieldLogger, maxBody int64) http.Handler {
	a := &api{reg: reg, log: log, maxBody: maxBody}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/inflect/text", a.handleInflectText)
	mux.HandleFunc("/api/inflect/html", a.handleInflectHTML)
	mux.HandleFunc("/api/inflect", a.handleInflect)
	mux.HandleFunc("/api/languages", a.handleLanguages)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return withRequestLog(log, mux)
}
