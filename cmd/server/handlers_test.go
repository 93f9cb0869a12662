package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/declension/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg, err := newRegistry(config.ExceptionsConfig{})
	require.NoError(t, err)
	log := logrus.New()
	log.SetOutput(io.Discard)
	srv := httptest.NewServer(newMux(reg, log, 1<<16))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, rawURL string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(rawURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp
}

func postJSON(t *testing.T, rawURL, body string, v any) *http.Response {
	t.Helper()
	resp, err := http.Post(rawURL, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp
}

func TestHandleInflect(t *testing.T) {
	srv := newTestServer(t)
	tests := []struct {
		word, lang, c, policy string
		want                  string
	}{
		{"стол", "ru", "genitive", "", "стола"},
		{"Иван Иванович Петров", "ru", "genitive", "", "Ивана Ивановича Петрова"},
		{"Иван Петров", "ru", "genitive", "phrase", "Ивана Петров"},
		{"Мұхтар Әуезов", "kz", "ilik", "auto", "Мұхтар Әуезовтың"},
	}
	for _, tt := range tests {
		q := url.Values{"word": {tt.word}, "lang": {tt.lang}, "case": {tt.c}, "policy": {tt.policy}}
		var out inflectResponse
		resp := getJSON(t, srv.URL+"/api/inflect?"+q.Encode(), &out)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, tt.want, out.Result)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	}
}

func TestHandleInflectErrors(t *testing.T) {
	srv := newTestServer(t)
	tests := []struct {
		query  url.Values
		status int
	}{
		{url.Values{"word": {"дос"}, "lang": {"kz"}}, http.StatusBadRequest},
		{url.Values{"word": {"дос"}, "lang": {"kz"}, "case": {"bogus"}}, http.StatusBadRequest},
		{url.Values{"word": {"дос"}, "lang": {"de"}, "case": {"genitive"}}, http.StatusNotFound},
		{url.Values{"word": {"   "}, "lang": {"ru"}, "case": {"genitive"}}, http.StatusBadRequest},
		{url.Values{"word": {"дос"}, "lang": {"kz"}, "case": {"ilik"}, "policy": {"title"}}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		var out errorResponse
		resp := getJSON(t, srv.URL+"/api/inflect?"+tt.query.Encode(), &out)
		assert.Equal(t, tt.status, resp.StatusCode, tt.query.Encode())
		assert.NotEmpty(t, out.Error)
	}
}

func TestHandleInflectText(t *testing.T) {
	srv := newTestServer(t)

	var out inflectResponse
	resp := postJSON(t, srv.URL+"/api/inflect/text", `{"text":"стол и стул","lang":"ru","case":"genitive"}`, &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "стола и стул", out.Result)

	resp = postJSON(t, srv.URL+"/api/inflect/text", `{"text":"дос бала","lang":"kz","case":"barys","every_word":true}`, &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "досқа балаға", out.Result)

	var e errorResponse
	resp = postJSON(t, srv.URL+"/api/inflect/text", `not json`, &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleInflectHTML(t *testing.T) {
	srv := newTestServer(t)

	body, err := json.Marshal(htmlRequest{
		HTML:     `<p id="src">директор школы</p><p id="dst"></p>`,
		Selector: "#src",
		Target:   "#dst",
		Lang:     "ru",
		Case:     "dative",
	})
	require.NoError(t, err)

	var out htmlResponse
	resp := postJSON(t, srv.URL+"/api/inflect/html", string(body), &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "директору школы", out.Result)
	assert.Contains(t, out.HTML, `<p id="dst">директору школы</p>`)
}

func TestHandleLanguages(t *testing.T) {
	srv := newTestServer(t)

	var out languagesResponse
	resp := getJSON(t, srv.URL+"/api/languages", &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "nominative", out.Languages["ru"][0])
	assert.Contains(t, out.Languages["kz"], "komektes")
}

func TestHandleMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	var out errorResponse
	resp := postJSON(t, srv.URL+"/api/inflect", `{}`, &out)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestNewRegistryWithExceptionFiles(t *testing.T) {
	dir := t.TempDir()
	ruPath := filepath.Join(dir, "ru.yaml")
	require.NoError(t, os.WriteFile(ruPath, []byte("кофе:\n  genitive: кофе\n"), 0o644))

	reg, err := newRegistry(config.ExceptionsConfig{RU: ruPath})
	require.NoError(t, err)

	e, err := reg.Engine("ru")
	require.NoError(t, err)
	got, err := e.InflectWord("кофе", "genitive")
	require.NoError(t, err)
	assert.Equal(t, "кофе", got)

	_, err = newRegistry(config.ExceptionsConfig{KZ: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}
