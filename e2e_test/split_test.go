package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/handsplit/config"
	"github.com/jsphweid/handsplit/model"
	"github.com/jsphweid/handsplit/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var handler http.Handler

func TestMain(m *testing.M) {
	handler = server.New(config.Default(), nil).Handler()
	os.Exit(m.Run())
}

func createSplitReqBody(t *testing.T, body model.SplitRequestBody) io.Reader {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func post(t *testing.T, path string, body io.Reader) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, body)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w.Result()
}

func melodyOverBass() model.Notes {
	return model.Notes{
		{Pitch: 48, Onset: 0, Offset: 1, Velocity: 70},
		{Pitch: 67, Onset: 0, Offset: 0.5, Velocity: 90},
		{Pitch: 69, Onset: 0.5, Offset: 1, Velocity: 90},
		{Pitch: 43, Onset: 1, Offset: 2, Velocity: 70},
		{Pitch: 71, Onset: 1, Offset: 2, Velocity: 90},
	}
}

func TestSplitE2E(t *testing.T) {
	resp := post(t, "/split", createSplitReqBody(t, model.SplitRequestBody{Notes: melodyOverBass()}))
	defer resp.Body.Close()

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.NotEmpty(resp.Header.Get("X-Request-Id"))

	var splitResponse model.SplitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&splitResponse))

	p := splitResponse.Partition
	assert.Equal("optimal", p.Engine)
	assert.Equal(resp.Header.Get("X-Request-Id"), splitResponse.RequestId)
	assert.Equal([]int{48, 43}, pitchesOf(p.Left))
	assert.Equal([]int{67, 69, 71}, pitchesOf(p.Right))
	assert.Equal(0.0, p.Cost)
}

func TestSplitGreedyWithParamsE2E(t *testing.T) {
	spread := 24
	body := model.SplitRequestBody{
		Notes:  melodyOverBass(),
		Engine: "greedy",
		Params: model.SplitParams{AllowedSpread: &spread},
	}
	resp := post(t, "/split", createSplitReqBody(t, body))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var splitResponse model.SplitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&splitResponse))
	assert.Equal(t, "greedy", splitResponse.Partition.Engine)
	assert.Equal(t, 5, splitResponse.Partition.Len())
}

func TestSplitRejectsInvalidNoteE2E(t *testing.T) {
	notes := model.Notes{{Pitch: 60, Onset: 1, Offset: 0.5, Velocity: 80}}
	resp := post(t, "/split", createSplitReqBody(t, model.SplitRequestBody{Notes: notes}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errResponse model.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResponse))
	assert.Contains(t, errResponse.Error, "invalid note")
}

func TestSplitRejectsUnknownEngineE2E(t *testing.T) {
	body := model.SplitRequestBody{Notes: melodyOverBass(), Engine: "kmeans"}
	resp := post(t, "/split", createSplitReqBody(t, body))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSplitRejectsGarbageE2E(t *testing.T) {
	resp := post(t, "/split", bytes.NewReader([]byte("{not json")))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSplitEmptyE2E(t *testing.T) {
	resp := post(t, "/split", createSplitReqBody(t, model.SplitRequestBody{}))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var splitResponse model.SplitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&splitResponse))
	assert.Equal(t, 0, splitResponse.Partition.Len())
}

func TestCompareE2E(t *testing.T) {
	resp := post(t, "/compare", createSplitReqBody(t, model.SplitRequestBody{Notes: melodyOverBass()}))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var compareResponse model.CompareResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&compareResponse))

	assert := assert.New(t)
	assert.Equal("greedy", compareResponse.Greedy.Engine)
	assert.Equal("optimal", compareResponse.Optimal.Engine)
	assert.Equal(0, compareResponse.Disagree)
	assert.Len(compareResponse.Summary, 4)
}

func TestHealthE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func pitchesOf(notes model.Notes) []int {
	res := make([]int, 0, len(notes))
	for _, n := range notes {
		res = append(res, n.Pitch)
	}
	return res
}
