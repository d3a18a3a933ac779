package devserver

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvision-ai/medvision-client/models"
)

func postImage(t *testing.T, url string, payload []byte) *http.Response {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "scan.png")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(url, writer.FormDataContentType(), &body)
	require.NoError(t, err)
	return resp
}

func decodePrediction(t *testing.T, resp *http.Response) models.PredictionResponse {
	t.Helper()
	defer resp.Body.Close()

	var out models.PredictionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestPredict_DeterministicVerdict(t *testing.T) {
	srv, _ := newTestServer(t)
	url := srv.URL + "/predict?modality=xray&sensitivity=120"

	payload := []byte("fake image bytes")

	first := decodePrediction(t, postImage(t, url, payload))
	second := decodePrediction(t, postImage(t, url, payload))

	assert.Equal(t, first, second, "same upload must yield the same verdict")
	assert.Contains(t, predictLabels, first.Prediction.Label)
	assert.GreaterOrEqual(t, first.Prediction.Confidence, 0.75)
	assert.Less(t, first.Prediction.Confidence, 0.95)
	assert.Equal(t, first.Prediction.Label == "Normal", first.Prediction.IsNormal)
}

func TestPredict_DifferentPayloadsDiffer(t *testing.T) {
	srv, _ := newTestServer(t)
	url := srv.URL + "/predict?modality=ct&sensitivity=120"

	first := decodePrediction(t, postImage(t, url, []byte("payload one")))
	second := decodePrediction(t, postImage(t, url, []byte("a distinctly different payload")))

	assert.NotEqual(t, first.Prediction.Confidence, second.Prediction.Confidence)
}

func TestPredict_UnknownModality(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postImage(t, srv.URL+"/predict?modality=mri", []byte("x"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "unknown modality", decodeErrorResponse(t, resp).Message)
}

func TestPredict_MissingFile(t *testing.T) {
	srv, _ := newTestServer(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("note", "no file here"))
	require.NoError(t, writer.Close())

	resp, err := http.Post(srv.URL+"/predict?modality=xray", writer.FormDataContentType(), &body)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing file field", decodeErrorResponse(t, resp).Message)
}
