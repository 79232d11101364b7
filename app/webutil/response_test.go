package webutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithJSON(w, http.StatusOK, map[string]int{"count": 3})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, ContentTypeJSONUTF8, w.Header().Get(HeaderContentType))
	require.JSONEq(t, `{"count":3}`, w.Body.String())
}

func TestRespondWithJSONEmptySlice(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithJSON(w, http.StatusOK, []string{})

	// Listings must serialize as [], never null.
	require.Equal(t, "[]", w.Body.String())
}

func TestRespondWithDetail(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithDetail(w, http.StatusNotFound, "Post not found")

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"detail":"Post not found"}`, w.Body.String())
}
