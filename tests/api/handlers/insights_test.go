package handlers_test

import (
	"net/http"
	"testing"

	"coindash/src/schemas"
)

func TestGetInsight(t *testing.T) {
	seedAssets(t)

	res := doRequest(t, http.MethodPost, "/api/holdings", map[string]interface{}{
		"symbol":    "BTC",
		"quantity":  "0.25",
		"costBasis": "12000",
	}, nil)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("failed to create holding; got %v", res.Status)
	}

	var insight schemas.InsightResponse
	res = doRequest(t, http.MethodGet, "/api/insights", nil, &insight)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status OK; got %v", res.Status)
	}
	if insight.Summary == "" {
		t.Error("expected a non-empty summary")
	}
	if insight.Cached {
		t.Error("first insight should not be served from cache")
	}

	// Within the TTL the second call is a cache hit.
	res = doRequest(t, http.MethodGet, "/api/insights", nil, &insight)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status OK; got %v", res.Status)
	}
	if !insight.Cached {
		t.Error("second insight should be served from cache")
	}
}

func TestGetInsightRequiresUserHeader(t *testing.T) {
	res, err := http.Get(ts.URL + "/api/insights")
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status Bad Request; got %v", res.Status)
	}
}
