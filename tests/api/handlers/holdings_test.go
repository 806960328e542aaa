package handlers_test

import (
	"net/http"
	"strconv"
	"testing"

	"coindash/src/schemas"
)

func TestHoldingsRequireUserHeader(t *testing.T) {
	res, err := http.Get(ts.URL + "/api/holdings")
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status Bad Request; got %v", res.Status)
	}
}

func TestHoldingLifecycle(t *testing.T) {
	seedAssets(t)

	var created schemas.HoldingResponse
	res := doRequest(t, http.MethodPost, "/api/holdings", map[string]interface{}{
		"symbol":    "BTC",
		"quantity":  "0.5",
		"costBasis": "20000",
	}, &created)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected status Created; got %v", res.Status)
	}
	if created.ID == 0 || created.Symbol != "BTC" {
		t.Fatalf("unexpected created holding: %+v", created)
	}

	var holdings []schemas.HoldingResponse
	res = doRequest(t, http.MethodGet, "/api/holdings", nil, &holdings)
	if res.StatusCode != http.StatusOK {
		t.Errorf("expected status OK; got %v", res.Status)
	}
	if len(holdings) == 0 {
		t.Fatal("expected at least one holding")
	}

	var updated schemas.HoldingResponse
	res = doRequest(t, http.MethodPut, "/api/holdings/"+strconv.Itoa(created.ID), map[string]interface{}{
		"quantity":  "0.75",
		"costBasis": "30000",
	}, &updated)
	if res.StatusCode != http.StatusOK {
		t.Errorf("expected status OK; got %v", res.Status)
	}
	if updated.Quantity.String() != "0.75" {
		t.Errorf("expected updated quantity 0.75; got %s", updated.Quantity)
	}

	res = doRequest(t, http.MethodDelete, "/api/holdings/"+strconv.Itoa(created.ID), nil, nil)
	if res.StatusCode != http.StatusNoContent {
		t.Errorf("expected status No Content; got %v", res.Status)
	}

	// A second delete hits the soft-deleted row.
	res = doRequest(t, http.MethodDelete, "/api/holdings/"+strconv.Itoa(created.ID), nil, nil)
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("expected status Not Found; got %v", res.Status)
	}
}

func TestCreateHoldingValidation(t *testing.T) {
	seedAssets(t)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"ZeroQuantity", map[string]interface{}{"symbol": "BTC", "quantity": "0", "costBasis": "100"}},
		{"NegativeQuantity", map[string]interface{}{"symbol": "BTC", "quantity": "-1", "costBasis": "100"}},
		{"NegativeCostBasis", map[string]interface{}{"symbol": "BTC", "quantity": "1", "costBasis": "-100"}},
		{"MissingSymbol", map[string]interface{}{"quantity": "1", "costBasis": "100"}},
		{"UnknownSymbol", map[string]interface{}{"symbol": "DOGE", "quantity": "1", "costBasis": "100"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := doRequest(t, http.MethodPost, "/api/holdings", tc.body, nil)
			if res.StatusCode != http.StatusUnprocessableEntity {
				t.Errorf("expected status Unprocessable Entity; got %v", res.Status)
			}
		})
	}
}

func TestUpdateMissingHolding(t *testing.T) {
	res := doRequest(t, http.MethodPut, "/api/holdings/99999", map[string]interface{}{
		"quantity":  "1",
		"costBasis": "100",
	}, nil)
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("expected status Not Found; got %v", res.Status)
	}
}

