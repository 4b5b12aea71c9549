package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	ledgerclient "github.com/swaplabs/swaprouter/ledger/client"
)

func TestTransfer(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transfer", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"applied": true}`))
	}))
	defer server.Close()

	ledger := ledgerclient.NewLedgerClient(server.URL)

	err := ledger.Transfer(context.Background(), "alice", "fee-sink", "USDC", math.NewInt(3))
	require.NoError(t, err)

	require.Equal(t, "alice", received["from"])
	require.Equal(t, "fee-sink", received["to"])
	require.Equal(t, "USDC", received["asset"])
	require.Equal(t, "3", received["amount"])
}

func TestTransfer_LedgerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "insufficient funds"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	ledger := ledgerclient.NewLedgerClient(server.URL)

	err := ledger.Transfer(context.Background(), "alice", "fee-sink", "USDC", math.NewInt(3))
	require.Error(t, err)
	require.Contains(t, err.Error(), "insufficient funds")
}

func TestBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/balance", r.URL.Path)
		require.Equal(t, "alice", r.URL.Query().Get("account"))
		require.Equal(t, "USDC", r.URL.Query().Get("asset"))
		w.Write([]byte(`{"balance": "12345"}`))
	}))
	defer server.Close()

	ledger := ledgerclient.NewLedgerClient(server.URL)

	balance, err := ledger.Balance(context.Background(), "alice", "USDC")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(12345), balance)
}
