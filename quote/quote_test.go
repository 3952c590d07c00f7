package quote

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/etnz/pms"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// server serves body for /quote/<name> and counts the requests.
func server(t *testing.T, bodies map[string]string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		body, ok := bodies[strings.TrimPrefix(r.URL.Path, "/quote/")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestFetcher_Price(t *testing.T) {
	srv, _ := server(t, map[string]string{
		"ACME":    `{"quote": {"last": 12.345678901234567890}}`,
		"BTC":     `{"quote": {"last": "61000.5"}}`,
		"LIST":    `{"data": [{"price": 3.5}, {"price": 4}]}`,
		"EMPTY":   `{"data": []}`,
		"NOPRICE": `{"quote": {"last": "./."}}`,
		"BAD":     `{"quote":`,
	})

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "ACME", path: "$.quote.last", want: "12.345678901234567890"},
		{name: "BTC", path: "$.quote.last", want: "61000.5"},
		{name: "LIST", path: "$.data[*].price", want: "3.5"},
		{name: "EMPTY", path: "$.data[*].price", wantErr: true},
		{name: "NOPRICE", path: "$.quote.last", wantErr: true},
		{name: "BAD", path: "$.quote.last", wantErr: true},
		{name: "MISSING", path: "$.quote.last", wantErr: true},
		{name: "ACME", path: "$.quote.bid", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name+" "+tt.path, func(t *testing.T) {
			f := &Fetcher{Client: srv.Client(), URL: srv.URL + "/quote/{name}", Path: tt.path}
			got, err := f.Price(context.Background(), tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %v want %v", got, tt.want)
		})
	}
}

func TestFetcher_NoURL(t *testing.T) {
	_, err := new(Fetcher).Price(context.Background(), "ACME")
	assert.Error(t, err)
}

func TestFetcher_EscapesName(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.EscapedPath()
		fmt.Fprint(w, `{"p": 1}`)
	}))
	defer srv.Close()

	f := &Fetcher{URL: srv.URL + "/q/{name}", Path: "$.p"}
	_, err := f.Price(context.Background(), "A/B")
	require.NoError(t, err)
	assert.Equal(t, "/q/A%2FB", got)
}

func TestFetcher_Canceled(t *testing.T) {
	srv, hits := server(t, map[string]string{"ACME": `{"p": 1}`})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &Fetcher{Client: srv.Client(), URL: srv.URL + "/quote/{name}", Path: "$.p"}
	_, err := f.Price(ctx, "ACME")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), hits.Load())
}

func TestDaily(t *testing.T) {
	srv, hits := server(t, map[string]string{"ACME": `{"p": 42}`})
	f := &Fetcher{Client: Daily(t.TempDir()), URL: srv.URL + "/quote/{name}", Path: "$.p"}

	for range 3 {
		got, err := f.Price(context.Background(), "ACME")
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.NewFromInt(42)))
	}
	assert.Equal(t, int32(1), hits.Load())

	// errors are not cached
	for range 2 {
		_, err := f.Price(context.Background(), "MISSING")
		assert.Error(t, err)
	}
	assert.Equal(t, int32(3), hits.Load())
}

func TestUpdatePrices(t *testing.T) {
	srv, _ := server(t, map[string]string{
		"ACME": `{"p": 6}`,
		"BTC":  `{"p": 70000}`,
	})
	p := pms.NewPortfolio(
		pms.NewStock("ACME", 10, 5.0),
		pms.NewBond("T-Bill", 1000, 4.0),
		pms.NewCryptocurrency("BTC", 0.25, 60000),
	)

	f := &Fetcher{Client: srv.Client(), URL: srv.URL + "/quote/{name}", Path: "$.p"}
	n, err := p.UpdatePrices(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	// 60 + 1040 + 17500
	assert.True(t, p.TotalValue().Equal(decimal.NewFromInt(18600)), p.TotalValue())
}
