package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAggregateServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/monthly-sales", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"month":1,"total_sales":100},{"month":6,"total_sales":44}]`))
	})
	mux.HandleFunc("/api/product-sales", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"product_line":"Beverages","total_sales":90}]`))
	})
	mux.HandleFunc("/api/customer-gender", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"Gender":"Female","count":3},{"Gender":"Male","count":2}]`))
	})
	mux.HandleFunc("/api/payment-methods", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"payment_method":"Ewallet","count":5}]`))
	})
	return httptest.NewServer(mux)
}

func TestClientFetchDashboard(t *testing.T) {
	ts := newAggregateServer(t)
	defer ts.Close()

	d, err := NewClient(ts.URL).FetchDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 144.0, d.Insights.TotalSales)
	assert.Equal(t, 12.0, d.Insights.AverageSales)
	assert.Equal(t, "Jan", d.Insights.BestMonth)

	assert.Equal(t, 100.0, d.MonthlySales.Values[0])
	assert.Equal(t, 44.0, d.MonthlySales.Values[5])
	assert.Equal(t, []string{"Beverages"}, d.ProductSales.Labels)
	assert.Equal(t, []float64{3, 2}, d.CustomerGender.Values)
	assert.Equal(t, []string{"Ewallet"}, d.PaymentMethods.Labels)
}

func TestClientConsolidatesFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/monthly-sales", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	// one failing endpoint fails the whole fetch; no partial dashboard
	ov, err := NewClient(ts.URL).FetchOverview(context.Background())
	require.Error(t, err)
	assert.Nil(t, ov)
	assert.Contains(t, err.Error(), "monthly-sales")
}

func TestClientHonorsPerRequestTimeout(t *testing.T) {
	block := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()
	defer close(block)

	start := time.Now()
	_, err := NewClient(ts.URL).WithTimeout(50 * time.Millisecond).FetchOverview(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
