package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGinPrometheusMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinPrometheusMiddleware("metrics-test"))
	router.GET("/reviews/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, id := range []string{"64b7f0c2a1b2c3d4e5f60718", "64b7f0c2a1b2c3d4e5f60719"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reviews/"+id, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	counter := HttpRequestsTotal.WithLabelValues("metrics-test", http.MethodGet, "/reviews/:id", "200")
	assert.Equal(t, float64(2), testutil.ToFloat64(counter))
}

func TestGinPrometheusMiddleware_UnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinPrometheusMiddleware("metrics-test-404"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope/123", nil))

	counter := HttpRequestsTotal.WithLabelValues("metrics-test-404", http.MethodGet, "unmatched", "404")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter))
}

func TestObserveDb_CountsErrors(t *testing.T) {
	ObserveDb("metrics-test", DbOpFind, "reviews")(nil)
	ObserveDb("metrics-test", DbOpFind, "reviews")(assert.AnError)

	assert.Equal(t, float64(1), testutil.ToFloat64(DbErrors.WithLabelValues("metrics-test", "find", "reviews")))
}

func TestObserveKafkaProduce(t *testing.T) {
	ObserveKafkaProduce("metrics-test", "review_events")(nil)
	ObserveKafkaProduce("metrics-test", "review_events")(nil)
	ObserveKafkaProduce("metrics-test", "review_events")(assert.AnError)

	assert.Equal(t, float64(2), testutil.ToFloat64(KafkaMessagesProduced.WithLabelValues("metrics-test", "review_events")))
	assert.Equal(t, float64(1), testutil.ToFloat64(KafkaErrors.WithLabelValues("metrics-test", "review_events")))
}

func TestRecordCacheLookup(t *testing.T) {
	RecordCacheLookup("metrics-test", "reviews:top", true)
	RecordCacheLookup("metrics-test", "reviews:top", false)
	RecordCacheLookup("metrics-test", "reviews:top", false)

	assert.Equal(t, float64(1), testutil.ToFloat64(CacheLookups.WithLabelValues("metrics-test", "reviews:top", "hit")))
	assert.Equal(t, float64(2), testutil.ToFloat64(CacheLookups.WithLabelValues("metrics-test", "reviews:top", "miss")))
}
