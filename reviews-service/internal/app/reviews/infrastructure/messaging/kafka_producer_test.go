package messaging

import (
	"context"
	"net"
	"testing"
	"time"

	"chillgamer/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKafkaProducer(t *testing.T) {
	producer := NewKafkaProducer([]string{"localhost:9092", "localhost:9093"}, "review_events")
	defer producer.Close()

	assert.Equal(t, "review_events", producer.topic)
	assert.Equal(t, "review_events", producer.writer.Topic)
	assert.Equal(t, "localhost:9092,localhost:9093", producer.writer.Addr.String())
	assert.IsType(t, &kafka.Hash{}, producer.writer.Balancer)
	assert.Equal(t, kafka.RequireOne, producer.writer.RequiredAcks)
}

func TestKafkaProducer_PublishMessage_BrokerUnavailable(t *testing.T) {
	// Адрес свободного порта, на котором никто не слушает
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	listener.Close()

	producer := NewKafkaProducer([]string{addr}, "review_events_unavailable")
	defer producer.Close()

	before := testutil.ToFloat64(metrics.KafkaErrors.WithLabelValues(serviceName, "review_events_unavailable"))

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	err = producer.PublishMessage(ctx, "review-1", []byte(`{"event_type":"REVIEW_CREATED"}`))

	assert.Error(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.KafkaErrors.WithLabelValues(serviceName, "review_events_unavailable")))
}
