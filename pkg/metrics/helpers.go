package metrics

import "time"

type DbOperation string

const (
	DbOpFind   DbOperation = "find"
	DbOpInsert DbOperation = "insert"
	DbOpUpdate DbOperation = "update"
	DbOpDelete DbOperation = "delete"
)

type RedisOperation string

const (
	RedisOpGet RedisOperation = "get"
	RedisOpSet RedisOperation = "set"
	RedisOpDel RedisOperation = "del"
)

// ObserveDb засекает операцию над коллекцией. Возвращенную функцию
// вызывают через defer с итоговой ошибкой:
//
//	done := metrics.ObserveDb(service, metrics.DbOpFind, "reviews")
//	defer func() { done(err) }()
func ObserveDb(service string, op DbOperation, collection string) func(error) {
	start := time.Now()
	return func(err error) {
		DbOperationDuration.WithLabelValues(service, string(op), collection).Observe(time.Since(start).Seconds())
		if err != nil {
			DbErrors.WithLabelValues(service, string(op), collection).Inc()
		}
	}
}

func ObserveRedis(service string, op RedisOperation) func(error) {
	start := time.Now()
	return func(err error) {
		RedisOperationDuration.WithLabelValues(service, string(op)).Observe(time.Since(start).Seconds())
		if err != nil {
			RedisErrors.WithLabelValues(service, string(op)).Inc()
		}
	}
}

// ObserveKafkaProduce: длительность учитывается только для доставленных сообщений
func ObserveKafkaProduce(service, topic string) func(error) {
	start := time.Now()
	return func(err error) {
		if err != nil {
			KafkaErrors.WithLabelValues(service, topic).Inc()
			return
		}
		KafkaMessagesProduced.WithLabelValues(service, topic).Inc()
		KafkaProduceDuration.WithLabelValues(service, topic).Observe(time.Since(start).Seconds())
	}
}

func RecordCacheLookup(service, key string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(service, key, result).Inc()
}
