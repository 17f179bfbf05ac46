package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	repliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_replies_total",
			Help: "Total assistant replies by match kind and answer source",
		},
		[]string{"kind", "source"},
	)

	catalogReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_catalog_reloads_total",
			Help: "Total rule catalog reloads by result",
		},
		[]string{"result"},
	)

	registerOnce sync.Once
)

// Register 注册到默认 registry, 可重复调用
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(repliesTotal, catalogReloadsTotal)
	})
}

// ObserveReply 记录一次回复
func ObserveReply(kind, source string) {
	repliesTotal.WithLabelValues(kind, source).Inc()
}

// ObserveReload 记录一次规则重载
func ObserveReload(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	catalogReloadsTotal.WithLabelValues(result).Inc()
}
