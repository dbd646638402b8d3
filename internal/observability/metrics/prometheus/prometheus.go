package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var reqDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"status", "op"},
)

var logins = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "auth_logins_total",
		Help: "Number of issued login sessions",
	},
)

var rotations = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "auth_rotations_total",
		Help: "Number of successful refresh rotations",
	},
)

var revocations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "auth_revocations_total",
		Help: "Number of session revocations by reason",
	},
	[]string{"reason"},
)

var anomalyTrips = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "auth_anomaly_trips_total",
		Help: "Number of anomaly-triggered mass revocations",
	},
)

var swept = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "auth_swept_sessions_total",
		Help: "Number of session rows deleted by the cleanup sweep",
	},
)

func init() {
	prometheus.MustRegister(reqDuration, logins, rotations, revocations, anomalyTrips, swept)
}

func ObserveRequest(d time.Duration, status int, op string) {
	reqDuration.WithLabelValues(strconv.Itoa(status), op).Observe(d.Seconds())
}

func IncLogin()    { logins.Inc() }
func IncRotation() { rotations.Inc() }

func IncRevocation(reason string) { revocations.WithLabelValues(reason).Inc() }

func IncAnomalyTrip() { anomalyTrips.Inc() }
func AddSwept(n int64) { swept.Add(float64(n)) }

type Srv struct {
	srv *http.Server
}

func New(port int) *Srv {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Srv{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%v", port),
			Handler: mux,
		},
	}
}

func (s *Srv) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		if err := s.srv.Shutdown(context.Background()); err != nil {
			zap.L().Debug("Error shutting down metrics server", zap.Error(err))
		}
	}()

	zap.L().Info("Starting metrics server", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zap.L().Error("Metrics server error", zap.Error(err))
	}
}
