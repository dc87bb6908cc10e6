package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	. "github.com/smartystreets/goconvey/convey"
)

// family returns the gathered family called name, or nil.
func family(reg *prometheus.Registry, name string) *dto.MetricFamily {
	mfs, err := reg.Gather()
	So(err, ShouldBeNil)
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func labelled(mf *dto.MetricFamily, key, value string) *dto.Metric {
	if mf == nil {
		return nil
	}
	for _, m := range mf.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() == key && lp.GetValue() == value {
				return m
			}
		}
	}
	return nil
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(
			WithNamespace("test"),
			WithSubsystem("unit"),
			WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
			WithRefreshInterval(5*time.Second),
			WithCustomLabels(map[string]string{"env": "test"}),
			WithPrometheusRegistry(registry),
		)

		Convey("Then options are applied", func() {
			So(manager.RefreshInterval(), ShouldEqual, 5*time.Second)
			So(manager.Enabled(), ShouldBeTrue)
		})

		Convey("And metrics carry the namespace and constant labels", func() {
			manager.datasetRows.Set(7)
			mf := family(registry, "test_unit_dataset_rows")
			So(mf, ShouldNotBeNil)
			So(mf.GetMetric()[0].GetGauge().GetValue(), ShouldEqual, 7)
			So(labelled(mf, "env", "test"), ShouldNotBeNil)
		})
	})

	Convey("Given empty option values", t, func() {
		manager := NewManager(
			WithNamespace(""),
			WithRefreshInterval(0),
			WithPrometheusRegistry(prometheus.NewRegistry()),
		)
		So(manager.namespace, ShouldEqual, "podium")
		So(manager.RefreshInterval(), ShouldEqual, defaultRefreshInterval)
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global manager", t, func() {
		reg := GetRegistry()

		Convey("When an aggregation is recorded", func() {
			RecordAggregation("medal_tally", 3*time.Millisecond, 12)

			Convey("Then its count, latency and row size are observed", func() {
				req := labelled(family(reg, "podium_analytics_aggregation_requests_total"), "aggregation", "medal_tally")
				So(req, ShouldNotBeNil)
				So(req.GetCounter().GetValue(), ShouldBeGreaterThanOrEqualTo, 1)

				rows := labelled(family(reg, "podium_analytics_aggregation_result_rows"), "aggregation", "medal_tally")
				So(rows, ShouldNotBeNil)
				So(rows.GetHistogram().GetSampleSum(), ShouldBeGreaterThanOrEqualTo, 12)
			})
		})

		Convey("When the dataset gauges are updated", func() {
			UpdateDataset(100, 5, 2, 1)
			So(family(reg, "podium_analytics_dataset_rows").GetMetric()[0].GetGauge().GetValue(), ShouldEqual, 100)
			So(family(reg, "podium_analytics_dataset_unresolved_rows").GetMetric()[0].GetGauge().GetValue(), ShouldEqual, 1)
		})

		Convey("When HTTP traffic and rejections are recorded", func() {
			RecordHTTPRequest("/api/medal-tally", "GET", "200")
			RecordHTTPRequestDuration("/api/medal-tally", "GET", "200", 5.0)
			RecordRateLimited("/api/medal-tally")
			RecordErrorByEndpoint("/api/over-time", "GET", "bad_request")

			So(labelled(family(reg, "podium_analytics_http_requests_total"), "endpoint", "/api/medal-tally"), ShouldNotBeNil)
			So(labelled(family(reg, "podium_analytics_http_rate_limited_total"), "endpoint", "/api/medal-tally"), ShouldNotBeNil)
			So(labelled(family(reg, "podium_analytics_errors_by_endpoint_total"), "error_type", "bad_request"), ShouldNotBeNil)
		})

		Convey("When recording load outcomes and system gauges", func() {
			So(func() {
				RecordLoadDuration(1500 * time.Millisecond)
				RecordLoadError()
				RecordErrorByComponent("dataset", "open")
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(8)
			}, ShouldNotPanic)
			So(family(reg, "podium_analytics_system_goroutine_count").GetMetric()[0].GetGauge().GetValue(), ShouldEqual, 8)
		})
	})
}
