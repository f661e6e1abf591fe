// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInMemoryRegistry_ExportAll(t *testing.T) {
	registry := NewRegistry()
	gauge := registry.NewGauge("hello")
	gauge.Add(1)

	gaugeValue := registry.ExportAll()["hello"].(gaugeExport)
	require.EqualValues(t, gaugeValue.Value, 1)
}

func TestInMemoryRegistry_ExportsLatency(t *testing.T) {
	registry := NewRegistry()
	latency := registry.NewLatency("roundtrip", 10*time.Second)
	latency.RecordSince(time.Now().Add(-1 * time.Millisecond))

	histoValue := registry.ExportAll()["roundtrip"].(histogramExport)
	require.EqualValues(t, 1, histoValue.Samples)
}

func TestRate_RotatesRunningSumIntoAverage(t *testing.T) {
	rate := newRate("tps")
	rate.Measure(100)

	rate.m.Lock()
	rate.nextTick = time.Now().Add(-time.Millisecond)
	rate.m.Unlock()
	rate.Measure(0)

	export := rate.Export().(rateExport)
	require.EqualValues(t, 100, export.Rate, "rate did not absorb the measured events")
}

func TestHistogram_RecordsOverflowWithoutPanic(t *testing.T) {
	h := newHistogram("small", int64(time.Millisecond))
	require.NotPanics(t, func() {
		h.RecordSince(time.Now().Add(-time.Hour))
	})
}
