package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBankingOperation_ObservesBalanceOnlyOnSuccess(t *testing.T) {
	sampleCount := func() uint64 {
		m := &dto.Metric{}
		require.NoError(t, AccountBalancesHistogram.Write(m))
		return m.GetHistogram().GetSampleCount()
	}
	before := sampleCount()

	RecordBankingOperation("deposit", "success", "primary", 250)
	assert.Equal(t, before+1, sampleCount())

	RecordBankingOperation("withdraw", "rejected", "primary", 250)
	assert.Equal(t, before+1, sampleCount())
}

func TestSetFailoverMode_TogglesGauge(t *testing.T) {
	SetFailoverMode(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(FailoverMode))

	SetFailoverMode(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(FailoverMode))
}

func TestRecordReplicationFailure_IncrementsLabeledCounter(t *testing.T) {
	before := testutil.ToFloat64(ReplicationFailuresTotal.WithLabelValues("deposit", "unreachable"))

	RecordReplicationFailure("deposit", "unreachable")

	assert.Equal(t, before+1, testutil.ToFloat64(ReplicationFailuresTotal.WithLabelValues("deposit", "unreachable")))
}
