package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveReply(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(repliesTotal.WithLabelValues("rule", "canned"))
	ObserveReply("rule", "canned")
	assert.Equal(t, before+1, testutil.ToFloat64(repliesTotal.WithLabelValues("rule", "canned")))
}

func TestObserveReload(t *testing.T) {
	okBefore := testutil.ToFloat64(catalogReloadsTotal.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(catalogReloadsTotal.WithLabelValues("error"))

	ObserveReload(nil)
	ObserveReload(errors.New("x"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(catalogReloadsTotal.WithLabelValues("ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(catalogReloadsTotal.WithLabelValues("error")))
}
