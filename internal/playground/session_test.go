package playground

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/buttonsmith/internal/logger"
	"github.com/alexisbeaulieu97/buttonsmith/internal/options"
	"github.com/alexisbeaulieu97/buttonsmith/internal/resolve"
)

func TestSessionStartsResolved(t *testing.T) {
	s := NewSession(options.Defaults(), logger.Nop())

	assert.Equal(t, resolve.Resolve(options.Defaults()), s.Resolution())
	assert.Equal(t, Stats{Resolves: 1}, s.Stats())
}

func TestSessionRecomputesBeforeSetterReturns(t *testing.T) {
	s := NewSession(options.Defaults(), logger.Nop())

	s.Store().SetVariant(options.VariantOutline)
	assert.Contains(t, s.Resolution().ClassList(), "bg-transparent text-[#4f46e5] border border-[#4f46e5]")

	s.Store().SetLabel("Ship it")
	assert.Equal(t, "Ship it", s.Resolution().Label)
	assert.Contains(t, s.Resolution().Export, "Ship it")
	assert.Equal(t, s.Config(), s.Resolution().Source)
}

func TestSessionMemoisesRevisitedStates(t *testing.T) {
	s := NewSession(options.Defaults(), logger.Nop())

	s.Store().SetDisabled(true)
	s.Store().SetDisabled(false)
	s.Store().SetDisabled(true)

	assert.Equal(t, Stats{Resolves: 2, Hits: 2}, s.Stats())
	assert.Nil(t, s.Resolution().Interaction)
}

func TestSessionNoRecomputeWithoutChange(t *testing.T) {
	s := NewSession(options.Defaults(), logger.Nop())

	var calls int
	s.OnResolve(func(resolve.Resolution) { calls++ })

	s.Store().SetSize(options.SizeMedium)
	assert.Zero(t, calls)

	s.Store().SetSize(options.SizeLarge)
	assert.Equal(t, 1, calls)
}

func TestSessionListenersSeeInOrderUpdates(t *testing.T) {
	s := NewSession(options.Defaults(), logger.Nop())

	var labels []string
	s.OnResolve(func(r resolve.Resolution) { labels = append(labels, r.Label) })

	s.Store().SetLabel("a")
	s.Store().SetUppercase(true)
	s.Store().SetLabel("b")

	assert.Equal(t, []string{"a", "A", "B"}, labels)
}

func TestSessionReset(t *testing.T) {
	s := NewSession(options.Defaults(), logger.Nop())
	s.Store().SetGap(20)
	s.Store().SetVariant(options.VariantLink)

	s.Reset(options.Defaults())

	assert.Equal(t, options.Defaults(), s.Config())
	assert.Equal(t, resolve.Resolve(options.Defaults()).Export, s.Resolution().Export)
}

func TestSessionMemoStaysBounded(t *testing.T) {
	s := NewSession(options.Defaults(), logger.Nop())

	for gap := 0; gap < memoLimit*2; gap++ {
		s.Store().SetLabel(strings.Repeat("x", gap+1))
	}

	assert.LessOrEqual(t, len(s.memo), memoLimit)
	assert.Equal(t, strings.Repeat("x", memoLimit*2), s.Resolution().Label)
}

func TestFingerprintDistinguishesFields(t *testing.T) {
	base := options.Defaults()

	changed := base
	changed.HoverScale = 1.04
	require.NotEqual(t, Fingerprint(base), Fingerprint(changed))

	changed = base
	changed.IconRight = true
	require.NotEqual(t, Fingerprint(base), Fingerprint(changed))

	assert.Equal(t, Fingerprint(base), Fingerprint(options.Defaults()))
}
