package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_PrependKeepsNewestFirst(t *testing.T) {
	var log Log
	log = log.Prepend(Ball{Kind: KindDelivery, Seq: 1})
	log = log.Prepend(Ball{Kind: KindDelivery, Seq: 2})
	log = log.Prepend(Ball{Kind: KindDelivery, Seq: 3})

	require.Len(t, log, 3)
	assert.Equal(t, int64(3), log[0].Seq)
	assert.Equal(t, int64(1), log[2].Seq)
}

func TestLog_PrependDoesNotMutateReceiver(t *testing.T) {
	base := Log{}.Prepend(Ball{Kind: KindDelivery, Seq: 1})

	left := base.Prepend(Ball{Kind: KindDelivery, Seq: 2})
	right := base.Prepend(Ball{Kind: KindDelivery, Seq: 3})

	require.Len(t, base, 1)
	assert.Equal(t, int64(2), left[0].Seq)
	assert.Equal(t, int64(3), right[0].Seq)
}

func TestLog_Chronological(t *testing.T) {
	var log Log
	for seq := int64(1); seq <= 4; seq++ {
		log = log.Prepend(Ball{Kind: KindDelivery, Seq: seq})
	}

	chrono := log.Chronological()
	require.Len(t, chrono, 4)
	for i, b := range chrono {
		assert.Equal(t, int64(i+1), b.Seq)
	}
}

func TestLog_ForInningsFiltersAndOrders(t *testing.T) {
	var log Log
	log = log.Prepend(Ball{Kind: KindDelivery, Seq: 1, Innings: 1})
	log = log.Prepend(Ball{Kind: KindDelivery, Seq: 2, Innings: 1})
	log = log.Prepend(Ball{Kind: KindDelivery, Seq: 3, Innings: 2})

	first := log.ForInnings(1)
	require.Len(t, first, 2)
	assert.Equal(t, int64(1), first[0].Seq)
	assert.Equal(t, int64(2), first[1].Seq)

	second := log.ForInnings(2)
	require.Len(t, second, 1)
	assert.Equal(t, int64(3), second[0].Seq)
}

func TestLog_DeliveriesSkipsMeta(t *testing.T) {
	var log Log
	log = log.Prepend(Ball{Kind: KindMatchStarted, Seq: 1, Innings: 1})
	log = log.Prepend(Ball{Kind: KindDelivery, Seq: 2, Innings: 1})
	log = log.Prepend(Ball{Kind: KindPlayerChange, Seq: 3, Innings: 1})
	log = log.Prepend(Ball{Kind: KindDelivery, Seq: 4, Innings: 1})

	deliveries := log.Deliveries(1)
	require.Len(t, deliveries, 2)
	assert.Equal(t, int64(2), deliveries[0].Seq)
	assert.Equal(t, int64(4), deliveries[1].Seq)
}

func TestLog_LastDelivery(t *testing.T) {
	var log Log
	_, ok := log.LastDelivery()
	assert.False(t, ok)

	log = log.Prepend(Ball{Kind: KindDelivery, Seq: 1, Innings: 1})
	log = log.Prepend(Ball{Kind: KindPlayerChange, Seq: 2, Innings: 1})

	last, ok := log.LastDelivery()
	require.True(t, ok)
	assert.Equal(t, int64(1), last.Seq)
}

func TestLog_DismissedExcludesRetiredHurt(t *testing.T) {
	var log Log
	log = log.Prepend(Ball{Kind: KindDelivery, Innings: 1, IsWicket: true, Wicket: WicketBowled, OutPlayerID: "p1"})
	log = log.Prepend(Ball{Kind: KindRetirement, Innings: 1, IsWicket: false, Wicket: WicketRetiredHurt, OutPlayerID: "p2"})
	log = log.Prepend(Ball{Kind: KindRetirement, Innings: 1, IsWicket: true, Wicket: WicketRetiredOut, OutPlayerID: "p3"})
	log = log.Prepend(Ball{Kind: KindDelivery, Innings: 2, IsWicket: true, Wicket: WicketCaught, OutPlayerID: "p4"})

	dismissed := log.Dismissed(1)
	assert.True(t, dismissed["p1"])
	assert.False(t, dismissed["p2"], "retired hurt may resume")
	assert.True(t, dismissed["p3"])
	assert.False(t, dismissed["p4"], "other innings")
}
