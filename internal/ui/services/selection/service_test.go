package selection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buttongroup/internal/domain"
	"buttongroup/internal/ui/services/events"
	"buttongroup/internal/widgetmgr"
)

type pushCall struct {
	widgetID   string
	value      []int
	fromUI     bool
	fragmentID string
}

// recordingManager wraps a MemoryManager and records every write
type recordingManager struct {
	*widgetmgr.MemoryManager
	calls []pushCall
}

func newRecordingManager() *recordingManager {
	return &recordingManager{MemoryManager: widgetmgr.NewMemoryManager()}
}

func (m *recordingManager) SetIntArrayValue(id string, value []int, source domain.Source, fragmentID string) error {
	m.calls = append(m.calls, pushCall{widgetID: id, value: append([]int{}, value...), fromUI: source.FromUI, fragmentID: fragmentID})
	return m.MemoryManager.SetIntArrayValue(id, value, source, fragmentID)
}

func newService(t *testing.T, el domain.Element, mgr widgetmgr.Manager) *Service {
	t.Helper()
	svc, err := NewService(&el, mgr, "frag-1", nil)
	require.NoError(t, err)
	return svc
}

func TestServiceInitDoesNotPush(t *testing.T) {
	mgr := newRecordingManager()
	svc := newService(t, element(domain.SingleSelect, 3, 2), mgr)

	assert.Equal(t, []int{2}, svc.Selection())
	assert.Empty(t, mgr.calls)
}

func TestServiceInitPrefersStoredValue(t *testing.T) {
	mgr := newRecordingManager()
	require.NoError(t, mgr.MemoryManager.SetIntArrayValue("bg", []int{1}, domain.Source{}, ""))

	svc := newService(t, element(domain.SingleSelect, 3, 2), mgr)
	assert.Equal(t, []int{1}, svc.Selection())
}

func TestServiceInitRejectsInvalidDefault(t *testing.T) {
	el := element(domain.SingleSelect, 3, 3)
	_, err := NewService(&el, newRecordingManager(), "", nil)
	require.Error(t, err)
}

// Scenario A
func TestServiceClickSingleSelect(t *testing.T) {
	mgr := newRecordingManager()
	svc := newService(t, element(domain.SingleSelect, 3), mgr)

	require.NoError(t, svc.Click(1))

	assert.Equal(t, []int{1}, svc.Selection())
	require.Len(t, mgr.calls, 1)
	assert.Equal(t, pushCall{widgetID: "bg", value: []int{1}, fromUI: true, fragmentID: "frag-1"}, mgr.calls[0])
}

// Scenario B
func TestServiceClickMultiSelectDeselects(t *testing.T) {
	mgr := newRecordingManager()
	svc := newService(t, element(domain.MultiSelect, 3, 0, 2), mgr)

	require.NoError(t, svc.Click(2))

	assert.Equal(t, []int{0}, svc.Selection())
	require.Len(t, mgr.calls, 1)
	assert.Equal(t, []int{0}, mgr.calls[0].value)
	assert.True(t, mgr.calls[0].fromUI)
}

// Scenario C
func TestServiceExternalPushIsNotEchoed(t *testing.T) {
	mgr := newRecordingManager()
	el := element(domain.SingleSelect, 3, 0)
	svc, err := NewService(&el, mgr, "", nil)
	require.NoError(t, err)

	el.Value = []int{1}
	el.SetValue = true

	applied, err := svc.Refresh()
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, []int{1}, svc.Selection())
	assert.False(t, el.SetValue)
	assert.Empty(t, mgr.calls)

	// The marker is consumed, so a second render does nothing
	applied, err = svc.Refresh()
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Empty(t, mgr.calls)
}

func TestServicePushValueThenClickPushesOnce(t *testing.T) {
	mgr := newRecordingManager()
	svc := newService(t, element(domain.SingleSelect, 4), mgr)

	require.NoError(t, svc.PushValue([]int{2}))
	assert.Equal(t, []int{2}, svc.Selection())
	assert.Empty(t, mgr.calls)

	require.NoError(t, svc.Click(3))
	require.Len(t, mgr.calls, 1)
	assert.Equal(t, []int{3}, mgr.calls[0].value)
	assert.True(t, mgr.calls[0].fromUI)
}

func TestServiceInvalidPushConsumesMarker(t *testing.T) {
	mgr := newRecordingManager()
	el := element(domain.SingleSelect, 3, 0)
	svc, err := NewService(&el, mgr, "", nil)
	require.NoError(t, err)

	err = svc.PushValue([]int{9})
	require.Error(t, err)
	assert.False(t, el.SetValue)
	assert.Equal(t, []int{0}, svc.Selection())
	assert.Empty(t, mgr.calls)
}

func TestServiceReset(t *testing.T) {
	mgr := newRecordingManager()
	svc := newService(t, element(domain.SingleSelect, 3, 0), mgr)
	require.NoError(t, svc.PushValue([]int{2}))

	require.NoError(t, svc.Reset())

	assert.Equal(t, []int{0}, svc.Selection())
	require.Len(t, mgr.calls, 1)
	assert.Equal(t, pushCall{widgetID: "bg", value: []int{0}, fromUI: true, fragmentID: "frag-1"}, mgr.calls[0])
}

func TestServiceDisabledIgnoresClicks(t *testing.T) {
	mgr := newRecordingManager()
	el := element(domain.SingleSelect, 3)
	el.Disabled = true
	svc := newService(t, el, mgr)

	require.NoError(t, svc.Click(1))
	assert.Empty(t, svc.Selection())
	assert.Empty(t, mgr.calls)
}

func TestServiceSyncIsNotFromUI(t *testing.T) {
	mgr := newRecordingManager()
	svc := newService(t, element(domain.SingleSelect, 3, 1), mgr)

	svc.Sync()
	require.Len(t, mgr.calls, 1)
	assert.False(t, mgr.calls[0].fromUI)
	assert.Equal(t, []int{1}, mgr.calls[0].value)
}

func TestServiceKeepsLocalValueWhileOffline(t *testing.T) {
	mgr := widgetmgr.NewMemoryManager()
	svc := newService(t, element(domain.MultiSelect, 3), mgr)

	mgr.SetOnline(false)
	require.NoError(t, svc.Click(1))
	assert.Equal(t, []int{1}, svc.Selection())
	assert.True(t, svc.Unsynced())
	assert.Nil(t, svc.LastPush())

	_, ok := mgr.GetIntArrayValue("bg")
	assert.False(t, ok)

	// No retry happens on its own
	mgr.SetOnline(true)
	_, ok = mgr.GetIntArrayValue("bg")
	assert.False(t, ok)

	assert.True(t, svc.Resync())
	assert.False(t, svc.Unsynced())
	got, ok := mgr.GetIntArrayValue("bg")
	require.True(t, ok)
	assert.Equal(t, []int{1}, got)
	assert.False(t, svc.Resync())
}

func TestServiceResyncWritesSelectionAfterExternalPush(t *testing.T) {
	mgr := newRecordingManager()
	svc := newService(t, element(domain.SingleSelect, 3), mgr)

	mgr.SetOnline(false)
	require.NoError(t, svc.Click(1))
	require.NoError(t, svc.PushValue([]int{2}))
	assert.True(t, svc.Unsynced(), "store still lacks the local value")

	mgr.SetOnline(true)
	require.True(t, svc.Resync())
	assert.False(t, svc.Unsynced())

	got, ok := mgr.GetIntArrayValue("bg")
	require.True(t, ok)
	assert.Equal(t, svc.Selection(), got)
	assert.Equal(t, []int{2}, got)
	last := mgr.calls[len(mgr.calls)-1]
	assert.True(t, last.fromUI)
}

func TestServiceResyncAfterMixedOfflineTriggers(t *testing.T) {
	mgr := newRecordingManager()
	svc := newService(t, element(domain.MultiSelect, 4, 3), mgr)

	mgr.SetOnline(false)
	require.NoError(t, svc.Click(0))
	require.NoError(t, svc.PushValue([]int{1, 2}))
	require.NoError(t, svc.Reset())
	assert.Equal(t, []int{3}, svc.Selection())
	require.NoError(t, svc.PushValue([]int{0}))

	mgr.SetOnline(true)
	require.True(t, svc.Resync())

	got, ok := mgr.GetIntArrayValue("bg")
	require.True(t, ok)
	assert.Equal(t, []int{0}, got)
	assert.Equal(t, svc.Selection(), got)
	assert.False(t, svc.Resync())
}

func TestServiceNextClickCarriesLatestState(t *testing.T) {
	mgr := widgetmgr.NewMemoryManager()
	svc := newService(t, element(domain.MultiSelect, 3), mgr)

	mgr.SetOnline(false)
	require.NoError(t, svc.Click(0))
	mgr.SetOnline(true)
	require.NoError(t, svc.Click(2))

	assert.False(t, svc.Unsynced())
	got, _ := mgr.GetIntArrayValue("bg")
	assert.Equal(t, []int{0, 2}, got)
}

func TestServicePublishesSelectionChanged(t *testing.T) {
	bus := events.NewBus()
	var got []SelectionChangedEvent
	bus.Subscribe("selection.SelectionChangedEvent", func(e interface{}) {
		got = append(got, e.(SelectionChangedEvent))
	})
	var failures []SyncFailedEvent
	bus.Subscribe("selection.SyncFailedEvent", func(e interface{}) {
		failures = append(failures, e.(SyncFailedEvent))
	})

	mgr := widgetmgr.NewMemoryManager()
	el := element(domain.SingleSelect, 3)
	svc, err := NewService(&el, mgr, "", bus)
	require.NoError(t, err)

	require.NoError(t, svc.Click(2))
	require.NoError(t, svc.PushValue([]int{1}))
	mgr.SetOnline(false)
	require.NoError(t, svc.Reset())

	require.Len(t, got, 4)
	assert.Equal(t, KindInit, got[0].Cause)
	assert.Equal(t, SelectionChangedEvent{WidgetID: "bg", Cause: KindClick, Selection: []int{2}, Pushed: true, FromUI: true}, got[1])
	assert.Equal(t, SelectionChangedEvent{WidgetID: "bg", Cause: KindExternalPush, Selection: []int{1}}, got[2])
	assert.Equal(t, KindReset, got[3].Cause)

	require.Len(t, failures, 1)
	assert.True(t, errors.Is(failures[0].Err, widgetmgr.ErrUnavailable))
}
