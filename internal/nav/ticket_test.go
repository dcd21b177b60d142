package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicket_FulfillCurrent(t *testing.T) {
	tb, _ := testTable()
	r := New(&fakeHost{}, tb)
	require.NoError(t, r.Initialize())

	tk, err := r.Reserve(Map)
	require.NoError(t, err)
	assert.Equal(t, Home, activeFake(t, r).Target(), "reserve must not change the active screen")

	loaded := &fakeScreen{target: Map}
	require.NoError(t, r.Fulfill(tk, loaded))
	assert.Same(t, loaded, activeFake(t, r))
}

func TestTicket_StaleAfterNewerReserve(t *testing.T) {
	tb, _ := testTable()
	r := New(&fakeHost{}, tb)
	require.NoError(t, r.Initialize())

	slow, err := r.Reserve(Map)
	require.NoError(t, err)
	fast, err := r.Reserve(Journey)
	require.NoError(t, err)

	journey := &fakeScreen{target: Journey}
	require.NoError(t, r.Fulfill(fast, journey))

	late := &fakeScreen{target: Map}
	err = r.Fulfill(slow, late)
	assert.ErrorIs(t, err, ErrStaleTicket)
	assert.Equal(t, 1, late.released)
	assert.Same(t, journey, activeFake(t, r))
}

func TestTicket_StaleAfterSelect(t *testing.T) {
	tb, _ := testTable()
	r := New(&fakeHost{}, tb)
	require.NoError(t, r.Initialize())

	tk, err := r.Reserve(Map)
	require.NoError(t, err)
	require.True(t, r.OnSelect(Diary))

	late := &fakeScreen{target: Map}
	assert.ErrorIs(t, r.Fulfill(tk, late), ErrStaleTicket)
	assert.Equal(t, Diary, activeFake(t, r).Target())
	assert.False(t, r.Current(tk))
}

func TestTicket_ReserveUnmapped(t *testing.T) {
	tb, _ := testTable()
	delete(tb, Journey)
	r := New(&fakeHost{}, tb)
	require.NoError(t, r.Initialize())
	prior, err := r.Reserve(Map)
	require.NoError(t, err)

	_, err = r.Reserve(Journey)
	assert.True(t, IsUnmapped(err))
	assert.True(t, r.Current(prior), "failed reserve must not invalidate the pending one")
}

func TestTicket_ZeroValueNeverCurrent(t *testing.T) {
	tb, _ := testTable()
	r := New(&fakeHost{}, tb)

	s := &fakeScreen{target: Home}
	assert.ErrorIs(t, r.Fulfill(Ticket{}, s), ErrStaleTicket)
	assert.Equal(t, 1, s.released)
}

func TestTicket_FulfillWrongVariant(t *testing.T) {
	tb, _ := testTable()
	r := New(&fakeHost{}, tb)
	require.NoError(t, r.Initialize())
	tk, err := r.Reserve(Map)
	require.NoError(t, err)

	wrong := &fakeScreen{target: Profile}
	assert.True(t, IsUnmapped(r.Fulfill(tk, wrong)))
	assert.Equal(t, 1, wrong.released)
	assert.Equal(t, Home, activeFake(t, r).Target())
}

func TestTicket_FailedSelectKeepsTicketCurrent(t *testing.T) {
	tb, _ := testTable()
	delete(tb, Profile)
	host := &fakeHost{}
	r := New(host, tb)
	require.NoError(t, r.Initialize())
	tk, err := r.Reserve(Map)
	require.NoError(t, err)

	assert.False(t, r.OnSelect(Profile))
	assert.True(t, r.Current(tk), "unmapped select must not supersede the pending load")

	host.fail = errors.New("region gone")
	assert.False(t, r.OnSelect(Diary))
	assert.True(t, r.Current(tk), "failed presentation must not supersede the pending load")

	host.fail = nil
	loaded := &fakeScreen{target: Map}
	require.NoError(t, r.Fulfill(tk, loaded))
	assert.Same(t, loaded, activeFake(t, r))
}
