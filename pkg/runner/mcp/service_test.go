package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/medbook/pkg/app"
	"tableflip.dev/medbook/pkg/logging"
	"tableflip.dev/medbook/pkg/logic"
)

var now = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local)

func newService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()
	a, err := app.New(ctx, nil, logging.Discard())
	require.NoError(t, err)
	a.SetClock(func() time.Time { return now })

	for _, line := range []string{
		"add n/Alice Pauline id/S1234567A p/94351253",
		"add n/Benson Meier id/T7654321Z p/98765432 t/owesMoney",
		"addappt 1 adt/2024-06-03 09:00 note/Blood test",
		"addappt 1 adt/2024-05-20 10:00",
		"addappt 2 adt/2024-07-01 15:30",
	} {
		_, err := a.Execute(ctx, line)
		require.NoError(t, err, line)
	}
	return NewService(a)
}

func TestServiceExecute(t *testing.T) {
	svc := newService(t)

	out, err := svc.Execute(context.Background(), "find benson")
	require.NoError(t, err)
	assert.Equal(t, "1 person listed!", out.Feedback)
	require.Len(t, out.Persons, 1)
	assert.Equal(t, "Benson Meier", out.Persons[0].Name)
	assert.Equal(t, 1, out.Persons[0].Index)
}

func TestServiceExecuteFailure(t *testing.T) {
	svc := newService(t)

	_, err := svc.Execute(context.Background(), "delete 9")
	assert.True(t, errors.Is(err, logic.ErrInvalidPersonIndex), "got %v", err)
}

func TestServiceListPersonsIgnoresDisplayedFilter(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Execute(ctx, "find benson")
	require.NoError(t, err)

	all, err := svc.ListPersons(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	some, err := svc.ListPersons(ctx, "ALICE")
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, "S1234567A", some[0].IdentityNumber)
}

func TestServiceListAppointments(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tests := map[AppointmentScope]int{
		"":            3,
		ScopeAll:      3,
		ScopeUpcoming: 2,
		ScopePast:     1,
	}
	for scope, want := range tests {
		got, err := svc.ListAppointments(ctx, scope)
		require.NoError(t, err)
		assert.Len(t, got, want, "scope %q", scope)
	}

	past, err := svc.ListAppointments(ctx, ScopePast)
	require.NoError(t, err)
	assert.Equal(t, "Alice Pauline", past[0].Name)
	assert.False(t, past[0].Upcoming)

	_, err = svc.ListAppointments(ctx, "someday")
	assert.Error(t, err)
}

func TestServicePersonByIdentity(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	detail, err := svc.PersonByIdentity(ctx, "s1234567a")
	require.NoError(t, err)
	assert.Equal(t, "Alice Pauline", detail.Person.Name)
	assert.Len(t, detail.Appointments, 2)

	_, err = svc.PersonByIdentity(ctx, "F0000000X")
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestServiceReport(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	r, err := svc.Report(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Total)
	require.Len(t, r.Sections, 1)
	assert.Equal(t, "S1234567A", r.Sections[0].Identity)

	r, err = svc.Report(ctx, "2w", "5w")
	require.NoError(t, err)
	assert.Equal(t, 3, r.Total)
	assert.Len(t, r.Sections, 2)

	_, err = svc.Report(ctx, "", "soon")
	assert.Error(t, err)
}

func TestServiceSummary(t *testing.T) {
	sum, err := newService(t).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, app.Summary{Persons: 2, Appointments: 3, Upcoming: 2, Past: 1}, sum)
}

func TestServiceWithoutBook(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.ListPersons(context.Background(), "")
	assert.Error(t, err)
}

func TestIdentityArgument(t *testing.T) {
	assert.Equal(t, "S1", identityArgument("S1"))
	assert.Equal(t, "S2", identityArgument([]string{"S2"}))
	assert.Equal(t, "", identityArgument(nil))
}
