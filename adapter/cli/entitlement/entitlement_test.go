package entitlement

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/felixgeelhaar/pawsit/adapter/cli"
	entitlementApp "github.com/felixgeelhaar/pawsit/internal/entitlement/application"
	"github.com/felixgeelhaar/pawsit/internal/entitlement/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type recordStore struct {
	records map[uuid.UUID]*domain.Record
	err     error
}

func (s recordStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	if r, ok := s.records[userID]; ok {
		return r, nil
	}
	return nil, domain.ErrRecordNotFound
}

func appWith(store recordStore) *cli.App {
	service := entitlementApp.NewService(store, nil, nil).WithClock(func() time.Time { return now })
	return cli.NewApp(nil, nil, nil, service)
}

func run(t *testing.T) (string, error) {
	t.Helper()
	var output strings.Builder
	checkCmd.SetContext(context.Background())
	checkCmd.SetOut(&output)
	err := checkCmd.RunE(checkCmd, []string{})
	return output.String(), err
}

func TestCheckCmd_NoApp(t *testing.T) {
	checkUser = ""
	cli.SetApp(nil)

	out, err := run(t)
	assert.NoError(t, err)
	assert.Contains(t, out, "requires database connection")
}

func TestCheckCmd_Validation(t *testing.T) {
	cli.SetApp(appWith(recordStore{}))
	defer cli.SetApp(nil)

	checkUser = ""
	_, err := run(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--user is required")

	checkUser = "not-a-uuid"
	_, err = run(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user ID")
}

func TestCheckCmd(t *testing.T) {
	activeUser := uuid.New()
	trialUser := uuid.New()
	expiredTrialUser := uuid.New()

	active := "active"
	trial := "trial"
	trialEnd := now.Add(36 * time.Hour)
	pastEnd := now.Add(-time.Hour)

	store := recordStore{records: map[uuid.UUID]*domain.Record{
		activeUser:       {UserID: activeUser, Status: &active},
		trialUser:        {UserID: trialUser, Status: &trial, TrialEndDate: &trialEnd},
		expiredTrialUser: {UserID: expiredTrialUser, Status: &trial, TrialEndDate: &pastEnd},
	}}
	cli.SetApp(appWith(store))
	defer cli.SetApp(nil)

	tests := []struct {
		name   string
		user   uuid.UUID
		expect []string
	}{
		{"active", activeUser, []string{"Entitled (active)"}},
		{"trial", trialUser, []string{"Entitled (trial)", "Expires: 2025-06-17T00:00:00Z", "Trial days remaining: 2"}},
		{"expired trial", expiredTrialUser, []string{"Not entitled (trial_expired)"}},
		{"no record", uuid.New(), []string{"Not entitled (none)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkUser = tt.user.String()
			out, err := run(t)
			require.NoError(t, err)
			for _, want := range tt.expect {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestCheckCmd_StoreDownDeniesAccess(t *testing.T) {
	cli.SetApp(appWith(recordStore{err: errors.New("timeout")}))
	defer cli.SetApp(nil)

	checkUser = uuid.NewString()
	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Not entitled (none)")
}
