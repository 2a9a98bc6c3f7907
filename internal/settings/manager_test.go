package settings

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	values   map[string]string
	loadErr  error
	failKeys map[string]error
	saves    []string
}

func newFakeRepo(values map[string]string) *fakeRepo {
	if values == nil {
		values = map[string]string{}
	}
	return &fakeRepo{values: values, failKeys: map[string]error{}}
}

func (r *fakeRepo) LoadAll() (map[string]string, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out, nil
}

func (r *fakeRepo) Save(name, value string) error {
	if err, ok := r.failKeys[name]; ok {
		return err
	}
	r.values[name] = value
	r.saves = append(r.saves, name)
	return nil
}

func TestReadsBeforeInitServeDefaults(t *testing.T) {
	m := NewManager(newFakeRepo(nil), nil)
	assert.Equal(t, StateUninitialized, m.State())
	assert.Equal(t, Defaults[KeySiteName], m.GetString(KeySiteName))
	assert.False(t, m.GetBool(KeyMaintenanceMode))
}

func TestInitPrefersStoredValues(t *testing.T) {
	repo := newFakeRepo(map[string]string{
		KeySiteName: "Mountain Trails",
	})
	m := NewManager(repo, nil)
	m.Init()

	assert.Equal(t, StateReadyStore, m.State())
	assert.Equal(t, "Mountain Trails", m.GetString(KeySiteName))
	// keys without a stored row still resolve to their default
	assert.Equal(t, Defaults[KeyContactEmail], m.GetString(KeyContactEmail))
	// unknown keys resolve empty, never error
	assert.Equal(t, "", m.GetString("no_such_key"))
}

func TestInitDegradesToDefaultsOnLoadFailure(t *testing.T) {
	repo := newFakeRepo(nil)
	repo.loadErr = errors.New("connection refused")
	m := NewManager(repo, nil)
	m.Init()

	assert.Equal(t, StateReadyDefaults, m.State())
	assert.Equal(t, Defaults[KeySiteName], m.GetString(KeySiteName))
}

func TestReviewsAutoApproveDefaultsOn(t *testing.T) {
	m := NewManager(newFakeRepo(nil), nil)
	m.Init()
	assert.True(t, m.GetBool(KeyReviewsAutoApprove))

	// a deployment can still opt into moderation
	repo := newFakeRepo(map[string]string{KeyReviewsAutoApprove: "disabled"})
	m = NewManager(repo, nil)
	m.Init()
	assert.False(t, m.GetBool(KeyReviewsAutoApprove))
}

func TestGetBoolAcceptsEnabled(t *testing.T) {
	repo := newFakeRepo(map[string]string{
		KeyMaintenanceMode:    "enabled",
		KeyReviewsAutoApprove: "true",
	})
	m := NewManager(repo, nil)
	m.Init()

	assert.True(t, m.GetBool(KeyMaintenanceMode))
	assert.True(t, m.GetBool(KeyReviewsAutoApprove))
}

func TestSaveWritesThroughBeforeCaching(t *testing.T) {
	repo := newFakeRepo(nil)
	repo.failKeys[KeySiteName] = errors.New("disk full")
	m := NewManager(repo, nil)
	m.Init()

	err := m.Save(KeySiteName, "New Name")
	require.Error(t, err)
	// failed write must not poison the cache
	assert.Equal(t, Defaults[KeySiteName], m.GetString(KeySiteName))

	require.NoError(t, m.Save(KeyContactPhone, "+91 90000 00000"))
	assert.Equal(t, "+91 90000 00000", m.GetString(KeyContactPhone))
}

func TestSaveBatchAbortsOnFirstFailure(t *testing.T) {
	repo := newFakeRepo(nil)
	repo.failKeys[KeyContactPhone] = errors.New("timeout")
	m := NewManager(repo, nil)
	m.Init()

	result := m.SaveBatch(map[string]string{
		KeySiteName:     "A", // sorts after contact_*
		KeyContactEmail: "a@b.in",
		KeyContactPhone: "123",
		KeyAddress:      "Somewhere",
	})

	// sorted order: address, contact_email, contact_phone (fails), site_name
	assert.Equal(t, []string{KeyAddress, KeyContactEmail}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, KeyContactPhone, result.Failed[0].Key)
	assert.Equal(t, []string{KeySiteName}, result.Skipped)

	// only the successful writes reached the cache
	assert.Equal(t, "a@b.in", m.GetString(KeyContactEmail))
	assert.Equal(t, Defaults[KeySiteName], m.GetString(KeySiteName))
}

func TestSaveBatchAllSucceed(t *testing.T) {
	repo := newFakeRepo(nil)
	m := NewManager(repo, nil)
	m.Init()

	result := m.SaveBatch(map[string]string{
		KeySiteName:      "A",
		KeyBusinessHours: "24x7",
	})
	assert.Equal(t, []string{KeyBusinessHours, KeySiteName}, result.Succeeded)
	assert.Empty(t, result.Failed)
	assert.Empty(t, result.Skipped)
}

func TestSiteViewMergesStoredAndDefaults(t *testing.T) {
	repo := newFakeRepo(map[string]string{
		KeySiteName: "Mountain Trails",
	})
	m := NewManager(repo, nil)
	m.Init()

	site := m.Site()
	assert.Equal(t, "Mountain Trails", site.SiteName)
	assert.Equal(t, Defaults[KeyWhatsappNumber], site.WhatsappNumber)
}
