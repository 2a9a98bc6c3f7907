package leads

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripveda/tripveda/internal/domain"
)

type fakeRepo struct {
	created    []*domain.Lead
	collisions int // pretend the first N generated references are taken
	refChecks  int
	storeCalls int
	createErr  error
}

func (r *fakeRepo) Create(lead *domain.Lead) error {
	r.storeCalls++
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, lead)
	return nil
}

func (r *fakeRepo) ReferenceExists(ref string) (bool, error) {
	r.storeCalls++
	r.refChecks++
	return r.refChecks <= r.collisions, nil
}

func validInput() SubmitInput {
	return SubmitInput{
		Name:        "Asha Verma",
		Email:       "asha@example.com",
		Phone:       "+91 98160-12345",
		Message:     "Looking for a family trip in December.",
		ServiceType: domain.ServiceTypePackage,
		PackageSlug: "manali-adventure-escape",
		Travelers:   4,
	}
}

func TestSubmitAcceptsValidLead(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil, nil)

	result, err := svc.Submit(validInput())
	require.NoError(t, err)
	assert.Equal(t, Accepted, result.Status)
	assert.NotEmpty(t, result.ReferenceNumber)

	require.Len(t, repo.created, 1)
	lead := repo.created[0]
	assert.Equal(t, domain.LeadStatusNew, lead.Status)
	assert.Equal(t, result.ReferenceNumber, lead.ReferenceNumber)
	assert.NotZero(t, lead.ID)
}

func TestValidationBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubmitInput)
		field  string
	}{
		{"one char name", func(in *SubmitInput) { in.Name = "A" }, "name"},
		{"missing at sign", func(in *SubmitInput) { in.Email = "asha.example.com" }, "email"},
		{"missing tld", func(in *SubmitInput) { in.Email = "asha@example" }, "email"},
		{"nine digits", func(in *SubmitInput) { in.Phone = "+91 9816-0123" }, "phone"},
		{"nine char message", func(in *SubmitInput) { in.Message = "too short" }, "message"},
		{"unknown service", func(in *SubmitInput) { in.ServiceType = "cruise" }, "service_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := Validate(in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestValidationAcceptsBoundaryValues(t *testing.T) {
	in := validInput()
	in.Name = "Jo"                       // exactly 2
	in.Phone = "98-16-01-23-45"          // exactly 10 digits after stripping
	in.Message = strings.Repeat("x", 10) // exactly 10
	assert.NoError(t, Validate(in))
}

func TestHoneypotSuppressesWithoutStoreAccess(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil, nil)

	in := validInput()
	in.Honeypot = "http://spam.example"

	result, err := svc.Submit(in)
	require.NoError(t, err)
	assert.Equal(t, SpamSuppressed, result.Status)
	assert.NotEmpty(t, result.ReferenceNumber)
	assert.Nil(t, result.Lead)
	assert.Zero(t, repo.storeCalls, "honeypot hits must never reach the store")
}

func TestHoneypotStillValidatesFirst(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil, nil)

	in := validInput()
	in.Honeypot = "filled"
	in.Email = "not-an-email"

	_, err := svc.Submit(in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, repo.storeCalls)
}

func TestReferenceCollisionRetries(t *testing.T) {
	repo := &fakeRepo{collisions: 2}
	svc := NewService(repo, nil, nil)

	result, err := svc.Submit(validInput())
	require.NoError(t, err)
	assert.Equal(t, 3, repo.refChecks)
	require.Len(t, repo.created, 1)
	assert.Equal(t, result.ReferenceNumber, repo.created[0].ReferenceNumber)
}

func TestReferenceAllocationGivesUpEventually(t *testing.T) {
	repo := &fakeRepo{collisions: 100}
	svc := NewService(repo, nil, nil)

	_, err := svc.Submit(validInput())
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestReferenceNumberFormat(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	ref, err := NewReferenceNumber(now)
	require.NoError(t, err)
	assert.Regexp(t, `^TV-20260830-[23456789ABCDEFGHJKMNPQRSTUVWXYZ]{6}$`, ref)

	other, err := NewReferenceNumber(now)
	require.NoError(t, err)
	assert.NotEqual(t, ref, other)

	// the rejection loop always fills the full suffix
	for i := 0; i < 200; i++ {
		ref, err := NewReferenceNumber(now)
		require.NoError(t, err)
		assert.Len(t, ref, len("TV-20260830-")+6)
	}
}
