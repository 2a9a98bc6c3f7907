// Package leads implements the submission pipeline for customer inquiries:
// validation, spam suppression, reference number assignment and persistence.
package leads

import (
	"regexp"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/pkg/common"
)

// TopicLeadCreated is published on the application bus after a lead row is
// persisted. Subscribers receive the *domain.Lead.
const TopicLeadCreated = "lead.created"

// Repository abstracts the lead store the pipeline writes to.
type Repository interface {
	Create(lead *domain.Lead) error
	ReferenceExists(ref string) (bool, error)
}

// GormRepository persists leads in crm_lead.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(lead *domain.Lead) error {
	return errors.Wrap(r.db.Create(lead).Error, "create lead")
}

func (r *GormRepository) ReferenceExists(ref string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Lead{}).
		Where("reference_number = ?", ref).Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "check reference number")
	}
	return count > 0, nil
}

// SubmitInput is one form submission. Honeypot carries the hidden field bots
// fill in; humans leave it empty.
type SubmitInput struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone" form:"phone"`
	Subject     string `json:"subject" form:"subject"`
	Message     string `json:"message" form:"message"`
	ServiceType string `json:"service_type" form:"service_type"`
	PackageSlug string `json:"package_slug" form:"package_slug"`
	RouteName   string `json:"route_name" form:"route_name"`
	TravelDate  string `json:"travel_date" form:"travel_date"`
	Travelers   int    `json:"travelers" form:"travelers"`
	Honeypot    string `json:"website" form:"website"`
}

// SubmitStatus distinguishes a real acceptance from a silently suppressed
// spam submission. Both look identical to the caller of the HTTP API.
type SubmitStatus int

const (
	Accepted SubmitStatus = iota
	SpamSuppressed
)

// Result is the pipeline outcome handed back to the API layer.
type Result struct {
	Status          SubmitStatus
	ReferenceNumber string
	Lead            *domain.Lead
}

// ValidationError carries per-field messages for a rejected submission.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		parts = append(parts, field)
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks a submission without touching the store.
func Validate(in SubmitInput) error {
	var verr ValidationError

	if len(strings.TrimSpace(in.Name)) < 2 {
		verr.add("name", "name must be at least 2 characters")
	}
	if !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		verr.add("email", "email address is not valid")
	}
	if len(common.Digits(in.Phone)) < 10 {
		verr.add("phone", "phone number must contain at least 10 digits")
	}
	if len(strings.TrimSpace(in.Message)) < 10 {
		verr.add("message", "message must be at least 10 characters")
	}
	if !domain.ValidServiceType(in.ServiceType) {
		verr.add("service_type", "service type must be one of: "+
			strings.Join(domain.ServiceTypes, ", "))
	}

	if len(verr.Fields) > 0 {
		return &verr
	}
	return nil
}

// Service runs the submission pipeline.
type Service struct {
	repo Repository
	bus  EventBus.Bus
	log  *zap.Logger
}

func NewService(repo Repository, bus EventBus.Bus, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, bus: bus, log: log}
}

const refRetries = 5

// Submit validates and persists one submission. Honeypot hits are suppressed:
// no store access happens and the caller gets a success-shaped result with an
// unpersisted reference number, so bots cannot tell they were caught.
func (s *Service) Submit(in SubmitInput) (*Result, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	now := time.Now()

	if strings.TrimSpace(in.Honeypot) != "" {
		ref, err := NewReferenceNumber(now)
		if err != nil {
			return nil, err
		}
		s.log.Info("lead suppressed by honeypot",
			zap.String("email", in.Email), zap.String("ref", ref))
		return &Result{Status: SpamSuppressed, ReferenceNumber: ref}, nil
	}

	ref, err := s.uniqueReference(now)
	if err != nil {
		return nil, err
	}

	lead := &domain.Lead{
		ID:              common.UUIDint64(),
		ReferenceNumber: ref,
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		Subject:         strings.TrimSpace(in.Subject),
		Message:         strings.TrimSpace(in.Message),
		ServiceType:     in.ServiceType,
		PackageSlug:     in.PackageSlug,
		RouteName:       in.RouteName,
		TravelDate:      in.TravelDate,
		Travelers:       in.Travelers,
		Status:          domain.LeadStatusNew,
	}
	if err := s.repo.Create(lead); err != nil {
		return nil, err
	}

	s.log.Info("lead created",
		zap.String("ref", ref),
		zap.String("service_type", lead.ServiceType))
	if s.bus != nil {
		s.bus.Publish(TopicLeadCreated, lead)
	}
	return &Result{Status: Accepted, ReferenceNumber: ref, Lead: lead}, nil
}

func (s *Service) uniqueReference(now time.Time) (string, error) {
	for i := 0; i < refRetries; i++ {
		ref, err := NewReferenceNumber(now)
		if err != nil {
			return "", err
		}
		exists, err := s.repo.ReferenceExists(ref)
		if err != nil {
			return "", err
		}
		if !exists {
			return ref, nil
		}
	}
	return "", errors.New("could not allocate a unique reference number")
}
