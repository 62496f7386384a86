package service

import (
	"context"

	"github.com/rs/zerolog"

	"sitecms/internal/model"
	"sitecms/internal/repository"
)

// ContactService covers the contact-details record and the weekly schedule.
type ContactService interface {
	// Info returns the active contact record, or nil when none exists or the
	// store is unreachable.
	Info(ctx context.Context) *model.ContactInfo

	// SaveInfo updates the existing active record when there is one, keeping
	// the collection singleton-shaped, and creates it otherwise.
	SaveInfo(ctx context.Context, fields map[string]any) WriteResult

	// Hours returns the weekly schedule in display order; empty on failure.
	Hours(ctx context.Context) []model.BusinessHour

	// SaveHours writes one day's schedule through the upsert-by-day path.
	SaveHours(ctx context.Context, hour model.BusinessHour) WriteResult

	// SaveWeek upserts a full set of days, stopping at the first failure.
	SaveWeek(ctx context.Context, hours []model.BusinessHour) WriteResult
}

type contactService struct {
	info  repository.ContactInfoRepository
	hours repository.BusinessHourRepository
	log   zerolog.Logger
}

// NewContactService constructs a ContactService.
func NewContactService(info repository.ContactInfoRepository, hours repository.BusinessHourRepository, log zerolog.Logger) ContactService {
	return &contactService{info: info, hours: hours, log: log}
}

func (s *contactService) Info(ctx context.Context) *model.ContactInfo {
	info, err := s.info.GetActive(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("contact info read failed, serving none")
		return nil
	}
	return info
}

func (s *contactService) SaveInfo(ctx context.Context, fields map[string]any) WriteResult {
	if err := requireStrings(fields, "email"); err != nil {
		return failResult(err)
	}
	existing, err := s.info.GetActive(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("contact info lookup failed")
		return failResult(err)
	}
	if existing != nil {
		if err := s.info.Update(ctx, existing.ID, fields); err != nil {
			s.log.Error().Err(err).Str("id", existing.ID).Msg("update contact info failed")
			return failResult(err)
		}
		return okResult(existing.ID)
	}
	id, err := s.info.Create(ctx, fields)
	if err != nil {
		s.log.Error().Err(err).Msg("create contact info failed")
		return failResult(err)
	}
	return okResult(id)
}

func (s *contactService) Hours(ctx context.Context) []model.BusinessHour {
	hours, err := s.hours.List(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("schedule read failed, serving none")
		return []model.BusinessHour{}
	}
	return hours
}

func (s *contactService) SaveHours(ctx context.Context, hour model.BusinessHour) WriteResult {
	id, err := s.hours.UpsertByDay(ctx, hour)
	if err != nil {
		s.log.Error().Err(err).Str("day", hour.Day).Msg("schedule upsert failed")
		return failResult(err)
	}
	return okResult(id)
}

func (s *contactService) SaveWeek(ctx context.Context, hours []model.BusinessHour) WriteResult {
	var lastID string
	for _, hour := range hours {
		id, err := s.hours.UpsertByDay(ctx, hour)
		if err != nil {
			s.log.Error().Err(err).Str("day", hour.Day).Msg("schedule upsert failed")
			return failResult(err)
		}
		lastID = id
	}
	return okResult(lastID)
}
