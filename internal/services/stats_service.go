package services

import (
	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/repositories"
)

type Statistics struct {
	TotalUsers       int
	UsersByRole      map[models.Role]int
	TotalEvents      int
	AverageAttendees float64
	StatusBreakdown  map[models.EventStatus]int
	TotalRevenue     float64
}

type StatsService struct {
	repo *repositories.Repository
}

func NewStatsService(repo *repositories.Repository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Statistics() Statistics {
	users := s.repo.UserRepo.ListUsers()
	events := s.repo.EventRepo.ListEvents()

	stats := Statistics{
		TotalUsers:      len(users),
		UsersByRole:     make(map[models.Role]int),
		TotalEvents:     len(events),
		StatusBreakdown: make(map[models.EventStatus]int),
	}

	for _, u := range users {
		stats.UsersByRole[u.Role]++
	}

	attendees := 0
	for _, ev := range events {
		attendees += len(ev.Attendees)
		stats.StatusBreakdown[ev.Status]++
		stats.TotalRevenue += ev.TotalFee
	}
	if len(events) > 0 {
		stats.AverageAttendees = float64(attendees) / float64(len(events))
	}

	return stats
}
