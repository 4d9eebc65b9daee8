package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/clubeativo/backend/internal/app/models"
	appRepos "github.com/clubeativo/backend/internal/app/repositories"
	"github.com/clubeativo/backend/internal/pkg/auth"
)

// CreateDefaultData populates the database with demo clubs, events,
// accounts and news. It is idempotent: when any club already exists the
// seed is skipped entirely.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	empty, err := repos.ClubRepository.IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing clubs: %w", err)
	}
	if !empty {
		lgr.Info().Msg("Database already seeded, skipping")
		return nil
	}

	lgr.Info().Msg("Seeding default data...")

	clubs := []*appModels.Club{
		{Name: "Clube de Robótica", Description: "Montagem e programação de robôs para competições.", Category: "tecnologia"},
		{Name: "Clube de Xadrez", Description: "Partidas semanais e preparação para torneios.", Category: "jogos"},
		{Name: "Clube de Teatro", Description: "Oficinas de atuação e montagem de peças.", Category: "cultura"},
	}

	clubIDs := make([]int64, 0, len(clubs))
	for _, club := range clubs {
		id, err := repos.ClubRepository.Create(ctx, club)
		if err != nil {
			return fmt.Errorf("failed to seed club %q: %w", club.Name, err)
		}
		clubIDs = append(clubIDs, id)
	}

	events := []*appModels.Event{
		{Title: "Maratona de Programação", Description: "Desafio de programação em equipes.", Capacity: 30, StartsAt: time.Now().AddDate(0, 0, 14), ClubID: clubIDs[0]},
		{Title: "Torneio Aberto de Xadrez", Description: "Torneio aberto a todos os alunos.", Capacity: 16, StartsAt: time.Now().AddDate(0, 0, 21), ClubID: clubIDs[1]},
		{Title: "Mostra de Teatro", Description: "Apresentação das peças do semestre.", Capacity: 100, StartsAt: time.Now().AddDate(0, 1, 0), ClubID: clubIDs[2]},
	}

	eventIDs := make([]int64, 0, len(events))
	for _, event := range events {
		id, err := repos.EventRepository.Create(ctx, event)
		if err != nil {
			return fmt.Errorf("failed to seed event %q: %w", event.Title, err)
		}
		eventIDs = append(eventIDs, id)
	}

	password, err := auth.HashPassword("segredo1")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	demoUser := &appModels.User{
		StudentID: "202300112233",
		Email:     "aluno@school.edu.br",
		Password:  password,
	}
	userID, err := repos.UserRepository.CreateUser(ctx, demoUser)
	if err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	if err := repos.MembershipRepository.AddMember(ctx, clubIDs[0], userID); err != nil {
		return fmt.Errorf("failed to seed club membership: %w", err)
	}
	if err := repos.EnrollmentRepository.Enroll(ctx, eventIDs[0], userID); err != nil {
		return fmt.Errorf("failed to seed enrollment: %w", err)
	}

	news := &appModels.NewsItem{
		Title:   "Inscrições abertas para a Maratona de Programação",
		Content: "As vagas são limitadas, garanta a sua pelo portal.",
		EventID: &eventIDs[0],
	}
	if _, err := repos.NewsRepository.Create(ctx, news); err != nil {
		return fmt.Errorf("failed to seed news item: %w", err)
	}

	lgr.Info().
		Int("clubs", len(clubIDs)).
		Int("events", len(eventIDs)).
		Str("demoStudentId", demoUser.StudentID).
		Msg("Default data created")
	return nil
}
