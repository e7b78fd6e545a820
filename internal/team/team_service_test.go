package team_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"talentflow/internal/team"
	teamerrors "talentflow/internal/team/errors"
	teamMock "talentflow/internal/team/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   team.Service
	repo      *teamMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	rdb, redisMock := redismock.NewClientMock()
	repo := teamMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   team.NewService(db, repo, rdb, zap.NewNop()),
		repo:      repo,
		redismock: redisMock,
	}
}

func TestTeamService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	cacheKey := team.GetTeamsCacheKey(companyID)

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached, _ := json.Marshal([]team.TeamResponse{{ID: "t-1", Name: "Plataforma"}})
		deps.redismock.ExpectGet(cacheKey).SetVal(string(cached))

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Plataforma", resp[0].Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		teamID := uuid.New()
		companyUUID := uuid.MustParse(companyID)
		rows := []team.Team{{ID: teamID, CompanyID: companyUUID, Name: "Dados"}}
		payload, _ := json.Marshal([]team.TeamResponse{{ID: teamID.String(), CompanyID: companyID, Name: "Dados"}})

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindAllByCompany(ctx, companyID).Return(rows, nil)
		deps.redismock.ExpectSet(cacheKey, payload, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Dados", resp[0].Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindAllByCompany(ctx, companyID).Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx, companyID)

		assert.Error(t, err)
	})
}

func TestTeamService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tm *team.Team) error {
				assert.Equal(t, "Produto", tm.Name)
				assert.Equal(t, companyID, tm.CompanyID.String())
				return nil
			})
		deps.redismock.ExpectDel(team.GetTeamsCacheKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, team.CreateTeamRequest{Name: "  Produto "})

		assert.NoError(t, err)
		assert.Equal(t, "Produto", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := deps.service.Create(ctx, companyID, team.CreateTeamRequest{Name: "Produto"})

		assert.ErrorIs(t, err, teamerrors.ErrTeamAlreadyExists)
	})

	t.Run("invalid company", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, "nope", team.CreateTeamRequest{Name: "Produto"})

		assert.ErrorIs(t, err, teamerrors.ErrInvalidCompanyID)
	})
}

func TestTeamService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	deps.repo.EXPECT().FindByIDAndCompany(ctx, "c-1", "t-9").Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.GetByID(ctx, "c-1", "t-9")

	assert.ErrorIs(t, err, teamerrors.ErrTeamNotFound)
}
