package handlers

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"event-portal.backend/internal/config"
	"event-portal.backend/internal/domain/entities"
	domainerrors "event-portal.backend/internal/domain/errors"
	"event-portal.backend/internal/interfaces/http/middleware"
	"event-portal.backend/internal/usecases"
	"event-portal.backend/pkg/session"
	"event-portal.backend/pkg/token"
)

var assertAnError = errors.New("simulated store failure")

// regRepoStub is an in-memory RegistrationRepository for handler tests.
type regRepoStub struct {
	items map[primitive.ObjectID]*entities.TeamRegistration

	insertErr  error
	findAllErr error
}

func newRegRepoStub() *regRepoStub {
	return &regRepoStub{items: map[primitive.ObjectID]*entities.TeamRegistration{}}
}

func (s *regRepoStub) Insert(_ context.Context, reg *entities.TeamRegistration) (primitive.ObjectID, error) {
	if s.insertErr != nil {
		return primitive.NilObjectID, s.insertErr
	}
	id := primitive.NewObjectID()
	stored := *reg
	stored.ID = id
	s.items[id] = &stored
	return id, nil
}

func (s *regRepoStub) FindByID(_ context.Context, id primitive.ObjectID) (*entities.TeamRegistration, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	out := *item
	return &out, nil
}

func (s *regRepoStub) FindAll(_ context.Context, newestFirst bool) ([]*entities.TeamRegistration, error) {
	if s.findAllErr != nil {
		return nil, s.findAllErr
	}
	out := make([]*entities.TeamRegistration, 0, len(s.items))
	for _, item := range s.items {
		copied := *item
		out = append(out, &copied)
	}
	if newestFirst {
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

func (s *regRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

// newTestRouter wires the full public + gated route table against an
// in-memory repo and a miniredis-backed session store.
func newTestRouter(t *testing.T) (*gin.Engine, *regRepoStub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	t.Cleanup(srv.Close)

	cli := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	session.SetClient(cli)
	t.Cleanup(func() { _ = cli.Close() })

	sessions, err := session.NewStore("test-secret")
	require.NoError(t, err)

	sessionCfg := config.SessionConfig{Secret: "test-secret", TTL: time.Minute}
	adminCfg := config.AdminConfig{User: "admin", Pass: "acmvitap"}
	tokens := token.NewService(sessionCfg.Secret, sessionCfg.TTL)

	repo := newRegRepoStub()
	regUC := usecases.NewRegistrationUsecase(repo)
	adminUC := usecases.NewAdminUsecase(adminCfg, sessionCfg, sessions, tokens)
	exportUC := usecases.NewExportUsecase(repo)

	pages := NewPagesHandler()
	reg := NewRegistrationHandler(regUC)
	admin := NewAdminHandler(adminUC, regUC, exportUC, sessionCfg.TTL)
	gate := middleware.AdminAuth(sessions, tokens)

	r := gin.New()
	r.GET("/", pages.Home)
	r.GET("/treasure", pages.Treasure)
	r.GET("/upcoming_events", pages.UpcomingEvents)
	r.GET("/team_register", reg.ShowForm)
	r.POST("/team_register", reg.Register)
	r.POST("/download_info", reg.DownloadInfo)
	r.GET("/admin_login", admin.ShowLogin)
	r.POST("/admin_login", admin.Login)
	r.GET("/logout", admin.Logout)
	r.GET("/admin_dashboard", gate, admin.Dashboard)
	r.GET("/view_registered_teams", gate, admin.ListTeams)
	r.GET("/export_excel", gate, admin.ExportExcel)

	return r, repo
}
