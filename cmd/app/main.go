package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gainsystem/cmd/fx/auth_fx"
	"gainsystem/cmd/fx/business_fx"
	"gainsystem/cmd/fx/calendar_fx"
	"gainsystem/cmd/fx/config_fx"
	"gainsystem/cmd/fx/controllers_fx"
	"gainsystem/cmd/fx/db_fx"
	"gainsystem/cmd/fx/finance_fx"
	"gainsystem/internal/api/controllers"
	"gainsystem/internal/auth"
	"gainsystem/internal/infra"
	"gainsystem/pkg/config"
	"gainsystem/pkg/logging"
	"gainsystem/pkg/middleware"
	"gainsystem/pkg/utils"
)

func main() {
	logging.Setup()

	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		auth_fx.Module,
		business_fx.Module,
		calendar_fx.Module,
		finance_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(infra.SeedScopeTypes),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(
	db *gorm.DB,
	jwtManager *auth.JWTManager,
	authController *controllers.AuthController,
	businessController *controllers.BusinessController,
	calendarController *controllers.CalendarController,
	financeController *controllers.FinanceController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceID())
	r.Use(middleware.CORS())
	r.Use(middleware.Session(db, jwtManager))

	r.GET("/check", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"alive": true}, "")
	})

	RegisterRoutes(r, authController, businessController, calendarController, financeController)
	return r
}

func RegisterRoutes(
	r *gin.Engine,
	authController *controllers.AuthController,
	businessController *controllers.BusinessController,
	calendarController *controllers.CalendarController,
	financeController *controllers.FinanceController,
) {
	base := r.Group("/base")
	base.POST("/registration", authController.Register)
	base.POST("/authentication", authController.Authenticate)
	base.POST("/third_party_authentication", authController.ThirdPartyAuthenticate)
	base.POST("/refresh_token", authController.Refresh)
	base.GET("/me", authController.GetMe)
	base.POST("/update_user", authController.UpdateUser)

	business := r.Group("/business")
	business.GET("/scope_types", businessController.GetScopeTypes)
	business.POST("/create_business", businessController.CreateBusiness)
	business.POST("/update_business", businessController.UpdateBusiness)
	business.POST("/delete_business", businessController.DeleteBusiness)
	business.POST("/create_role", businessController.CreateRole)
	business.POST("/update_role", businessController.UpdateRole)
	business.POST("/delete_role", businessController.DeleteRole)
	business.POST("/add_team_member", businessController.AddTeamMember)
	business.POST("/update_team_member", businessController.UpdateTeamMember)
	business.POST("/get_team", businessController.GetTeam)
	business.POST("/delete_team_member", businessController.DeleteTeamMember)
	business.POST("/add_client", businessController.AddClient)
	business.POST("/update_client", businessController.UpdateClient)
	business.POST("/delete_client", businessController.DeleteClient)
	business.GET("/clients", businessController.GetClients)
	business.POST("/add_client_attribute", businessController.AddClientAttribute)
	business.POST("/update_client_attribute", businessController.UpdateClientAttribute)
	business.POST("/delete_client_attribute", businessController.DeleteClientAttribute)

	calendar := r.Group("/calendar")
	calendar.POST("/create_event", calendarController.CreateEvent)
	calendar.POST("/update_event", calendarController.UpdateEvent)
	calendar.POST("/delete_event", calendarController.DeleteEvent)
	calendar.POST("/delete_participant", calendarController.DeleteParticipant)
	calendar.POST("/get_events", calendarController.GetEvents)

	finance := r.Group("/finance")
	finance.POST("/create_money_movement", financeController.CreateTransaction)
	finance.POST("/create_tag", financeController.CreateTag)
	finance.POST("/update_tag", financeController.UpdateTag)
	finance.POST("/delete_tag", financeController.DeleteTag)
	finance.POST("/get_history", financeController.GetHistory)
	finance.POST("/get_tags", financeController.GetTags)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	server := &http.Server{Addr: ":" + cfg.Port, Handler: engine}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("http server listening", "port", cfg.Port)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("http server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("stopping http server")
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			return infra.ClosePostgresql(db)
		},
	})
}
