package service

import (
	"github.com/vagledaren/vagledaren/app/core"
	"github.com/vagledaren/vagledaren/app/response"
	"github.com/vagledaren/vagledaren/cmd/service/handler"
	"github.com/vagledaren/vagledaren/cmd/service/middleware"
	"github.com/vagledaren/vagledaren/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors)
	s.Engine.Use(middleware.AcceptLanguage())
	s.Engine.Use(middleware.Metrics(s.Core))

	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.POST("/user/register", s.RegisterUser)

		authed := apiV1.Group("")
		authed.Use(middleware.Authorization(s.Core))

		user := authed.Group("/user")
		{
			user.GET("/profile", s.Profile)
			user.PUT("/profile", s.UpdateProfile)
			user.POST("/secret/token", s.CreateAccessToken)
			user.GET("/secret/tokens", s.ListAccessTokens)
			user.DELETE("/secret/tokens", s.ClearAccessTokens)
		}

		coach := authed.Group("/coach")
		{
			coach.POST("/session", s.StartSession)
			coach.GET("/session", s.GetActiveSession)
			coach.DELETE("/session", s.EndSession)
			coach.POST("/session/message", s.SendMessage)
			coach.PUT("/session/goals", s.SetSessionGoals)
			coach.POST("/session/note", s.AddProgressNote)
			coach.GET("/sessions", s.ListSessions)
			coach.GET("/session/:session/history", s.SessionHistory)
		}

		goal := authed.Group("/goals")
		{
			goal.POST("", s.CreateGoal)
			goal.GET("/list", s.ListGoals)
			goal.GET("/overview", s.GoalOverview)
			goal.GET("/:goal", s.GetGoal)
			goal.PUT("/:goal/progress", s.UpdateGoalProgress)
			goal.POST("/:goal/milestone", s.AddGoalMilestone)
			goal.DELETE("/:goal", s.DeleteGoal)
		}

		project := authed.Group("/projects")
		{
			project.POST("", s.CreateProject)
			project.GET("/list", s.ListProjects)
			project.GET("/status", s.ImplementationStatus)
			project.GET("/roadmap", s.ImplementationRoadmap)
			project.GET("/:project", s.GetProject)
			project.PUT("/:project", s.UpdateProject)
			project.POST("/:project/phase", s.AdvanceProjectPhase)
			project.DELETE("/:project", s.DeleteProject)
		}

		challenge := authed.Group("/challenges")
		{
			challenge.POST("", s.CreateChallenge)
			challenge.GET("/list", s.ListChallenges)
			challenge.GET("/:challenge", s.GetChallenge)
			challenge.POST("/:challenge/solution", s.ProposeChallengeSolution)
			challenge.PUT("/:challenge/status", s.SetChallengeStatus)
		}

		reflection := authed.Group("/reflections")
		{
			reflection.POST("", s.CreateReflection)
			reflection.GET("/list", s.ListReflections)
			reflection.GET("/recent", s.RecentReflections)
			reflection.GET("/prompts", s.ReflectionPrompts)
			reflection.GET("/weekly", s.WeeklyReviewQuestions)
			reflection.DELETE("/:reflection", s.DeleteReflection)
		}

		usage := authed.Group("/usage")
		{
			usage.GET("/daily", s.DailyUsage)
			usage.GET("/monthly", s.MonthlyUsage)
			usage.GET("/report", s.UsageReport)
			usage.GET("/records", s.ListUsageRecords)
		}
	}
}
