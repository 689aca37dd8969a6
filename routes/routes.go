package routes

import (
	"log"
	"time"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/config"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/database"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/handlers"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/services"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// 全局管理器实例
var (
	wsManager       *utils.WebSocketManager
	analysisManager *utils.AnalysisManager
	queryCache      *utils.QueryCache
)

// SetupRoutes 设置路由
func SetupRoutes(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 初始化全局管理器
	wsManager = utils.NewWebSocketManager()
	analysisManager = utils.NewAnalysisManager(cfg.Analysis.MaxConcurrentJobs)
	queryCache = utils.NewQueryCache(time.Duration(cfg.Cache.DashboardTTLSeconds) * time.Second)

	// CORS配置
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 演示模式：使用内置品牌数据，只提供读取接口
	if cfg.UseStaticData {
		log.Println("📦 使用静态演示数据，仅注册品牌读取路由")
		brandHandler := handlers.NewBrandHandler(nil, services.NewStaticBrandProvider())

		api := r.Group("/api")
		brands := api.Group("/brands")
		{
			brands.GET("", brandHandler.GetBrands)
			brands.GET("/slug/:slug", brandHandler.GetBrandBySlug)
		}
		return r
	}

	db := database.DB
	provider := services.NewDatabaseBrandProvider(services.NewBrandService(db, queryCache))

	// 创建控制器实例
	brandHandler := handlers.NewBrandHandler(services.NewBrandService(db, queryCache), provider)
	campaignHandler := handlers.NewCampaignHandler(db, queryCache)
	messageHandler := handlers.NewMessageHandler(db, queryCache)
	objectiveHandler := handlers.NewObjectiveHandler(db, queryCache)
	personaHandler := handlers.NewPersonaHandler(db, queryCache)
	competitorHandler := handlers.NewCompetitorHandler(db, queryCache)
	swotHandler := handlers.NewSwotHandler(db, queryCache)
	contentHandler := handlers.NewContentHandler(db, cfg, queryCache)
	marketAnalysisHandler := handlers.NewMarketAnalysisHandler(db, queryCache)
	dashboardHandler := handlers.NewDashboardHandler(db, queryCache)
	researchFileHandler := handlers.NewResearchFileHandler(db, cfg, queryCache)
	analysisService := services.NewAnalysisService(db, cfg, analysisManager, wsManager, queryCache)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	websocketHandler := handlers.NewWebSocketHandler(wsManager, analysisManager)

	// WebSocket路由
	r.GET("/ws", websocketHandler.HandleWebSocket)

	// API路由组
	api := r.Group("/api")
	{
		// 品牌相关路由
		brands := api.Group("/brands")
		{
			brands.GET("", brandHandler.GetBrands)
			brands.GET("/slug/:slug", brandHandler.GetBrandBySlug)
			brands.GET("/:id", brandHandler.GetBrand)
			brands.POST("", brandHandler.CreateBrand)
			brands.PUT("/:id", brandHandler.UpdateBrand)
			brands.DELETE("/:id", brandHandler.DeleteBrand)
			brands.GET("/:id/export", brandHandler.ExportBrand)
			brands.GET("/:id/dashboard", dashboardHandler.GetDashboard)

			// 营销活动路由
			campaigns := brands.Group("/:id/campaigns")
			{
				campaigns.GET("", campaignHandler.GetCampaigns)
				campaigns.PUT("", campaignHandler.ReplaceCampaigns)
				campaigns.POST("", campaignHandler.CreateCampaign)
				campaigns.PUT("/reorder", campaignHandler.ReorderCampaigns)
				campaigns.PUT("/:itemId", campaignHandler.UpdateCampaign)
				campaigns.DELETE("/:itemId", campaignHandler.DeleteCampaign)
			}

			// 品牌信息传递路由
			messages := brands.Group("/:id/messages")
			{
				messages.GET("", messageHandler.GetMessages)
				messages.PUT("", messageHandler.ReplaceMessages)
				messages.POST("", messageHandler.CreateMessage)
				messages.PUT("/reorder", messageHandler.ReorderMessages)
				messages.PUT("/:itemId", messageHandler.UpdateMessage)
				messages.DELETE("/:itemId", messageHandler.DeleteMessage)
			}

			// 品牌目标路由
			objectives := brands.Group("/:id/objectives")
			{
				objectives.GET("", objectiveHandler.GetObjectives)
				objectives.PUT("", objectiveHandler.ReplaceObjectives)
				objectives.POST("", objectiveHandler.CreateObjective)
				objectives.PUT("/reorder", objectiveHandler.ReorderObjectives)
				objectives.PUT("/:itemId", objectiveHandler.UpdateObjective)
				objectives.DELETE("/:itemId", objectiveHandler.DeleteObjective)
			}

			// 受众画像路由
			personas := brands.Group("/:id/personas")
			{
				personas.GET("", personaHandler.GetPersonas)
				personas.PUT("", personaHandler.ReplacePersonas)
				personas.POST("", personaHandler.CreatePersona)
				personas.PUT("/reorder", personaHandler.ReorderPersonas)
				personas.PUT("/:itemId", personaHandler.UpdatePersona)
				personas.DELETE("/:itemId", personaHandler.DeletePersona)
			}

			// 竞争对手路由
			competitors := brands.Group("/:id/competitors")
			{
				competitors.GET("", competitorHandler.GetCompetitors)
				competitors.PUT("", competitorHandler.ReplaceCompetitors)
				competitors.POST("", competitorHandler.CreateCompetitor)
				competitors.PUT("/reorder", competitorHandler.ReorderCompetitors)
				competitors.PUT("/:itemId", competitorHandler.UpdateCompetitor)
				competitors.DELETE("/:itemId", competitorHandler.DeleteCompetitor)
			}

			// SWOT分析路由
			swot := brands.Group("/:id/swot")
			{
				swot.GET("", swotHandler.GetSwotEntries)
				swot.PUT("", swotHandler.ReplaceSwotEntries)
				swot.POST("", swotHandler.CreateSwotEntry)
				swot.PUT("/reorder", swotHandler.ReorderSwotEntries)
				swot.PUT("/:itemId", swotHandler.UpdateSwotEntry)
				swot.DELETE("/:itemId", swotHandler.DeleteSwotEntry)
			}

			// 内容素材路由
			content := brands.Group("/:id/content")
			{
				content.GET("", contentHandler.GetContentItems)
				content.PUT("", contentHandler.ReplaceContentItems)
				content.POST("/upload", contentHandler.UploadContentAsset)
				content.PUT("/reorder", contentHandler.ReorderContentItems)
				content.PUT("/:itemId", contentHandler.UpdateContentItem)
				content.DELETE("/:itemId", contentHandler.DeleteContentItem)
			}

			// 市场分析路由
			brands.GET("/:id/market-analysis", marketAnalysisHandler.GetMarketAnalysis)
			brands.PUT("/:id/market-analysis", marketAnalysisHandler.UpsertMarketAnalysis)
			brands.DELETE("/:id/market-analysis", marketAnalysisHandler.DeleteMarketAnalysis)

			// 调研文件路由
			research := brands.Group("/:id/research-files")
			{
				research.GET("", researchFileHandler.GetResearchFiles)
				research.POST("", researchFileHandler.UploadResearchFile)
				research.DELETE("/:fileId", researchFileHandler.DeleteResearchFile)
			}
		}

		// 内容分析路由
		contentAPI := api.Group("/content")
		{
			contentAPI.POST("/:id/analyze", analysisHandler.StartAnalysis)
			contentAPI.GET("/:id/analysis", analysisHandler.GetAnalysisStatus)
			contentAPI.POST("/:id/analysis/cancel", analysisHandler.CancelAnalysis)
		}
	}

	return r
}
