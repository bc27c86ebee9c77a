package main

import (
	dbadapter "inkwell/internal/adapters/database"
	"inkwell/internal/adapters/httpapi"
	mediaadapter "inkwell/internal/adapters/media"
	redisadapter "inkwell/internal/adapters/redis"
	"inkwell/internal/config"
	"inkwell/internal/core/comment"
	commentapp "inkwell/internal/core/comment/service"
	"inkwell/internal/core/follower"
	followerapp "inkwell/internal/core/follower/service"
	"inkwell/internal/core/group"
	groupapp "inkwell/internal/core/group/service"
	"inkwell/internal/core/post"
	postapp "inkwell/internal/core/post/service"
	"inkwell/internal/core/user"
	userapp "inkwell/internal/core/user/service"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	cfg := config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&comment.Comment{},
		&follower.Follow{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	config.InitRedis()

	defer closeResources(config.Logger)

	images, err := mediaadapter.NewDiskStore(cfg.MediaDir)
	if err != nil {
		config.Logger.Fatal("Error preparing media dir:", zap.Error(err))
	}

	userRepo := dbadapter.NewUserRepositoryDatabase()
	groupRepo := dbadapter.NewGroupRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	commentRepo := dbadapter.NewCommentRepositoryDatabase()
	followerRepo := dbadapter.NewFollowerRepositoryDatabase()
	pageCache := redisadapter.NewPageCacheRedis(config.RedisClient)

	userSvc := userapp.NewUserService(userRepo, []byte(cfg.JWTSecret))
	groupSvc := groupapp.NewGroupService(groupRepo)
	postSvc := postapp.NewPostService(postRepo, groupRepo, commentRepo, images, cfg.PageSize)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo)
	followerSvc := followerapp.NewFollowerService(followerRepo, userRepo)

	r := httpapi.SetupRoutes(
		userSvc,
		groupSvc,
		postSvc,
		commentSvc,
		followerSvc,
		pageCache,
		cfg.IndexCacheTTL,
		[]byte(cfg.JWTSecret),
		cfg.MediaDir,
	)

	config.Logger.Info("App is running...", zap.String("port", cfg.AppPort))

	if err := r.Run(":" + cfg.AppPort); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
