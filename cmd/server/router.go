package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	docs "github.com/snnyvrz/shelfshare/apps/catalog-api/internal/docs"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/handler"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/mapper"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/middleware"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/service"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/validation"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// clockIn reads the wall clock in loc, so calendar days follow the configured
// zone rather than the host's.
func clockIn(loc *time.Location) validation.Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func setupRouter(st *store, startTime time.Time, loc *time.Location) *gin.Engine {
	e := gin.New()

	e.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	if err := e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	}); err != nil {
		log.Warn().Err(err).Msg("could not set trusted proxies")
	}

	docs.SwaggerInfo.BasePath = "/api"

	authorMapper := mapper.NewAuthorMapper()
	authorService := service.NewAuthorService(
		st.authors,
		authorMapper,
		validation.NewAuthorRules(st.authors),
	)
	bookService := service.NewBookService(
		st.books,
		st.authors,
		mapper.NewBookMapper(st.authors, authorMapper),
		validation.NewBookRules(st.books, st.authors, clockIn(loc)),
	)

	healthHandler := handler.NewHealthHandler(st.pinger, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	api := e.Group("/api")
	{
		handler.NewAuthorHandler(authorService).RegisterRoutes(api)
		handler.NewBookHandler(bookService).RegisterRoutes(api)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e
}
