package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	api_types "decimal-converter/api-types"
	"decimal-converter/internal/resolver"
	"decimal-converter/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func NewRouter(r resolver.Resolver, logger zerolog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to decimal converter"})
	})

	router.POST("/fractionToDecimal", func(c *gin.Context) {
		var req api_types.ConvertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		out, err := r.FractionToDecimal(req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	router.POST("/inchesToMillimeters", func(c *gin.Context) {
		var req api_types.ConvertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		out, err := r.InchesToMillimeters(req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	router.POST("/millimetersToInches", func(c *gin.Context) {
		var req api_types.ConvertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		out, err := r.MillimetersToInches(req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	router.GET("/reference/:context", func(c *gin.Context) {
		out, err := r.Reference(c.Param("context"))
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	router.GET("/settings", func(c *gin.Context) {
		c.JSON(http.StatusOK, r.GetSettings())
	})

	router.PUT("/settings", func(c *gin.Context) {
		var req api_types.UpdateSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		out, err := r.UpdateSettings(req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	return router
}

// StartApi blocks until ctx is done, then gives in-flight requests
// a few seconds to finish
func StartApi(ctx context.Context, port int, r resolver.Resolver, logger zerolog.Logger) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: NewRouter(r, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Int("port", port).Msg("api listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info().Msg("api shutting down")
	return server.Shutdown(shutdownCtx)
}

// user mistakes are a 400 with the message meant for people,
// anything else is on us
func returnErrorJson(err error, c *gin.Context) {
	if userErr, ok := service.AsUserError(err); ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, api_types.ErrorResponse{
			Error: userErr.Message,
			Kind:  string(userErr.Kind),
		})
		return
	}
	returnErrorJsonCode(err, c, http.StatusInternalServerError)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	c.Error(err)
	c.AbortWithStatusJSON(code, api_types.ErrorResponse{
		Error: err.Error(),
	})
}

const requestIDHeader = "X-Request-Id"

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)
		writer := responseBodyWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		event := logger.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = logger.Error().Str("response", writer.body.String())
		} else if c.Writer.Status() >= http.StatusBadRequest {
			event = logger.Warn().Str("response", writer.body.String())
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("requestId", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
