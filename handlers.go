package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"statement-insights-backend/internal/events"
	"statement-insights-backend/internal/logger"
	"statement-insights-backend/internal/pdftext"
	"statement-insights-backend/internal/pipeline"
)

const uploadField = "pdf"

// parseGroup collapses concurrent parses of the same document.
var parseGroup singleflight.Group

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := HealthStatus{
		Status:   "healthy",
		Service:  "statement-insights",
		Database: "disabled",
		Cache:    "disabled",
		Events:   "disabled",
	}
	code := http.StatusOK

	if db != nil {
		status.Database = "ok"
		if err := db.PingContext(ctx); err != nil {
			status.Database = err.Error()
			status.Status, code = "unhealthy", http.StatusServiceUnavailable
		}
	}
	if redisClient != nil {
		status.Cache = "ok"
		if err := redisClient.Ping(ctx).Err(); err != nil {
			status.Cache = err.Error()
			status.Status, code = "unhealthy", http.StatusServiceUnavailable
		}
	}
	if publisher != nil {
		status.Events = "ok"
		if !publisher.Healthy() {
			status.Events = "connection closed"
			status.Status, code = "unhealthy", http.StatusServiceUnavailable
		}
	}

	c.JSON(code, status)
}

func apiIndex(c *gin.Context) {
	c.String(http.StatusOK, "Backend is working!")
}

// uploadStatement stores a statement and returns its stored name
func uploadStatement(c *gin.Context) {
	file, ok := receiveFile(c)
	if !ok {
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	name, err := uploads.Save(file.Filename, src)
	if err != nil {
		reqLog := logger.FromContext(c.Request.Context())
		reqLog.Error().Err(err).Str("file", file.Filename).Msg("Failed to store upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	c.JSON(http.StatusOK, UploadResult{Message: "PDF uploaded successfully", File: name})
}

// parseStatement extracts, categorizes and summarizes an uploaded
// statement. The uploaded file is removed before the handler returns.
func parseStatement(c *gin.Context) {
	ctx := c.Request.Context()
	reqLog := logger.FromContext(ctx)

	file, ok := receiveFile(c)
	if !ok {
		return
	}

	name, digest, err := storeUpload(file)
	if err != nil {
		reqLog.Error().Err(err).Str("file", file.Filename).Msg("Failed to store upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse PDF"})
		return
	}
	reqLog = logger.WithFields(reqLog, map[string]interface{}{
		"file":   file.Filename,
		"sha256": digest,
	})
	defer func() {
		if err := uploads.Delete(name); err != nil {
			reqLog.Warn().Err(err).Str("stored", name).Msg("Failed to remove upload")
		}
	}()

	if result, ok := cachedResult(ctx, digest); ok {
		c.Header(cacheHeader, "HIT")
		c.JSON(http.StatusOK, result)
		return
	}

	// Shared by every waiter on digest; not tied to the leader's request.
	v, err, _ := parseGroup.Do(digest, func() (interface{}, error) {
		workCtx := context.WithoutCancel(ctx)
		if cfg.ExtractTimeout > 0 {
			var cancel context.CancelFunc
			workCtx, cancel = context.WithTimeout(workCtx, cfg.ExtractTimeout)
			defer cancel()
		}

		lines, err := extractor.Lines(workCtx, uploads.Path(name))
		if err != nil {
			return nil, err
		}
		result := engine.Run(lines)

		cacheResult(workCtx, digest, &result)
		recordParseRun(workCtx, file.Filename, digest, &result)
		return &result, nil
	})
	if err != nil {
		if errors.Is(err, pdftext.ErrUnreadable) {
			reqLog.Warn().Err(err).Msg("Statement is not readable")
		} else {
			reqLog.Error().Err(err).Msg("Failed to parse statement")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse PDF"})
		return
	}

	result := v.(*pipeline.Result)
	reqLog.Info().
		Int("transactions", len(result.Transactions)).
		Str("grand_total", result.GrandTotal.String()).
		Msg("Statement parsed")

	c.Header(cacheHeader, "MISS")
	c.JSON(http.StatusOK, result)
}

// listHistory returns the most recent parse runs
func listHistory(c *gin.Context) {
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "parse history is not configured"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	runs, err := listParseRuns(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, runs)
}

// serveFrontend serves the built client, falling back to index.html for
// client-side routes.
func serveFrontend(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	path := filepath.Join(cfg.StaticDir, filepath.Clean("/"+c.Request.URL.Path))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		c.File(path)
		return
	}
	c.File(filepath.Join(cfg.StaticDir, "index.html"))
}

// receiveFile reads the statement from the multipart form, writing the
// error response itself when there is none.
func receiveFile(c *gin.Context) (*multipart.FileHeader, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(cfg.MaxUploadMB)<<20)

	file, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return nil, false
	}
	return file, true
}

// storeUpload saves the file and returns its stored name and SHA-256.
func storeUpload(file *multipart.FileHeader) (string, string, error) {
	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	h := sha256.New()
	name, err := uploads.Save(file.Filename, io.TeeReader(src, h))
	if err != nil {
		return "", "", err
	}
	return name, hex.EncodeToString(h.Sum(nil)), nil
}

// recordParseRun stores and announces the summary of a parse. Failures are
// logged and do not affect the response.
func recordParseRun(ctx context.Context, fileName, digest string, result *pipeline.Result) {
	if db == nil && publisher == nil {
		return
	}
	reqLog := logger.FromContext(ctx)

	run := ParseRun{
		ID:               uuid.New(),
		FileName:         filepath.Base(fileName),
		DocumentSHA256:   digest,
		TransactionCount: len(result.Transactions),
		GrandTotal:       result.GrandTotal,
		Granularity:      string(result.Report.Granularity),
		CreatedAt:        time.Now().UTC(),
	}

	if db != nil {
		if err := insertParseRun(ctx, run); err != nil {
			reqLog.Warn().Err(err).Msg("Failed to record parse run")
		}
	}

	if publisher != nil {
		msg := &events.StatementParsed{
			RunID:            run.ID.String(),
			DocumentSHA256:   run.DocumentSHA256,
			TransactionCount: run.TransactionCount,
			GrandTotal:       run.GrandTotal.String(),
			Granularity:      run.Granularity,
			Timestamp:        run.CreatedAt,
		}
		if err := publisher.PublishStatementParsed(ctx, msg); err != nil {
			reqLog.Warn().Err(err).Msg("Failed to publish parse notification")
		}
	}
}
