package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/example/acne-analysis/internal/classifier"
	"github.com/example/acne-analysis/internal/storage"
	"github.com/example/acne-analysis/internal/usecase"
)

// MaxUploadSize bounds a single multipart request body.
const MaxUploadSize = 10 << 20

// Advice strings returned by /submit. They are fixed constants, deliberately
// not derived from the submitted severity.
const (
	skincareAdvice  = "Use mild cleansers and non-comedogenic moisturizers."
	dietAdvice      = "Focus on low-GI foods and fiber-rich vegetables."
	lifestyleAdvice = "Maintain regular sleep and reduce stress."
)

// spaRoutes are the frontend entry points; all of them serve the SPA document
// and let the client router take over.
var spaRoutes = []string{"/", "/Chatbot", "/Inform", "/AnalysisResult"}

// RegisterRoutes wires the HTTP handlers to the Gin router.
func RegisterRoutes(router *gin.Engine, uc *usecase.AnalysisUseCase, disk *storage.Disk, staticDir string) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	for _, route := range spaRoutes {
		router.GET(route, func(c *gin.Context) {
			c.File(filepath.Join(staticDir, "index.html"))
		})
	}

	router.POST("/submit", func(c *gin.Context) {
		severity := c.PostForm("severity")
		c.JSON(http.StatusOK, gin.H{
			"severity":         severity,
			"skincare_advice":  skincareAdvice,
			"diet_advice":      dietAdvice,
			"lifestyle_advice": lifestyleAdvice,
		})
	})

	router.POST("/upload", func(c *gin.Context) {
		userID := c.PostForm("user_id")

		files := make(map[classifier.Region]usecase.RegionUpload)
		for _, region := range classifier.Regions() {
			header, err := c.FormFile(string(region))
			if err != nil {
				continue
			}
			src, err := header.Open()
			if err != nil {
				continue
			}
			data, err := io.ReadAll(src)
			src.Close()
			if err != nil {
				continue
			}
			files[region] = usecase.RegionUpload{Filename: header.Filename, Data: data}
		}

		summary, err := uc.ProcessUpload(c.Request.Context(), userID, files)
		if err != nil {
			var invalid *usecase.InvalidUploadError
			if errors.As(err, &invalid) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": fmt.Sprintf("Invalid or missing file for %s", invalid.Region),
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user_id": summary.UserID})
	})

	router.GET("/result", func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id"})
			return
		}

		records, err := uc.Results(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"results": records})
	})

	router.GET("/uploads/:user_id/:filename", func(c *gin.Context) {
		userID := storage.SanitizeUserID(c.Param("user_id"))
		filename := filepath.Base(c.Param("filename"))

		path := disk.ImagePath(userID, filename)
		if _, err := os.Stat(path); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.File(path)
	})

	router.GET("/check-user-id", func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id"})
			return
		}

		exists, err := uc.CheckUserID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"exists": exists})
	})

	router.GET("/stats", func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id"})
			return
		}

		summary, err := uc.Stats(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
			return
		}

		c.JSON(http.StatusOK, summary)
	})
}
