package imagecontroller

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiwicar-nz/marketplace-api/response"
)

const (
	MaxFiles    = 10
	MaxFileSize = 5 << 20 // 5MB each
)

var unsafeChars = regexp.MustCompile(`[^\w\-.]`)

// UploadImages accepts up to 10 image files and returns their public URLs
// in input order. A failure partway through removes the files already
// written in this request, so the client never sees a partial success.
// POST /api/v1/images/upload (multipart, field "images")
func UploadImages(uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid multipart form")
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "No files uploaded")
			return
		}
		if len(files) > MaxFiles {
			response.Error(c, http.StatusBadRequest, response.CodeValidation,
				fmt.Sprintf("Maximum %d files per upload", MaxFiles))
			return
		}
		for _, file := range files {
			if file.Size > MaxFileSize {
				response.Error(c, http.StatusBadRequest, response.CodeValidation,
					fmt.Sprintf("%s exceeds the 5MB limit", file.Filename))
				return
			}
			if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
				response.Error(c, http.StatusBadRequest, response.CodeValidation,
					fmt.Sprintf("%s is not an image", file.Filename))
				return
			}
		}

		if err := os.MkdirAll(uploadDir, 0755); err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeUploadFailed, "Failed to create upload folder")
			return
		}

		var saved []string
		cleanup := func() {
			for _, path := range saved {
				if err := os.Remove(path); err != nil {
					log.Printf("upload cleanup: %v", err)
				}
			}
		}

		urls := make([]string, 0, len(files))
		for _, file := range files {
			cleanName := unsafeChars.ReplaceAllString(file.Filename, "_")
			filename := fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uuid.NewString()[:8], cleanName)
			savePath := filepath.Join(uploadDir, filename)

			if err := c.SaveUploadedFile(file, savePath); err != nil {
				cleanup()
				response.Error(c, http.StatusInternalServerError, response.CodeUploadFailed,
					fmt.Sprintf("Failed to save %s", file.Filename))
				return
			}
			saved = append(saved, savePath)
			urls = append(urls, fmt.Sprintf("%s/uploads/%s", publicBaseURL, filename))
		}

		response.OK(c, http.StatusCreated, gin.H{"urls": urls})
	}
}
