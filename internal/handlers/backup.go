// internal/handlers/backup.go
package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shopledger/backend/internal/i18n"
	"github.com/shopledger/backend/internal/services"
	"github.com/shopledger/backend/internal/utils"
)

const (
	maxImportSize       = 32 << 20
	archiveLinkValidFor = 15 * time.Minute
)

type BackupHandler struct {
	backupService  *services.BackupService
	storageService *services.StorageService
}

func NewBackupHandler(backupService *services.BackupService, storageService *services.StorageService) *BackupHandler {
	return &BackupHandler{
		backupService:  backupService,
		storageService: storageService,
	}
}

// GET /backup
func (h *BackupHandler) Export(c *gin.Context) {
	data, err := h.backupService.Export()
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("shopledger-backup-%s.json", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("X-Content-SHA256", utils.HashBytes(data))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// POST /backup
func (h *BackupHandler) Import(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyBackupMalformed), err.Error())
		return
	}

	if checksum := c.GetHeader("X-Content-SHA256"); checksum != "" && !utils.ValidateFileHash(data, checksum) {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyBackupMalformed), "checksum mismatch")
		return
	}

	result, err := h.backupService.Import(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBackupImported),
		"result":  result,
	})
}

// POST /backup/archive
func (h *BackupHandler) Archive(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	result, err := h.backupService.Archive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{
		"message": i18n.T(lang, i18n.KeyBackupArchived),
		"archive": result,
	}
	if result.Remote {
		url, err := h.storageService.GeneratePresignedURL(result.Key, archiveLinkValidFor)
		if err != nil {
			logrus.WithError(err).WithField("key", result.Key).Warn("Failed to presign archive link")
		} else {
			response["download_url"] = url
		}
	}

	utils.CreatedResponse(c, response)
}
