package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/storage"
)

const archiveLinkExpiry = time.Hour

// URLSigner issues temporary download links for archived objects.
type URLSigner interface {
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// Archive serves download links for archived summaries
type Archive struct {
	signer URLSigner
	logger *zap.Logger
}

// NewArchiveHandler creates a new archive handler
func NewArchiveHandler(signer URLSigner, logger *zap.Logger) *Archive {
	return &Archive{signer: signer, logger: logger}
}

// Links returns presigned URLs for an archived summary
// @Summary      Archived summary links
// @Description  Generate presigned URLs for the text and JSON forms of an archived summary
// @Tags         Summary
// @Produce      json
// @Param        id   path      string  true  "Summary ID (UUID)"
// @Success      200  {object}  map[string]interface{}  "Download URLs"
// @Failure      400  {object}  map[string]interface{}  "Invalid summary ID"
// @Failure      500  {object}  map[string]interface{}  "Failed to generate URL"
// @Router       /meeting-summary/{id}/archive [get]
func (h *Archive) Links(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	links := make(map[string]string, 2)
	for _, ext := range []string{"txt", "json"} {
		objectName := storage.SummaryObject(id, ext)
		url, err := h.signer.GetFileURL(ctx, objectName, archiveLinkExpiry)
		if err != nil {
			if h.logger != nil {
				h.logger.Error("failed to generate download URL",
					zap.String("object_name", objectName),
					zap.Error(err))
			}
			return HandleError(h.logger, c, errors.ErrStorageFailed("presign", err))
		}
		links[ext] = url
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"id":         id,
		"urls":       links,
		"expires_in": archiveLinkExpiry.String(),
	})
}
