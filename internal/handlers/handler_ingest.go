package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
	"github.com/ledgerline/ledgerline/internal/decider"
	"github.com/ledgerline/ledgerline/internal/dto"
	"github.com/ledgerline/ledgerline/internal/importer"
	"github.com/ledgerline/ledgerline/internal/middleware"
)

// IngestHandler serves statement ingestion. The HTTP path is non-interactive:
// the caller uploads the statement file together with the classification
// rules to apply, and any candidate no rule covers aborts the batch.
type IngestHandler struct {
	ingestionService portssvc.IngestionSvcFacade
	registry         *importer.Registry
}

func NewIngestHandler(ingestionService portssvc.IngestionSvcFacade, registry *importer.Registry) *IngestHandler {
	return &IngestHandler{ingestionService: ingestionService, registry: registry}
}

// IngestStatement handles POST /api/v1/accounts/:id/ingest. The request is a
// multipart form with the statement under "file", the institution key under
// "institute" and an optional JSON rule array under "rules".
func (h *IngestHandler) IngestStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	var req dto.IngestRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var rules []dto.CategoryRule
	if raw := c.PostForm("rules"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &rules); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rules: " + err.Error()})
			return
		}
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "statement file is required"})
		return
	}

	parser, err := h.registry.Find(req.Institute, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	batch, err := parser.Parse(file)
	if err != nil {
		logger.Error("failed to parse statement", "institute", req.Institute, "filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scripted := decider.NewScriptedDecider(rules)
	summary, err := h.ingestionService.ProcessBatch(c.Request.Context(), accountID, batch, scripted)
	if err != nil {
		logger.Error("batch ingestion stopped", "account_id", accountID, "error", err)
		if summary == nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "summary": summary})
		return
	}

	c.JSON(http.StatusOK, summary)
}
