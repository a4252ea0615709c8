package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kjm/ledger-lite/internal/core/ports/services"
	"github.com/kjm/ledger-lite/internal/dto"
	"github.com/kjm/ledger-lite/internal/middleware"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// registerJournalRoutes registers journal entry routes.
func registerJournalRoutes(api *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := api.Group("/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:id", h.getEntry)
		entries.PATCH("/:id", h.updateEntryDescription)
	}
}

// entryIDParam parses the :id path parameter. A non-numeric ID cannot refer
// to any entry, so it maps to the not-found outcome.
func entryIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "journal entry not found: "+c.Param("id"))
		return 0, false
	}
	return id, true
}

// createEntry godoc
// @Summary Record a new journal entry
// @Description Creates a balanced journal entry with all of its lines atomically
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Entry with lines"
// @Success 201 {object} dto.CreateJournalEntryResponse
// @Failure 400 {object} dto.APIErrorResponse "Validation failure or unparseable body"
// @Failure 404 {object} dto.APIErrorResponse "Referenced account does not exist"
// @Router /journal-entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	entryID, err := h.journalService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create journal entry", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Journal entry created", slog.Int64("entry_id", entryID))
	c.JSON(http.StatusCreated, dto.CreateJournalEntryResponse{ID: entryID})
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Retrieves one entry with all lines and account display fields
// @Tags journal-entries
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.JournalEntryDetailResponse
// @Failure 404 {object} dto.APIErrorResponse "Entry not found"
// @Router /journal-entries/{id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		logger.Warn("Failed to get journal entry", slog.String("error", err.Error()), slog.Int64("entry_id", entryID))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryDetailResponse(entry))
}

// listEntries godoc
// @Summary List journal entry summaries
// @Description Lists all entries with debit/credit totals, newest entry date first
// @Tags journal-entries
// @Produce json
// @Success 200 {array} dto.JournalEntrySummaryResponse
// @Router /journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summaries, err := h.journalService.ListEntrySummaries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// updateEntryDescription godoc
// @Summary Update a journal entry's description
// @Description Mutates the description, the only field editable after creation
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param entry body dto.UpdateJournalEntryRequest true "New description"
// @Success 200 {object} dto.JournalEntryDetailResponse
// @Failure 400 {object} dto.APIErrorResponse "Invalid or unparseable request body"
// @Failure 404 {object} dto.APIErrorResponse "Entry not found"
// @Router /journal-entries/{id} [patch]
func (h *journalHandler) updateEntryDescription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateEntryDescription", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	entry, err := h.journalService.UpdateEntryDescription(c.Request.Context(), entryID, req.Description)
	if err != nil {
		logger.Warn("Failed to update journal entry", slog.String("error", err.Error()), slog.Int64("entry_id", entryID))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryDetailResponse(entry))
}
