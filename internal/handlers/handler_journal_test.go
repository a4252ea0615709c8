package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kjm/ledger-lite/internal/apperrors"
	"github.com/kjm/ledger-lite/internal/core/domain"
	portssvc "github.com/kjm/ledger-lite/internal/core/ports/services"
	"github.com/kjm/ledger-lite/internal/dto"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalService) GetEntry(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntrySummaries(ctx context.Context) ([]dto.JournalEntrySummaryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.JournalEntrySummaryResponse), args.Error(1)
}

func (m *MockJournalService) UpdateEntryDescription(ctx context.Context, entryID int64, description string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context) (*dto.TrialBalanceResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TrialBalanceResponse), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type JournalHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockJournalService   *MockJournalService
	mockReportingService *MockReportingService
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	suite.mockJournalService = new(MockJournalService)
	suite.mockReportingService = new(MockReportingService)
	suite.router = newTestRouter(new(MockAccountService), suite.mockJournalService, suite.mockReportingService)
}

func (suite *JournalHandlerTestSuite) performJSON(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *JournalHandlerTestSuite) decodeErrorEnvelope(w *httptest.ResponseRecorder) dto.APIErrorResponse {
	var envelope dto.APIErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func populatedEntry() *domain.JournalEntry {
	return &domain.JournalEntry{
		EntryID:     42,
		EntryDate:   "2025-06-15",
		Description: "Office supplies",
		Lines: []domain.JournalLine{
			{
				LineID:  1,
				EntryID: 42,
				Side:    domain.Debit,
				Amount:  5000,
				Account: domain.Account{AccountID: 1, Code: "6000", Name: "Supplies Expense"},
			},
			{
				LineID:  2,
				EntryID: 42,
				Side:    domain.Credit,
				Amount:  5000,
				Account: domain.Account{AccountID: 2, Code: "1000", Name: "Cash"},
			},
		},
	}
}

// --- Test Cases ---

func (suite *JournalHandlerTestSuite) TestCreateEntry_Created() {
	suite.mockJournalService.On("CreateEntry", mock.Anything, mock.MatchedBy(func(req dto.CreateJournalEntryRequest) bool {
		return req.EntryDate == "2025-06-15" && len(req.Lines) == 2
	})).Return(int64(42), nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/journal-entries", gin.H{
		"entryDate":   "2025-06-15",
		"description": "Office supplies",
		"lines": []gin.H{
			{"dcType": "DEBIT", "amount": 5000, "accountId": 1},
			{"dcType": "CREDIT", "amount": 5000, "accountId": 2},
		},
	})

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.CreateJournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(42), body.ID)
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_UnbalancedLines() {
	suite.mockJournalService.On("CreateEntry", mock.Anything, mock.AnythingOfType("dto.CreateJournalEntryRequest")).
		Return(int64(0), apperrors.NewValidationError("debit sum must equal credit sum")).Once()

	w := suite.performJSON(http.MethodPost, "/api/journal-entries", gin.H{
		"entryDate":   "2025-06-15",
		"description": "Broken",
		"lines": []gin.H{
			{"dcType": "DEBIT", "amount": 5000, "accountId": 1},
			{"dcType": "CREDIT", "amount": 4999, "accountId": 2},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	envelope := suite.decodeErrorEnvelope(w)
	suite.Equal("debit sum must equal credit sum", envelope.Message)
	suite.Equal("/api/journal-entries", envelope.Path)
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_EmptyLines() {
	w := suite.performJSON(http.MethodPost, "/api/journal-entries", gin.H{
		"entryDate":   "2025-06-15",
		"description": "No lines",
		"lines":       []gin.H{},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	envelope := suite.decodeErrorEnvelope(w)
	suite.Contains(envelope.Message, "Lines")
	suite.mockJournalService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_BadDateFormat() {
	w := suite.performJSON(http.MethodPost, "/api/journal-entries", gin.H{
		"entryDate":   "15/06/2025",
		"description": "Wrong date shape",
		"lines": []gin.H{
			{"dcType": "DEBIT", "amount": 100, "accountId": 1},
			{"dcType": "CREDIT", "amount": 100, "accountId": 2},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	envelope := suite.decodeErrorEnvelope(w)
	suite.Contains(envelope.Message, "EntryDate")
	suite.mockJournalService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_UnknownAccount() {
	suite.mockJournalService.On("CreateEntry", mock.Anything, mock.AnythingOfType("dto.CreateJournalEntryRequest")).
		Return(int64(0), apperrors.NewNotFoundError("account not found: 99")).Once()

	w := suite.performJSON(http.MethodPost, "/api/journal-entries", gin.H{
		"entryDate":   "2025-06-15",
		"description": "Dangling reference",
		"lines": []gin.H{
			{"dcType": "DEBIT", "amount": 100, "accountId": 99},
			{"dcType": "CREDIT", "amount": 100, "accountId": 2},
		},
	})

	suite.Equal(http.StatusNotFound, w.Code)
	envelope := suite.decodeErrorEnvelope(w)
	suite.Equal("account not found: 99", envelope.Message)
	suite.Equal("Not Found", envelope.Error)
}

func (suite *JournalHandlerTestSuite) TestGetEntry_OK() {
	suite.mockJournalService.On("GetEntry", mock.Anything, int64(42)).Return(populatedEntry(), nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/journal-entries/42", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.JournalEntryDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(42), body.ID)
	suite.Equal("2025-06-15", body.EntryDate)
	suite.Require().Len(body.Lines, 2)
	suite.Equal("DEBIT", body.Lines[0].DCType)
	suite.Equal("6000", body.Lines[0].AccountCode)
	suite.Equal("Supplies Expense", body.Lines[0].AccountName)
	suite.Equal(int64(2), body.Lines[1].AccountID)
}

func (suite *JournalHandlerTestSuite) TestGetEntry_NotFound() {
	suite.mockJournalService.On("GetEntry", mock.Anything, int64(7)).
		Return(nil, apperrors.NewNotFoundError("journal entry not found: 7")).Once()

	w := suite.performJSON(http.MethodGet, "/api/journal-entries/7", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	envelope := suite.decodeErrorEnvelope(w)
	suite.Equal("journal entry not found: 7", envelope.Message)
	suite.Equal("/api/journal-entries/7", envelope.Path)
}

func (suite *JournalHandlerTestSuite) TestGetEntry_NonNumericID() {
	w := suite.performJSON(http.MethodGet, "/api/journal-entries/abc", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	envelope := suite.decodeErrorEnvelope(w)
	suite.Equal("journal entry not found: abc", envelope.Message)
	suite.mockJournalService.AssertNotCalled(suite.T(), "GetEntry", mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestListEntries_OK() {
	summaries := []dto.JournalEntrySummaryResponse{
		{ID: 2, EntryDate: "2025-06-16", Description: "Rent", DebitTotal: 120000, CreditTotal: 120000},
		{ID: 1, EntryDate: "2025-06-15", Description: "Office supplies", DebitTotal: 5000, CreditTotal: 5000},
	}
	suite.mockJournalService.On("ListEntrySummaries", mock.Anything).Return(summaries, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/journal-entries", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.JournalEntrySummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal(int64(2), body[0].ID)
	suite.Equal(int64(120000), body[0].DebitTotal)
	suite.Equal("Office supplies", body[1].Description)
}

func (suite *JournalHandlerTestSuite) TestUpdateEntryDescription_OK() {
	updated := populatedEntry()
	updated.Description = "Corrected memo"
	suite.mockJournalService.On("UpdateEntryDescription", mock.Anything, int64(42), "Corrected memo").
		Return(updated, nil).Once()

	w := suite.performJSON(http.MethodPatch, "/api/journal-entries/42", gin.H{"description": "Corrected memo"})

	suite.Equal(http.StatusOK, w.Code)
	var body dto.JournalEntryDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Corrected memo", body.Description)
	suite.Len(body.Lines, 2)
}

func (suite *JournalHandlerTestSuite) TestUpdateEntryDescription_MissingDescription() {
	w := suite.performJSON(http.MethodPatch, "/api/journal-entries/42", gin.H{})

	suite.Equal(http.StatusBadRequest, w.Code)
	envelope := suite.decodeErrorEnvelope(w)
	suite.Contains(envelope.Message, "Description")
	suite.mockJournalService.AssertNotCalled(suite.T(), "UpdateEntryDescription", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestUpdateEntryDescription_NotFound() {
	suite.mockJournalService.On("UpdateEntryDescription", mock.Anything, int64(7), "x").
		Return(nil, apperrors.NewNotFoundError("journal entry not found: 7")).Once()

	w := suite.performJSON(http.MethodPatch, "/api/journal-entries/7", gin.H{"description": "x"})

	suite.Equal(http.StatusNotFound, w.Code)
	envelope := suite.decodeErrorEnvelope(w)
	suite.Equal("journal entry not found: 7", envelope.Message)
}

func (suite *JournalHandlerTestSuite) TestTrialBalance_OK() {
	report := &dto.TrialBalanceResponse{Rows: []dto.TrialBalanceRowResponse{}}
	suite.mockReportingService.On("TrialBalance", mock.Anything).Return(report, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/reports/trial-balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func TestJournalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}
