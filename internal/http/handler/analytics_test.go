package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"usermgmt/internal/core"
	"usermgmt/internal/http/handler"
	"usermgmt/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AnalyticsHandler", func() {
	var (
		ah          *handler.AnalyticsHandler
		fakeService *fake.AnalyticsService
		w           *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		fakeService = new(fake.AnalyticsService)
		ah = handler.NewAnalyticsHandler(zap.NewNop().Sugar(), fakeService)
		w = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		ah.HandleGetAnalytics(w, httptest.NewRequest("GET", "/api/v1/analytics", nil))
	})

	When("analytics are generated", func() {
		BeforeEach(func() {
			fakeService.GetUserAnalyticsReturns(core.Analytics{
				Summary: core.AnalyticsSummary{TotalUsers: 3},
				Extremes: core.AnalyticsExtremes{
					LongestName:        "ccc",
					ShortestName:       "a",
					LongestNameLength:  3,
					ShortestNameLength: 1,
				},
			}, nil)
		})

		It("should return the summary and extremes", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{
				"status": "OK",
				"message": "Analytics generated successfully",
				"data": {
					"summary": {"totalUsers": 3},
					"extremes": {
						"longestName": "ccc",
						"shortestName": "a",
						"longestNameLength": 3,
						"shortestNameLength": 1
					}
				}
			}`))
		})
	})

	When("there are no users", func() {
		BeforeEach(func() {
			fakeService.GetUserAnalyticsReturns(core.Analytics{}, nil)
		})

		It("should return empty extremes", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"longestName":""`))
			Expect(w.Body.String()).To(ContainSubstring(`"totalUsers":0`))
		})
	})

	When("the service fails", func() {
		BeforeEach(func() {
			fakeService.GetUserAnalyticsReturns(core.Analytics{}, errors.New("db down"))
		})

		It("should return 500 with the raw error", func() {
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).To(MatchJSON(`{
				"status": "Internal Server Error!",
				"message": "Failed to generate analytics",
				"error": "db down"
			}`))
		})
	})
})
