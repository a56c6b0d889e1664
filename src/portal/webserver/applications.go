package webserver

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/microgrants/grant-portal/src/portal/data"
	"github.com/microgrants/grant-portal/src/portal/notify"
	"github.com/microgrants/grant-portal/src/portal/types"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500

	// Callers get fixed failure messages; the underlying cause only goes to
	// the logs.
	submitFailedMsg = "Failed to submit application. Please try again."
	fetchFailedMsg  = "Failed to fetch applications"
)

// ApplicationStore is what the handlers need from the repository.
type ApplicationStore interface {
	Create(ctx context.Context, app *types.Application) error
	List(ctx context.Context, status string, limit int64) ([]types.Application, error)
}

type Applications struct {
	store     ApplicationStore
	rdb       *redis.Client
	notifier  *notify.Dispatcher
	sanitizer *bluemonday.Policy
	log       *zap.Logger
}

func NewApplications(store ApplicationStore, rdb *redis.Client, notifier *notify.Dispatcher, log *zap.Logger) Applications {
	return Applications{
		store:     store,
		rdb:       rdb,
		notifier:  notifier,
		sanitizer: bluemonday.StrictPolicy(),
		log:       log,
	}
}

type submissionRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Country     string `json:"country"`
	City        string `json:"city"`

	ProjectTitle       string `json:"projectTitle" binding:"required"`
	ProjectDescription string `json:"projectDescription"`
	ProjectField       string `json:"projectField"`
	TargetAudience     string `json:"targetAudience"`

	RequestedAmount string `json:"requestedAmount"`
	ProjectDuration string `json:"projectDuration"`
	FundingUse      string `json:"fundingUse"`
	ExpectedImpact  string `json:"expectedImpact"`

	PreviousExperience string `json:"previousExperience"`
	WhyDeserving       string `json:"whyDeserving"`
}

// toApplication maps the request onto a record, stripping any HTML from the
// free-text narrative fields.
func (r submissionRequest) toApplication(p *bluemonday.Policy) *types.Application {
	return &types.Application{
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Email:              r.Email,
		Phone:              r.Phone,
		DateOfBirth:        r.DateOfBirth,
		Country:            r.Country,
		City:               r.City,
		ProjectTitle:       p.Sanitize(r.ProjectTitle),
		ProjectDescription: p.Sanitize(r.ProjectDescription),
		ProjectField:       r.ProjectField,
		TargetAudience:     p.Sanitize(r.TargetAudience),
		RequestedAmount:    r.RequestedAmount,
		ProjectDuration:    r.ProjectDuration,
		FundingUse:         p.Sanitize(r.FundingUse),
		ExpectedImpact:     p.Sanitize(r.ExpectedImpact),
		PreviousExperience: p.Sanitize(r.PreviousExperience),
		WhyDeserving:       p.Sanitize(r.WhyDeserving),
	}
}

func (h Applications) Submit(c *gin.Context) {
	var req submissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("malformed application payload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": submitFailedMsg})
		return
	}

	app := req.toApplication(h.sanitizer)
	app.ApplicationID = newApplicationID()
	app.Status = types.StatusPending
	app.SubmittedAt = time.Now().UTC()

	if err := h.store.Create(c.Request.Context(), app); err != nil {
		h.log.Error("persist application",
			zap.String("applicationId", app.ApplicationID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": submitFailedMsg})
		return
	}

	// The record is persisted; everything below is best-effort and must not
	// change the response.
	if h.rdb != nil {
		if err := data.PublishApplication(c.Request.Context(), h.rdb, app); err != nil {
			h.log.Warn("publish application event",
				zap.String("applicationId", app.ApplicationID),
				zap.Error(err))
		}
	}
	h.notifier.ApplicationSubmitted(c.Request.Context(), app)

	h.log.Info("grant application submitted",
		zap.String("applicationId", app.ApplicationID))

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Application submitted successfully",
		"applicationId": app.ApplicationID,
	})
}

func (h Applications) List(c *gin.Context) {
	status := c.Query("status")
	limit := parseLimit(c.Query("limit"))

	apps, err := h.store.List(c.Request.Context(), status, limit)
	if err != nil {
		h.log.Error("list applications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": fetchFailedMsg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "applications": apps})
}

// parseLimit clamps absent, unparseable or out-of-range limits so the query
// layer never sees an uncontrolled value.
func parseLimit(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return defaultListLimit
	}
	if n > maxListLimit {
		return maxListLimit
	}
	return n
}

const idSuffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newApplicationID builds "APP-<epochMillis>-<6 uppercase alnum>". The
// timestamp plus random suffix makes collisions negligible at this scale;
// uniqueness is not otherwise enforced.
func newApplicationID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = idSuffixAlphabet[rand.IntN(len(idSuffixAlphabet))]
	}
	return fmt.Sprintf("APP-%d-%s", time.Now().UnixMilli(), suffix)
}
