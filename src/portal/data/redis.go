package data

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/microgrants/grant-portal/src/portal/types"
)

const streamApplications = "grantportal.applications"

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// PublishApplication appends a submitted-application event to the stream
// consumed by the admin tooling.
func PublishApplication(ctx context.Context, rdb *redis.Client, app *types.Application) error {
	_, err := rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: streamApplications,
		Values: map[string]interface{}{
			"applicationId": app.ApplicationID,
			"applicant":     app.FirstName + " " + app.LastName,
			"email":         app.Email,
			"projectTitle":  app.ProjectTitle,
			"status":        app.Status,
			"submittedAt":   app.SubmittedAt.Unix(),
		},
	}).Result()
	return err
}
