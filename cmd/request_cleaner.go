package main

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"chambaBack/internal/repositories"
)

const requestCleanerTimeout = 1 * time.Minute

// requestCleaner cancels active requests whose required date passed
// more than graceDays ago. Runs once at startup, then on the cron spec.
type requestCleaner struct {
	cron      *cron.Cron
	repo      *repositories.RequestRepository
	graceDays int
	spec      string
	infoLog   *log.Logger
	errorLog  *log.Logger
}

func newRequestCleaner(repo *repositories.RequestRepository, spec string, graceDays int, infoLog, errorLog *log.Logger) *requestCleaner {
	return &requestCleaner{
		cron:      cron.New(),
		repo:      repo,
		graceDays: graceDays,
		spec:      spec,
		infoLog:   infoLog,
		errorLog:  errorLog,
	}
}

func (c *requestCleaner) start(ctx context.Context) error {
	_, err := c.cron.AddFunc(c.spec, func() {
		c.runOnce(ctx)
	})
	if err != nil {
		return err
	}

	c.cron.Start()
	c.infoLog.Printf("request cleaner: cron started, spec %s, grace %d days", c.spec, c.graceDays)

	go c.runOnce(ctx)
	return nil
}

func (c *requestCleaner) stop() {
	c.cron.Stop()
}

func (c *requestCleaner) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, requestCleanerTimeout)
	defer cancel()

	cutoff := time.Now().UTC().AddDate(0, 0, -c.graceDays)
	cancelled, err := c.repo.CancelStaleRequests(runCtx, cutoff)
	if err != nil {
		c.errorLog.Printf("request cleaner: failed to cancel stale requests: %v", err)
		return
	}
	if cancelled > 0 {
		c.infoLog.Printf("request cleaner: cancelled %d stale requests", cancelled)
	}
}
