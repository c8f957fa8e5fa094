package worker

import (
	"github.com/spec-kit/seller-service/internal/service"
)

// StartChangeFeedWorker registers change feed handlers.
func StartChangeFeedWorker(feed *service.ChangeFeedService) {
	if feed == nil {
		return
	}
	feed.RegisterHandlers()
}
