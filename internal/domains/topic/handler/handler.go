package handler

import (
	"github.com/gin-gonic/gin"

	"newsforum-backend/internal/domains/topic/service"
	"newsforum-backend/internal/shared/response"
)

type TopicHandler struct {
	topicService service.ServiceInterface
}

func NewTopicHandler(topicService service.ServiceInterface) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

// ListTopics lists every topic
// GET /api/topics
func (h *TopicHandler) ListTopics(c *gin.Context) {
	topics, err := h.topicService.ListTopics(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, gin.H{"topics": topics})
}
