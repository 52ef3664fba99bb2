package http

import (
	"net/http"
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

type notificationResponse struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Sender      string     `json:"sender"`
	Timestamp   time.Time  `json:"timestamp"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Read        bool       `json:"read"`
}

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := &model.NotificationFilter{
		Type:     types.NotificationType(q.Get("type")),
		Priority: types.Priority(q.Get("priority")),
		Category: types.NotificationCategory(q.Get("category")),
		Status:   q.Get("status"),
		Search:   q.Get("search"),
	}
	if v := q.Get("read"); v != "" {
		read := v == "true"
		filter.Read = &read
	}

	feed, err := s.uc.Notification.ListNotifications(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]notificationResponse, len(feed))
	for i, n := range feed {
		resp[i] = notificationResponse{
			ID:          n.ID,
			Type:        string(n.Type),
			Category:    string(n.Category),
			Title:       n.Title,
			Message:     n.Message,
			Description: n.Description,
			Priority:    n.Priority.String(),
			Status:      n.Status,
			Sender:      n.Sender,
			Timestamp:   n.Timestamp,
			DueDate:     n.DueDate,
			Read:        n.Read,
		}
	}
	respondJSON(w, http.StatusOK, map[string]any{"notifications": resp})
}
