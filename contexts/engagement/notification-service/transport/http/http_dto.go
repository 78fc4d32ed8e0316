package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type BroadcastRequest struct {
	Message string `json:"message"`
}

type BroadcastResponse struct {
	Message   string `json:"message"`
	EventID   string `json:"event_id"`
	Delivered int    `json:"delivered"`
	Failed    int    `json:"failed"`
}

type NotificationDTO struct {
	Message string `json:"message"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}

type NotificationsResponse struct {
	Message       string            `json:"message"`
	Notifications []NotificationDTO `json:"notifications"`
}
